package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// MemoryCollection keeps documents in process memory. Documents are stored
// encoded so callers never share state with the store.
type MemoryCollection[T any] struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	order []string
}

var _ Collection[struct{}] = (*MemoryCollection[struct{}])(nil)

func NewMemoryCollection[T any]() *MemoryCollection[T] {
	return &MemoryCollection[T]{docs: make(map[string][]byte)}
}

func (m *MemoryCollection[T]) FindByID(ctx context.Context, id string) (T, error) {
	var doc T
	if err := ctx.Err(); err != nil {
		return doc, err
	}

	m.mu.RLock()
	raw, ok := m.docs[id]
	m.mu.RUnlock()
	if !ok {
		return doc, ErrNotFound
	}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode document %s: %w", id, err)
	}
	return doc, nil
}

func (m *MemoryCollection[T]) Find(ctx context.Context, filter Filter[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		var doc T
		if err := json.Unmarshal(m.docs[id], &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", id, err)
		}
		if filter.match(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *MemoryCollection[T]) Insert(ctx context.Context, id string, doc T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; exists {
		return fmt.Errorf("document %s already exists", id)
	}
	m.docs[id] = raw
	m.order = append(m.order, id)
	return nil
}

func (m *MemoryCollection[T]) Replace(ctx context.Context, id string, doc T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; !exists {
		return ErrNotFound
	}
	m.docs[id] = raw
	return nil
}

func (m *MemoryCollection[T]) Remove(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; !exists {
		return false, nil
	}
	delete(m.docs, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	return true, nil
}
