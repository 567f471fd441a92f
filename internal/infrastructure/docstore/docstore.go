// Package docstore is a small document store abstraction: JSON documents
// keyed by id, kept in insertion order. It backs the redis and memory
// catalog drivers.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document has the requested id.
var ErrNotFound = errors.New("docstore: document not found")

// Filter selects documents in Find. A nil filter matches everything.
type Filter[T any] func(doc T) bool

// Collection is a set of documents of one kind.
type Collection[T any] interface {
	// FindByID returns ErrNotFound when id is absent.
	FindByID(ctx context.Context, id string) (T, error)
	// Find returns matching documents in insertion order.
	Find(ctx context.Context, filter Filter[T]) ([]T, error)
	// Insert stores a new document under id.
	Insert(ctx context.Context, id string, doc T) error
	// Replace overwrites an existing document; ErrNotFound when id is absent.
	Replace(ctx context.Context, id string, doc T) error
	// Remove deletes id and reports whether it existed.
	Remove(ctx context.Context, id string) (bool, error)
}

func (f Filter[T]) match(doc T) bool {
	return f == nil || f(doc)
}
