package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/bookinstance/model"
	"library-catalog/internal/infrastructure/docstore"
)

// documentRepository keeps copies in one collection and resolves titles from
// the books collection on read.
type documentRepository struct {
	instances docstore.Collection[model.BookInstance]
	books     docstore.Collection[bookmodel.Book]
}

func NewDocumentRepository(
	instances docstore.Collection[model.BookInstance],
	books docstore.Collection[bookmodel.Book],
) RepositoryInterface {
	return &documentRepository{instances: instances, books: books}
}

func (r *documentRepository) Create(ctx context.Context, inst *model.BookInstance) (*model.BookInstance, error) {
	created := *inst
	created.ID = uuid.New()
	created.Book = nil
	if created.Status == "" {
		created.Status = model.DefaultStatus
	}

	if err := r.instances.Insert(ctx, created.ID.String(), created); err != nil {
		return nil, fmt.Errorf("failed to create book instance: %w", err)
	}
	return r.GetByID(ctx, created.ID)
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	inst, err := r.instances.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrBookInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get book instance by id: %w", err)
	}

	if err := r.resolveBook(ctx, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *documentRepository) List(ctx context.Context) ([]model.BookInstance, error) {
	return r.find(ctx, nil)
}

func (r *documentRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	return r.find(ctx, func(inst model.BookInstance) bool { return inst.BookID == bookID })
}

func (r *documentRepository) Update(ctx context.Context, id uuid.UUID, inst *model.BookInstance) (*model.BookInstance, error) {
	updated := *inst
	updated.ID = id
	updated.Book = nil

	if err := r.instances.Replace(ctx, id.String(), updated); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrBookInstanceNotFound
		}
		return nil, fmt.Errorf("failed to update book instance: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := r.instances.Remove(ctx, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete book instance: %w", err)
	}
	return removed, nil
}

func (r *documentRepository) find(ctx context.Context, filter docstore.Filter[model.BookInstance]) ([]model.BookInstance, error) {
	instances, err := r.instances.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list book instances: %w", err)
	}

	for i := range instances {
		if err := r.resolveBook(ctx, &instances[i]); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(instances, func(i, j int) bool {
		if ti, tj := instances[i].BookTitle(), instances[j].BookTitle(); ti != tj {
			return ti < tj
		}
		return instances[i].Imprint < instances[j].Imprint
	})
	return instances, nil
}

// resolveBook fills inst.Book; a missing book leaves it nil.
func (r *documentRepository) resolveBook(ctx context.Context, inst *model.BookInstance) error {
	book, err := r.books.FindByID(ctx, inst.BookID.String())
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			inst.Book = nil
			return nil
		}
		return fmt.Errorf("failed to resolve book for instance %s: %w", inst.ID, err)
	}

	title := book.TitleOnly()
	inst.Book = &title
	return nil
}
