package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/bookinstance/model"
)

// RepositoryInterface is the book copy store contract. Reads resolve the
// referenced book's title into BookInstance.Book.
type RepositoryInterface interface {
	// Create stores a new copy and assigns its id.
	Create(ctx context.Context, inst *model.BookInstance) (*model.BookInstance, error)

	// GetByID returns model.ErrBookInstanceNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)

	// List returns every copy.
	List(ctx context.Context) ([]model.BookInstance, error)

	// ListByBook returns the copies of bookID.
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error)

	// Update replaces the stored fields of id, keeping the id.
	// Returns model.ErrBookInstanceNotFound when absent.
	Update(ctx context.Context, id uuid.UUID, inst *model.BookInstance) (*model.BookInstance, error)

	// Delete removes id and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
