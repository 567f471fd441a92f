package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
)

// RepositoryInterface is the book store contract.
type RepositoryInterface interface {
	// Create stores a new book and assigns its id.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID returns model.ErrBookNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// List returns every book ordered by title.
	List(ctx context.Context) ([]model.Book, error)

	// ListTitles is List projected to id and title.
	ListTitles(ctx context.Context) ([]model.BookTitle, error)

	// ListByAuthor returns the books written by authorID ordered by title.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
}
