package repository

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
)

// RepositoryInterface is the author store contract.
type RepositoryInterface interface {
	// Create stores a new author and assigns its id.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// GetByID returns model.ErrAuthorNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// List returns every author ordered by family name.
	List(ctx context.Context) ([]model.Author, error)

	// Update replaces the stored fields of id, keeping the id.
	// Returns model.ErrAuthorNotFound when absent.
	Update(ctx context.Context, id uuid.UUID, a *model.Author) (*model.Author, error)

	// Delete removes id and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
