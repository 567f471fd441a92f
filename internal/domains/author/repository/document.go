package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/infrastructure/docstore"
)

type documentRepository struct {
	authors docstore.Collection[model.Author]
}

func NewDocumentRepository(authors docstore.Collection[model.Author]) RepositoryInterface {
	return &documentRepository{authors: authors}
}

func (r *documentRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	created.ID = uuid.New()

	if err := r.authors.Insert(ctx, created.ID.String(), created); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := r.authors.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return &a, nil
}

func (r *documentRepository) List(ctx context.Context) ([]model.Author, error) {
	authors, err := r.authors.Find(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	sort.SliceStable(authors, func(i, j int) bool {
		if authors[i].FamilyName != authors[j].FamilyName {
			return authors[i].FamilyName < authors[j].FamilyName
		}
		return authors[i].FirstName < authors[j].FirstName
	})
	return authors, nil
}

func (r *documentRepository) Update(ctx context.Context, id uuid.UUID, a *model.Author) (*model.Author, error) {
	updated := *a
	updated.ID = id

	if err := r.authors.Replace(ctx, id.String(), updated); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return &updated, nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := r.authors.Remove(ctx, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete author: %w", err)
	}
	return removed, nil
}
