package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/infrastructure/docstore"
)

// documentRepository serves books from a docstore collection (redis or
// memory driver).
type documentRepository struct {
	books docstore.Collection[model.Book]
}

func NewDocumentRepository(books docstore.Collection[model.Book]) RepositoryInterface {
	return &documentRepository{books: books}
}

func (r *documentRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}

	if err := r.books.Insert(ctx, created.ID.String(), created); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &created, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, err := r.books.FindByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return &b, nil
}

func (r *documentRepository) List(ctx context.Context) ([]model.Book, error) {
	return r.find(ctx, nil)
}

func (r *documentRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return r.find(ctx, func(b model.Book) bool { return b.AuthorID == authorID })
}

func (r *documentRepository) ListTitles(ctx context.Context) ([]model.BookTitle, error) {
	books, err := r.find(ctx, nil)
	if err != nil {
		return nil, err
	}

	titles := make([]model.BookTitle, len(books))
	for i := range books {
		titles[i] = books[i].TitleOnly()
	}
	return titles, nil
}

func (r *documentRepository) find(ctx context.Context, filter docstore.Filter[model.Book]) ([]model.Book, error) {
	books, err := r.books.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	sort.SliceStable(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}
