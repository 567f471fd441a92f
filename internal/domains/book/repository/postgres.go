package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"library-catalog/internal/domains/book/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, author_id, summary, isbn, genres`

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (id, title, author_id, summary, isbn, genres)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + bookColumns

	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	genres := b.Genres
	if genres == nil {
		genres = []string{} // pq encodes a nil slice as NULL
	}

	var created model.Book
	err := r.pool.QueryRow(ctx, query,
		id, b.Title, b.AuthorID, b.Summary, b.ISBN, pq.Array(genres),
	).Scan(
		&created.ID, &created.Title, &created.AuthorID,
		&created.Summary, &created.ISBN, pq.Array(&created.Genres),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&b.Genres),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Book, error) {
	return r.queryBooks(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title ASC`)
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return r.queryBooks(ctx, `SELECT `+bookColumns+` FROM books WHERE author_id = $1 ORDER BY title ASC`, authorID)
}

func (r *postgresRepository) ListTitles(ctx context.Context) ([]model.BookTitle, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title FROM books ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list book titles: %w", err)
	}
	defer rows.Close()

	titles := []model.BookTitle{}
	for rows.Next() {
		var t model.BookTitle
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("failed to scan book title: %w", err)
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book titles: %w", err)
	}

	return titles, nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&b.Genres)); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}
