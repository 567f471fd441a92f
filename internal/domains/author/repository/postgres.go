package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author/model"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, first_name, family_name, date_of_birth, date_of_death`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAuthor(row rowScanner, a *model.Author) error {
	return row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath)
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (id, first_name, family_name, date_of_birth, date_of_death)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + authorColumns

	var created model.Author
	row := r.pool.QueryRow(ctx, query, uuid.New(), a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	if err := scanAuthor(row, &created); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	var a model.Author
	if err := scanAuthor(r.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY family_name ASC, first_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $2, family_name = $3, date_of_birth = $4, date_of_death = $5
        WHERE id = $1
        RETURNING ` + authorColumns

	var updated model.Author
	row := r.pool.QueryRow(ctx, query, id, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	if err := scanAuthor(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete author: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
