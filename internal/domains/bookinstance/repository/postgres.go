package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/bookinstance/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// selectInstances joins the book title; a dangling book_id yields a NULL title.
const selectInstances = `
    SELECT bi.id, bi.book_id, bi.imprint, bi.status, bi.due_back, b.title
    FROM book_instances bi
    LEFT JOIN books b ON b.id = bi.book_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInstance(row rowScanner, inst *model.BookInstance) error {
	var (
		status string
		title  *string
	)
	if err := row.Scan(&inst.ID, &inst.BookID, &inst.Imprint, &status, &inst.DueBack, &title); err != nil {
		return err
	}

	inst.Status = model.Status(status)
	if title != nil {
		inst.Book = &bookmodel.BookTitle{ID: inst.BookID, Title: *title}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, inst *model.BookInstance) (*model.BookInstance, error) {
	status := inst.Status
	if status == "" {
		status = model.DefaultStatus
	}

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
        INSERT INTO book_instances (id, book_id, imprint, status, due_back)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`,
		uuid.New(), inst.BookID, inst.Imprint, string(status), inst.DueBack,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create book instance: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	var inst model.BookInstance
	if err := scanInstance(r.pool.QueryRow(ctx, selectInstances+` WHERE bi.id = $1`, id), &inst); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get book instance by id: %w", err)
	}
	return &inst, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.BookInstance, error) {
	return r.queryInstances(ctx, selectInstances+` ORDER BY b.title ASC, bi.imprint ASC`)
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	return r.queryInstances(ctx, selectInstances+` WHERE bi.book_id = $1 ORDER BY bi.imprint ASC`, bookID)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, inst *model.BookInstance) (*model.BookInstance, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE book_instances
        SET book_id = $2, imprint = $3, status = $4, due_back = $5
        WHERE id = $1`,
		id, inst.BookID, inst.Imprint, string(inst.Status), inst.DueBack,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update book instance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrBookInstanceNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM book_instances WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete book instance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) queryInstances(ctx context.Context, query string, args ...interface{}) ([]model.BookInstance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list book instances: %w", err)
	}
	defer rows.Close()

	instances := []model.BookInstance{}
	for rows.Next() {
		var inst model.BookInstance
		if err := scanInstance(rows, &inst); err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book instances: %w", err)
	}

	return instances, nil
}
