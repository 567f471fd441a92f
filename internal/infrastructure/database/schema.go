package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	pkgdb "library-catalog/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id            UUID PRIMARY KEY,
		first_name    VARCHAR(100) NOT NULL,
		family_name   VARCHAR(100) NOT NULL,
		date_of_birth DATE,
		date_of_death DATE
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id        UUID PRIMARY KEY,
		title     TEXT NOT NULL,
		author_id UUID NOT NULL REFERENCES authors(id),
		summary   TEXT NOT NULL DEFAULT '',
		isbn      TEXT NOT NULL DEFAULT '',
		genres    TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
	`CREATE TABLE IF NOT EXISTS book_instances (
		id         UUID PRIMARY KEY,
		book_id    UUID NOT NULL REFERENCES books(id),
		imprint    TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'Maintenance'
		           CHECK (status IN ('Available', 'Maintenance', 'Loaned', 'Reserved')),
		due_back   DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_book_instances_book_id ON book_instances(book_id)`,
}

// EnsureSchema creates the catalog tables when they do not exist yet.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	err := pkgdb.WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("statements", len(schemaStatements)).Msg("[DATABASE] Schema ensured")
	return nil
}
