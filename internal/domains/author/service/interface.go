package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/shared/render"
)

// ServiceInterface drives the author pages. uuid.Nil is treated as absent.
type ServiceInterface interface {
	List(ctx context.Context) (render.Outcome, error)
	Detail(ctx context.Context, id uuid.UUID) (render.Outcome, error)

	ShowCreateForm(ctx context.Context) (render.Outcome, error)
	Create(ctx context.Context, input map[string]string) (render.Outcome, error)

	ShowUpdateForm(ctx context.Context, id uuid.UUID) (render.Outcome, error)
	Update(ctx context.Context, id uuid.UUID, input map[string]string) (render.Outcome, error)

	ShowDeleteConfirm(ctx context.Context, id uuid.UUID) (render.Outcome, error)
	// Delete refuses while the author still has books and shows them instead.
	Delete(ctx context.Context, id uuid.UUID) (render.Outcome, error)
}
