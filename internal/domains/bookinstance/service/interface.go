package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/shared/render"
)

// ServiceInterface drives the book copy pages. A uuid.Nil id stands for a
// missing or malformed identifier and is treated as absent.
type ServiceInterface interface {
	List(ctx context.Context) (render.Outcome, error)
	Detail(ctx context.Context, id uuid.UUID) (render.Outcome, error)

	ShowCreateForm(ctx context.Context) (render.Outcome, error)
	Create(ctx context.Context, input map[string]string) (render.Outcome, error)

	// ShowUpdateForm loads the copy and the book list concurrently.
	ShowUpdateForm(ctx context.Context, id uuid.UUID) (render.Outcome, error)
	Update(ctx context.Context, id uuid.UUID, input map[string]string) (render.Outcome, error)

	// ShowDeleteConfirm redirects to the listing when the copy is absent.
	ShowDeleteConfirm(ctx context.Context, id uuid.UUID) (render.Outcome, error)
	// Delete always ends on the listing, whether or not the copy existed.
	Delete(ctx context.Context, id uuid.UUID) (render.Outcome, error)
}
