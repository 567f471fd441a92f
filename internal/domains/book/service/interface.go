package service

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/shared/render"
)

// ServiceInterface is the read-only book catalogue.
type ServiceInterface interface {
	List(ctx context.Context) (render.Outcome, error)
	// Detail returns model.ErrBookNotFound for an absent or nil id.
	Detail(ctx context.Context, id uuid.UUID) (render.Outcome, error)
}
