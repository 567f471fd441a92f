package shared

import (
	"errors"
	"net/http"
)

// ErrNotFound is wrapped by every domain "record absent" error so the HTTP
// error boundary can recognise it without knowing each domain.
var ErrNotFound = errors.New("not found")

// ToHTTPStatus converts a propagated error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode converts a propagated error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
