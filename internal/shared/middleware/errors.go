package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared"
	"library-catalog/internal/shared/response"
)

// ErrorHandler is the generic error boundary. Handlers attach failures with
// c.Error and return; this middleware turns the last one into a response.
// Not-found conditions keep their message, anything else is reported without
// detail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := shared.ToHTTPStatus(err)

		if errors.Is(err, shared.ErrNotFound) {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Err(err).
				Msg("Record not found")
			response.ErrorResponse(c, status, shared.ToErrorCode(err), err.Error())
			return
		}

		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.Request.URL.Path).
			Err(err).
			Msg("Request failed")
		response.ErrorResponse(c, status, shared.ToErrorCode(err), "Internal server error")
	}
}
