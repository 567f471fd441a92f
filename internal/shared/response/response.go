package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/render"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ViewBody is the JSON form of a rendered view.
type ViewBody struct {
	View    string      `json:"view"`
	Payload interface{} `json:"payload"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// Outcome writes a workflow outcome: 303 to the redirect target, otherwise
// 200 with the view name and payload.
func Outcome(c *gin.Context, o render.Outcome) {
	if o.IsRedirect() {
		c.Redirect(http.StatusSeeOther, o.Redirect)
		return
	}
	Success(c, http.StatusOK, ViewBody{View: o.View, Payload: o.Data})
}

// Render writes o, or hands err to the error boundary middleware.
func Render(c *gin.Context, o render.Outcome, err error) {
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	Outcome(c, o)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
