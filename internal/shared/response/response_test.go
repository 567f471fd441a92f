package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"library-catalog/internal/shared/render"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestOutcome_View(t *testing.T) {
	c, w := newContext()

	Outcome(c, render.View("bookinstance_list", gin.H{"title": "Book Instance List"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"view":"bookinstance_list","payload":{"title":"Book Instance List"}}}`,
		w.Body.String())
}

func TestOutcome_Redirect(t *testing.T) {
	c, w := newContext()

	Outcome(c, render.RedirectTo("/catalog/bookinstances"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))
}

func TestRender_Error(t *testing.T) {
	c, w := newContext()
	boom := errors.New("boom")

	Render(c, render.Outcome{}, boom)

	assert.True(t, c.IsAborted())
	assert.Equal(t, boom, c.Errors.Last().Err)
	assert.False(t, c.Writer.Written())
	assert.Equal(t, http.StatusOK, w.Code, "nothing written yet; the error boundary responds")
}
