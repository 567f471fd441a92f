package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
	"library-catalog/internal/domains/bookinstance/model"
	"library-catalog/internal/domains/bookinstance/repository"
	"library-catalog/internal/domains/bookinstance/service"
	"library-catalog/internal/infrastructure/docstore"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/render"
)

type testEnv struct {
	router    *gin.Engine
	instances *docstore.MemoryCollection[model.BookInstance]
	book      *bookmodel.Book
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bookDocs := docstore.NewMemoryCollection[bookmodel.Book]()
	instanceDocs := docstore.NewMemoryCollection[model.BookInstance]()
	books := bookrepo.NewDocumentRepository(bookDocs)

	book, err := books.Create(context.Background(), &bookmodel.Book{Title: "Emma", AuthorID: uuid.New()})
	require.NoError(t, err)

	svc := service.NewBookInstanceService(repository.NewDocumentRepository(instanceDocs, bookDocs), books)
	return &testEnv{
		router:    newRouter(svc),
		instances: instanceDocs,
		book:      book,
	}
}

func newRouter(svc service.ServiceInterface) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.ErrorHandler())
	NewBookInstanceHandler(svc).RegisterRoutes(r.Group("/catalog"))
	return r
}

func (e *testEnv) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type viewEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		View    string          `json:"view"`
		Payload json.RawMessage `json:"payload"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) viewEnvelope {
	t.Helper()
	var env viewEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestList(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodGet, "/catalog/bookinstances", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, model.ViewList, env.Data.View)
	assert.Contains(t, string(env.Data.Payload), `"title":"Book Instance List"`)
}

func TestCreate_RedirectsToNewCopy(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/catalog/bookinstance/create", url.Values{
		"book":    {e.book.ID.String()},
		"imprint": {"Penguin"},
		"status":  {"Available"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/catalog/bookinstance/"))

	all, err := e.instances.Find(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "/catalog/bookinstance/"+all[0].ID.String(), w.Header().Get("Location"))
}

func TestCreate_InvalidRendersForm(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/catalog/bookinstance/create", url.Values{
		"book":    {""},
		"imprint": {"  "},
	})

	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, model.ViewForm, env.Data.View)

	var payload model.FormPayload
	require.NoError(t, json.Unmarshal(env.Data.Payload, &payload))
	require.Len(t, payload.Errors, 2)
	assert.Equal(t, "Book must be specified", payload.Errors[0].Message)
	assert.Equal(t, "Imprint must be specified", payload.Errors[1].Message)
}

func TestUpdateForm_NotFound(t *testing.T) {
	e := newTestEnv(t)

	for _, id := range []string{uuid.NewString(), "42"} {
		w := e.do(http.MethodGet, "/catalog/bookinstance/"+id+"/update", nil)

		assert.Equal(t, http.StatusNotFound, w.Code, id)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
		assert.Equal(t, "book copy not found", env.Error.Message)
	}
}

func TestUpdate_KeepsPathID(t *testing.T) {
	e := newTestEnv(t)
	id := uuid.MustParse("00000000-0000-0000-0000-000000000042")
	require.NoError(t, e.instances.Insert(context.Background(), id.String(),
		model.BookInstance{ID: id, BookID: e.book.ID, Imprint: "Old", Status: model.StatusAvailable}))

	w := e.do(http.MethodPost, "/catalog/bookinstance/"+id.String()+"/update", url.Values{
		"book":    {e.book.ID.String()},
		"imprint": {"New"},
		"status":  {"Reserved"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/bookinstance/"+id.String(), w.Header().Get("Location"))
}

func TestDelete(t *testing.T) {
	e := newTestEnv(t)
	id := uuid.New()
	require.NoError(t, e.instances.Insert(context.Background(), id.String(),
		model.BookInstance{ID: id, BookID: e.book.ID, Imprint: "Penguin", Status: model.StatusAvailable}))

	// The form field wins over the path parameter.
	w := e.do(http.MethodPost, "/catalog/bookinstance/"+uuid.NewString()+"/delete", url.Values{
		DeleteFormField: {id.String()},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))

	_, err := e.instances.FindByID(context.Background(), id.String())
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestDelete_MissingRedirects(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/catalog/bookinstance/"+uuid.NewString()+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))

	w = e.do(http.MethodGet, "/catalog/bookinstance/not-an-id/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/catalog/bookinstances", w.Header().Get("Location"))
}

type brokenService struct {
	service.ServiceInterface
}

func (brokenService) List(context.Context) (render.Outcome, error) {
	return render.Outcome{}, errors.New("redis: connection pool timeout")
}

func TestStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newRouter(brokenService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/bookinstances", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "redis")
}
