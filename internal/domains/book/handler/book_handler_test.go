package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-catalog/internal/domains/author/model"
	authorrepo "library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
	"library-catalog/internal/domains/book/service"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
	instancerepo "library-catalog/internal/domains/bookinstance/repository"
	"library-catalog/internal/infrastructure/docstore"
	"library-catalog/internal/shared/middleware"
)

func TestBookHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bookDocs := docstore.NewMemoryCollection[model.Book]()
	books := repository.NewDocumentRepository(bookDocs)
	svc := service.NewBookService(
		books,
		authorrepo.NewDocumentRepository(docstore.NewMemoryCollection[authormodel.Author]()),
		instancerepo.NewDocumentRepository(docstore.NewMemoryCollection[instancemodel.BookInstance](), bookDocs),
	)

	book, err := books.Create(context.Background(), &model.Book{Title: "Emma", AuthorID: uuid.New()})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewBookHandler(svc).RegisterRoutes(r.Group("/catalog"))

	tests := []struct {
		target   string
		wantCode int
		wantBody string
	}{
		{"/catalog/books", http.StatusOK, `"view":"book_list"`},
		{book.URL(), http.StatusOK, `"title":"Emma"`},
		{"/catalog/book/" + uuid.NewString(), http.StatusNotFound, "book not found"},
		{"/catalog/book/42", http.StatusNotFound, "book not found"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

		assert.Equal(t, tt.wantCode, w.Code, tt.target)
		assert.Contains(t, w.Body.String(), tt.wantBody, tt.target)
	}
}
