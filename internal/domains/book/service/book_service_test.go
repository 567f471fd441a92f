package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-catalog/internal/domains/author/model"
	authorrepo "library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
	instancerepo "library-catalog/internal/domains/bookinstance/repository"
	"library-catalog/internal/infrastructure/docstore"
)

func TestBookService(t *testing.T) {
	ctx := context.Background()

	bookDocs := docstore.NewMemoryCollection[model.Book]()
	books := repository.NewDocumentRepository(bookDocs)
	authors := authorrepo.NewDocumentRepository(docstore.NewMemoryCollection[authormodel.Author]())
	instances := instancerepo.NewDocumentRepository(docstore.NewMemoryCollection[instancemodel.BookInstance](), bookDocs)

	svc := NewBookService(books, authors, instances)

	austen, err := authors.Create(ctx, &authormodel.Author{FirstName: "Jane", FamilyName: "Austen"})
	require.NoError(t, err)
	emma, err := books.Create(ctx, &model.Book{Title: "Emma", AuthorID: austen.ID, Genres: []string{"Fiction"}})
	require.NoError(t, err)
	orphan, err := books.Create(ctx, &model.Book{Title: "Anonymous", AuthorID: uuid.New()})
	require.NoError(t, err)
	_, err = instances.Create(ctx, &instancemodel.BookInstance{BookID: emma.ID, Imprint: "Penguin"})
	require.NoError(t, err)

	t.Run("list", func(t *testing.T) {
		out, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, ViewList, out.View)

		p := out.Data.(ListPayload)
		require.Len(t, p.BookList, 2)
		assert.Equal(t, "Anonymous", p.BookList[0].Title)
		assert.Equal(t, []string{}, p.BookList[0].Genres)
	})

	t.Run("detail", func(t *testing.T) {
		out, err := svc.Detail(ctx, emma.ID)
		require.NoError(t, err)
		assert.Equal(t, ViewDetail, out.View)

		p := out.Data.(DetailPayload)
		assert.Equal(t, "Emma", p.Title)
		require.NotNil(t, p.Author)
		assert.Equal(t, "Austen, Jane", p.Author.Name)
		require.Len(t, p.BookInstances, 1)
		assert.Equal(t, instancemodel.StatusMaintenance, p.BookInstances[0].Status)
	})

	t.Run("detail without author", func(t *testing.T) {
		out, err := svc.Detail(ctx, orphan.ID)
		require.NoError(t, err)

		p := out.Data.(DetailPayload)
		assert.Nil(t, p.Author)
		assert.Empty(t, p.BookInstances)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := svc.Detail(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrBookNotFound)

		_, err = svc.Detail(ctx, uuid.Nil)
		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})
}
