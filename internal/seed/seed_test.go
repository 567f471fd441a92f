package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "library-catalog/internal/domains/author/model"
	authorrepo "library-catalog/internal/domains/author/repository"
	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
	instancerepo "library-catalog/internal/domains/bookinstance/repository"
	"library-catalog/internal/infrastructure/docstore"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	bookDocs := docstore.NewMemoryCollection[bookmodel.Book]()
	stores := Stores{
		Authors:   authorrepo.NewDocumentRepository(docstore.NewMemoryCollection[authormodel.Author]()),
		Books:     bookrepo.NewDocumentRepository(bookDocs),
		Instances: instancerepo.NewDocumentRepository(docstore.NewMemoryCollection[instancemodel.BookInstance](), bookDocs),
	}

	counts, err := Run(ctx, stores)
	require.NoError(t, err)
	assert.Equal(t, Counts{Authors: len(authors), Books: len(books), Instances: len(copies)}, counts)

	all, err := stores.Instances.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(copies))
	for _, inst := range all {
		assert.True(t, inst.Status.IsValid(), "copies without a status take the default")
		assert.NotEmpty(t, inst.BookTitle())
	}

	list, err := stores.Authors.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asimov, Isaac", list[0].Name())
	assert.Equal(t, "Apr 6, 1992", list[0].DateOfDeathFormatted())
}
