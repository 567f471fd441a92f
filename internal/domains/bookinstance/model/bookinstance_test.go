package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-catalog/internal/domains/book/model"
)

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("loaned").IsValid(), "statuses are case sensitive")
	assert.Equal(t, []string{"Available", "Maintenance", "Loaned", "Reserved"}, StatusValues())
}

func TestBookInstance_DerivedFields(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000042")
	bookID := uuid.New()
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	inst := BookInstance{
		ID:      id,
		BookID:  bookID,
		Imprint: "Penguin Classics, 2003",
		Status:  StatusLoaned,
		DueBack: &due,
		Book:    &bookmodel.BookTitle{ID: bookID, Title: "Emma"},
	}

	resp := inst.ToResponse()
	assert.Equal(t, "/catalog/bookinstance/00000000-0000-0000-0000-000000000042", resp.URL)
	assert.Equal(t, "May 1, 2024", resp.DueBackFormatted)
	assert.Equal(t, "2024-05-01", resp.DueBackInput)
	require.NotNil(t, resp.Book)
	assert.Equal(t, "Emma", resp.Book.Title)
	assert.Equal(t, "/catalog/book/"+bookID.String(), resp.Book.URL)

	form := inst.ToFormValues()
	assert.Equal(t, bookID.String(), form.Book)
	assert.Equal(t, "2024-05-01", form.DueBack)
}

func TestBookInstance_NoDueBack(t *testing.T) {
	inst := BookInstance{ID: uuid.New(), Status: StatusAvailable}

	assert.Equal(t, "", inst.DueBackFormatted())
	assert.Equal(t, "", inst.DueBackInput())
	assert.Equal(t, "", inst.BookTitle())
	assert.Nil(t, inst.ToResponse().Book)
	assert.Equal(t, "", inst.ToFormValues().Book)
}
