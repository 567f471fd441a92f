package model

import (
	"time"

	"github.com/google/uuid"

	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/shared/dates"
	"library-catalog/internal/shared/paths"
)

// BookInstance is a physical copy of a book.
type BookInstance struct {
	ID      uuid.UUID  `json:"id" db:"id"`
	BookID  uuid.UUID  `json:"book_id" db:"book_id"`
	Imprint string     `json:"imprint" db:"imprint"`
	Status  Status     `json:"status" db:"status"`
	DueBack *time.Time `json:"due_back,omitempty" db:"due_back"`

	// Book is resolved on read and never stored with the copy.
	Book *bookmodel.BookTitle `json:"book,omitempty" db:"-"`
}

func (i *BookInstance) URL() string {
	return paths.For(paths.BookInstance, i.ID)
}

func (i *BookInstance) DueBackFormatted() string {
	return dates.Medium(i.DueBack)
}

func (i *BookInstance) DueBackInput() string {
	return dates.Input(i.DueBack)
}

// BookTitle is the resolved book title or "" when the book is unknown.
func (i *BookInstance) BookTitle() string {
	if i.Book == nil {
		return ""
	}
	return i.Book.Title
}
