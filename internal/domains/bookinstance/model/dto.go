package model

import (
	"time"

	"github.com/google/uuid"

	bookmodel "library-catalog/internal/domains/book/model"
)

type BookInstanceResponse struct {
	ID               uuid.UUID                    `json:"id"`
	Book             *bookmodel.BookTitleResponse `json:"book,omitempty"`
	BookID           uuid.UUID                    `json:"book_id"`
	Imprint          string                       `json:"imprint"`
	Status           Status                       `json:"status"`
	DueBack          *time.Time                   `json:"due_back,omitempty"`
	DueBackFormatted string                       `json:"due_back_formatted"`
	DueBackInput     string                       `json:"due_back_input"`
	URL              string                       `json:"url"`
}

func (i *BookInstance) ToResponse() *BookInstanceResponse {
	resp := &BookInstanceResponse{
		ID:               i.ID,
		BookID:           i.BookID,
		Imprint:          i.Imprint,
		Status:           i.Status,
		DueBack:          i.DueBack,
		DueBackFormatted: i.DueBackFormatted(),
		DueBackInput:     i.DueBackInput(),
		URL:              i.URL(),
	}
	if i.Book != nil {
		book := i.Book.ToResponse()
		resp.Book = &book
	}
	return resp
}

// FormValues is what the copy form shows in its inputs.
type FormValues struct {
	ID      string `json:"id,omitempty"`
	Book    string `json:"book"`
	Imprint string `json:"imprint"`
	Status  string `json:"status"`
	DueBack string `json:"due_back"`
}

func (i *BookInstance) ToFormValues() *FormValues {
	v := &FormValues{
		Imprint: i.Imprint,
		Status:  string(i.Status),
		DueBack: i.DueBackInput(),
	}
	if i.ID != uuid.Nil {
		v.ID = i.ID.String()
	}
	if i.BookID != uuid.Nil {
		v.Book = i.BookID.String()
	}
	return v
}
