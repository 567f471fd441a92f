package model

import (
	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/shared/form"
)

const (
	ViewList   = "author_list"
	ViewDetail = "author_detail"
	ViewForm   = "author_form"
	ViewDelete = "author_delete"
)

const (
	TitleList   = "Author List"
	TitleDetail = "Author Detail"
	TitleCreate = "Create Author"
	TitleUpdate = "Update Author"
	TitleDelete = "Delete Author"
)

type ListPayload struct {
	Title      string            `json:"title"`
	AuthorList []*AuthorResponse `json:"author_list"`
}

// DetailPayload serves both the detail page and the delete confirmation.
type DetailPayload struct {
	Title       string                    `json:"title"`
	Author      *AuthorResponse           `json:"author"`
	AuthorBooks []*bookmodel.BookResponse `json:"author_books"`
}

type FormPayload struct {
	Title  string            `json:"title"`
	Author *FormValues       `json:"author,omitempty"`
	Errors []form.FieldError `json:"errors,omitempty"`
}
