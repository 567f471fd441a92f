package model

import (
	bookmodel "library-catalog/internal/domains/book/model"
	"library-catalog/internal/shared/form"
)

const (
	ViewList   = "bookinstance_list"
	ViewDetail = "bookinstance_detail"
	ViewForm   = "bookinstance_form"
	ViewDelete = "bookinstance_delete"
)

const (
	TitleList   = "Book Instance List"
	TitleCreate = "Create BookInstance"
	TitleUpdate = "Update BookInstance"
	TitleDelete = "Delete Book Instance"
)

type ListPayload struct {
	Title            string                  `json:"title"`
	BookInstanceList []*BookInstanceResponse `json:"bookinstance_list"`
}

type DetailPayload struct {
	Title        string                `json:"title"`
	BookInstance *BookInstanceResponse `json:"bookinstance"`
}

// FormPayload feeds the create/update form. BookInstance and Errors are empty
// on first display.
type FormPayload struct {
	Title        string                        `json:"title"`
	BookList     []bookmodel.BookTitleResponse `json:"book_list"`
	Statuses     []string                      `json:"statuses"`
	SelectedBook string                        `json:"selected_book,omitempty"`
	BookInstance *FormValues                   `json:"bookinstance,omitempty"`
	DueBack      string                        `json:"due_back"`
	Errors       []form.FieldError             `json:"errors,omitempty"`
}

type DeletePayload struct {
	Title        string                `json:"title"`
	BookInstance *BookInstanceResponse `json:"bookinstance"`
}

// DetailTitle is "Copy: <book title>".
func DetailTitle(inst *BookInstance) string {
	return "Copy: " + inst.BookTitle()
}
