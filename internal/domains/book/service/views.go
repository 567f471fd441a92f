package service

import (
	authormodel "library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/book/model"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
)

const (
	ViewList   = "book_list"
	ViewDetail = "book_detail"
)

type ListPayload struct {
	Title    string                `json:"title"`
	BookList []*model.BookResponse `json:"book_list"`
}

// DetailPayload carries the book, its author (nil when the author record is
// gone) and its copies.
type DetailPayload struct {
	Title         string                                `json:"title"`
	Book          *model.BookResponse                   `json:"book"`
	Author        *authormodel.AuthorResponse           `json:"author,omitempty"`
	BookInstances []*instancemodel.BookInstanceResponse `json:"book_instances"`
}
