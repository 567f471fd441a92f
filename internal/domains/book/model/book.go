package model

import (
	"github.com/google/uuid"

	"library-catalog/internal/shared/paths"
)

// Book is the bibliographic record that copies (book instances) refer to.
type Book struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`
	Summary  string    `json:"summary" db:"summary"`
	ISBN     string    `json:"isbn" db:"isbn"`
	Genres   []string  `json:"genres" db:"genres"`
}

// BookTitle is the id+title projection used by reference-selection controls.
type BookTitle struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`
}

func (b *Book) URL() string {
	return paths.For(paths.Book, b.ID)
}

func (b *Book) TitleOnly() BookTitle {
	return BookTitle{ID: b.ID, Title: b.Title}
}

func (t BookTitle) URL() string {
	return paths.For(paths.Book, t.ID)
}

type BookResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	AuthorID uuid.UUID `json:"author_id"`
	Summary  string    `json:"summary"`
	ISBN     string    `json:"isbn"`
	Genres   []string  `json:"genres"`
	URL      string    `json:"url"`
}

type BookTitleResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}

func (b *Book) ToResponse() *BookResponse {
	genres := b.Genres
	if genres == nil {
		genres = []string{}
	}
	return &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		AuthorID: b.AuthorID,
		Summary:  b.Summary,
		ISBN:     b.ISBN,
		Genres:   genres,
		URL:      b.URL(),
	}
}

func (t BookTitle) ToResponse() BookTitleResponse {
	return BookTitleResponse{ID: t.ID, Title: t.Title, URL: t.URL()}
}
