// Package seed loads a small sample catalogue: a few authors, their books and
// copies in every status.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authormodel "library-catalog/internal/domains/author/model"
	authorrepo "library-catalog/internal/domains/author/repository"
	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
	instancerepo "library-catalog/internal/domains/bookinstance/repository"
	"library-catalog/internal/shared/dates"
)

type Stores struct {
	Authors   authorrepo.RepositoryInterface
	Books     bookrepo.RepositoryInterface
	Instances instancerepo.RepositoryInterface
}

// Counts reports how many records Run created.
type Counts struct {
	Authors   int
	Books     int
	Instances int
}

type sampleAuthor struct {
	first, family string
	born, died    string
}

type sampleBook struct {
	title, summary, isbn string
	author               int
	genres               []string
}

type sampleCopy struct {
	book    int
	imprint string
	status  instancemodel.Status
	dueBack string
}

var authors = []sampleAuthor{
	{first: "Patrick", family: "Rothfuss", born: "1973-06-06"},
	{first: "Ben", family: "Bova", born: "1932-11-08"},
	{first: "Isaac", family: "Asimov", born: "1920-01-02", died: "1992-04-06"},
	{first: "Bob", family: "Billings"},
	{first: "Jim", family: "Jones", born: "1971-12-16"},
}

var books = []sampleBook{
	{title: "The Name of the Wind (The Kingkiller Chronicle, #1)", isbn: "9781473211896", author: 0, genres: []string{"Fantasy"},
		summary: "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon."},
	{title: "The Wise Man's Fear (The Kingkiller Chronicle, #2)", isbn: "9788401352836", author: 0, genres: []string{"Fantasy"},
		summary: "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile."},
	{title: "The Slow Regard of Silent Things (Kingkiller Chronicle)", isbn: "9780756411336", author: 0, genres: []string{"Fantasy"},
		summary: "Deep below the University, there is a dark place."},
	{title: "Apes and Angels", isbn: "9780765379528", author: 1, genres: []string{"Science Fiction"},
		summary: "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity."},
	{title: "Death Wave", isbn: "9780765379504", author: 1, genres: []string{"Science Fiction"},
		summary: "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system."},
	{title: "Test Book 1", isbn: "ISBN111111", author: 4, genres: []string{"Fantasy", "Science Fiction"},
		summary: "Summary of test book 1"},
	{title: "Test Book 2", isbn: "ISBN222222", author: 4},
}

var copies = []sampleCopy{
	{book: 0, imprint: "London Gollancz, 2014.", status: instancemodel.StatusAvailable},
	{book: 1, imprint: " Gollancz, 2011.", status: instancemodel.StatusLoaned, dueBack: "2024-05-01"},
	{book: 2, imprint: " Gollancz, 2015."},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: instancemodel.StatusAvailable},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: instancemodel.StatusAvailable},
	{book: 3, imprint: "New York Tom Doherty Associates, 2016.", status: instancemodel.StatusAvailable},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: instancemodel.StatusAvailable},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: instancemodel.StatusMaintenance},
	{book: 4, imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", status: instancemodel.StatusLoaned},
	{book: 0, imprint: "Imprint XXX2", status: instancemodel.StatusReserved},
	{book: 1, imprint: "Imprint XXX3"},
}

// Run inserts the sample catalogue through the repositories.
func Run(ctx context.Context, s Stores) (Counts, error) {
	var counts Counts

	authorIDs := make([]uuid.UUID, len(authors))
	for i, a := range authors {
		record := &authormodel.Author{FirstName: a.first, FamilyName: a.family}
		var err error
		if record.DateOfBirth, err = optionalDate(a.born); err != nil {
			return counts, err
		}
		if record.DateOfDeath, err = optionalDate(a.died); err != nil {
			return counts, err
		}

		created, err := s.Authors.Create(ctx, record)
		if err != nil {
			return counts, fmt.Errorf("seed author %s: %w", a.family, err)
		}
		authorIDs[i] = created.ID
		counts.Authors++
	}

	bookIDs := make([]uuid.UUID, len(books))
	for i, b := range books {
		created, err := s.Books.Create(ctx, &bookmodel.Book{
			Title:    b.title,
			AuthorID: authorIDs[b.author],
			Summary:  b.summary,
			ISBN:     b.isbn,
			Genres:   b.genres,
		})
		if err != nil {
			return counts, fmt.Errorf("seed book %q: %w", b.title, err)
		}
		bookIDs[i] = created.ID
		counts.Books++
	}

	for _, cp := range copies {
		dueBack, err := optionalDate(cp.dueBack)
		if err != nil {
			return counts, err
		}
		if _, err := s.Instances.Create(ctx, &instancemodel.BookInstance{
			BookID:  bookIDs[cp.book],
			Imprint: cp.imprint,
			Status:  cp.status,
			DueBack: dueBack,
		}); err != nil {
			return counts, fmt.Errorf("seed copy of %q: %w", books[cp.book].title, err)
		}
		counts.Instances++
	}

	log.Info().
		Int("authors", counts.Authors).
		Int("books", counts.Books).
		Int("bookinstances", counts.Instances).
		Msg("Sample catalogue loaded")

	return counts, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := dates.ParseCalendarDate(s)
	if err != nil {
		return nil, err
	}
	return dates.Ptr(d), nil
}
