package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	authormodel "library-catalog/internal/domains/author/model"
	authorrepo "library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/repository"
	instancemodel "library-catalog/internal/domains/bookinstance/model"
	instancerepo "library-catalog/internal/domains/bookinstance/repository"
	"library-catalog/internal/shared/render"
)

type bookService struct {
	repo      repository.RepositoryInterface
	authors   authorrepo.RepositoryInterface
	instances instancerepo.RepositoryInterface
}

func NewBookService(
	repo repository.RepositoryInterface,
	authors authorrepo.RepositoryInterface,
	instances instancerepo.RepositoryInterface,
) ServiceInterface {
	return &bookService{
		repo:      repo,
		authors:   authors,
		instances: instances,
	}
}

func (s *bookService) List(ctx context.Context) (render.Outcome, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return render.Outcome{}, err
	}

	list := make([]*model.BookResponse, len(books))
	for i := range books {
		list[i] = books[i].ToResponse()
	}

	return render.View(ViewList, ListPayload{Title: "Book List", BookList: list}), nil
}

func (s *bookService) Detail(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	if id == uuid.Nil {
		return render.Outcome{}, model.ErrBookNotFound
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return render.Outcome{}, err
	}

	var (
		author    *authormodel.Author
		instances []instancemodel.BookInstance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.authors.GetByID(gctx, book.AuthorID)
		if errors.Is(err, authormodel.ErrAuthorNotFound) {
			return nil
		}
		author = a
		return err
	})
	g.Go(func() error {
		var err error
		instances, err = s.instances.ListByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return render.Outcome{}, err
	}

	payload := DetailPayload{
		Title:         book.Title,
		Book:          book.ToResponse(),
		BookInstances: make([]*instancemodel.BookInstanceResponse, len(instances)),
	}
	if author != nil {
		payload.Author = author.ToResponse()
	}
	for i := range instances {
		payload.BookInstances[i] = instances[i].ToResponse()
	}

	return render.View(ViewDetail, payload), nil
}
