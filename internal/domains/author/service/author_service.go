package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/repository"
	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
	"library-catalog/internal/shared/form"
	"library-catalog/internal/shared/paths"
	"library-catalog/internal/shared/render"
)

type authorService struct {
	repo  repository.RepositoryInterface
	books bookrepo.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface, books bookrepo.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) List(ctx context.Context) (render.Outcome, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return render.Outcome{}, err
	}

	list := make([]*model.AuthorResponse, len(authors))
	for i := range authors {
		list[i] = authors[i].ToResponse()
	}

	return render.View(model.ViewList, model.ListPayload{
		Title:      model.TitleList,
		AuthorList: list,
	}), nil
}

func (s *authorService) Detail(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	payload, err := s.withBooks(ctx, model.TitleDetail, id)
	if err != nil {
		return render.Outcome{}, err
	}
	return render.View(model.ViewDetail, payload), nil
}

func (s *authorService) ShowCreateForm(ctx context.Context) (render.Outcome, error) {
	return render.View(model.ViewForm, model.FormPayload{Title: model.TitleCreate}), nil
}

func (s *authorService) Create(ctx context.Context, input map[string]string) (render.Outcome, error) {
	res := authorRules.Run(input)
	candidate := candidateFrom(res)

	if !res.Valid() {
		return reRender(model.TitleCreate, candidate, res), nil
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return render.Outcome{}, err
	}

	log.Info().
		Str("author_id", created.ID.String()).
		Str("name", created.Name()).
		Msg("Author created")

	return render.RedirectTo(created.URL()), nil
}

func (s *authorService) ShowUpdateForm(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return render.Outcome{}, err
	}

	return render.View(model.ViewForm, model.FormPayload{
		Title:  model.TitleUpdate,
		Author: a.ToFormValues(),
	}), nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, input map[string]string) (render.Outcome, error) {
	if id == uuid.Nil {
		return render.Outcome{}, model.ErrAuthorNotFound
	}

	res := authorRules.Run(input)
	candidate := candidateFrom(res)
	candidate.ID = id

	if !res.Valid() {
		return reRender(model.TitleUpdate, candidate, res), nil
	}

	updated, err := s.repo.Update(ctx, id, candidate)
	if err != nil {
		return render.Outcome{}, err
	}

	log.Info().Str("author_id", updated.ID.String()).Msg("Author updated")

	return render.RedirectTo(updated.URL()), nil
}

func (s *authorService) ShowDeleteConfirm(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	payload, err := s.withBooks(ctx, model.TitleDelete, id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return render.RedirectTo(paths.List(paths.Author)), nil
		}
		return render.Outcome{}, err
	}
	return render.View(model.ViewDelete, payload), nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	payload, err := s.withBooks(ctx, model.TitleDelete, id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return render.RedirectTo(paths.List(paths.Author)), nil
		}
		return render.Outcome{}, err
	}

	if len(payload.AuthorBooks) > 0 {
		return render.View(model.ViewDelete, payload), nil
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return render.Outcome{}, err
	}

	log.Info().Str("author_id", id.String()).Msg("Author deleted")

	return render.RedirectTo(paths.List(paths.Author)), nil
}

func (s *authorService) get(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) withBooks(ctx context.Context, title string, id uuid.UUID) (model.DetailPayload, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return model.DetailPayload{}, err
	}

	books, err := s.books.ListByAuthor(ctx, id)
	if err != nil {
		return model.DetailPayload{}, err
	}

	return model.DetailPayload{
		Title:       title,
		Author:      a.ToResponse(),
		AuthorBooks: toBookResponses(books),
	}, nil
}

func reRender(title string, candidate *model.Author, res *form.Result) render.Outcome {
	return render.View(model.ViewForm, model.FormPayload{
		Title:  title,
		Author: candidate.ToFormValues(),
		Errors: res.Errors,
	})
}

func candidateFrom(res *form.Result) *model.Author {
	return &model.Author{
		FirstName:   res.Value(fieldFirstName),
		FamilyName:  res.Value(fieldFamilyName),
		DateOfBirth: res.Date(fieldDateOfBirth),
		DateOfDeath: res.Date(fieldDateOfDeath),
	}
}

func toBookResponses(books []bookmodel.Book) []*bookmodel.BookResponse {
	out := make([]*bookmodel.BookResponse, len(books))
	for i := range books {
		out[i] = books[i].ToResponse()
	}
	return out
}
