package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	bookmodel "library-catalog/internal/domains/book/model"
	bookrepo "library-catalog/internal/domains/book/repository"
	"library-catalog/internal/domains/bookinstance/model"
	"library-catalog/internal/domains/bookinstance/repository"
	"library-catalog/internal/shared/form"
	"library-catalog/internal/shared/paths"
	"library-catalog/internal/shared/render"
)

type bookInstanceService struct {
	repo  repository.RepositoryInterface
	books bookrepo.RepositoryInterface
}

func NewBookInstanceService(repo repository.RepositoryInterface, books bookrepo.RepositoryInterface) ServiceInterface {
	return &bookInstanceService{
		repo:  repo,
		books: books,
	}
}

func (s *bookInstanceService) List(ctx context.Context) (render.Outcome, error) {
	instances, err := s.repo.List(ctx)
	if err != nil {
		return render.Outcome{}, err
	}

	list := make([]*model.BookInstanceResponse, len(instances))
	for i := range instances {
		list[i] = instances[i].ToResponse()
	}

	return render.View(model.ViewList, model.ListPayload{
		Title:            model.TitleList,
		BookInstanceList: list,
	}), nil
}

func (s *bookInstanceService) Detail(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	inst, err := s.get(ctx, id)
	if err != nil {
		return render.Outcome{}, err
	}

	return render.View(model.ViewDetail, model.DetailPayload{
		Title:        model.DetailTitle(inst),
		BookInstance: inst.ToResponse(),
	}), nil
}

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

func (s *bookInstanceService) ShowCreateForm(ctx context.Context) (render.Outcome, error) {
	books, err := s.books.ListTitles(ctx)
	if err != nil {
		return render.Outcome{}, err
	}

	return render.View(model.ViewForm, model.FormPayload{
		Title:    model.TitleCreate,
		BookList: toTitleResponses(books),
		Statuses: model.StatusValues(),
	}), nil
}

func (s *bookInstanceService) Create(ctx context.Context, input map[string]string) (render.Outcome, error) {
	res := createRules.Run(input)
	if err := s.checkBook(ctx, res); err != nil {
		return render.Outcome{}, err
	}
	candidate := candidateFrom(res)

	if !res.Valid() {
		return s.reRender(ctx, model.TitleCreate, candidate, res)
	}

	if candidate.Status == "" {
		candidate.Status = model.DefaultStatus
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return render.Outcome{}, err
	}

	log.Info().
		Str("bookinstance_id", created.ID.String()).
		Str("book_id", created.BookID.String()).
		Str("status", string(created.Status)).
		Msg("Book instance created")

	return render.RedirectTo(created.URL()), nil
}

// ════════════════════════════════════════════════════════════════
// UPDATE
// ════════════════════════════════════════════════════════════════

func (s *bookInstanceService) ShowUpdateForm(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	if id == uuid.Nil {
		return render.Outcome{}, model.ErrBookInstanceNotFound
	}

	var (
		inst  *model.BookInstance
		books []bookmodel.BookTitle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inst, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.books.ListTitles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return render.Outcome{}, err
	}

	return render.View(model.ViewForm, model.FormPayload{
		Title:        model.TitleUpdate,
		BookList:     toTitleResponses(books),
		Statuses:     model.StatusValues(),
		SelectedBook: inst.BookID.String(),
		BookInstance: inst.ToFormValues(),
		DueBack:      inst.DueBackInput(),
	}), nil
}

func (s *bookInstanceService) Update(ctx context.Context, id uuid.UUID, input map[string]string) (render.Outcome, error) {
	if id == uuid.Nil {
		return render.Outcome{}, model.ErrBookInstanceNotFound
	}

	res := updateRules.Run(input)
	if err := s.checkBook(ctx, res); err != nil {
		return render.Outcome{}, err
	}
	candidate := candidateFrom(res)
	candidate.ID = id

	if !res.Valid() {
		return s.reRender(ctx, model.TitleUpdate, candidate, res)
	}

	updated, err := s.repo.Update(ctx, id, candidate)
	if err != nil {
		return render.Outcome{}, err
	}

	log.Info().
		Str("bookinstance_id", updated.ID.String()).
		Str("status", string(updated.Status)).
		Msg("Book instance updated")

	return render.RedirectTo(updated.URL()), nil
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

func (s *bookInstanceService) ShowDeleteConfirm(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	inst, err := s.get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrBookInstanceNotFound) {
			return render.RedirectTo(paths.List(paths.BookInstance)), nil
		}
		return render.Outcome{}, err
	}

	return render.View(model.ViewDelete, model.DeletePayload{
		Title:        model.TitleDelete,
		BookInstance: inst.ToResponse(),
	}), nil
}

func (s *bookInstanceService) Delete(ctx context.Context, id uuid.UUID) (render.Outcome, error) {
	if id != uuid.Nil {
		removed, err := s.repo.Delete(ctx, id)
		if err != nil {
			return render.Outcome{}, err
		}
		if removed {
			log.Info().Str("bookinstance_id", id.String()).Msg("Book instance deleted")
		}
	}

	return render.RedirectTo(paths.List(paths.BookInstance)), nil
}

// ════════════════════════════════════════════════════════════════
// HELPERS
// ════════════════════════════════════════════════════════════════

func (s *bookInstanceService) get(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookInstanceNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// checkBook rejects a well-formed book id that names no stored book, so every
// store driver answers a dangling reference with the same re-rendered form.
func (s *bookInstanceService) checkBook(ctx context.Context, res *form.Result) error {
	id := res.ID(fieldBook)
	if id == uuid.Nil {
		return nil
	}

	_, err := s.books.GetByID(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bookmodel.ErrBookNotFound):
		res.Reject(fieldBook, msgBookNotFound)
		return nil
	default:
		return err
	}
}

// reRender shows the form again with the sanitized candidate and the errors.
// The book list is always read fresh.
func (s *bookInstanceService) reRender(ctx context.Context, title string, candidate *model.BookInstance, res *form.Result) (render.Outcome, error) {
	books, err := s.books.ListTitles(ctx)
	if err != nil {
		return render.Outcome{}, err
	}

	values := candidate.ToFormValues()
	values.Book = res.Value(fieldBook)
	values.Status = res.Value(fieldStatus)

	return render.View(model.ViewForm, model.FormPayload{
		Title:        title,
		BookList:     toTitleResponses(books),
		Statuses:     model.StatusValues(),
		SelectedBook: res.Value(fieldBook),
		BookInstance: values,
		DueBack:      candidate.DueBackInput(),
		Errors:       res.Errors,
	}), nil
}

func candidateFrom(res *form.Result) *model.BookInstance {
	inst := &model.BookInstance{
		BookID:  res.ID(fieldBook),
		Imprint: res.Value(fieldImprint),
		Status:  model.Status(res.Value(fieldStatus)),
		DueBack: res.Date(fieldDueBack),
	}
	return inst
}

func toTitleResponses(books []bookmodel.BookTitle) []bookmodel.BookTitleResponse {
	out := make([]bookmodel.BookTitleResponse, len(books))
	for i, b := range books {
		out[i] = b.ToResponse()
	}
	return out
}
