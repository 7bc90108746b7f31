package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context, f Filter) (Catalog, error)
	UpdateMovie(ctx context.Context, id int64, p Patch) error
}

type Repository interface {
	FindMovies(ctx context.Context, f Filter) ([]Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, p Patch) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context, f Filter) (Catalog, error) {
	movies, err := uc.r.FindMovies(ctx, f)
	if err != nil {
		return Catalog{}, err
	}
	return NewCatalog(movies), nil
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, p Patch) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if _, err := uc.r.GetMovie(ctx, id); err != nil {
		return err
	}
	return uc.r.UpdateMovie(ctx, id, p)
}
