package genre

import "context"

type Service interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	CreateGenre(ctx context.Context, name string) (Genre, error)
	UpdateGenre(ctx context.Context, id int64, name string) (Genre, error)
	DeleteGenre(ctx context.Context, id int64) error
}

// Repository is the persistence port for genres. NameTaken reports whether
// another genre, other than excludeID, already uses name case-insensitively.
// CreateGenre and UpdateGenre return ErrNameTaken when the store's unique
// index rejects the write.
type Repository interface {
	AllGenres(ctx context.Context) ([]Genre, error)
	GetGenre(ctx context.Context, id int64) (Genre, error)
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	CreateGenre(ctx context.Context, name string) (Genre, error)
	UpdateGenre(ctx context.Context, id int64, name string) (Genre, error)
	DeleteGenre(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListGenres(ctx context.Context) ([]Genre, error) {
	return uc.r.AllGenres(ctx)
}

func (uc *Usecase) CreateGenre(ctx context.Context, name string) (Genre, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return Genre{}, err
	}

	taken, err := uc.r.NameTaken(ctx, name, 0)
	if err != nil {
		return Genre{}, err
	}
	if taken {
		return Genre{}, ErrNameTaken
	}

	return uc.r.CreateGenre(ctx, name)
}

func (uc *Usecase) UpdateGenre(ctx context.Context, id int64, name string) (Genre, error) {
	if err := validateID(id); err != nil {
		return Genre{}, err
	}
	name, err := NormalizeName(name)
	if err != nil {
		return Genre{}, err
	}

	if _, err := uc.r.GetGenre(ctx, id); err != nil {
		return Genre{}, err
	}

	taken, err := uc.r.NameTaken(ctx, name, id)
	if err != nil {
		return Genre{}, err
	}
	if taken {
		return Genre{}, ErrNameTaken
	}

	return uc.r.UpdateGenre(ctx, id, name)
}

// DeleteGenre removes the genre and its movie associations. Movies that
// referenced it are kept.
func (uc *Usecase) DeleteGenre(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if _, err := uc.r.GetGenre(ctx, id); err != nil {
		return err
	}
	return uc.r.DeleteGenre(ctx, id)
}
