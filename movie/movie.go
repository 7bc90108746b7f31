package movie

import (
	"moviecatalog/errs"
	"moviecatalog/genre"
	"strings"
	"time"
)

var (
	ErrMovieNotFound   = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrInvalidID       = errs.Errorf(errs.EINVALID, "invalid movie id")
	ErrEmptyPatch      = errs.Errorf(errs.EINVALID, "no movie fields to update")
	ErrInvalidTitle    = errs.Errorf(errs.EINVALID, "title must not be blank")
	ErrInvalidDuration = errs.Errorf(errs.EINVALID, "duration must not be negative")
)

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Movie struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Duration    int           `json:"duration"`
	ReleaseDate time.Time     `json:"release_date"`
	Languages   []Language    `json:"languages"`
	Genres      []genre.Genre `json:"genres"`
}

// SortField is the column a movie listing is ordered by, ascending.
type SortField string

const (
	SortNone          SortField = ""
	SortByTitle       SortField = "title"
	SortByReleaseDate SortField = "release_date"
	SortByID          SortField = "id"
)

// ParseSort maps a raw query value to a SortField. Unknown values fall back
// to SortNone.
func ParseSort(raw string) SortField {
	switch s := SortField(strings.TrimSpace(raw)); s {
	case SortByTitle, SortByReleaseDate, SortByID:
		return s
	default:
		return SortNone
	}
}

// Filter narrows a movie listing. Language matches a language name
// case-insensitively; empty means no filter.
type Filter struct {
	Sort     SortField
	Language string
}

// Catalog is a movie listing together with its aggregates.
type Catalog struct {
	TotalMovies     int     `json:"totalMovies"`
	AverageDuration float64 `json:"averageDuration"`
	Movies          []Movie `json:"movies"`
}

func NewCatalog(movies []Movie) Catalog {
	if movies == nil {
		movies = []Movie{}
	}

	total := 0
	for _, m := range movies {
		total += m.Duration
	}

	var average float64
	if len(movies) > 0 {
		average = float64(total) / float64(len(movies))
	}

	return Catalog{
		TotalMovies:     len(movies),
		AverageDuration: average,
		Movies:          movies,
	}
}

// Patch holds the movie fields a client may change. Nil fields are left as is.
type Patch struct {
	Title       *string
	Duration    *int
	ReleaseDate *time.Time
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Duration == nil && p.ReleaseDate == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrInvalidTitle
	}
	if p.Duration != nil && *p.Duration < 0 {
		return ErrInvalidDuration
	}
	return nil
}
