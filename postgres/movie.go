package postgres

import (
	"context"
	"errors"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"time"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          int64           `gorm:"primaryKey"`
	Title       string          `gorm:"not null"`
	Duration    int             `gorm:"not null;default:0"`
	ReleaseDate time.Time       `gorm:"type:date;not null"`
	Languages   []LanguageModel `gorm:"many2many:movie_languages;joinForeignKey:MovieID;joinReferences:LanguageID;constraint:OnDelete:CASCADE"`
	Genres      []GenreModel    `gorm:"many2many:movie_genres;joinForeignKey:MovieID;joinReferences:GenreID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// LanguageModel represents the database model for languages.
// Languages are read-only through the API and written by the seeder.
type LanguageModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (LanguageModel) TableName() string {
	return "languages"
}

const languageFilter = `EXISTS (
	SELECT 1 FROM movie_languages ml
	JOIN languages l ON l.id = ml.language_id
	WHERE ml.movie_id = movies.id AND LOWER(l.name) = LOWER(?)
)`

var sortColumns = map[movie.SortField]string{
	movie.SortByTitle:       "title ASC",
	movie.SortByReleaseDate: "release_date ASC",
	movie.SortByID:          "id ASC",
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindMovies fetches the movies matching f with their languages and genres.
func (r *MovieRepository) FindMovies(ctx context.Context, f movie.Filter) ([]movie.Movie, error) {
	query := r.db.WithContext(ctx).
		Preload("Languages", orderByName).
		Preload("Genres", orderByName)

	if f.Language != "" {
		query = query.Where(languageFilter, f.Language)
	}
	if order, ok := sortColumns[f.Sort]; ok {
		query = query.Order(order)
	}

	var models []MovieModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toDomainMovie(model)
	}
	return movies, nil
}

func (r *MovieRepository) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel

	err := r.db.WithContext(ctx).
		Preload("Languages", orderByName).
		Preload("Genres", orderByName).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrMovieNotFound
		}
		return movie.Movie{}, err
	}

	return toDomainMovie(model), nil
}

// UpdateMovie applies the non-nil fields of p.
func (r *MovieRepository) UpdateMovie(ctx context.Context, id int64, p movie.Patch) error {
	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Duration != nil {
		updates["duration"] = *p.Duration
	}
	if p.ReleaseDate != nil {
		updates["release_date"] = p.ReleaseDate.UTC()
	}
	if len(updates) == 0 {
		return movie.ErrEmptyPatch
	}

	result := r.db.WithContext(ctx).Model(&MovieModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

func toDomainMovie(model MovieModel) movie.Movie {
	languages := make([]movie.Language, len(model.Languages))
	for i, l := range model.Languages {
		languages[i] = movie.Language{ID: l.ID, Name: l.Name}
	}

	genres := make([]genre.Genre, len(model.Genres))
	for i, g := range model.Genres {
		genres[i] = toDomainGenre(g)
	}

	return movie.Movie{
		ID:          model.ID,
		Title:       model.Title,
		Duration:    model.Duration,
		ReleaseDate: model.ReleaseDate,
		Languages:   languages,
		Genres:      genres,
	}
}
