package postgres

import (
	"context"
	"errors"
	"moviecatalog/genre"

	"gorm.io/gorm"
)

// GenreModel represents the database model for genres.
// Names are unique case-insensitively through the genres_name_lower_key index.
type GenreModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GenreModel) TableName() string {
	return "genres"
}

// GenreRepository implements genre.Repository interface
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// AllGenres fetches all genres ordered by name
func (r *GenreRepository) AllGenres(ctx context.Context) ([]genre.Genre, error) {
	var models []GenreModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	genres := make([]genre.Genre, len(models))
	for i, model := range models {
		genres[i] = toDomainGenre(model)
	}
	return genres, nil
}

func (r *GenreRepository) GetGenre(ctx context.Context, id int64) (genre.Genre, error) {
	var model GenreModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return genre.Genre{}, genre.ErrGenreNotFound
		}
		return genre.Genre{}, err
	}

	return toDomainGenre(model), nil
}

// NameTaken reports whether a genre other than excludeID uses name, ignoring case.
// An excludeID of 0 checks every genre.
func (r *GenreRepository) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := r.db.WithContext(ctx).Model(&GenreModel{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GenreRepository) CreateGenre(ctx context.Context, name string) (genre.Genre, error) {
	model := GenreModel{Name: name}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return genre.Genre{}, genre.ErrNameTaken
		}
		return genre.Genre{}, err
	}
	return toDomainGenre(model), nil
}

func (r *GenreRepository) UpdateGenre(ctx context.Context, id int64, name string) (genre.Genre, error) {
	result := r.db.WithContext(ctx).Model(&GenreModel{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return genre.Genre{}, genre.ErrNameTaken
		}
		return genre.Genre{}, result.Error
	}
	if result.RowsAffected == 0 {
		return genre.Genre{}, genre.ErrGenreNotFound
	}
	return genre.Genre{ID: id, Name: name}, nil
}

// DeleteGenre removes the genre together with its movie associations.
func (r *GenreRepository) DeleteGenre(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_genres WHERE genre_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&GenreModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return genre.ErrGenreNotFound
		}
		return nil
	})
}

func toDomainGenre(model GenreModel) genre.Genre {
	return genre.Genre{
		ID:   model.ID,
		Name: model.Name,
	}
}
