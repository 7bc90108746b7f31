package postgres

import (
	"context"
	"errors"
	"moviecatalog/movie"
	"strings"

	"gorm.io/gorm"
)

// CatalogImporter writes movies with their genres and languages. Genres and
// languages are matched by name ignoring case, so repeated imports reuse them.
type CatalogImporter struct {
	db *gorm.DB
}

func NewCatalogImporter(db *gorm.DB) *CatalogImporter {
	return &CatalogImporter{db: db}
}

// ImportMovies stores every movie not already present (same title and release
// date) in a single transaction and returns how many were inserted. Only the
// Name of each language and genre is used.
func (im *CatalogImporter) ImportMovies(ctx context.Context, movies []movie.Movie) (int, error) {
	inserted := 0
	err := im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres := map[string]GenreModel{}
		languages := map[string]LanguageModel{}

		for _, m := range movies {
			var count int64
			err := tx.Model(&MovieModel{}).
				Where("title = ? AND release_date = ?", m.Title, m.ReleaseDate.UTC()).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			model := MovieModel{
				Title:       m.Title,
				Duration:    m.Duration,
				ReleaseDate: m.ReleaseDate.UTC(),
			}
			for _, l := range m.Languages {
				lm, err := findOrCreateLanguage(tx, languages, l.Name)
				if err != nil {
					return err
				}
				model.Languages = append(model.Languages, lm)
			}
			for _, g := range m.Genres {
				gm, err := findOrCreateGenre(tx, genres, g.Name)
				if err != nil {
					return err
				}
				model.Genres = append(model.Genres, gm)
			}

			if err := tx.Omit("Languages.*", "Genres.*").Create(&model).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func findOrCreateGenre(tx *gorm.DB, cache map[string]GenreModel, name string) (GenreModel, error) {
	key := strings.ToLower(name)
	if g, ok := cache[key]; ok {
		return g, nil
	}

	var g GenreModel
	err := tx.Where("LOWER(name) = LOWER(?)", name).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		g = GenreModel{Name: name}
		err = tx.Create(&g).Error
	}
	if err != nil {
		return GenreModel{}, err
	}

	cache[key] = g
	return g, nil
}

func findOrCreateLanguage(tx *gorm.DB, cache map[string]LanguageModel, name string) (LanguageModel, error) {
	key := strings.ToLower(name)
	if l, ok := cache[key]; ok {
		return l, nil
	}

	var l LanguageModel
	err := tx.Where("LOWER(name) = LOWER(?)", name).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		l = LanguageModel{Name: name}
		err = tx.Create(&l).Error
	}
	if err != nil {
		return LanguageModel{}, err
	}

	cache[key] = l
	return l, nil
}
