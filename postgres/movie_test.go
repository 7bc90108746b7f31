// nolint: funlen
package postgres_test

import (
	"context"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type movieFixture struct {
	title     string
	duration  int
	released  time.Time
	languages []string
	genres    []string
}

func TestMovieRepository_FindMovies(t *testing.T) {
	db := CreateSQLiteConnection(t)
	repo := postgres.NewMovieRepository(db)
	mustCreateMovie(t, db, movieFixture{
		title: "Parasite", duration: 132, released: date(2019, 5, 30),
		languages: []string{"Korean"}, genres: []string{"Thriller", "Drama"},
	})
	mustCreateMovie(t, db, movieFixture{
		title: "Amelie", duration: 122, released: date(2001, 4, 25),
		languages: []string{"French", "English"}, genres: []string{"Comedy"},
	})
	mustCreateMovie(t, db, movieFixture{
		title: "Brazil", duration: 142, released: date(1985, 2, 20),
		languages: []string{"English"},
	})

	t.Run("returns all movies with relations", func(t *testing.T) {
		movies, err := repo.FindMovies(context.Background(), movie.Filter{Sort: movie.SortByID})

		require.NoError(t, err)
		require.Len(t, movies, 3)
		assert.Equal(t, "Parasite", movies[0].Title)
		assert.Equal(t, 132, movies[0].Duration)
		assert.Equal(t, []string{"Drama", "Thriller"}, genreNames(movies[0].Genres))
		assert.Equal(t, []string{"English", "French"}, languageNames(movies[1].Languages))
		assert.NotNil(t, movies[2].Genres)
		assert.Empty(t, movies[2].Genres)
	})

	t.Run("sorts by title", func(t *testing.T) {
		movies, err := repo.FindMovies(context.Background(), movie.Filter{Sort: movie.SortByTitle})

		require.NoError(t, err)
		assert.Equal(t, []string{"Amelie", "Brazil", "Parasite"}, titles(movies))
	})

	t.Run("sorts by release date", func(t *testing.T) {
		movies, err := repo.FindMovies(context.Background(), movie.Filter{Sort: movie.SortByReleaseDate})

		require.NoError(t, err)
		assert.Equal(t, []string{"Brazil", "Amelie", "Parasite"}, titles(movies))
	})

	t.Run("filters by language ignoring case", func(t *testing.T) {
		movies, err := repo.FindMovies(context.Background(), movie.Filter{Sort: movie.SortByTitle, Language: "english"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Amelie", "Brazil"}, titles(movies))
		for _, m := range movies {
			assert.Contains(t, languageNames(m.Languages), "English")
		}
	})

	t.Run("keeps every language of a filtered movie", func(t *testing.T) {
		movies, err := repo.FindMovies(context.Background(), movie.Filter{Language: "FRENCH"})

		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, []string{"English", "French"}, languageNames(movies[0].Languages))
	})

	t.Run("returns empty list for unknown language", func(t *testing.T) {
		movies, err := repo.FindMovies(context.Background(), movie.Filter{Language: "klingon"})

		require.NoError(t, err)
		assert.Empty(t, movies)
	})
}

func TestMovieRepository_GetMovie(t *testing.T) {
	db := CreateSQLiteConnection(t)
	repo := postgres.NewMovieRepository(db)
	created := mustCreateMovie(t, db, movieFixture{title: "Heat", duration: 170, released: date(1995, 12, 15)})

	t.Run("returns existing movie", func(t *testing.T) {
		m, err := repo.GetMovie(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "Heat", m.Title)
		assert.True(t, date(1995, 12, 15).Equal(m.ReleaseDate))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.GetMovie(context.Background(), 999)

		assert.Equal(t, movie.ErrMovieNotFound, err)
	})
}

func TestMovieRepository_UpdateMovie(t *testing.T) {
	db := CreateSQLiteConnection(t)
	repo := postgres.NewMovieRepository(db)
	created := mustCreateMovie(t, db, movieFixture{title: "Heat", duration: 170, released: date(1995, 12, 15)})

	t.Run("updates only the given fields", func(t *testing.T) {
		duration := 171
		err := repo.UpdateMovie(context.Background(), created.ID, movie.Patch{Duration: &duration})

		require.NoError(t, err)
		m, err := repo.GetMovie(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Heat", m.Title)
		assert.Equal(t, 171, m.Duration)
	})

	t.Run("updates title and release date", func(t *testing.T) {
		title := "Heat (Director's Cut)"
		released := date(1996, 1, 5)
		err := repo.UpdateMovie(context.Background(), created.ID, movie.Patch{Title: &title, ReleaseDate: &released})

		require.NoError(t, err)
		m, err := repo.GetMovie(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, title, m.Title)
		assert.True(t, released.Equal(m.ReleaseDate))
	})

	t.Run("returns not found and creates nothing for unknown id", func(t *testing.T) {
		title := "X"
		err := repo.UpdateMovie(context.Background(), 999, movie.Patch{Title: &title})

		assert.Equal(t, movie.ErrMovieNotFound, err)
		var count int64
		require.NoError(t, db.Model(&postgres.MovieModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func mustCreateMovie(t *testing.T, db *gorm.DB, f movieFixture) movie.Movie {
	t.Helper()

	released := f.released
	if released.IsZero() {
		released = date(2000, 1, 1)
	}
	model := postgres.MovieModel{Title: f.title, Duration: f.duration, ReleaseDate: released}
	for _, name := range f.languages {
		l := postgres.LanguageModel{}
		require.NoError(t, db.Where(postgres.LanguageModel{Name: name}).FirstOrCreate(&l).Error)
		model.Languages = append(model.Languages, l)
	}
	for _, name := range f.genres {
		g := postgres.GenreModel{}
		require.NoError(t, db.Where(postgres.GenreModel{Name: name}).FirstOrCreate(&g).Error)
		model.Genres = append(model.Genres, g)
	}
	require.NoError(t, db.Omit("Languages.*", "Genres.*").Create(&model).Error)

	m := movie.Movie{ID: model.ID, Title: model.Title, Duration: model.Duration, ReleaseDate: model.ReleaseDate}
	for _, l := range model.Languages {
		m.Languages = append(m.Languages, movie.Language{ID: l.ID, Name: l.Name})
	}
	for _, g := range model.Genres {
		m.Genres = append(m.Genres, genre.Genre{ID: g.ID, Name: g.Name})
	}
	return m
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func titles(movies []movie.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func languageNames(languages []movie.Language) []string {
	out := make([]string, len(languages))
	for i, l := range languages {
		out[i] = l.Name
	}
	return out
}
