// nolint: funlen
package movie_test

import (
	"context"
	"errors"
	"moviecatalog/movie"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) FindMovies(ctx context.Context, f movie.Filter) ([]movie.Movie, error) {
	args := m.Called(ctx, f)
	movies, _ := args.Get(0).([]movie.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieRepository) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieRepository) UpdateMovie(ctx context.Context, id int64, p movie.Patch) error {
	args := m.Called(ctx, id, p)
	return args.Error(0)
}

func TestListMovies(t *testing.T) {
	t.Run("should compute total and average duration", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		f := movie.Filter{Sort: movie.SortByTitle, Language: "english"}
		movies := []movie.Movie{
			{ID: 1, Title: "Alien", Duration: 117},
			{ID: 2, Title: "Heat", Duration: 170},
			{ID: 3, Title: "Up", Duration: 96},
		}
		r.On("FindMovies", mock.Anything, f).Return(movies, nil).Once()

		catalog, err := uc.ListMovies(context.Background(), f)

		require.NoError(t, err)
		assert.Equal(t, 3, catalog.TotalMovies)
		assert.Len(t, catalog.Movies, catalog.TotalMovies)
		assert.InDelta(t, float64(117+170+96)/3, catalog.AverageDuration, 1e-9)
		r.AssertExpectations(t)
	})

	t.Run("should return zero average for empty result", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		f := movie.Filter{Language: "klingon"}
		r.On("FindMovies", mock.Anything, f).Return(nil, nil).Once()

		catalog, err := uc.ListMovies(context.Background(), f)

		require.NoError(t, err)
		assert.Equal(t, 0, catalog.TotalMovies)
		assert.Equal(t, float64(0), catalog.AverageDuration)
		assert.NotNil(t, catalog.Movies)
		assert.Empty(t, catalog.Movies)
	})

	t.Run("should fail without partial results", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		storeErr := errors.New("connection reset")
		r.On("FindMovies", mock.Anything, movie.Filter{}).Return(nil, storeErr).Once()

		catalog, err := uc.ListMovies(context.Background(), movie.Filter{})

		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, movie.Catalog{}, catalog)
	})
}

func TestUpdateMovie(t *testing.T) {
	title := "New Title"

	t.Run("should update existing movie", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		p := movie.Patch{Title: &title}
		r.On("GetMovie", mock.Anything, int64(7)).Return(movie.Movie{ID: 7}, nil).Once()
		r.On("UpdateMovie", mock.Anything, int64(7), p).Return(nil).Once()

		err := uc.UpdateMovie(context.Background(), 7, p)

		assert.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("should return not found and skip update", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		p := movie.Patch{Title: &title}
		r.On("GetMovie", mock.Anything, int64(999)).Return(movie.Movie{}, movie.ErrMovieNotFound).Once()

		err := uc.UpdateMovie(context.Background(), 999, p)

		assert.Equal(t, movie.ErrMovieNotFound, err)
		r.AssertNotCalled(t, "UpdateMovie")
	})

	t.Run("should reject invalid patches before touching the store", func(t *testing.T) {
		r := new(MockMovieRepository)
		uc := movie.NewUsecase(r)
		blank := "  "
		negative := -5

		assert.Equal(t, movie.ErrEmptyPatch, uc.UpdateMovie(context.Background(), 1, movie.Patch{}))
		assert.Equal(t, movie.ErrInvalidTitle, uc.UpdateMovie(context.Background(), 1, movie.Patch{Title: &blank}))
		assert.Equal(t, movie.ErrInvalidDuration, uc.UpdateMovie(context.Background(), 1, movie.Patch{Duration: &negative}))
		assert.Equal(t, movie.ErrInvalidID, uc.UpdateMovie(context.Background(), 0, movie.Patch{Title: &title}))
		r.AssertNotCalled(t, "GetMovie")
	})
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw      string
		expected movie.SortField
	}{
		{raw: "title", expected: movie.SortByTitle},
		{raw: "release_date", expected: movie.SortByReleaseDate},
		{raw: "id", expected: movie.SortByID},
		{raw: "", expected: movie.SortNone},
		{raw: "duration", expected: movie.SortNone},
		{raw: "TITLE", expected: movie.SortNone},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, movie.ParseSort(tt.raw))
		})
	}
}

func TestPatchValidate(t *testing.T) {
	date := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)
	zero := 0

	assert.NoError(t, movie.Patch{ReleaseDate: &date}.Validate())
	assert.NoError(t, movie.Patch{Duration: &zero}.Validate())
}
