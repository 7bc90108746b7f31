package httpserver_test

import (
	"moviecatalog/httpserver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("should apply options", func(t *testing.T) {
		l := zap.NewNop().Sugar()
		movies := new(MockMovieService)
		genres := new(MockGenreService)

		server, err := httpserver.New(testConfig(),
			httpserver.WithLogger(l),
			httpserver.WithMovieService(movies),
			httpserver.WithGenreService(genres),
		)

		require.NoError(t, err)
		assert.Same(t, l, server.Logger)
		assert.Same(t, movies, server.MovieService)
		assert.Same(t, genres, server.GenreService)
	})

	t.Run("should fail on nil logger", func(t *testing.T) {
		server, err := httpserver.New(testConfig(), httpserver.WithLogger(nil))

		assert.EqualError(t, err, "logger is nil")
		assert.Nil(t, server)
	})
}
