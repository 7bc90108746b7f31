package httpserver

import (
	"moviecatalog/errs"
	"moviecatalog/movie"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	msgSearchMoviesFailed = "There was a problem trying to search movies"
	msgUpdateFailed       = "Failed to update data"
	msgMovieUpdated       = "Movie updated successfully"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.PUT("/:id", s.handleUpdateMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description List movies with languages and genres, plus total count and average duration
// @Tags movies
// @Produce json
// @Param sort query string false "Sort field" Enums(title, release_date, id)
// @Param language query string false "Language name, case-insensitive"
// @Success 200 {object} movie.Catalog
// @Failure 500 {object} MessageResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	filter := movie.Filter{
		Sort:     movie.ParseSort(c.QueryParam("sort")),
		Language: strings.TrimSpace(c.QueryParam("language")),
	}

	catalog, err := s.MovieService.ListMovies(c.Request().Context(), filter)
	if err != nil {
		return failure(err, msgSearchMoviesFailed)
	}

	return c.JSON(http.StatusOK, catalog)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Partially update a movie's title, duration or release date
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s.Logger.Infow("updating movie", "id", id, "payload", req, "request_id", s.requestID(c))

	if err := s.MovieService.UpdateMovie(c.Request().Context(), id, req.ToPatch()); err != nil {
		return failure(err, msgUpdateFailed)
	}

	return writeMessage(c, http.StatusOK, msgMovieUpdated)
}
