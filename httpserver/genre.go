package httpserver

import (
	"moviecatalog/errs"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	msgSearchGenresFailed = "There was a problem trying to search genres"
	msgCreateGenreFailed  = "Failed to create genre"
	msgRemoveGenreFailed  = "Failed to remove genre"
	msgGenreRemoved       = "Genre removed successfully"
)

func (s *Server) RegisterGenreRoutes(g *echo.Group) {
	g.GET("", s.handleListGenres)
	g.POST("", s.handleCreateGenre)
	g.PUT("/:id", s.handleUpdateGenre)
	g.DELETE("/:id", s.handleDeleteGenre)
}

// handleListGenres godoc
// @Summary List Genres
// @Description Get all genres ordered by name
// @Tags genres
// @Produce json
// @Success 200 {array} genre.Genre
// @Failure 500 {object} MessageResponse
// @Router /genres [get]
func (s *Server) handleListGenres(c echo.Context) error {
	if s.GenreService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "genre service not configured")
	}

	genres, err := s.GenreService.ListGenres(c.Request().Context())
	if err != nil {
		return failure(err, msgSearchGenresFailed)
	}

	return c.JSON(http.StatusOK, genres)
}

// handleCreateGenre godoc
// @Summary Create Genre
// @Description Add a genre; names are unique ignoring case
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} genre.Genre
// @Failure 400 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /genres [post]
func (s *Server) handleCreateGenre(c echo.Context) error {
	if s.GenreService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "genre service not configured")
	}

	req, err := bindGenre(c)
	if err != nil {
		return err
	}

	created, err := s.GenreService.CreateGenre(c.Request().Context(), req.Name)
	if err != nil {
		return failure(err, msgCreateGenreFailed)
	}

	return c.JSON(http.StatusCreated, created)
}

// handleUpdateGenre godoc
// @Summary Update Genre
// @Description Rename a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} genre.Genre
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /genres/{id} [put]
func (s *Server) handleUpdateGenre(c echo.Context) error {
	if s.GenreService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "genre service not configured")
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}
	req, err := bindGenre(c)
	if err != nil {
		return err
	}

	updated, err := s.GenreService.UpdateGenre(c.Request().Context(), id, req.Name)
	if err != nil {
		return failure(err, msgUpdateFailed)
	}

	return c.JSON(http.StatusOK, updated)
}

// handleDeleteGenre godoc
// @Summary Delete Genre
// @Description Remove a genre and its movie associations
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /genres/{id} [delete]
func (s *Server) handleDeleteGenre(c echo.Context) error {
	if s.GenreService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "genre service not configured")
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.GenreService.DeleteGenre(c.Request().Context(), id); err != nil {
		return failure(err, msgRemoveGenreFailed)
	}

	return writeMessage(c, http.StatusOK, msgGenreRemoved)
}
