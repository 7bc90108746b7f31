package httpserver

import (
	"errors"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"

	"go.uber.org/zap"
)

type Options func(s *Server) error

// New builds a server from cfg like Default and then applies options in order.
func New(cfg *config.Config, options ...Options) (*Server, error) {
	s := Default(cfg)
	for _, fn := range options {
		if err := fn(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithGenreService(svc genre.Service) Options {
	return func(s *Server) error {
		s.GenreService = svc
		return nil
	}
}
