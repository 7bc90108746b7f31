package httpserver

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/errs"
	"moviecatalog/genre"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
	"net/http"
	"strings"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Logger *zap.SugaredLogger

	MovieService movie.Service

	GenreService genre.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		AllowOrigins: []string{"*"},
		Logger:       logger.NOOPLogger,
	}
	if cfg.Port == 0 {
		s.Addr = ":3000"
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterMovieRoutes(s.Router.Group("/movies"))
	s.RegisterGenreRoutes(s.Router.Group("/genres"))
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(s.requestLogger())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleError maps application errors to HTTP status codes and writes
// {"message": ...}. Causes of internal errors are logged and reported, never
// written to the client.
func (s *Server) handleError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := internalErrorMessage

	var he *echo.HTTPError
	var appErr *errs.Error
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else if errors.As(err, &appErr) {
		// Map application error codes to HTTP status codes
		switch appErr.Code {
		case errs.EINVALID:
			code = http.StatusBadRequest
		case errs.ENOTFOUND:
			code = http.StatusNotFound
		case errs.ECONFLICT:
			code = http.StatusConflict
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
		}
		if appErr.Message != "" {
			message = appErr.Message
		}
	}

	if code >= http.StatusInternalServerError {
		s.reportError(c, err)
	}

	// Don't write response if already committed
	if !c.Response().Committed {
		if err := writeMessage(c, code, message); err != nil {
			s.Logger.Errorw("cannot write error response", "error", err)
		}
	}
}

func (s *Server) reportError(c echo.Context, err error) {
	requestID := s.requestID(c)
	s.Logger.Errorw(err.Error(), "request_id", requestID, "cause", errors.Unwrap(err))
	sentry.WithContext(c).
		WithTags(map[string]string{"request_id": requestID}).
		WithContextValues(requestContext(c)).
		WithExtras(map[string]interface{}{"client_message": errs.ErrorMessage(err)}).
		Error(err)
}

// requestContext describes the failing request for error reports.
func requestContext(c echo.Context) map[string]sentrygo.Context {
	req := c.Request()
	return map[string]sentrygo.Context{
		"request": {
			"method": req.Method,
			"route":  c.Path(),
			"uri":    req.RequestURI,
		},
	}
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
