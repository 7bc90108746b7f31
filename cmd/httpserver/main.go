package main

import (
	"context"
	"errors"
	"fmt"
	"moviecatalog/genre"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"
	"moviecatalog/postgres"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// @title Movie Catalog API
// @version 1.0
// @description Movies with their languages and genres, plus genre management.
// @BasePath /
func main() {
	os.Exit(run())
}

// run wires the server and blocks until it stops. Deferred cleanup runs
// before the exit code reaches main.
func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Errorw("cannot init sentry", "error", err)
		return 1
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgres.NewConnection(postgres.Options{
		Driver:   cfg.DB.Driver,
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		log.Errorw("cannot open db connection", "driver", cfg.DB.Driver, "error", err)
		return 1
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Errorw("cannot close db connection", "error", err)
		}
	}()

	if cfg.DB.Driver == postgres.DriverSQLite {
		if err := postgres.AutoMigrate(db); err != nil {
			log.Errorw("cannot migrate sqlite schema", "error", err)
			return 1
		}
	}

	server, err := httpserver.New(cfg,
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(postgres.NewMovieRepository(db))),
		httpserver.WithGenreService(genre.NewUsecase(postgres.NewGenreRepository(db))),
	)
	if err != nil {
		log.Errorw("cannot build server", "error", err)
		return 1
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	if err := serve(server, quit, time.Duration(cfg.ShutdownTimeout)*time.Second, log); err != nil {
		log.Errorw("server stopped with error", "error", err)
		sentry.Fatal(err)
		return 1
	}
	return 0
}

// serve starts the server and waits for it to fail or for a signal on quit.
// On a signal it shuts down gracefully within timeout.
func serve(server *httpserver.Server, quit <-chan os.Signal, timeout time.Duration, log *zap.SugaredLogger) error {
	started := make(chan error, 1)
	go func() {
		started <- server.Start()
	}()
	log.Infow("server started", "addr", server.Addr)

	select {
	case err := <-started:
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err := <-started; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Infow("server stopped", "addr", server.Addr)
	return nil
}
