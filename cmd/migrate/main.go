package main

import (
	"flag"
	"fmt"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/postgres"
	"os"
	"strconv"

	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	var (
		dir  string
		down bool
	)
	flag.StringVar(&dir, "dir", "migrations", "Directory holding the SQL migrations")
	flag.BoolVar(&down, "down", false, "Roll back the latest migration instead of applying pending ones")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	opts := postgres.Options{
		Driver:   cfg.DB.Driver,
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	}

	// sqlite databases have no SQL migration history; the schema comes from
	// the gorm models.
	if opts.Driver == postgres.DriverSQLite {
		db, err := postgres.NewConnection(opts)
		if err != nil {
			log.Fatalw("cannot open sqlite db", "error", err)
		}
		defer func() { _ = postgres.Close(db) }()

		if err := postgres.AutoMigrate(db); err != nil {
			log.Fatalw("cannot auto-migrate sqlite schema", "error", err)
		}
		log.Infow("applied sqlite schema", "db", cfg.DB.Name)
		return
	}

	direction, max := migrate.Up, 0
	if down {
		direction, max = migrate.Down, 1
	}

	total, err := postgres.Migrate(opts, dir, direction, max)
	if err != nil {
		log.Fatalw("cannot execute migration", "error", err)
	}

	log.Infow("applied migrations", "total", total, "down", down)
}
