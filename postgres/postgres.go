package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// uniqueViolation is the SQLSTATE postgres reports for unique index violations.
// gorm translates it to ErrDuplicatedKey; the raw pgx error is matched too for
// statements run outside the translator.
const uniqueViolation = "23505"

type Options struct {
	// Driver selects the dialect. Empty means postgres. For sqlite, DBName is
	// the database file path.
	Driver   string
	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool
}

func NewConnection(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}

	switch opts.Driver {
	case "", DriverPostgres:
		return gorm.Open(postgres.Open(DSN(opts)), cfg)
	case DriverSQLite:
		return gorm.Open(sqlite.Open(opts.DBName), cfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", opts.Driver)
	}
}

// DSN builds the key/value connection string shared by the gorm pool and the
// lib/pq connection used for SQL migrations.
func DSN(opts Options) string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}

// AutoMigrate creates the schema from the gorm models. It is used for the
// sqlite driver; postgres databases are migrated with the SQL files under
// migrations/.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&LanguageModel{}, &GenreModel{}, &MovieModel{}); err != nil {
		return err
	}
	for _, stmt := range []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS genres_name_lower_key ON genres (LOWER(name))",
		"CREATE UNIQUE INDEX IF NOT EXISTS languages_name_lower_key ON languages (LOWER(name))",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}
