package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

// Migrate applies the SQL migrations found in dir over a dedicated lib/pq
// connection. max limits how many migrations run; 0 means all pending ones.
// It returns the number of migrations applied.
func Migrate(opts Options, dir string, direction migrate.MigrationDirection, max int) (int, error) {
	db, err := sql.Open("postgres", DSN(opts))
	if err != nil {
		return 0, err
	}
	defer db.Close()

	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}
	return migrate.ExecMax(db, "postgres", migrations, direction, max)
}
