package sqlite

import (
	"context"
	"database/sql"

	"workhours/internal/errors"
	"workhours/internal/repository"
	"workhours/internal/repository/migrations"

	_ "modernc.org/sqlite"
)

// New creates a new SQLite repository instance
func New(dbPath string) (*repository.SQLRepository, error) {
	return NewWithOptions(dbPath, repository.Options{})
}

// NewWithOptions opens dbPath, applies pending migrations and wraps the handle.
func NewWithOptions(dbPath string, opts repository.Options) (*repository.SQLRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// SQLite allows one writer; a single connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("configure database", err)
	}

	if err := migrations.RunMigrations(context.Background(), db, repository.DialectSQLite); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return repository.NewSQLRepository(db, repository.DialectSQLite, opts), nil
}
