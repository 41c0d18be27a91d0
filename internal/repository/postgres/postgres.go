package postgres

import (
	"context"
	"database/sql"

	"workhours/internal/errors"
	"workhours/internal/repository"
	"workhours/internal/repository/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// New connects to the PostgreSQL database at dsn and applies pending migrations.
func New(ctx context.Context, dsn string, opts repository.Options) (*repository.SQLRepository, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	pingCtx := ctx
	if opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.QueryTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ping database", errors.FromContext("ping database", err))
	}

	if err := migrations.RunMigrations(ctx, db, repository.DialectPostgres); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return repository.NewSQLRepository(db, repository.DialectPostgres, opts), nil
}
