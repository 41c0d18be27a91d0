package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"workhours/internal/errors"
)

// DayRecord is the stored form of one day's punches.
type DayRecord struct {
	Day        string // ISO date, primary key
	Year       int
	Month      int // zero-based
	DocumentID string
	Punches    [6]string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PeriodBalance is the persisted ending balance of a reporting month.
type PeriodBalance struct {
	Year      int
	Month     int // zero-based
	Minutes   int
	UpdatedAt time.Time
}

// Repository defines the storage contract shared by the SQLite and PostgreSQL backends.
type Repository interface {
	// Day records
	UpsertDayRecord(ctx context.Context, rec *DayRecord) error
	GetDayRecord(ctx context.Context, day string) (*DayRecord, error)
	ListDayRecords(ctx context.Context, year, month int) ([]*DayRecord, error)
	DeleteDayRecord(ctx context.Context, day string) error

	// Period balances
	GetPeriodBalance(ctx context.Context, year, month int) (*PeriodBalance, error)
	UpsertPeriodBalance(ctx context.Context, bal *PeriodBalance) error
	ListPeriodBalances(ctx context.Context) ([]*PeriodBalance, error)

	// Utility
	Close() error
}

// Options tune a SQL-backed repository.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// Dialect selects the bind variable style of the underlying driver.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// Rebind rewrites '?' placeholders into the dialect's bind variables.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLRepository implements Repository over database/sql.
type SQLRepository struct {
	db      *sql.DB
	dialect Dialect
	opts    Options
}

// NewSQLRepository wraps an open, migrated database handle.
func NewSQLRepository(db *sql.DB, dialect Dialect, opts Options) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect, opts: opts}
}

// DB exposes the underlying handle for tests and migrations.
func (r *SQLRepository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func (r *SQLRepository) readCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.QueryTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.QueryTimeout)
	}
	return context.WithCancel(ctx)
}

func (r *SQLRepository) writeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.WriteTimeout > 0 {
		return context.WithTimeout(ctx, r.opts.WriteTimeout)
	}
	return context.WithCancel(ctx)
}

const dayRecordColumns = `day, year, month, document_id, punch1, punch2, punch3, punch4, punch5, punch6, created_at, updated_at`

// UpsertDayRecord inserts a day or replaces its punches. The stored document id is kept.
func (r *SQLRepository) UpsertDayRecord(ctx context.Context, rec *DayRecord) error {
	if rec == nil || rec.Day == "" {
		return errors.NewInvalidInputError("day", "", "day is required")
	}
	ctx, cancel := r.writeCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	query := r.dialect.Rebind(`
	INSERT INTO day_records (` + dayRecordColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (day) DO UPDATE SET
		punch1 = excluded.punch1, punch2 = excluded.punch2, punch3 = excluded.punch3,
		punch4 = excluded.punch4, punch5 = excluded.punch5, punch6 = excluded.punch6,
		updated_at = excluded.updated_at`)

	_, err := r.db.ExecContext(ctx, query,
		rec.Day, rec.Year, rec.Month, rec.DocumentID,
		rec.Punches[0], rec.Punches[1], rec.Punches[2], rec.Punches[3], rec.Punches[4], rec.Punches[5],
		FormatTimeForDB(rec.CreatedAt), FormatTimeForDB(rec.UpdatedAt))
	if err != nil {
		return HandleDatabaseError("upsert day record", errors.FromContext("upsert day record", err))
	}

	var documentID, createdAt string
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(`SELECT document_id, created_at FROM day_records WHERE day = ?`), rec.Day)
	if err := row.Scan(&documentID, &createdAt); err != nil {
		return HandleDatabaseError("reload day record", err)
	}
	rec.DocumentID = documentID
	if t, err := ParseTimeFromDB(createdAt); err == nil {
		rec.CreatedAt = t
	}
	return nil
}

// GetDayRecord retrieves a day by its ISO identifier
func (r *SQLRepository) GetDayRecord(ctx context.Context, day string) (*DayRecord, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	query := r.dialect.Rebind(`SELECT ` + dayRecordColumns + ` FROM day_records WHERE day = ?`)
	return QuerySingle(ctx, r.db, query, ScanDayRecord, "day record", day, day)
}

// ListDayRecords returns the recorded days of a period in calendar order
func (r *SQLRepository) ListDayRecords(ctx context.Context, year, month int) ([]*DayRecord, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	query := r.dialect.Rebind(`
	SELECT ` + dayRecordColumns + `
	FROM day_records
	WHERE year = ? AND month = ?
	ORDER BY day ASC`)
	return QueryMultiple(ctx, r.db, query, ScanDayRecords, "day records", year, month)
}

// DeleteDayRecord deletes a day by its ISO identifier
func (r *SQLRepository) DeleteDayRecord(ctx context.Context, day string) error {
	ctx, cancel := r.writeCtx(ctx)
	defer cancel()

	query := r.dialect.Rebind(`DELETE FROM day_records WHERE day = ?`)
	return ExecuteWithRowsAffected(ctx, r.db, query, "day record", day, day)
}

// GetPeriodBalance returns the stored ending balance of a period, or a not found error
func (r *SQLRepository) GetPeriodBalance(ctx context.Context, year, month int) (*PeriodBalance, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	query := r.dialect.Rebind(`
	SELECT year, month, minutes, updated_at
	FROM period_balances
	WHERE year = ? AND month = ?`)
	return QuerySingle(ctx, r.db, query, ScanPeriodBalance, "period balance", strconv.Itoa(year)+"/"+strconv.Itoa(month), year, month)
}

// UpsertPeriodBalance writes the ending balance of a period in a single statement
func (r *SQLRepository) UpsertPeriodBalance(ctx context.Context, bal *PeriodBalance) error {
	if bal == nil {
		return errors.NewInvalidInputError("period balance", nil, "balance is required")
	}
	ctx, cancel := r.writeCtx(ctx)
	defer cancel()

	bal.UpdatedAt = time.Now().UTC()
	query := r.dialect.Rebind(`
	INSERT INTO period_balances (year, month, minutes, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (year, month) DO UPDATE SET
		minutes = excluded.minutes,
		updated_at = excluded.updated_at`)

	if _, err := r.db.ExecContext(ctx, query, bal.Year, bal.Month, bal.Minutes, FormatTimeForDB(bal.UpdatedAt)); err != nil {
		return HandleDatabaseError("upsert period balance", errors.FromContext("upsert period balance", err))
	}
	return nil
}

// ListPeriodBalances returns every stored balance in calendar order
func (r *SQLRepository) ListPeriodBalances(ctx context.Context) ([]*PeriodBalance, error) {
	ctx, cancel := r.readCtx(ctx)
	defer cancel()

	query := `SELECT year, month, minutes, updated_at FROM period_balances ORDER BY year ASC, month ASC`
	return QueryMultiple(ctx, r.db, query, ScanPeriodBalances, "period balances")
}
