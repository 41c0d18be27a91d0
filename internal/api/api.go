package api

import (
	"context"
	"io"

	"workhours/internal/domain"
	"workhours/internal/services"
)

// WorkedHours is the result of a calculation that is not stored
type WorkedHours struct {
	Worked   string   `json:"worked"`
	Break    string   `json:"break"`
	Left     string   `json:"left"`
	Extra    string   `json:"extra"`
	Warnings []string `json:"warnings,omitempty"`
}

// ExportResult describes a written export
type ExportResult struct {
	Report *domain.PeriodReport `json:"-"`
	Format services.Format      `json:"format"`
	Rows   int                  `json:"rows"`
}

// BusinessAPI defines the operations the command line works with.
// Day arguments accept "today", "yesterday", "Nd" or YYYY-MM-DD; period arguments accept YYYY-MM
// and default to the current month when empty.
type BusinessAPI interface {
	// ========== Day Workflows ==========

	// RecordDay stores the punches of a day, replacing any earlier record
	RecordDay(ctx context.Context, dayArg string, tokens []string) (*services.DayView, error)

	// GetDay returns a stored day with its summary
	GetDay(ctx context.Context, dayArg string) (*services.DayView, error)

	// DeleteDay removes a stored day
	DeleteDay(ctx context.Context, dayArg string) error

	// ListDays returns the summaries of every recorded day of a period
	ListDays(ctx context.Context, periodArg string) ([]*services.DayView, error)

	// CalculateWorkedHours totals punches without storing them
	CalculateWorkedHours(ctx context.Context, tokens []string) (*WorkedHours, error)

	// ========== Period Workflows ==========

	// MonthlyReport rolls a period forward, storing its ending balance when persist is set
	MonthlyReport(ctx context.Context, periodArg string, persist bool) (*domain.PeriodReport, error)

	// Balance returns the balance carried into and out of a period
	Balance(ctx context.Context, periodArg string) (*services.BalanceView, error)

	// ListBalances returns every stored period balance
	ListBalances(ctx context.Context) ([]domain.PeriodBalance, error)

	// RollForwardRange recomputes and stores a chain of periods
	RollForwardRange(ctx context.Context, fromArg, toArg string) ([]*domain.PeriodReport, error)

	// ========== Exchange ==========

	// ExportReport renders a period report to w without storing its balance
	ExportReport(ctx context.Context, periodArg string, format string, w io.Writer) (*ExportResult, error)

	// ImportReport records the rows of a JSON report
	ImportReport(ctx context.Context, r io.Reader) (*services.ImportResult, error)
}
