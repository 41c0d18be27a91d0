package services

import (
	"context"
	"io"
	"time"

	"workhours/internal/domain"
	"workhours/internal/observability/metrics"
	"workhours/internal/repository"
)

// DayView is a single day as shown to the user
type DayView struct {
	Day        string                    `json:"day"`
	DateText   string                    `json:"date_text"`
	Tokens     [domain.PunchSlots]string `json:"tokens"`
	Worked     string                    `json:"worked"`
	Break      string                    `json:"break"`
	Left       string                    `json:"left"`
	Completion string                    `json:"completion,omitempty"`
	Extra      string                    `json:"extra"`
	Suspect    bool                      `json:"suspect,omitempty"`
	Warnings   []string                  `json:"warnings,omitempty"`
}

// BalanceView describes the balance carried into and out of a period
type BalanceView struct {
	Period     domain.PeriodKey `json:"period"`
	Prior      int              `json:"prior_minutes"`
	PriorText  string           `json:"prior"`
	Ending     int              `json:"ending_minutes"`
	EndingText string           `json:"ending"`
	HasEnding  bool             `json:"has_ending"`
}

// ImportFailure records a row that could not be imported
type ImportFailure struct {
	Day   string `json:"day"`
	Error string `json:"error"`
}

// ImportResult summarises an import run
type ImportResult struct {
	Imported int                `json:"imported"`
	Skipped  int                `json:"skipped"`
	Failed   []ImportFailure    `json:"failed,omitempty"`
	Periods  []domain.PeriodKey `json:"periods,omitempty"`
}

// Format is an export file format
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// TrackerService handles recording and reading individual days
type TrackerService interface {
	RecordDay(ctx context.Context, day time.Time, tokens []string) (*DayView, error)
	GetDay(ctx context.Context, day time.Time) (*DayView, error)
	DeleteDay(ctx context.Context, day time.Time) error
	ListDays(ctx context.Context, period domain.PeriodKey) ([]domain.DayRecord, error)
	Summarize(rec domain.DayRecord) *DayView
}

// ReportingService handles the monthly balance roll-forward
type ReportingService interface {
	MonthlyReport(ctx context.Context, period domain.PeriodKey, persist bool) (*domain.PeriodReport, error)
	PriorBalance(ctx context.Context, period domain.PeriodKey) (int, error)
	Balance(ctx context.Context, period domain.PeriodKey) (*BalanceView, error)
	ListBalances(ctx context.Context) ([]domain.PeriodBalance, error)
	RollForwardRange(ctx context.Context, from, to domain.PeriodKey) ([]*domain.PeriodReport, error)
}

// ExchangeService handles report export and import
type ExchangeService interface {
	Export(ctx context.Context, report *domain.PeriodReport, format Format, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TrackerService   TrackerService
	ReportingService ReportingService
	ExchangeService  ExchangeService
}

// NewServiceContainer wires every service over one repository.
// m may be nil; now defaults to time.Now.
func NewServiceContainer(repo repository.Repository, m *metrics.Metrics, now func() time.Time) *ServiceContainer {
	tracker := NewTrackerService(repo, m, now)
	return &ServiceContainer{
		TrackerService:   tracker,
		ReportingService: NewReportingService(repo, m),
		ExchangeService:  NewExchangeService(tracker, m),
	}
}
