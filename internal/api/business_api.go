package api

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"time"

	"workhours/internal/domain"
	"workhours/internal/errors"
	"workhours/internal/hours"
	"workhours/internal/services"
	"workhours/internal/validation"
)

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services        *services.ServiceContainer
	punchValidator  *validation.PunchValidator
	periodValidator *validation.PeriodValidator
	now             func() time.Time
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(container *services.ServiceContainer, now func() time.Time) BusinessAPI {
	if now == nil {
		now = time.Now
	}
	return &businessAPIImpl{
		services:        container,
		punchValidator:  validation.NewPunchValidator(),
		periodValidator: validation.NewPeriodValidator(),
		now:             now,
	}
}

// ========== Day Workflows ==========

func (b *businessAPIImpl) RecordDay(ctx context.Context, dayArg string, tokens []string) (*services.DayView, error) {
	// 1. Resolve the day
	day, err := b.resolveDay(dayArg)
	if err != nil {
		return nil, err
	}

	// 2. Store; the tracker validates the punches
	return b.services.TrackerService.RecordDay(ctx, day, tokens)
}

func (b *businessAPIImpl) GetDay(ctx context.Context, dayArg string) (*services.DayView, error) {
	day, err := b.resolveDay(dayArg)
	if err != nil {
		return nil, err
	}
	return b.services.TrackerService.GetDay(ctx, day)
}

func (b *businessAPIImpl) DeleteDay(ctx context.Context, dayArg string) error {
	if strings.TrimSpace(dayArg) == "" {
		return errors.NewValidationError("a day is required", nil)
	}
	day, err := b.resolveDay(dayArg)
	if err != nil {
		return err
	}
	return b.services.TrackerService.DeleteDay(ctx, day)
}

func (b *businessAPIImpl) ListDays(ctx context.Context, periodArg string) ([]*services.DayView, error) {
	period, err := b.resolvePeriod(periodArg)
	if err != nil {
		return nil, err
	}

	days, err := b.services.TrackerService.ListDays(ctx, period)
	if err != nil {
		return nil, err
	}

	views := make([]*services.DayView, 0, len(days))
	for _, d := range days {
		views = append(views, b.services.TrackerService.Summarize(d))
	}
	return views, nil
}

func (b *businessAPIImpl) CalculateWorkedHours(ctx context.Context, tokens []string) (*WorkedHours, error) {
	if len(tokens) > domain.PunchSlots {
		return nil, errors.NewInvalidInputError("punches", len(tokens), "at most six punches per day")
	}

	// 1. Parse; unreadable tokens are surfaced, never read as zero
	seq, err := hours.ParsePunches(tokens)
	if err != nil {
		var pe *hours.ParseError
		if stderrors.As(err, &pe) {
			return nil, errors.NewParseError(pe.Token, err)
		}
		return nil, errors.NewParseError("", err)
	}
	if err := b.punchValidator.ValidateClockTokens(tokens); err != nil {
		return nil, asAppError(err)
	}

	// 2. Summarise
	summary := hours.Summarize(seq, b.now())
	result := &WorkedHours{
		Worked: summary.Worked.String(),
		Break:  summary.Break.String(),
		Left:   summary.Left.String(),
		Extra:  summary.Extra.String(),
	}
	for _, w := range summary.Warnings {
		result.Warnings = append(result.Warnings, w.String())
	}
	return result, nil
}

// ========== Period Workflows ==========

func (b *businessAPIImpl) MonthlyReport(ctx context.Context, periodArg string, persist bool) (*domain.PeriodReport, error) {
	period, err := b.resolvePeriod(periodArg)
	if err != nil {
		return nil, err
	}
	return b.services.ReportingService.MonthlyReport(ctx, period, persist)
}

func (b *businessAPIImpl) Balance(ctx context.Context, periodArg string) (*services.BalanceView, error) {
	period, err := b.resolvePeriod(periodArg)
	if err != nil {
		return nil, err
	}
	return b.services.ReportingService.Balance(ctx, period)
}

func (b *businessAPIImpl) ListBalances(ctx context.Context) ([]domain.PeriodBalance, error) {
	return b.services.ReportingService.ListBalances(ctx)
}

func (b *businessAPIImpl) RollForwardRange(ctx context.Context, fromArg, toArg string) ([]*domain.PeriodReport, error) {
	// 1. Both ends are required
	if strings.TrimSpace(fromArg) == "" || strings.TrimSpace(toArg) == "" {
		return nil, errors.NewValidationError("both a start and an end period are required", nil)
	}
	from, err := b.resolvePeriod(fromArg)
	if err != nil {
		return nil, err
	}
	to, err := b.resolvePeriod(toArg)
	if err != nil {
		return nil, err
	}

	// 2. Recompute
	return b.services.ReportingService.RollForwardRange(ctx, from, to)
}

// ========== Exchange ==========

func (b *businessAPIImpl) ExportReport(ctx context.Context, periodArg string, format string, w io.Writer) (*ExportResult, error) {
	// 1. Validate the format before doing any work
	f, err := services.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	// 2. Compute the report without touching the stored balance
	report, err := b.MonthlyReport(ctx, periodArg, false)
	if err != nil {
		return nil, err
	}

	// 3. Render
	if err := b.services.ExchangeService.Export(ctx, report, f, w); err != nil {
		return nil, err
	}
	return &ExportResult{Report: report, Format: f, Rows: len(report.Rows)}, nil
}

func (b *businessAPIImpl) ImportReport(ctx context.Context, r io.Reader) (*services.ImportResult, error) {
	if r == nil {
		return nil, errors.NewInvalidInputError("file", nil, "no input")
	}
	return b.services.ExchangeService.Import(ctx, r)
}

// ========== Argument Resolution ==========

func (b *businessAPIImpl) resolveDay(dayArg string) (time.Time, error) {
	day, err := b.punchValidator.ResolveDay(dayArg, b.now())
	if err != nil {
		return time.Time{}, asAppError(err)
	}
	return day, nil
}

func (b *businessAPIImpl) resolvePeriod(periodArg string) (domain.PeriodKey, error) {
	if strings.TrimSpace(periodArg) == "" {
		return domain.PeriodOf(b.now()), nil
	}
	period, err := domain.ParsePeriodKey(periodArg)
	if err != nil {
		return domain.PeriodKey{}, err
	}
	if err := b.periodValidator.ValidatePeriod(period); err != nil {
		return domain.PeriodKey{}, asAppError(err)
	}
	return period, nil
}

func asAppError(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.ToAppError()
	}
	return err
}
