package services

import (
	"context"
	"strings"
	"time"

	"workhours/internal/domain"
	"workhours/internal/errors"
	"workhours/internal/hours"
	"workhours/internal/logging"
	"workhours/internal/observability/metrics"
	"workhours/internal/repository"
	"workhours/internal/validation"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo            repository.Repository
	dayMapper       *domain.DayRecordMapper
	balanceMapper   *domain.PeriodBalanceMapper
	periodValidator *validation.PeriodValidator
	metrics         *metrics.Metrics
	locks           *periodLocks
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo repository.Repository, m *metrics.Metrics) ReportingService {
	return &reportingServiceImpl{
		repo:            repo,
		dayMapper:       domain.NewDayRecordMapper(),
		balanceMapper:   domain.NewPeriodBalanceMapper(),
		periodValidator: validation.NewPeriodValidator(),
		metrics:         m,
		locks:           newPeriodLocks(),
	}
}

// MonthlyReport rolls period forward from the prior period's ending balance.
// With persist set the ending balance is stored; the read, fold and write run under the period's lock.
func (r *reportingServiceImpl) MonthlyReport(ctx context.Context, period domain.PeriodKey, persist bool) (*domain.PeriodReport, error) {
	if err := r.validatePeriod(period); err != nil {
		return nil, err
	}

	unlock := r.locks.lock(period)
	defer unlock()

	prior, err := r.PriorBalance(ctx, period)
	if err != nil {
		return nil, err
	}

	stored, err := r.repo.ListDayRecords(ctx, period.Year, period.Month)
	if err != nil {
		return nil, err
	}
	days, err := r.dayMapper.FromRepositorySlice(stored)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "stored day record is unreadable").
			WithContext("period", period.ISO())
	}

	started := time.Now()
	report := hours.RollForward(period, prior, days)
	r.metrics.PeriodRolled(period.ISO(), len(report.Rows), report.EndingBalance, time.Since(started))

	for _, row := range report.Rows {
		if !row.Suspect {
			continue
		}
		// Counted once per day, under the first thing that went wrong
		r.metrics.SuspectDay(warningReason(row.Warnings[0]))
		for _, w := range row.Warnings {
			logging.Warnf("%s: %s", row.Day, w)
		}
	}

	if persist {
		bal := r.balanceMapper.ToRepository(domain.PeriodBalance{Period: period, Minutes: report.EndingBalance})
		if err := r.repo.UpsertPeriodBalance(ctx, &bal); err != nil {
			return nil, err
		}
		logging.Debugf("period %s closed at %s", period.ISO(), hours.FormatMinutes(report.EndingBalance))
	}

	return &report, nil
}

// PriorBalance returns the ending balance stored for the period before period, or 0
func (r *reportingServiceImpl) PriorBalance(ctx context.Context, period domain.PeriodKey) (int, error) {
	return r.storedBalance(ctx, period.Previous())
}

// Balance returns the balances carried into and out of period
func (r *reportingServiceImpl) Balance(ctx context.Context, period domain.PeriodKey) (*BalanceView, error) {
	if err := r.validatePeriod(period); err != nil {
		return nil, err
	}

	prior, err := r.PriorBalance(ctx, period)
	if err != nil {
		return nil, err
	}

	view := &BalanceView{
		Period:    period,
		Prior:     prior,
		PriorText: hours.FormatMinutes(prior),
	}

	stored, err := r.repo.GetPeriodBalance(ctx, period.Year, period.Month)
	switch {
	case err == nil:
		view.Ending = stored.Minutes
		view.HasEnding = true
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		view.Ending = prior
	default:
		return nil, err
	}
	view.EndingText = hours.FormatMinutes(view.Ending)
	return view, nil
}

// ListBalances returns every stored period balance in calendar order
func (r *reportingServiceImpl) ListBalances(ctx context.Context) ([]domain.PeriodBalance, error) {
	stored, err := r.repo.ListPeriodBalances(ctx)
	if err != nil {
		return nil, err
	}
	return r.balanceMapper.FromRepositorySlice(stored), nil
}

// RollForwardRange recomputes and stores every period from..to in calendar order
func (r *reportingServiceImpl) RollForwardRange(ctx context.Context, from, to domain.PeriodKey) ([]*domain.PeriodReport, error) {
	if err := r.periodValidator.ValidatePeriodRange(from, to); err != nil {
		return nil, toAppError(err)
	}

	var reports []*domain.PeriodReport
	for p := from; !to.Before(p); p = p.Next() {
		if err := ctx.Err(); err != nil {
			return reports, errors.FromContext("recompute periods", err)
		}
		report, err := r.MonthlyReport(ctx, p, true)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *reportingServiceImpl) storedBalance(ctx context.Context, period domain.PeriodKey) (int, error) {
	bal, err := r.repo.GetPeriodBalance(ctx, period.Year, period.Month)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return bal.Minutes, nil
}

func (r *reportingServiceImpl) validatePeriod(period domain.PeriodKey) error {
	return toAppError(r.periodValidator.ValidatePeriod(period))
}

func toAppError(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.ToAppError()
	}
	return err
}

// warningReason extracts the reason label from a rendered warning
func warningReason(w string) string {
	for _, reason := range []string{hours.ReasonOutOfOrder, hours.ReasonIncompletePair, hours.ReasonUnreadable} {
		if strings.HasSuffix(w, reason) {
			return reason
		}
	}
	return "other"
}
