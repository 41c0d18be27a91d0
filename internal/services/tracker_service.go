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

// trackerServiceImpl implements the TrackerService interface
type trackerServiceImpl struct {
	repo      repository.Repository
	mapper    *domain.DayRecordMapper
	validator *validation.PunchValidator
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewTrackerService creates a new TrackerService instance
func NewTrackerService(repo repository.Repository, m *metrics.Metrics, now func() time.Time) TrackerService {
	if now == nil {
		now = time.Now
	}
	return &trackerServiceImpl{
		repo:      repo,
		mapper:    domain.NewDayRecordMapper(),
		validator: validation.NewPunchValidator(),
		metrics:   m,
		now:       now,
	}
}

// RecordDay validates and stores the punches of a day, replacing what was there
func (s *trackerServiceImpl) RecordDay(ctx context.Context, day time.Time, tokens []string) (*DayView, error) {
	if err := s.validator.ValidateDayRecord(day, tokens); err != nil {
		return nil, toAppError(err)
	}

	rec := domain.NewDayRecord(day, tokens)
	stored := s.mapper.ToRepository(rec)
	if err := s.repo.UpsertDayRecord(ctx, &stored); err != nil {
		return nil, err
	}
	rec.DocumentID = stored.DocumentID
	rec.UpdatedAt = stored.UpdatedAt

	s.metrics.DayRecorded()
	logging.Debugf("recorded %s (%s)", rec.ID(), strings.Join(rec.Tokens[:], " "))
	return s.Summarize(rec), nil
}

// GetDay returns the stored day with its summary
func (s *trackerServiceImpl) GetDay(ctx context.Context, day time.Time) (*DayView, error) {
	stored, err := s.repo.GetDayRecord(ctx, domain.FormatDayID(domain.DateOf(day)))
	if err != nil {
		return nil, err
	}
	rec, err := s.mapper.FromRepository(*stored)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "stored day record is unreadable")
	}
	return s.Summarize(rec), nil
}

// DeleteDay removes a stored day
func (s *trackerServiceImpl) DeleteDay(ctx context.Context, day time.Time) error {
	return s.repo.DeleteDayRecord(ctx, domain.FormatDayID(domain.DateOf(day)))
}

// ListDays returns the recorded days of a period in calendar order
func (s *trackerServiceImpl) ListDays(ctx context.Context, period domain.PeriodKey) ([]domain.DayRecord, error) {
	stored, err := s.repo.ListDayRecords(ctx, period.Year, period.Month)
	if err != nil {
		return nil, err
	}
	days, err := s.mapper.FromRepositorySlice(stored)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "stored day record is unreadable")
	}
	return days, nil
}

// Summarize computes the day view of a record as of now
func (s *trackerServiceImpl) Summarize(rec domain.DayRecord) *DayView {
	seq, err := hours.ParsePunches(rec.Tokens[:])
	summary := hours.Summarize(seq, s.now())

	view := &DayView{
		Day:        rec.ID(),
		DateText:   domain.DateText(rec.Day),
		Tokens:     rec.Tokens,
		Worked:     summary.Worked.String(),
		Break:      summary.Break.String(),
		Left:       summary.Left.String(),
		Completion: summary.Completion.String(),
		Extra:      summary.Extra.String(),
	}
	// Completion is a projection from now and only means something for today
	if !domain.DateOf(s.now()).Equal(domain.DateOf(rec.Day)) {
		view.Completion = ""
	}

	parseErrs := splitErrors(err)
	s.metrics.PunchParseErrors(len(parseErrs))
	for _, pe := range parseErrs {
		view.Warnings = append(view.Warnings, pe.Error())
	}
	for _, w := range summary.Warnings {
		view.Warnings = append(view.Warnings, w.String())
	}
	view.Suspect = len(view.Warnings) > 0
	return view
}

// splitErrors flattens a joined error into its parts
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
