package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"workhours/internal/domain"
	"workhours/internal/errors"
	"workhours/internal/logging"
	"workhours/internal/observability/metrics"
)

// MaxImportBytes caps the size of an imported report.
const MaxImportBytes = 10 << 20

// ParseFormat reads an export format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatXLSX, FormatPDF:
		return f, nil
	default:
		return "", errors.NewInvalidInputError("format", s, "expected json, xlsx or pdf")
	}
}

// exchangeServiceImpl implements the ExchangeService interface
type exchangeServiceImpl struct {
	tracker TrackerService
	metrics *metrics.Metrics
}

// NewExchangeService creates a new ExchangeService instance
func NewExchangeService(tracker TrackerService, m *metrics.Metrics) ExchangeService {
	return &exchangeServiceImpl{tracker: tracker, metrics: m}
}

// Export writes report to w in the requested format
func (s *exchangeServiceImpl) Export(ctx context.Context, report *domain.PeriodReport, format Format, w io.Writer) (err error) {
	defer func() { s.metrics.Exported(string(format), err) }()

	if report == nil {
		return errors.NewInvalidInputError("report", nil, "report is required")
	}
	if err := ctx.Err(); err != nil {
		return errors.FromContext("export report", err)
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = BuildReportJSON(report)
	case FormatXLSX:
		data, err = BuildReportXLSX(report)
	case FormatPDF:
		data, err = BuildReportPDF(report)
	default:
		return errors.NewInvalidInputError("format", string(format), "expected json, xlsx or pdf")
	}
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeInvalidInput, fmt.Sprintf("failed to render %s report", format)).
			WithContext("period", report.Period.ISO())
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}
	return nil
}

// Import records every row of a JSON report through the tracker.
// Rows that fail are reported in the result; only unreadable input fails the whole import.
func (s *exchangeServiceImpl) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImportBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	if len(data) > MaxImportBytes {
		return nil, errors.NewInvalidInputError("file", len(data), "file is too large, the limit is 10MB")
	}

	var rows []domain.DailyReportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.NewInvalidInputError("file", nil, "not a valid report: "+err.Error())
	}

	result := &ImportResult{}
	touched := make(map[domain.PeriodKey]bool)
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, errors.FromContext("import report", err)
		}

		day, err := domain.ParseDayID(row.Day)
		if err != nil {
			s.fail(result, row.Day, err)
			continue
		}

		tokens := row.Tokens()
		if !hasTokens(tokens) {
			result.Skipped++
			continue
		}

		if _, err := s.tracker.RecordDay(ctx, day, tokens[:]); err != nil {
			s.fail(result, row.Day, err)
			continue
		}
		s.metrics.RowImported(nil)
		result.Imported++
		touched[domain.PeriodOf(day)] = true
	}

	for p := range touched {
		result.Periods = append(result.Periods, p)
	}
	sort.Slice(result.Periods, func(i, j int) bool {
		return result.Periods[i].Before(result.Periods[j])
	})
	return result, nil
}

func (s *exchangeServiceImpl) fail(result *ImportResult, day string, err error) {
	s.metrics.RowImported(err)
	logging.Warnf("import %s: %v", day, err)
	result.Failed = append(result.Failed, ImportFailure{Day: day, Error: errors.GetUserMessage(err)})
}

func hasTokens(tokens [domain.PunchSlots]string) bool {
	for _, tok := range tokens {
		if strings.TrimSpace(tok) != "" {
			return true
		}
	}
	return false
}

// BuildReportJSON renders the rows as a two-space indented JSON array.
func BuildReportJSON(report *domain.PeriodReport) ([]byte, error) {
	rows := report.Rows
	if rows == nil {
		rows = []domain.DailyReportRow{}
	}
	return json.MarshalIndent(rows, "", "  ")
}
