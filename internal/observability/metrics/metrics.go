package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "workhours_"

	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics bundles the tracker's collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	DaysRecorded   prometheus.Counter
	DaysRolled     prometheus.Counter
	ParseErrors    prometheus.Counter
	SuspectDays    *prometheus.CounterVec
	RollDuration   prometheus.Histogram
	PeriodBalance  *prometheus.GaugeVec
	ExportsTotal   *prometheus.CounterVec
	ImportedRows   *prometheus.CounterVec
	WatchTriggered prometheus.Counter
}

// New constructs and registers metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DaysRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "days_recorded_total",
			Help: "Total day records written",
		}),
		DaysRolled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "days_rolled_total",
			Help: "Total days folded into a period balance",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "punch_parse_errors_total",
			Help: "Total punch tokens that could not be parsed",
		}),
		SuspectDays: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "suspect_days_total",
				Help: "Total report rows flagged as suspect by reason",
			},
			[]string{"reason"},
		),
		RollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricPrefix + "rollforward_duration_seconds",
			Help:    "Period roll-forward duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		PeriodBalance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "period_balance_minutes",
				Help: "Ending balance of a period in minutes",
			},
			[]string{"period"},
		),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Total report exports by format and result",
			},
			[]string{"format", "result"},
		),
		ImportedRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "imported_rows_total",
				Help: "Total imported report rows by result",
			},
			[]string{"result"},
		),
		WatchTriggered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "watch_reimports_total",
			Help: "Total imports triggered by file changes",
		}),
	}
	m.registry.MustRegister(
		m.DaysRecorded,
		m.DaysRolled,
		m.ParseErrors,
		m.SuspectDays,
		m.RollDuration,
		m.PeriodBalance,
		m.ExportsTotal,
		m.ImportedRows,
		m.WatchTriggered,
	)
	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// DayRecorded counts a stored day.
func (m *Metrics) DayRecorded() {
	if m == nil {
		return
	}
	m.DaysRecorded.Inc()
}

// PunchParseErrors counts unreadable tokens.
func (m *Metrics) PunchParseErrors(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ParseErrors.Add(float64(n))
}

// SuspectDay counts a flagged row.
func (m *Metrics) SuspectDay(reason string) {
	if m == nil {
		return
	}
	m.SuspectDays.WithLabelValues(reason).Inc()
}

// PeriodRolled records one completed roll-forward.
func (m *Metrics) PeriodRolled(period string, days int, endingBalance int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DaysRolled.Add(float64(days))
	m.RollDuration.Observe(elapsed.Seconds())
	m.PeriodBalance.WithLabelValues(period).Set(float64(endingBalance))
}

// Exported records an export attempt.
func (m *Metrics) Exported(format string, err error) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format, result(err)).Inc()
}

// RowImported records one imported row.
func (m *Metrics) RowImported(err error) {
	if m == nil {
		return
	}
	m.ImportedRows.WithLabelValues(result(err)).Inc()
}

// Reimported counts a watcher-triggered import.
func (m *Metrics) Reimported() {
	if m == nil {
		return
	}
	m.WatchTriggered.Inc()
}

// WriteTextfile writes the registry for a node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
