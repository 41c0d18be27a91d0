package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exposition(t *testing.T, m *Metrics) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workhours.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.DayRecorded()
	m.DayRecorded()
	m.PunchParseErrors(3)
	m.PunchParseErrors(0)
	m.SuspectDay("out of order")
	m.Exported("json", nil)
	m.Exported("pdf", errors.New("disk full"))
	m.RowImported(nil)
	m.Reimported()

	out := exposition(t, m)
	assert.Contains(t, out, "workhours_days_recorded_total 2")
	assert.Contains(t, out, "workhours_punch_parse_errors_total 3")
	assert.Contains(t, out, `workhours_suspect_days_total{reason="out of order"} 1`)
	assert.Contains(t, out, `workhours_exports_total{format="json",result="success"} 1`)
	assert.Contains(t, out, `workhours_exports_total{format="pdf",result="error"} 1`)
	assert.Contains(t, out, `workhours_imported_rows_total{result="success"} 1`)
	assert.Contains(t, out, "workhours_watch_reimports_total 1")
}

func TestMetrics_PeriodRolled(t *testing.T) {
	m := New()
	m.PeriodRolled("2024-03", 4, -105, 20*time.Millisecond)

	out := exposition(t, m)
	assert.Contains(t, out, "workhours_days_rolled_total 4")
	assert.Contains(t, out, `workhours_period_balance_minutes{period="2024-03"} -105`)
	assert.Contains(t, out, "workhours_rollforward_duration_seconds_count 1")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.DayRecorded()
		m.PunchParseErrors(1)
		m.SuspectDay("x")
		m.PeriodRolled("2024-01", 1, 0, time.Second)
		m.Exported("json", nil)
		m.RowImported(nil)
		m.Reimported()
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteTextfile("/nonexistent/metrics.prom"))
}

func TestMetrics_WriteTextfileEmptyPath(t *testing.T) {
	m := New()
	assert.NoError(t, m.WriteTextfile(""))
	assert.NotNil(t, m.Registry())
}
