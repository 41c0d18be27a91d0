package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"workhours/internal/config"
	"workhours/internal/observability/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points HOME at a temporary directory and clears the WH_* variables
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{
		"WH_CONFIG", "WH_STORAGE_BACKEND", "WH_DB_DIR", "WH_DB_FILENAME", "WH_PG_DSN",
		"WH_DB_QUERY_TIMEOUT", "WH_DB_WRITE_TIMEOUT", "WH_DB_DIR_PERMISSIONS", "WH_DISPLAY_WIDTH",
		"WH_APP_TIMEOUT", "WH_APP_VERBOSE", "WH_ENV", "WH_METRICS_TEXTFILE", "WH_EXPORT_DEFAULT_FORMAT",
	} {
		t.Setenv(name, "")
	}
}

// testConnector hands out a session over an in-memory database and remembers the configuration
type testConnector struct {
	cfg    *config.Config
	closed bool
	err    error
}

func (c *testConnector) connect(t *testing.T) Connector {
	return func(ctx context.Context, cfg *config.Config) (*Session, error) {
		c.cfg = cfg
		if c.err != nil {
			return nil, c.err
		}
		m := metrics.New()
		return &Session{
			API:     newTestAPI(t, m),
			Metrics: m,
			Close: func() error {
				c.closed = true
				return nil
			},
		}, nil
	}
}

func runRoot(t *testing.T, connector *testConnector, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(connector.connect(t))
	out := &bytes.Buffer{}
	root.SetIO(out, strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Punch(t *testing.T) {
	isolateConfig(t)
	connector := &testConnector{}

	out, err := runRoot(t, connector, "punch", "2024-03-04", "08:00", "12:00", "12:30", "17:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded Monday, March 4th, 2024")
	assert.Contains(t, out, "worked:     8h 30m")
	assert.True(t, connector.closed)
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	isolateConfig(t)
	connector := &testConnector{}

	_, err := runRoot(t, connector, "--width", "120", "--env", "testing", "--export-format", "pdf", "calc", "08:00")
	require.NoError(t, err)
	require.NotNil(t, connector.cfg)
	assert.Equal(t, 120, connector.cfg.Display.Width)
	assert.Equal(t, config.EnvTesting, connector.cfg.Application.Environment)
	assert.Equal(t, "pdf", connector.cfg.Export.DefaultFormat)
	assert.Equal(t, config.BackendSQLite, connector.cfg.Storage.Backend)
}

func TestRootCommand_EnvironmentBelowFlags(t *testing.T) {
	isolateConfig(t)
	t.Setenv("WH_DISPLAY_WIDTH", "90")
	connector := &testConnector{}

	_, err := runRoot(t, connector, "calc", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 90, connector.cfg.Display.Width)

	_, err = runRoot(t, connector, "--width", "70", "calc", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 70, connector.cfg.Display.Width)
}

func TestRootCommand_InvalidConfiguration(t *testing.T) {
	isolateConfig(t)
	connector := &testConnector{}

	_, err := runRoot(t, connector, "--backend", "mongodb", "calc", "08:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
	assert.Nil(t, connector.cfg)
}

func TestRootCommand_ConnectFailure(t *testing.T) {
	isolateConfig(t)
	connector := &testConnector{err: stderrors.New("no route to host")}

	_, err := runRoot(t, connector, "day")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open storage")
}

func TestRootCommand_MetricsTextfile(t *testing.T) {
	isolateConfig(t)
	connector := &testConnector{}
	path := filepath.Join(t.TempDir(), "workhours.prom")

	_, err := runRoot(t, connector, "--metrics-textfile", path, "punch", "2024-03-04", "08:00", "16:00")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "days_recorded_total 1")
}

func TestRootCommand_DeleteWithYes(t *testing.T) {
	isolateConfig(t)
	connector := &testConnector{}

	out, err := runRoot(t, connector, "delete-day", "--yes", "2024-03-04")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete day")
	assert.NotContains(t, out, "Delete this day?")
}

func TestRootCommand_ArgumentCounts(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "punch needs punches", args: []string{"punch"}},
		{name: "recompute needs two periods", args: []string{"recompute", "2024-01"}},
		{name: "import needs a file", args: []string{"import"}},
		{name: "report takes one period", args: []string{"report", "2024-01", "2024-02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, &testConnector{}, tt.args...)
			assert.Error(t, err)
		})
	}
}
