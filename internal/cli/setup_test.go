package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"workhours/internal/api"
	"workhours/internal/config"
	"workhours/internal/observability/metrics"
	"workhours/internal/repository/sqlite"
	"workhours/internal/services"

	"github.com/stretchr/testify/require"
)

// testNow is a Wednesday
var testNow = time.Date(2024, time.March, 6, 11, 30, 0, 0, time.UTC)

func newTestAPI(t *testing.T, m *metrics.Metrics) api.BusinessAPI {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	now := func() time.Time { return testNow }
	return api.NewBusinessAPI(services.NewServiceContainer(repo, m, now), now)
}

// setupTestApp creates an app over an in-memory database with days already recorded.
// Output is collected in the returned buffer and input reads from stdin.
func setupTestApp(t *testing.T, days map[string][]string, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	businessAPI := newTestAPI(t, nil)

	ctx := context.Background()
	for day, tokens := range days {
		_, err := businessAPI.RecordDay(ctx, day, tokens)
		require.NoError(t, err)
	}

	cfg := config.NewConfig()
	cfg.Application.Environment = config.EnvTesting
	app := NewAppWithConfig(businessAPI, cfg)
	out := &bytes.Buffer{}
	app.SetIO(out, strings.NewReader(stdin))
	return app, out
}
