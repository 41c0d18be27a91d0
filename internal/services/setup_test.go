package services

import (
	"context"
	"testing"
	"time"

	"workhours/internal/domain"
	"workhours/internal/repository"
	"workhours/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
)

var (
	fixedNow        = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.Local)
	periodMarch2024 = domain.NewPeriodKey(2024, time.March)
	periodApril2024 = domain.NewPeriodKey(2024, time.April)
)

func setupRepository(t *testing.T) repository.Repository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func setupContainer(t *testing.T) *ServiceContainer {
	t.Helper()
	return NewServiceContainer(setupRepository(t), nil, func() time.Time { return fixedNow })
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recordDays(t *testing.T, tracker TrackerService, days map[time.Time][]string) {
	t.Helper()
	for d, tokens := range days {
		_, err := tracker.RecordDay(context.Background(), d, tokens)
		require.NoError(t, err)
	}
}

func dayRecord(d time.Time, tokens ...string) domain.DayRecord {
	return domain.NewDayRecord(d, tokens)
}
