package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"workhours/internal/errors"
	"workhours/internal/repository"
	"workhours/internal/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *repository.SQLRepository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "wh.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepositoryContract(t *testing.T) {
	repotest.Run(t, setupTestDB(t))
}

func TestInMemory(t *testing.T) {
	repo, err := New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.UpsertDayRecord(ctx, &repository.DayRecord{Day: "2024-01-02", Year: 2024, Month: 0, DocumentID: "m"}))
	days, err := repo.ListDayRecords(ctx, 2024, 0)
	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wh.db")
	ctx := context.Background()

	repo, err := New(path)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertPeriodBalance(ctx, &repository.PeriodBalance{Year: 2024, Month: 6, Minutes: 42}))
	require.NoError(t, repo.Close())

	repo, err = New(path)
	require.NoError(t, err)
	defer repo.Close()

	bal, err := repo.GetPeriodBalance(ctx, 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, 42, bal.Minutes)
}

func TestCancelledContext(t *testing.T) {
	repo := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListDayRecords(ctx, 2024, 0)
	require.Error(t, err)
	assert.True(t, errors.IsAppError(err))
}

func TestWriteTimeoutOption(t *testing.T) {
	repo, err := NewWithOptions(filepath.Join(t.TempDir(), "wh.db"), repository.Options{
		QueryTimeout: time.Second,
		WriteTimeout: time.Second,
	})
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.UpsertDayRecord(context.Background(), &repository.DayRecord{Day: "2024-02-29", Year: 2024, Month: 1, DocumentID: "leap"}))
}
