// Package repotest holds the behavioural checks every repository backend must pass.
package repotest

import (
	"context"
	"testing"

	"workhours/internal/errors"
	"workhours/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises repo against the shared storage contract. The repository must start empty.
func Run(t *testing.T, repo repository.Repository) {
	t.Run("UpsertAndGetDayRecord", func(t *testing.T) { testUpsertAndGet(t, repo) })
	t.Run("UpsertKeepsDocumentID", func(t *testing.T) { testUpsertKeepsDocumentID(t, repo) })
	t.Run("ListDayRecords", func(t *testing.T) { testListDayRecords(t, repo) })
	t.Run("DeleteDayRecord", func(t *testing.T) { testDeleteDayRecord(t, repo) })
	t.Run("PeriodBalances", func(t *testing.T) { testPeriodBalances(t, repo) })
}

func testUpsertAndGet(t *testing.T, repo repository.Repository) {
	ctx := context.Background()
	rec := &repository.DayRecord{
		Day:        "2024-03-04",
		Year:       2024,
		Month:      2,
		DocumentID: "doc-1",
		Punches:    [6]string{"08:00", "12:00", "12:30", "17:00"},
	}
	require.NoError(t, repo.UpsertDayRecord(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())
	assert.False(t, rec.UpdatedAt.IsZero())

	got, err := repo.GetDayRecord(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, rec.Day, got.Day)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 2, got.Month)
	assert.Equal(t, "doc-1", got.DocumentID)
	assert.Equal(t, rec.Punches, got.Punches)

	_, err = repo.GetDayRecord(ctx, "1999-01-01")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	assert.Error(t, repo.UpsertDayRecord(ctx, &repository.DayRecord{}))
}

func testUpsertKeepsDocumentID(t *testing.T, repo repository.Repository) {
	ctx := context.Background()
	first := &repository.DayRecord{Day: "2024-03-05", Year: 2024, Month: 2, DocumentID: "original", Punches: [6]string{"09:00"}}
	require.NoError(t, repo.UpsertDayRecord(ctx, first))

	second := &repository.DayRecord{Day: "2024-03-05", Year: 2024, Month: 2, DocumentID: "replacement", Punches: [6]string{"09:00", "17:30"}}
	require.NoError(t, repo.UpsertDayRecord(ctx, second))
	assert.Equal(t, "original", second.DocumentID)

	got, err := repo.GetDayRecord(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "original", got.DocumentID)
	assert.Equal(t, "17:30", got.Punches[1])
}

func testListDayRecords(t *testing.T, repo repository.Repository) {
	ctx := context.Background()
	for _, rec := range []*repository.DayRecord{
		{Day: "2024-04-10", Year: 2024, Month: 3, DocumentID: "c"},
		{Day: "2024-04-02", Year: 2024, Month: 3, DocumentID: "a"},
		{Day: "2024-04-05", Year: 2024, Month: 3, DocumentID: "b"},
		{Day: "2024-05-01", Year: 2024, Month: 4, DocumentID: "d"},
	} {
		require.NoError(t, repo.UpsertDayRecord(ctx, rec))
	}

	days, err := repo.ListDayRecords(ctx, 2024, 3)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-04-02", days[0].Day)
	assert.Equal(t, "2024-04-05", days[1].Day)
	assert.Equal(t, "2024-04-10", days[2].Day)

	none, err := repo.ListDayRecords(ctx, 2030, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testDeleteDayRecord(t *testing.T, repo repository.Repository) {
	ctx := context.Background()
	require.NoError(t, repo.UpsertDayRecord(ctx, &repository.DayRecord{Day: "2024-06-03", Year: 2024, Month: 5, DocumentID: "x"}))

	require.NoError(t, repo.DeleteDayRecord(ctx, "2024-06-03"))
	_, err := repo.GetDayRecord(ctx, "2024-06-03")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = repo.DeleteDayRecord(ctx, "2024-06-03")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func testPeriodBalances(t *testing.T, repo repository.Repository) {
	ctx := context.Background()

	_, err := repo.GetPeriodBalance(ctx, 2024, 1)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	require.NoError(t, repo.UpsertPeriodBalance(ctx, &repository.PeriodBalance{Year: 2024, Month: 1, Minutes: 75}))
	require.NoError(t, repo.UpsertPeriodBalance(ctx, &repository.PeriodBalance{Year: 2023, Month: 11, Minutes: -30}))

	got, err := repo.GetPeriodBalance(ctx, 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, 75, got.Minutes)
	assert.False(t, got.UpdatedAt.IsZero())

	require.NoError(t, repo.UpsertPeriodBalance(ctx, &repository.PeriodBalance{Year: 2024, Month: 1, Minutes: -15}))
	got, err = repo.GetPeriodBalance(ctx, 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, -15, got.Minutes)

	all, err := repo.ListPeriodBalances(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2023, all[0].Year)
	assert.Equal(t, 2024, all[1].Year)

	assert.Error(t, repo.UpsertPeriodBalance(ctx, nil))
}
