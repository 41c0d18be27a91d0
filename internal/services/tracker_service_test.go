package services

import (
	"context"
	"testing"
	"time"

	"workhours/internal/errors"
	"workhours/internal/hours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerService_CompletionOnlyForToday(t *testing.T) {
	c := setupContainer(t)
	ctx := context.Background()

	today, err := c.TrackerService.RecordDay(ctx, day(2024, time.March, 4), []string{"08:00"})
	require.NoError(t, err)
	assert.Equal(t, "18:00", today.Completion)

	past, err := c.TrackerService.RecordDay(ctx, day(2024, time.March, 1), []string{"08:00"})
	require.NoError(t, err)
	assert.Empty(t, past.Completion)
	assert.Equal(t, "8h 0m", past.Left)
}

func TestTrackerService_RecordDay(t *testing.T) {
	tests := []struct {
		name           string
		tokens         []string
		expected       *DayView
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:   "should summarise two pairs with a lunch break",
			tokens: []string{"08:00", "12:30", "13:00", "17:15"},
			expected: &DayView{
				Worked:     "8h 45m",
				Break:      "0h 30m",
				Left:       "0h 0m",
				Completion: hours.DoneMessage,
				Extra:      "0h 45m",
			},
		},
		{
			name:   "should project completion from an open start",
			tokens: []string{"08:00"},
			expected: &DayView{
				Worked:     "0h 0m",
				Break:      "0h 0m",
				Left:       "8h 0m",
				Completion: "18:00",
				Extra:      "0h 0m",
			},
		},
		{
			name:   "should accept tokens without padding",
			tokens: []string{"8:05", "9:00"},
			expected: &DayView{
				Worked:     "0h 55m",
				Break:      "0h 0m",
				Left:       "7h 5m",
				Completion: "17:05",
				Extra:      "0h 0m",
			},
		},
		{
			name:   "should reject an unreadable token",
			tokens: []string{"08:00", "noon"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "punch 2")
			},
		},
		{
			name:   "should reject an out of range token",
			tokens: []string{"08:00", "24:10"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:   "should reject punches out of order",
			tokens: []string{"12:00", "08:00"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:   "should reject more than six punches",
			tokens: []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00", "14:00"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			c := setupContainer(t)

			// Act
			view, err := c.TrackerService.RecordDay(context.Background(), day(2024, time.March, 4), tt.tokens)

			// Assert
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2024-03-04", view.Day)
			assert.Equal(t, "Monday, March 4th, 2024", view.DateText)
			assert.Equal(t, tt.expected.Worked, view.Worked)
			assert.Equal(t, tt.expected.Break, view.Break)
			assert.Equal(t, tt.expected.Left, view.Left)
			assert.Equal(t, tt.expected.Completion, view.Completion)
			assert.Equal(t, tt.expected.Extra, view.Extra)
			assert.False(t, view.Suspect)
		})
	}
}

func TestTrackerService_RecordDayReplaces(t *testing.T) {
	c := setupContainer(t)
	ctx := context.Background()
	d := day(2024, time.March, 5)

	_, err := c.TrackerService.RecordDay(ctx, d, []string{"08:00", "12:00"})
	require.NoError(t, err)
	_, err = c.TrackerService.RecordDay(ctx, d, []string{"09:00", "17:00"})
	require.NoError(t, err)

	view, err := c.TrackerService.GetDay(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "09:00", view.Tokens[0])
	assert.Equal(t, "17:00", view.Tokens[1])
	assert.Equal(t, "8h 0m", view.Worked)

	days, err := c.TrackerService.ListDays(ctx, periodMarch2024)
	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestTrackerService_GetAndDeleteDay(t *testing.T) {
	c := setupContainer(t)
	ctx := context.Background()
	d := day(2024, time.March, 6)

	_, err := c.TrackerService.GetDay(ctx, d)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = c.TrackerService.RecordDay(ctx, d, []string{"08:00", "16:00"})
	require.NoError(t, err)

	require.NoError(t, c.TrackerService.DeleteDay(ctx, d))

	_, err = c.TrackerService.GetDay(ctx, d)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = c.TrackerService.DeleteDay(ctx, d)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTrackerService_ListDays(t *testing.T) {
	c := setupContainer(t)
	recordDays(t, c.TrackerService, map[time.Time][]string{
		day(2024, time.March, 12): {"08:00", "16:00"},
		day(2024, time.March, 1):  {"08:00", "16:00"},
		day(2024, time.April, 2):  {"08:00", "16:00"},
		day(2024, time.March, 7):  {"08:00", "16:00"},
	})

	days, err := c.TrackerService.ListDays(context.Background(), periodMarch2024)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-03-01", days[0].ID())
	assert.Equal(t, "2024-03-07", days[1].ID())
	assert.Equal(t, "2024-03-12", days[2].ID())
}

func TestTrackerService_SummarizeFlagsStoredGarbage(t *testing.T) {
	c := setupContainer(t)
	rec := dayRecord(day(2024, time.March, 8), "08:00", "12:00", "xx", "17:00")

	view := c.TrackerService.Summarize(rec)

	assert.Equal(t, "4h 0m", view.Worked)
	assert.True(t, view.Suspect)
	require.Len(t, view.Warnings, 2)
	assert.Contains(t, view.Warnings[0], "punch 3")
	assert.Equal(t, "punches 3-4: incomplete pair", view.Warnings[1])
}
