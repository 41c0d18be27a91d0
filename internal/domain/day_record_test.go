package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayRecord(t *testing.T) {
	day := time.Date(2024, 3, 4, 15, 42, 0, 0, time.UTC)
	rec := NewDayRecord(day, []string{" 08:00", "12:00 ", "", "17:00", "x", "y", "ignored"})

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), rec.Day)
	assert.NotEmpty(t, rec.DocumentID)
	assert.Equal(t, [PunchSlots]string{"08:00", "12:00", "", "17:00", "x", "y"}, rec.Tokens)
	assert.Equal(t, "2024-03-04", rec.ID())
	assert.Equal(t, PeriodKey{Year: 2024, Month: 2}, rec.Period())
	assert.True(t, rec.HasPunches())

	other := NewDayRecord(day, nil)
	assert.NotEqual(t, rec.DocumentID, other.DocumentID)
	assert.False(t, other.HasPunches())
}

func TestDayKeys(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-04", FormatDayID(day))
	assert.Equal(t, "2024/2/4", LegacyDayKey(day))
}

func TestParseDayID(t *testing.T) {
	tests := []struct {
		input     string
		expected  time.Time
		expectErr bool
	}{
		{input: "2024-03-04", expected: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{input: "2024/2/4", expected: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{input: "2024/1/29", expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{input: "2024/1/30", expectErr: true},
		{input: "2024/12/1", expectErr: true},
		{input: "2024-02-30", expectErr: true},
		{input: "yesterday", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDayID(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}
}

func TestOrdinalSuffix(t *testing.T) {
	cases := map[int]string{1: "st", 2: "nd", 3: "rd", 4: "th", 11: "th", 12: "th", 13: "th", 21: "st", 22: "nd", 23: "rd", 30: "th", 31: "st"}
	for day, want := range cases {
		assert.Equal(t, want, OrdinalSuffix(day), "day %d", day)
	}
}

func TestDateText(t *testing.T) {
	assert.Equal(t, "Monday, March 4th, 2024", DateText(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Saturday, March 23rd, 2024", DateText(time.Date(2024, 3, 23, 0, 0, 0, 0, time.UTC)))
}
