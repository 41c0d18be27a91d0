package hours

import (
	"testing"
	"time"

	"workhours/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTimeLeft(t *testing.T) {
	tests := []struct {
		worked   domain.Duration
		expected string
	}{
		{worked: domain.Duration{Hours: 6}, expected: "2h 0m"},
		{worked: domain.Duration{Hours: 7, Minutes: 45}, expected: "0h 15m"},
		{worked: domain.Duration{}, expected: "8h 0m"},
		{worked: domain.Duration{Hours: 8}, expected: domain.EmptyDuration},
		{worked: domain.Duration{Hours: 9, Minutes: 15}, expected: domain.EmptyDuration},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TimeLeft(tt.worked).String(), "worked %s", tt.worked)
	}
}

func TestExtraHours(t *testing.T) {
	tests := []struct {
		worked   domain.Duration
		expected string
	}{
		{worked: domain.Duration{Hours: 8}, expected: "0h 0m"},
		{worked: domain.Duration{Hours: 9, Minutes: 15}, expected: "1h 15m"},
		{worked: domain.Duration{Hours: 9}, expected: "0h 0m"},
		{worked: domain.Duration{Hours: 8, Minutes: 1}, expected: "0h 1m"},
		{worked: domain.Duration{Hours: 7, Minutes: 59}, expected: "0h 0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtraHours(tt.worked).String(), "worked %s", tt.worked)
	}
}

func TestCompletionTime(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, 3, 4, h, m, 0, 0, time.Local)
	}

	tests := []struct {
		name     string
		worked   domain.Duration
		now      time.Time
		expected string
	}{
		{name: "same morning", worked: domain.Duration{Hours: 6}, now: at(10, 30), expected: "12:30"},
		{name: "minute carry", worked: domain.Duration{Hours: 7, Minutes: 15}, now: at(16, 50), expected: "17:35"},
		{name: "zero padded minutes", worked: domain.Duration{Hours: 7, Minutes: 55}, now: at(9, 3), expected: "9:08"},
		{name: "wraps past midnight", worked: domain.Duration{Hours: 4}, now: at(22, 30), expected: "2:30"},
		{name: "quota met", worked: domain.Duration{Hours: 8}, now: at(17, 0), expected: DoneMessage},
		{name: "quota exceeded", worked: domain.Duration{Hours: 9, Minutes: 30}, now: at(18, 0), expected: DoneMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CompletionTime(tt.worked, tt.now)
			assert.Equal(t, tt.expected, c.String())
			assert.Equal(t, tt.worked.TotalMinutes() >= DailyQuotaMinutes, c.Done)
		})
	}
}

func TestSummarize(t *testing.T) {
	seq := mustParse(t, "08:00", "12:00", "12:30", "17:00")
	s := Summarize(seq, time.Date(2024, 3, 4, 17, 0, 0, 0, time.Local))

	assert.Equal(t, domain.Duration{Hours: 8, Minutes: 30}, s.Worked)
	assert.Equal(t, domain.Duration{Minutes: 30}, s.Break)
	assert.True(t, s.Left.IsZero())
	assert.True(t, s.Completion.Done)
	assert.Equal(t, "0h 30m", s.Extra.String())
	assert.False(t, s.Suspect())

	partial := Summarize(mustParse(t, "09:00", "12:00", "12:45"), time.Date(2024, 3, 4, 12, 45, 0, 0, time.Local))
	assert.Equal(t, "5h 0m", partial.Left.String())
	assert.Equal(t, "17:45", partial.Completion.String())

	odd := Summarize(mustParse(t, "17:00", "08:00"), time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local))
	assert.True(t, odd.Suspect())
	assert.True(t, odd.Worked.IsZero())
}
