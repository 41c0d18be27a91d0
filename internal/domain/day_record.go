package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"workhours/internal/errors"
)

// DayIDLayout is the layout of day identifiers in reports and storage.
const DayIDLayout = "2006-01-02"

// DayRecord holds the raw punch tokens recorded for one calendar day.
// Tokens are kept exactly as entered; parsing happens in the calculation engine.
type DayRecord struct {
	Day        time.Time
	DocumentID string
	Tokens     [PunchSlots]string
	UpdatedAt  time.Time
}

// NewDayRecord creates a record for the date of day with a fresh document id.
// Extra tokens beyond the six slots are ignored; callers validate the count first.
func NewDayRecord(day time.Time, tokens []string) DayRecord {
	rec := DayRecord{
		Day:        DateOf(day),
		DocumentID: uuid.NewString(),
	}
	for i := 0; i < len(tokens) && i < PunchSlots; i++ {
		rec.Tokens[i] = strings.TrimSpace(tokens[i])
	}
	return rec
}

// ID returns the ISO day identifier.
func (d DayRecord) ID() string {
	return FormatDayID(d.Day)
}

// Period returns the reporting period the day belongs to.
func (d DayRecord) Period() PeriodKey {
	return PeriodOf(d.Day)
}

// HasPunches reports whether any token was recorded.
func (d DayRecord) HasPunches() bool {
	for _, tok := range d.Tokens {
		if strings.TrimSpace(tok) != "" {
			return true
		}
	}
	return false
}

// DateOf truncates t to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDayID renders the ISO identifier for a date.
func FormatDayID(t time.Time) string {
	return t.Format(DayIDLayout)
}

// LegacyDayKey renders the "Y/M/D" key with a zero-based month used by older exports.
func LegacyDayKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month())-1, t.Day())
}

// ParseDayID accepts an ISO date or a legacy "Y/M/D" key with a zero-based month.
func ParseDayID(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DayIDLayout, s); err == nil {
		return t, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) == 3 {
		var nums [3]int
		valid := true
		for i, part := range parts {
			n, err := strconv.Atoi(part)
			if err != nil {
				valid = false
				break
			}
			nums[i] = n
		}
		if valid && nums[1] >= 0 && nums[1] <= 11 {
			t := time.Date(nums[0], time.Month(nums[1]+1), nums[2], 0, 0, 0, 0, time.UTC)
			if t.Day() == nums[2] {
				return t, nil
			}
		}
	}
	return time.Time{}, errors.NewInvalidInputError("day", s, "expected YYYY-MM-DD")
}

// OrdinalSuffix returns the English ordinal suffix for a day of month.
func OrdinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// DateText renders a date as "Monday, March 4th, 2024".
func DateText(t time.Time) string {
	return fmt.Sprintf("%s, %s %d%s, %d", t.Weekday(), t.Month(), t.Day(), OrdinalSuffix(t.Day()), t.Year())
}
