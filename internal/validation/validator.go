package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Validator provides common validation utilities
type Validator struct {
	daysAgoRegex *regexp.Regexp
	yearsBack    int
	yearsAhead   int
	now          func() time.Time
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		daysAgoRegex: regexp.MustCompile(`^(\d+)d$`),
		yearsBack:    10,
		yearsAhead:   1,
		now:          time.Now,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidHour checks if an hour is a wall-clock hour
func (v *Validator) IsValidHour(h int) bool {
	return h >= 0 && h <= 23
}

// IsValidMinute checks if a minute is within an hour
func (v *Validator) IsValidMinute(m int) bool {
	return m >= 0 && m <= 59
}

// IsValidMonth checks a zero-based month
func (v *Validator) IsValidMonth(m int) bool {
	return m >= 0 && m <= 11
}

// IsReasonableYear checks if a year lies within the accepted window
func (v *Validator) IsReasonableYear(year int) bool {
	now := v.now().Year()
	return year >= now-v.yearsBack && year <= now+v.yearsAhead
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := v.now()
	return t.After(now.AddDate(-v.yearsBack, 0, 0)) && t.Before(now.AddDate(v.yearsAhead, 0, 0))
}

// IsValidDaysAgo checks the "3d" shorthand used to pick a recent day
func (v *Validator) IsValidDaysAgo(shorthand string) bool {
	matches := v.daysAgoRegex.FindStringSubmatch(strings.TrimSpace(shorthand))
	if matches == nil {
		return false
	}
	n, err := strconv.Atoi(matches[1])
	return err == nil && n <= 366
}

// DaysAgo returns the day count of a valid shorthand, or -1
func (v *Validator) DaysAgo(shorthand string) int {
	if !v.IsValidDaysAgo(shorthand) {
		return -1
	}
	n, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(shorthand), "d"))
	return n
}
