package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"workhours/internal/errors"
)

// PeriodKey identifies a reporting month. Month is zero-based (0 = January).
type PeriodKey struct {
	Year  int
	Month int
}

// NewPeriodKey builds a key from a calendar month.
func NewPeriodKey(year int, month time.Month) PeriodKey {
	return PeriodKey{Year: year, Month: int(month) - 1}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) PeriodKey {
	return NewPeriodKey(t.Year(), t.Month())
}

// ParsePeriodKey accepts "YYYY-MM" (one-based month) or the stored "YYYY/M" form (zero-based).
func ParsePeriodKey(s string) (PeriodKey, error) {
	s = strings.TrimSpace(s)
	if year, month, ok := strings.Cut(s, "-"); ok {
		y, errY := strconv.Atoi(year)
		m, errM := strconv.Atoi(month)
		if errY != nil || errM != nil || m < 1 || m > 12 {
			return PeriodKey{}, errors.NewInvalidInputError("period", s, "expected YYYY-MM")
		}
		return PeriodKey{Year: y, Month: m - 1}, nil
	}
	if year, month, ok := strings.Cut(s, "/"); ok {
		y, errY := strconv.Atoi(year)
		m, errM := strconv.Atoi(month)
		if errY != nil || errM != nil || m < 0 || m > 11 {
			return PeriodKey{}, errors.NewInvalidInputError("period", s, "expected YYYY/M with a zero-based month")
		}
		return PeriodKey{Year: y, Month: m}, nil
	}
	return PeriodKey{}, errors.NewInvalidInputError("period", s, "expected YYYY-MM")
}

// String returns the storage key, "2024/2" for March 2024.
func (p PeriodKey) String() string {
	return fmt.Sprintf("%d/%d", p.Year, p.Month)
}

// ISO returns "2024-03" for March 2024.
func (p PeriodKey) ISO() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month+1)
}

// Label returns a display name such as "March 2024".
func (p PeriodKey) Label() string {
	return fmt.Sprintf("%s %d", time.Month(p.Month+1), p.Year)
}

// Previous returns the period before p, wrapping January to the prior December.
func (p PeriodKey) Previous() PeriodKey {
	if p.Month == 0 {
		return PeriodKey{Year: p.Year - 1, Month: 11}
	}
	return PeriodKey{Year: p.Year, Month: p.Month - 1}
}

// Next returns the period after p.
func (p PeriodKey) Next() PeriodKey {
	if p.Month == 11 {
		return PeriodKey{Year: p.Year + 1, Month: 0}
	}
	return PeriodKey{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p precedes o in calendar order.
func (p PeriodKey) Before(o PeriodKey) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// FirstDay returns midnight UTC of the first day of the period.
func (p PeriodKey) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month+1), 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of calendar days in the period.
func (p PeriodKey) DaysIn() int {
	return p.FirstDay().AddDate(0, 1, -1).Day()
}

// Contains reports whether the calendar date of t falls inside the period.
func (p PeriodKey) Contains(t time.Time) bool {
	return PeriodOf(t) == p
}
