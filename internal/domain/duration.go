package domain

import "fmt"

// EmptyDuration is the canonical rendering of a zero duration.
const EmptyDuration = "0h 0m"

// Duration is an hours/minutes pair. After Normalize, Minutes is in [0,60).
type Duration struct {
	Hours   int
	Minutes int
}

// SplitMinutes is the single carry routine used for every hours/minutes conversion.
// Negative totals split their magnitude and negate both parts.
func SplitMinutes(total int) (hours, minutes int) {
	if total < 0 {
		h, m := SplitMinutes(-total)
		return -h, -m
	}
	return total / 60, total % 60
}

// DurationFromMinutes builds a normalized duration from a non-negative minute count.
func DurationFromMinutes(total int) Duration {
	h, m := SplitMinutes(total)
	return Duration{Hours: h, Minutes: m}
}

// Normalize carries whole hours out of the minutes component.
func (d Duration) Normalize() Duration {
	if d.Minutes < 60 {
		return d
	}
	h, m := SplitMinutes(d.Minutes)
	return Duration{Hours: d.Hours + h, Minutes: m}
}

// Add sums two durations and normalizes the result.
func (d Duration) Add(o Duration) Duration {
	return Duration{Hours: d.Hours + o.Hours, Minutes: d.Minutes + o.Minutes}.Normalize()
}

// TotalMinutes returns the duration expressed in minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// IsZero reports whether the duration is empty.
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0
}

// String renders the duration as "Xh Ym".
func (d Duration) String() string {
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}
