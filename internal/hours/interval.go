package hours

import "workhours/internal/domain"

// Elapsed returns the time between two readings on the same clock face.
// When end precedes start the result is the empty duration and ok is false.
func Elapsed(start, end domain.ClockValue) (d domain.Duration, ok bool) {
	if end.Minute >= start.Minute {
		d = domain.Duration{Hours: end.Hour - start.Hour, Minutes: end.Minute - start.Minute}
	} else {
		d = domain.Duration{Hours: end.Hour - start.Hour - 1, Minutes: end.Minute - start.Minute + 60}
	}
	if d.Hours < 0 {
		return domain.Duration{}, false
	}
	return d, true
}
