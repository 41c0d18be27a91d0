package hours

import (
	"fmt"

	"workhours/internal/domain"
)

const (
	ReasonOutOfOrder     = "out of order"
	ReasonIncompletePair = "incomplete pair"
	ReasonUnreadable     = "unreadable punch"
)

// Warning flags a pair of punches whose contribution was dropped.
// From and To are one-based punch numbers.
type Warning struct {
	From   int
	To     int
	Reason string
}

func (w Warning) String() string {
	if w.From == w.To {
		return fmt.Sprintf("punch %d: %s", w.From, w.Reason)
	}
	return fmt.Sprintf("punches %d-%d: %s", w.From, w.To, w.Reason)
}

// Tally is an aggregated duration plus whatever was dropped along the way.
type Tally struct {
	Total    domain.Duration
	Warnings []Warning
}

// Suspect reports whether any interval was dropped.
func (t Tally) Suspect() bool {
	return len(t.Warnings) > 0
}

// WorkedTime sums the three work segments (1,2), (3,4) and (5,6).
// A segment counts once its stop punch is present; an open segment contributes nothing.
func WorkedTime(p domain.PunchSequence) Tally {
	var t Tally
	for n := 0; n < domain.PunchSlots/2; n++ {
		start, stop := p.Pair(n)
		if !stop.Present {
			continue
		}
		from, to := 2*n+1, 2*n+2
		if !start.Present {
			t.Warnings = append(t.Warnings, Warning{From: from, To: to, Reason: ReasonIncompletePair})
			continue
		}
		d, ok := Elapsed(start.Value, stop.Value)
		if !ok {
			t.Warnings = append(t.Warnings, Warning{From: from, To: to, Reason: ReasonOutOfOrder})
			continue
		}
		t.Total = t.Total.Add(d)
	}
	return t
}

// BreakTime sums every stop-to-resume gap between consecutive present punches.
func BreakTime(p domain.PunchSequence) Tally {
	var t Tally
	prev := -1
	for i, punch := range p {
		if !punch.Present {
			continue
		}
		if prev >= 0 && !domain.IsStart(prev) && domain.IsStart(i) {
			d, ok := Elapsed(p[prev].Value, punch.Value)
			if ok {
				t.Total = t.Total.Add(d)
			} else {
				t.Warnings = append(t.Warnings, Warning{From: prev + 1, To: i + 1, Reason: ReasonOutOfOrder})
			}
		}
		prev = i
	}
	return t
}

// CalculateWorkedHours parses tokens and returns the day's worked total.
func CalculateWorkedHours(tokens ...string) (domain.Duration, error) {
	p, err := ParsePunches(tokens)
	if err != nil {
		return domain.Duration{}, err
	}
	return WorkedTime(p).Total, nil
}
