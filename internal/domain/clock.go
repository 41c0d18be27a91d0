package domain

import "fmt"

// PunchSlots is the fixed number of punches recorded for a day: three start/stop pairs.
const PunchSlots = 6

// Slot positions, zero-based.
const (
	MorningStart = iota
	LunchStop
	AfternoonStart
	AfternoonStop
	EveningStart
	FinalStop
)

// ClockValue is a naive local wall-clock reading. Hour and minute are not range checked here.
type ClockValue struct {
	Hour   int
	Minute int
}

// String renders the value as HH:MM.
func (c ClockValue) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the value as minutes since midnight.
func (c ClockValue) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Punch is one slot of a day's punch card. An absent punch carries no value.
type Punch struct {
	Value   ClockValue
	Present bool
}

// At returns a present punch at the given clock value.
func At(hour, minute int) Punch {
	return Punch{Value: ClockValue{Hour: hour, Minute: minute}, Present: true}
}

// String renders a present punch as HH:MM and an absent one as the empty string.
func (p Punch) String() string {
	if !p.Present {
		return ""
	}
	return p.Value.String()
}

// PunchSequence holds the six positional punches of a day.
// Pairs (0,1), (2,3), (4,5) are work segments; stop->resume gaps between them are breaks.
type PunchSequence [PunchSlots]Punch

// IsStart reports whether slot i opens a work segment.
func IsStart(i int) bool {
	return i%2 == 0
}

// IsEmpty reports whether no punch is present.
func (s PunchSequence) IsEmpty() bool {
	for _, p := range s {
		if p.Present {
			return false
		}
	}
	return true
}

// PresentCount returns the number of present punches.
func (s PunchSequence) PresentCount() int {
	n := 0
	for _, p := range s {
		if p.Present {
			n++
		}
	}
	return n
}

// Pair returns the start and stop punches of work segment n (0, 1 or 2).
func (s PunchSequence) Pair(n int) (Punch, Punch) {
	return s[2*n], s[2*n+1]
}

// Starts returns the three segment-opening punches.
func (s PunchSequence) Starts() [PunchSlots / 2]Punch {
	return [PunchSlots / 2]Punch{s[MorningStart], s[AfternoonStart], s[EveningStart]}
}

// Stops returns the three segment-closing punches.
func (s PunchSequence) Stops() [PunchSlots / 2]Punch {
	return [PunchSlots / 2]Punch{s[LunchStop], s[AfternoonStop], s[FinalStop]}
}
