package hours

import (
	"fmt"
	"time"

	"workhours/internal/domain"
)

// DailyQuotaMinutes is the eight-hour working day.
const DailyQuotaMinutes = 8 * 60

// DoneMessage is shown instead of a completion time once the quota is met.
const DoneMessage = "You are done today! Go home!"

// TimeLeft returns what remains of the daily quota, never less than zero.
func TimeLeft(worked domain.Duration) domain.Duration {
	left := DailyQuotaMinutes - worked.TotalMinutes()
	if left <= 0 {
		return domain.Duration{}
	}
	return domain.DurationFromMinutes(left)
}

// Completion is the wall-clock time the quota will be met, or Done when it already is.
type Completion struct {
	Done bool
	At   domain.ClockValue
}

func (c Completion) String() string {
	if c.Done {
		return DoneMessage
	}
	return fmt.Sprintf("%d:%02d", c.At.Hour, c.At.Minute)
}

// CompletionTime projects the end of the working day from now. Hours wrap past midnight.
func CompletionTime(worked domain.Duration, now time.Time) Completion {
	if worked.TotalMinutes() >= DailyQuotaMinutes {
		return Completion{Done: true}
	}
	left := TimeLeft(worked)
	h, m := domain.SplitMinutes(now.Hour()*60 + now.Minute() + left.TotalMinutes())
	return Completion{At: domain.ClockValue{Hour: h % 24, Minute: m}}
}

// ExtraHours returns the time worked beyond the quota.
// Only days past eight hours with leftover minutes count: 8h 0m and 9h 0m both yield zero.
func ExtraHours(worked domain.Duration) domain.Duration {
	if worked.Hours >= 8 && worked.Minutes > 0 {
		return domain.Duration{Hours: worked.Hours - 8, Minutes: worked.Minutes}
	}
	return domain.Duration{}
}

// DaySummary is everything shown for a single day.
type DaySummary struct {
	Worked     domain.Duration
	Break      domain.Duration
	Left       domain.Duration
	Completion Completion
	Extra      domain.Duration
	Warnings   []Warning
}

// Suspect reports whether any punch pair was dropped from the totals.
func (s DaySummary) Suspect() bool {
	return len(s.Warnings) > 0
}

// Summarize computes the day view for p as of now.
func Summarize(p domain.PunchSequence, now time.Time) DaySummary {
	worked := WorkedTime(p)
	brk := BreakTime(p)
	return DaySummary{
		Worked:     worked.Total,
		Break:      brk.Total,
		Left:       TimeLeft(worked.Total),
		Completion: CompletionTime(worked.Total, now),
		Extra:      ExtraHours(worked.Total),
		Warnings:   append(worked.Warnings, brk.Warnings...),
	}
}
