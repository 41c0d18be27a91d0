package validation

import (
	"fmt"
	"strings"
	"time"

	"workhours/internal/domain"
	"workhours/internal/hours"
)

// PunchValidator checks a day's tokens before they are stored.
// Any problem rejects the whole day.
type PunchValidator struct {
	validator *Validator
}

// NewPunchValidator creates a new punch validator
func NewPunchValidator() *PunchValidator {
	return &PunchValidator{validator: NewValidator()}
}

func punchField(i int) string {
	return fmt.Sprintf("punch %d", i+1)
}

// ValidateClockTokens checks the token count and that every token is a clock time within a day.
// Unlike ValidatePunches it accepts any order.
func (pv *PunchValidator) ValidateClockTokens(tokens []string) error {
	_, validationError := pv.readTokens(tokens)
	return validationError.Err()
}

// ValidatePunches validates up to six positional tokens
func (pv *PunchValidator) ValidatePunches(tokens []string) error {
	seq, validationError := pv.readTokens(tokens)
	if validationError.HasErrors() {
		return validationError
	}

	prev := -1
	for i, p := range seq {
		if !p.Present {
			continue
		}
		if prev >= 0 && p.Value.Minutes() < seq[prev].Value.Minutes() {
			validationError.AddInvalidOrderError(punchField(i), p.Value.String(),
				fmt.Sprintf("%s is earlier than %s at %s", p.Value, punchField(prev), seq[prev].Value))
		}
		prev = i
	}

	for n := 0; n < domain.PunchSlots/2; n++ {
		start, stop := seq.Pair(n)
		if stop.Present && !start.Present {
			validationError.AddRequiredError(punchField(2 * n))
		}
	}

	return validationError.Err()
}

// readTokens parses each token and records format and range problems
func (pv *PunchValidator) readTokens(tokens []string) (domain.PunchSequence, *ValidationError) {
	validationError := NewValidationError()
	var seq domain.PunchSequence

	if len(tokens) > domain.PunchSlots {
		validationError.AddInvalidCountError("punches", len(tokens), domain.PunchSlots)
		return seq, validationError
	}

	for i, tok := range tokens {
		if !pv.validator.IsNonEmptyString(tok) {
			continue
		}
		v, err := hours.ParseClockValue(tok)
		if err != nil {
			validationError.AddInvalidFormatError(punchField(i), tok, "HH:MM")
			continue
		}
		if !pv.validator.IsValidHour(v.Hour) || !pv.validator.IsValidMinute(v.Minute) {
			validationError.AddInvalidRangeError(punchField(i), tok, "must be between 00:00 and 23:59")
			continue
		}
		seq[i] = domain.Punch{Value: v, Present: true}
	}
	return seq, validationError
}

// ValidateDay validates the calendar day a record is stored under
func (pv *PunchValidator) ValidateDay(day time.Time) error {
	validationError := NewValidationError()
	if day.IsZero() {
		validationError.AddRequiredError("day")
	} else if !pv.validator.IsReasonableDate(day) {
		validationError.AddInvalidValueError("day", day.Format(domain.DayIDLayout), "must be within reasonable date range")
	}
	return validationError.Err()
}

// ValidateDayRecord validates both the day and its punches
func (pv *PunchValidator) ValidateDayRecord(day time.Time, tokens []string) error {
	validationError := NewValidationError()
	validationError.Merge(pv.ValidateDay(day))
	validationError.Merge(pv.ValidatePunches(tokens))
	return validationError.Err()
}

// ValidateDayArgument validates a user supplied day: "today", "yesterday", "3d" or YYYY-MM-DD
func (pv *PunchValidator) ValidateDayArgument(arg string) error {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today", "yesterday":
		return nil
	}
	if pv.validator.IsValidDaysAgo(arg) {
		return nil
	}
	if _, err := domain.ParseDayID(arg); err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("day", arg, "today, yesterday, Nd or YYYY-MM-DD")
		return validationError
	}
	return nil
}

// ResolveDay turns a validated day argument into a calendar date relative to now
func (pv *PunchValidator) ResolveDay(arg string, now time.Time) (time.Time, error) {
	if err := pv.ValidateDayArgument(arg); err != nil {
		return time.Time{}, err
	}
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return domain.DateOf(now), nil
	case "yesterday":
		return domain.DateOf(now.AddDate(0, 0, -1)), nil
	}
	if n := pv.validator.DaysAgo(arg); n >= 0 {
		return domain.DateOf(now.AddDate(0, 0, -n)), nil
	}
	return domain.ParseDayID(arg)
}
