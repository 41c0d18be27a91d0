package hours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"workhours/internal/domain"
)

var (
	// ErrInvalidToken is matched by every ParseError.
	ErrInvalidToken = errors.New("invalid punch token")

	// ErrTooManyPunches reports more tokens than a day has slots.
	ErrTooManyPunches = errors.New("too many punches")

	errSigned = errors.New("clock values carry no sign")
)

// ParseError describes a punch token that could not be read as a clock value.
type ParseError struct {
	Token string
	Part  string
	Slot  int // zero-based slot, -1 when the token was parsed on its own
	Err   error
}

func (e *ParseError) Error() string {
	if e.Slot >= 0 {
		return fmt.Sprintf("punch %d: cannot parse %q: %v", e.Slot+1, e.Token, e.Err)
	}
	return fmt.Sprintf("cannot parse %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidToken, e.Err}
}

// ParseClockValue reads "H", "HH:MM" or "H:M" into a clock value.
// An empty token yields 00:00; callers decide whether that means "no punch".
func ParseClockValue(token string) (domain.ClockValue, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ClockValue{}, nil
	}

	hourPart, minutePart, hasColon := strings.Cut(token, ":")
	hour, err := parseComponent(token, hourPart)
	if err != nil {
		return domain.ClockValue{}, err
	}
	if !hasColon {
		return domain.ClockValue{Hour: hour}, nil
	}
	minute, err := parseComponent(token, minutePart)
	if err != nil {
		return domain.ClockValue{}, err
	}
	return domain.ClockValue{Hour: hour, Minute: minute}, nil
}

func parseComponent(token, part string) (int, error) {
	digits := strings.TrimSpace(part)
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return 0, &ParseError{Token: token, Part: part, Slot: -1, Err: errSigned}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Token: token, Part: part, Slot: -1, Err: err}
	}
	return n, nil
}

// ParsePunches reads up to six positional tokens. Empty tokens are absent slots.
// A malformed token also leaves its slot absent; every such failure is returned joined,
// alongside the best-effort sequence.
func ParsePunches(tokens []string) (domain.PunchSequence, error) {
	seq, errs := parsePunches(tokens)
	if len(errs) == 0 {
		return seq, nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return seq, errors.Join(joined...)
}

func parsePunches(tokens []string) (domain.PunchSequence, []*ParseError) {
	var seq domain.PunchSequence
	var errs []*ParseError

	if len(tokens) > domain.PunchSlots {
		errs = append(errs, &ParseError{
			Token: strings.Join(tokens, " "),
			Slot:  -1,
			Err:   fmt.Errorf("%w: got %d, at most %d", ErrTooManyPunches, len(tokens), domain.PunchSlots),
		})
		tokens = tokens[:domain.PunchSlots]
	}

	for i, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		v, err := ParseClockValue(tok)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Slot = i
				errs = append(errs, pe)
			}
			continue
		}
		seq[i] = domain.Punch{Value: v, Present: true}
	}
	return seq, errs
}
