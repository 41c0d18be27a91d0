package hours

import "workhours/internal/domain"

// FormatMinutes renders a signed minute balance as "1h 30m" or "-1h 30m".
func FormatMinutes(m int) string {
	if m < 0 {
		return "-" + domain.DurationFromMinutes(-m).String()
	}
	return domain.DurationFromMinutes(m).String()
}
