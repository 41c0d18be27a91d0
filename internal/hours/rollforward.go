package hours

import (
	"fmt"
	"sort"

	"workhours/internal/domain"
)

// RollForward folds the recorded days of period into a running balance starting at prior.
// Days are taken in calendar order and days without any punch are skipped.
// A day left with no readable punch is reported as suspect and leaves the balance unchanged.
func RollForward(period domain.PeriodKey, prior int, days []domain.DayRecord) domain.PeriodReport {
	ordered := make([]domain.DayRecord, len(days))
	copy(ordered, days)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Day.Before(ordered[j].Day)
	})

	report := domain.PeriodReport{
		Period:          period,
		StartingBalance: prior,
		Rows:            make([]domain.DailyReportRow, 0, len(ordered)),
	}

	balance := prior
	for _, rec := range ordered {
		if !rec.HasPunches() {
			report.SkippedDays++
			continue
		}

		seq, parseErrs := parsePunches(rec.Tokens[:])
		worked := WorkedTime(seq)
		brk := BreakTime(seq)

		// A day whose every punch was unreadable is kept as a flagged row but not charged
		switch {
		case seq.IsEmpty():
		case worked.Total.Hours >= 8:
			balance += ExtraHours(worked.Total).TotalMinutes()
		default:
			balance -= TimeLeft(worked.Total).TotalMinutes()
		}

		row := domain.DailyReportRow{
			Day:     rec.ID(),
			Worked:  worked.Total.String(),
			Break:   brk.Total.String(),
			Balance: FormatMinutes(balance),
			Report: fmt.Sprintf("%s: worked %s, break %s, balance %s",
				domain.DateText(rec.Day), worked.Total, brk.Total, FormatMinutes(balance)),
		}
		row.SetTokens(rec.Tokens)

		for _, pe := range parseErrs {
			row.Warnings = append(row.Warnings, Warning{From: pe.Slot + 1, To: pe.Slot + 1, Reason: ReasonUnreadable}.String())
		}
		for _, w := range append(worked.Warnings, brk.Warnings...) {
			row.Warnings = append(row.Warnings, w.String())
		}
		row.Suspect = len(row.Warnings) > 0

		report.Rows = append(report.Rows, row)
	}

	report.EndingBalance = balance
	return report
}
