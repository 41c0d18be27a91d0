package cli

import (
	"fmt"
	"io"
	"strings"

	"workhours/internal/domain"
	"workhours/internal/hours"
	"workhours/internal/services"
)

// printDay writes the summary block shown after recording or reading a day
func printDay(w io.Writer, view *services.DayView) {
	fmt.Fprintf(w, "%s\n", view.DateText)
	fmt.Fprintf(w, "  punches:    %s\n", formatTokens(view.Tokens))
	fmt.Fprintf(w, "  worked:     %s\n", view.Worked)
	fmt.Fprintf(w, "  break:      %s\n", view.Break)
	fmt.Fprintf(w, "  left:       %s\n", view.Left)
	if view.Completion != "" {
		fmt.Fprintf(w, "  completion: %s\n", view.Completion)
	}
	fmt.Fprintf(w, "  extra:      %s\n", view.Extra)
	printWarnings(w, view.Warnings)
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "  ! %s\n", warning)
	}
}

func formatTokens(tokens [domain.PunchSlots]string) string {
	parts := make([]string, 0, domain.PunchSlots)
	for i := 0; i < domain.PunchSlots; i += 2 {
		parts = append(parts, fmt.Sprintf("%s - %s", orDash(tokens[i]), orDash(tokens[i+1])))
	}
	return strings.Join(parts, "  ")
}

func orDash(s string) string {
	if s == "" {
		return "--:--"
	}
	return s
}

// printReport writes the roll-forward table of a period
func printReport(w io.Writer, report *domain.PeriodReport, width int) {
	fmt.Fprintf(w, "%s\n", report.Period.Label())
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", min(width, 80)))
	fmt.Fprintf(w, "Starting balance: %s\n\n", hours.FormatMinutes(report.StartingBalance))

	if len(report.Rows) == 0 {
		fmt.Fprintln(w, "No days recorded")
	} else {
		fmt.Fprintf(w, "%-12s %-43s %-9s %-9s %s\n", "Day", "Punches", "Worked", "Break", "Balance")
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", min(width, 80)))
		for _, row := range report.Rows {
			marker := " "
			if row.Suspect {
				marker = "!"
			}
			fmt.Fprintf(w, "%s%-11s %-43s %-9s %-9s %s\n",
				marker, row.Day, formatTokens(row.Tokens()), row.Worked, row.Break, row.Balance)
		}
	}

	fmt.Fprintf(w, "\nEnding balance: %s\n", hours.FormatMinutes(report.EndingBalance))
	if report.SkippedDays > 0 {
		fmt.Fprintf(w, "Skipped days: %d\n", report.SkippedDays)
	}
	if n := report.SuspectDays(); n > 0 {
		fmt.Fprintf(w, "Suspect days: %d\n", n)
		for _, row := range report.Rows {
			for _, warning := range row.Warnings {
				fmt.Fprintf(w, "  ! %s %s\n", row.Day, warning)
			}
		}
	}
}
