package domain

// DailyReportRow is one line of a monthly report and the element type of the JSON export.
type DailyReportRow struct {
	Day      string   `json:"day"`
	Start1   string   `json:"start1"`
	Stop1    string   `json:"stop1"`
	Start2   string   `json:"start2"`
	Stop2    string   `json:"stop2"`
	Start3   string   `json:"start3"`
	Stop3    string   `json:"stop3"`
	Worked   string   `json:"worked"`
	Break    string   `json:"break"`
	Balance  string   `json:"balance"`
	Report   string   `json:"report"`
	Suspect  bool     `json:"suspect,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Tokens returns the punch fields in slot order.
func (r DailyReportRow) Tokens() [PunchSlots]string {
	return [PunchSlots]string{r.Start1, r.Stop1, r.Start2, r.Stop2, r.Start3, r.Stop3}
}

// SetTokens fills the punch fields from slot order.
func (r *DailyReportRow) SetTokens(tokens [PunchSlots]string) {
	r.Start1, r.Stop1 = tokens[0], tokens[1]
	r.Start2, r.Stop2 = tokens[2], tokens[3]
	r.Start3, r.Stop3 = tokens[4], tokens[5]
}

// PeriodReport is the result of rolling a period forward.
type PeriodReport struct {
	Period          PeriodKey
	StartingBalance int
	EndingBalance   int
	Rows            []DailyReportRow
	SkippedDays     int
}

// SuspectDays counts rows flagged for out-of-order or unreadable punches.
func (r PeriodReport) SuspectDays() int {
	n := 0
	for _, row := range r.Rows {
		if row.Suspect {
			n++
		}
	}
	return n
}

// PeriodBalance is the ending balance carried out of a period, in minutes.
type PeriodBalance struct {
	Period  PeriodKey
	Minutes int
}
