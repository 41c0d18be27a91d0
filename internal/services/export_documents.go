package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"workhours/internal/domain"
	"workhours/internal/hours"
)

var reportHeaders = []string{"Day", "Start 1", "Stop 1", "Start 2", "Stop 2", "Start 3", "Stop 3", "Worked", "Break", "Balance", "Report", "Suspect"}

// BuildReportXLSX renders a workbook with a summary sheet and one row per day.
func BuildReportXLSX(report *domain.PeriodReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	daysSheet := "days"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(daysSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Work hours report")
	_ = f.SetCellValue(summarySheet, "A3", "Period")
	_ = f.SetCellValue(summarySheet, "B3", report.Period.Label())
	_ = f.SetCellValue(summarySheet, "A4", "Starting balance")
	_ = f.SetCellValue(summarySheet, "B4", hours.FormatMinutes(report.StartingBalance))
	_ = f.SetCellValue(summarySheet, "A5", "Ending balance")
	_ = f.SetCellValue(summarySheet, "B5", hours.FormatMinutes(report.EndingBalance))
	_ = f.SetCellValue(summarySheet, "A6", "Ending balance (minutes)")
	_ = f.SetCellValue(summarySheet, "B6", report.EndingBalance)
	_ = f.SetCellValue(summarySheet, "A7", "Days")
	_ = f.SetCellValue(summarySheet, "B7", len(report.Rows))
	_ = f.SetCellValue(summarySheet, "A8", "Suspect days")
	_ = f.SetCellValue(summarySheet, "B8", report.SuspectDays())

	for i, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(daysSheet, cell, h)
	}
	for i, row := range report.Rows {
		values := []any{row.Day, row.Start1, row.Stop1, row.Start2, row.Stop2, row.Start3, row.Stop3,
			row.Worked, row.Break, row.Balance, row.Report, row.Suspect}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(daysSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReportPDF renders a one-table landscape PDF of the report.
func BuildReportPDF(report *domain.PeriodReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Work hours report: %s", report.Period.Label()))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Starting balance: %s", hours.FormatMinutes(report.StartingBalance)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Ending balance: %s", hours.FormatMinutes(report.EndingBalance)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Days: %d, suspect: %d", len(report.Rows), report.SuspectDays()))
	pdf.Ln(8)

	widths := []float64{26, 17, 17, 17, 17, 17, 17, 22, 22, 24, 0}
	columns := reportHeaders[:len(widths)]
	pdf.SetFont("Arial", "B", 9)
	for i, h := range columns {
		w := widths[i]
		if w == 0 {
			w = 80
		}
		pdf.CellFormat(w, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range report.Rows {
		marker := ""
		if row.Suspect {
			marker = "* "
		}
		values := []string{marker + row.Day, row.Start1, row.Stop1, row.Start2, row.Stop2, row.Start3, row.Stop3,
			row.Worked, row.Break, row.Balance, fmt.Sprintf("%d warning(s)", len(row.Warnings))}
		for i, v := range values {
			w := widths[i]
			if w == 0 {
				w = 80
			}
			align := "C"
			if i >= 7 {
				align = "R"
			}
			pdf.CellFormat(w, 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
