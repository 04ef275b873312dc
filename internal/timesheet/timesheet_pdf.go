package timesheet

import (
	"bytes"
	"fmt"
	"strings"

	"go-timesheet/internal/shared/dateutil"
	"go-timesheet/internal/summary"
	"go-timesheet/internal/timeentry"
)

func timesheetLines(ts *Timesheet) []string {
	owner := ts.UserID.String()
	if ts.User != nil {
		owner = ts.User.FullName()
	}

	lines := []string{
		"Timesheet",
		fmt.Sprintf("Employee: %s", owner),
		fmt.Sprintf("Week: %s to %s", dateutil.Format(ts.WeekStart), dateutil.Format(ts.WeekEnd)),
		fmt.Sprintf("Status: %s", ts.Status),
		"",
	}

	for _, e := range ts.TimeEntries {
		project, task := "-", "-"
		if e.Project != nil {
			project = e.Project.Name
		}
		if e.Task != nil {
			task = e.Task.Name
		}
		billable := "non-billable"
		if e.IsBillable {
			billable = "billable"
		}
		lines = append(lines, fmt.Sprintf("%s  %s / %s  %sh  %s",
			dateutil.Format(e.Date), project, task, e.Hours.StringFixed(2), billable))
	}

	sum := summary.Summarize(timeentry.ToSummaryEntries(ts.TimeEntries))
	lines = append(lines,
		"",
		fmt.Sprintf("Total hours: %s", sum.TotalHours.StringFixed(2)),
		fmt.Sprintf("Billable hours: %s", sum.BillableHours.StringFixed(2)),
		fmt.Sprintf("Non-billable hours: %s", sum.NonBillableHours.StringFixed(2)),
		fmt.Sprintf("Billable: %s%%", sum.BillablePercentage.StringFixed(2)),
	)
	if len(sum.ByProject) > 0 {
		lines = append(lines, "", "Hours by project")
		for _, p := range sum.ByProject {
			name := p.Name
			if p.ClientName != "" {
				name = p.ClientName + " / " + p.Name
			}
			lines = append(lines, fmt.Sprintf("  %s: %sh", name, p.Hours.StringFixed(2)))
		}
	}
	return lines
}

func buildTimesheetPDF(ts *Timesheet) ([]byte, error) {
	return buildSimplePDF(timesheetLines(ts))
}

// buildSimplePDF renders lines onto a single A4 page with the Helvetica base
// font. Lines past the bottom margin are dropped.
func buildSimplePDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Timesheet"}
	}
	const maxLines = 52
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "...")
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)
	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

// pdfEscape also replaces runes outside printable ASCII with "?".
func pdfEscape(v string) string {
	v = strings.Map(func(r rune) rune {
		if r > 126 || (r < 32 && r != '\t') {
			return '?'
		}
		return r
	}, v)
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
