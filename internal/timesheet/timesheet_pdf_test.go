package timesheet

import (
	"bytes"
	"testing"
	"time"

	"go-timesheet/internal/project"
	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimesheetLines(t *testing.T) {
	acme := &project.Project{ID: uuid.New(), Name: "Portal", Client: &project.Client{Name: "Acme"}}
	internal := &project.Project{ID: uuid.New(), Name: "Hiring"}
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	ts := &Timesheet{
		ID:        uuid.New(),
		WeekStart: monday,
		WeekEnd:   monday.AddDate(0, 0, 6),
		Status:    StatusSubmitted,
		User:      &user.User{FirstName: "Dana", LastName: "Reyes"},
		TimeEntries: []timeentry.TimeEntry{
			{ProjectID: acme.ID, Project: acme, Task: &project.Task{Name: "Build"}, Date: monday, Hours: decimal.RequireFromString("6"), IsBillable: true},
			{ProjectID: internal.ID, Project: internal, Date: monday.AddDate(0, 0, 1), Hours: decimal.RequireFromString("2")},
			{ProjectID: acme.ID, Project: acme, Date: monday.AddDate(0, 0, 2), Hours: decimal.RequireFromString("1.5"), IsBillable: true},
		},
	}

	lines := timesheetLines(ts)

	assert.Contains(t, lines, "Employee: Dana Reyes")
	assert.Contains(t, lines, "Week: 2026-03-02 to 2026-03-08")
	assert.Contains(t, lines, "2026-03-02  Portal / Build  6.00h  billable")
	assert.Contains(t, lines, "2026-03-03  Hiring / -  2.00h  non-billable")
	assert.Contains(t, lines, "Total hours: 9.50")
	assert.Contains(t, lines, "Billable hours: 7.50")
	assert.Contains(t, lines, "  Acme / Portal: 7.50h")
	assert.Contains(t, lines, "  Hiring: 2.00h")
}

func TestBuildSimplePDF(t *testing.T) {
	pdf, err := buildSimplePDF([]string{"Café (draft)", `a\b`})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	assert.Contains(t, string(pdf), `(Caf? \(draft\)) Tj`)
	assert.Contains(t, string(pdf), `(a\\b) Tj`)
}
