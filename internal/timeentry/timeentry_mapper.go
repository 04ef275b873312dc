package timeentry

import (
	"time"

	"go-timesheet/internal/shared/dateutil"
	"go-timesheet/internal/summary"
)

func MapToResponse(e TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:         e.ID.String(),
		UserID:     e.UserID.String(),
		ProjectID:  e.ProjectID.String(),
		TaskID:     e.TaskID.String(),
		Date:       dateutil.Format(e.Date),
		Hours:      e.Hours,
		IsBillable: e.IsBillable,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.Project != nil {
		resp.ProjectName = e.Project.Name
		resp.ClientName = e.Project.ClientName()
	}
	if e.Task != nil {
		resp.TaskName = e.Task.Name
	}
	if e.HourlyRate.Valid {
		rate := e.HourlyRate.Decimal
		resp.HourlyRate = &rate
	}
	if e.Attached() {
		v := e.TimesheetID.String()
		resp.TimesheetID = &v
	}
	return resp
}

func MapToListResponse(entries []TimeEntry) []TimeEntryResponse {
	resp := make([]TimeEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = MapToResponse(e)
	}
	return resp
}

// ToSummaryEntries projects stored entries onto the aggregator input.
func ToSummaryEntries(entries []TimeEntry) []summary.Entry {
	out := make([]summary.Entry, 0, len(entries))
	for _, e := range entries {
		se := summary.Entry{
			ProjectID:  e.ProjectID,
			Date:       e.Date,
			Hours:      e.Hours,
			IsBillable: e.IsBillable,
		}
		if e.Project != nil {
			se.ProjectName = e.Project.Name
			se.ClientName = e.Project.ClientName()
		}
		out = append(out, se)
	}
	return out
}
