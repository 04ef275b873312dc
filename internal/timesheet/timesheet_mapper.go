package timesheet

import (
	"time"

	"go-timesheet/internal/shared/dateutil"
	"go-timesheet/internal/summary"
	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/user"
)

func mapToResponse(ts Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:               ts.ID.String(),
		UserID:           ts.UserID.String(),
		WeekStart:        dateutil.Format(ts.WeekStart),
		WeekEnd:          dateutil.Format(ts.WeekEnd),
		Status:           ts.Status,
		TotalHours:       ts.TotalHours,
		BillableHours:    ts.BillableHours,
		NonBillableHours: ts.NonBillableHours,
		CreatedAt:        ts.CreatedAt.UTC().Format(time.RFC3339),
		User:             user.ToSummary(ts.User),
		TimeEntries:      timeentry.MapToListResponse(ts.TimeEntries),
	}
	if ts.SubmittedAt != nil {
		resp.SubmittedAt = formatTime(ts.SubmittedAt)
		pct := summary.BillablePercentage(ts.BillableHours, ts.TotalHours)
		resp.BillablePercentage = &pct
	}
	if len(ts.Approvals) > 0 {
		resp.Approvals = make([]ApprovalResponse, len(ts.Approvals))
		for i, a := range ts.Approvals {
			resp.Approvals[i] = mapApproval(a)
		}
	}
	return resp
}

func mapApproval(a Approval) ApprovalResponse {
	resp := ApprovalResponse{
		ID:              a.ID.String(),
		TimesheetID:     a.TimesheetID.String(),
		ApproverID:      a.ApproverID.String(),
		SubmitterID:     a.SubmitterID.String(),
		Status:          a.Status,
		RejectionReason: a.RejectionReason,
		ApprovedAt:      formatTime(a.ApprovedAt),
		RejectedAt:      formatTime(a.RejectedAt),
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339),
		Approver:        user.ToSummary(a.Approver),
		Submitter:       user.ToSummary(a.Submitter),
	}
	if a.Timesheet != nil {
		ts := mapToResponse(*a.Timesheet)
		resp.Timesheet = &ts
	}
	return resp
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}
