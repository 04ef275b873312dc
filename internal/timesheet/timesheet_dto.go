package timesheet

import (
	"go-timesheet/internal/summary"
	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/user"

	"github.com/shopspring/decimal"
)

type CreateTimesheetRequest struct {
	WeekStart string `json:"week_start" binding:"required"`
}

type RejectTimesheetRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

type TimesheetResponse struct {
	ID                 string                        `json:"id"`
	UserID             string                        `json:"user_id"`
	WeekStart          string                        `json:"week_start"`
	WeekEnd            string                        `json:"week_end"`
	Status             string                        `json:"status"`
	TotalHours         decimal.Decimal               `json:"total_hours"`
	BillableHours      decimal.Decimal               `json:"billable_hours"`
	NonBillableHours   decimal.Decimal               `json:"non_billable_hours"`
	BillablePercentage *decimal.Decimal              `json:"billable_percentage,omitempty"`
	SubmittedAt        *string                       `json:"submitted_at,omitempty"`
	CreatedAt          string                        `json:"created_at"`
	User               *user.UserSummary             `json:"user,omitempty"`
	TimeEntries        []timeentry.TimeEntryResponse `json:"time_entries"`
	Approvals          []ApprovalResponse            `json:"approvals,omitempty"`
}

type ApprovalResponse struct {
	ID              string             `json:"id"`
	TimesheetID     string             `json:"timesheet_id"`
	ApproverID      string             `json:"approver_id"`
	SubmitterID     string             `json:"submitter_id"`
	Status          string             `json:"status"`
	RejectionReason *string            `json:"rejection_reason,omitempty"`
	ApprovedAt      *string            `json:"approved_at,omitempty"`
	RejectedAt      *string            `json:"rejected_at,omitempty"`
	CreatedAt       string             `json:"created_at"`
	Approver        *user.UserSummary  `json:"approver,omitempty"`
	Submitter       *user.UserSummary  `json:"submitter,omitempty"`
	Timesheet       *TimesheetResponse `json:"timesheet,omitempty"`
}

// SubmitResponse carries the snapshot taken at submission.
type SubmitResponse struct {
	Timesheet TimesheetResponse `json:"timesheet"`
	Summary   summary.Summary   `json:"summary"`
	Approval  *ApprovalResponse `json:"approval,omitempty"`
}
