package events

import "time"

const TimesheetLifecycleTopic = "timesheet.lifecycle.v1"

const (
	TimesheetSubmitted = "timesheet.submitted"
	TimesheetApproved  = "timesheet.approved"
	TimesheetRejected  = "timesheet.rejected"
)

// TimesheetLifecycleEvent is published once per workflow transition.
// Hours are decimal strings so consumers never round through float64.
type TimesheetLifecycleEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	TimesheetID     string    `json:"timesheet_id"`
	UserID          string    `json:"user_id"`
	ActorID         string    `json:"actor_id"`
	ApprovalID      string    `json:"approval_id,omitempty"`
	ApproverID      string    `json:"approver_id,omitempty"`
	WeekStart       string    `json:"week_start"`
	Status          string    `json:"status"`
	TotalHours      string    `json:"total_hours,omitempty"`
	BillableHours   string    `json:"billable_hours,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
