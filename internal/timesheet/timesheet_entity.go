package timesheet

import (
	"time"

	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
)

const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

type Timesheet struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_timesheet_user_week,priority:1"`
	WeekStart        time.Time       `gorm:"type:date;not null;uniqueIndex:uq_timesheet_user_week,priority:2"`
	WeekEnd          time.Time       `gorm:"type:date;not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	TotalHours       decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	BillableHours    decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	NonBillableHours decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	SubmittedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User        *user.User            `gorm:"foreignKey:UserID"`
	TimeEntries []timeentry.TimeEntry `gorm:"foreignKey:TimesheetID"`
	Approvals   []Approval            `gorm:"foreignKey:TimesheetID"`
}

// Approval is one manager's decision on one submission. A timesheet is
// submitted at most once, and uq_timesheet_approval_timesheet holds it to
// one approval.
type Approval struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TimesheetID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_timesheet_approval_timesheet"`
	ApproverID      uuid.UUID `gorm:"type:uuid;not null;index:idx_approvals_approver_status"`
	SubmitterID     uuid.UUID `gorm:"type:uuid;not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_approvals_approver_status"`
	RejectionReason *string   `gorm:"type:text"`
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Approver  *user.User `gorm:"foreignKey:ApproverID"`
	Submitter *user.User `gorm:"foreignKey:SubmitterID"`
	Timesheet *Timesheet `gorm:"foreignKey:TimesheetID"`
}

func (Approval) TableName() string {
	return "timesheet_approvals"
}

// EntryMutable reports whether entries of a timesheet in status may change.
func EntryMutable(status string) bool {
	return status == StatusDraft
}
