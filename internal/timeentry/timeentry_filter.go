package timeentry

import (
	"time"

	"github.com/google/uuid"
)

// Filter lists the fields a time entry query may be narrowed by.
// Zero values mean "no constraint".
type Filter struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	ClientID    uuid.UUID
	TimesheetID uuid.UUID
	From        time.Time
	To          time.Time
	// Unattached keeps only entries with no timesheet.
	Unattached bool
}

func (f Filter) HasDateRange() bool {
	return !f.From.IsZero() || !f.To.IsZero()
}
