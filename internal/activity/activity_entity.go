package activity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one lifecycle event of a timesheet as seen by the consumer.
// EventID is the outbox id, so redelivered messages are stored once.
type Activity struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventID     string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_timesheet_activity_event"`
	TimesheetID uuid.UUID  `gorm:"type:uuid;not null;index:idx_timesheet_activity_ts_time,priority:1"`
	EventType   string     `gorm:"type:varchar(100);not null"`
	ActorID     *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"type:varchar(20)"`
	Note        string     `gorm:"type:text"`
	RequestID   string     `gorm:"type:varchar(64)"`
	OccurredAt  time.Time  `gorm:"not null;index:idx_timesheet_activity_ts_time,priority:2"`
	CreatedAt   time.Time
}

func (Activity) TableName() string {
	return "timesheet_activities"
}
