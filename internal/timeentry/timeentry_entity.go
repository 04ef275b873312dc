package timeentry

import (
	"time"

	"go-timesheet/internal/project"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TimeEntry struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index:idx_time_entries_user_date"`
	ProjectID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	TaskID      uuid.UUID           `gorm:"type:uuid;not null"`
	Date        time.Time           `gorm:"type:date;not null;index:idx_time_entries_user_date"`
	Hours       decimal.Decimal     `gorm:"type:decimal(6,2);not null"`
	IsBillable  bool                `gorm:"not null"`
	HourlyRate  decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	Notes       string              `gorm:"type:text"`
	TimesheetID *uuid.UUID          `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Project *project.Project `gorm:"foreignKey:ProjectID"`
	Task    *project.Task    `gorm:"foreignKey:TaskID"`
}

// Attached reports whether the entry belongs to a timesheet.
func (e TimeEntry) Attached() bool {
	return e.TimesheetID != nil && *e.TimesheetID != uuid.Nil
}
