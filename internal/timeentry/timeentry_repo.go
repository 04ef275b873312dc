package timeentry

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-timesheet/internal/shared/dateutil"
	"go-timesheet/internal/shared/dbtx"
	timeentryerrors "go-timesheet/internal/timeentry/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *TimeEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*TimeEntry, error)
	List(ctx context.Context, f Filter) ([]TimeEntry, error)
	Update(ctx context.Context, e *TimeEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AttachToTimesheet links the user's unattached entries dated within
	// [from, to] to timesheetID and reports how many rows moved.
	AttachToTimesheet(ctx context.Context, userID, timesheetID uuid.UUID, from, to time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*TimeEntry, error) {
	var e TimeEntry
	err := r.db.WithContext(ctx).
		Preload("Project.Client").
		Preload("Task").
		First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, timeentryerrors.ErrTimeEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context, f Filter) ([]TimeEntry, error) {
	db := r.db.WithContext(ctx).
		Preload("Project.Client").
		Preload("Task")

	if f.UserID != uuid.Nil {
		db = db.Where("user_id = ?", f.UserID)
	}
	if f.ProjectID != uuid.Nil {
		db = db.Where("project_id = ?", f.ProjectID)
	}
	if f.ClientID != uuid.Nil {
		db = db.Where("project_id IN (?)",
			r.db.Table("projects").Select("id").Where("client_id = ? AND deleted_at IS NULL", f.ClientID))
	}
	if f.TimesheetID != uuid.Nil {
		db = db.Where("timesheet_id = ?", f.TimesheetID)
	}
	if f.Unattached {
		db = db.Where("timesheet_id IS NULL")
	}
	if !f.From.IsZero() {
		db = db.Where("date >= ?", dateutil.Format(f.From))
	}
	if !f.To.IsZero() {
		db = db.Where("date <= ?", dateutil.Format(f.To))
	}

	var entries []TimeEntry
	err := db.Order("date DESC").Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *repository) Update(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).
		Model(&TimeEntry{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"hours":       e.Hours,
			"is_billable": e.IsBillable,
			"hourly_rate": e.HourlyRate,
			"notes":       e.Notes,
			"updated_at":  time.Now().UTC(),
		}).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&TimeEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return timeentryerrors.ErrTimeEntryNotFound
	}
	return nil
}

func (r *repository) AttachToTimesheet(ctx context.Context, userID, timesheetID uuid.UUID, from, to time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&TimeEntry{}).
		Where("user_id = ?", userID).
		Where("timesheet_id IS NULL").
		Where("date BETWEEN ? AND ?", dateutil.Format(from), dateutil.Format(to)).
		Update("timesheet_id", timesheetID)
	return res.RowsAffected, res.Error
}
