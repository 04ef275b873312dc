package activity

import (
	"context"
	"errors"

	activityerrors "go-timesheet/internal/activity/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Activity) error
	ListByTimesheet(ctx context.Context, timesheetID uuid.UUID) ([]Activity, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Activity) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if isDuplicateEvent(err) {
		return activityerrors.ErrDuplicateEvent
	}
	return err
}

// ListByTimesheet returns the newest activity first.
func (r *repository) ListByTimesheet(ctx context.Context, timesheetID uuid.UUID) ([]Activity, error) {
	var out []Activity
	err := r.db.WithContext(ctx).
		Where("timesheet_id = ?", timesheetID).
		Order("occurred_at DESC").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func isDuplicateEvent(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_timesheet_activity_event"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
