package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-timesheet/internal/shared/dateutil"
	"go-timesheet/internal/shared/dbtx"
	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Totals struct {
	Total       decimal.Decimal
	Billable    decimal.Decimal
	NonBillable decimal.Decimal
}

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// InsertIfAbsent relies on uq_timesheet_user_week; a concurrent insert
	// for the same week is silently skipped.
	InsertIfAbsent(ctx context.Context, ts *Timesheet) error
	FindByUserWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*Timesheet, error)
	// FindByID loads owner, entries (date asc) and approvals (newest first).
	FindByID(ctx context.Context, id uuid.UUID) (*Timesheet, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Timesheet, error)
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*Timesheet, error)
	// FindCoveringForShare returns the user's timesheet whose week contains
	// date, or ErrTimesheetNotFound.
	FindCoveringForShare(ctx context.Context, userID uuid.UUID, date time.Time) (*Timesheet, error)
	// MarkSubmitted moves a DRAFT timesheet to SUBMITTED with its totals.
	// It reports false when the row was no longer DRAFT.
	MarkSubmitted(ctx context.Context, id uuid.UUID, totals Totals, at time.Time) (bool, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
	CreateApproval(ctx context.Context, a *Approval) error
	FindPendingApprovalForUpdate(ctx context.Context, timesheetID, approverID uuid.UUID) (*Approval, error)
	// ResolveApproval moves a PENDING approval to status, reporting false
	// when it was already resolved.
	ResolveApproval(ctx context.Context, id uuid.UUID, status string, reason *string, at time.Time) (bool, error)
	ListPendingApprovals(ctx context.Context, approverID uuid.UUID) ([]Approval, error)
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

func (r *repository) InsertIfAbsent(ctx context.Context, ts *Timesheet) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_start"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(ts).Error
}

func (r *repository) FindByUserWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, dateutil.Format(weekStart)).
		First(&ts).Error
	return notFound(&ts, err)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TimeEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC").Order("created_at ASC")
		}).
		Preload("TimeEntries.Project.Client").
		Preload("TimeEntries.Task").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Approvals.Approver").
		First(&ts, "id = ?", id).Error
	return notFound(&ts, err)
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ts, "id = ?", id).Error
	return notFound(&ts, err)
}

func (r *repository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*Timesheet, error) {
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		First(&ts, "id = ?", id).Error
	return notFound(&ts, err)
}

func (r *repository) FindCoveringForShare(ctx context.Context, userID uuid.UUID, date time.Time) (*Timesheet, error) {
	d := dateutil.Format(date)
	var ts Timesheet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("user_id = ? AND week_start <= ? AND week_end >= ?", userID, d, d).
		Order("week_start DESC").
		First(&ts).Error
	return notFound(&ts, err)
}

func (r *repository) MarkSubmitted(ctx context.Context, id uuid.UUID, totals Totals, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Timesheet{}).
		Where("id = ? AND status = ?", id, StatusDraft).
		Updates(map[string]any{
			"status":             StatusSubmitted,
			"total_hours":        totals.Total,
			"billable_hours":     totals.Billable,
			"non_billable_hours": totals.NonBillable,
			"submitted_at":       at,
			"updated_at":         at,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *repository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Timesheet{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":     to,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected == 1, res.Error
}

func (r *repository) CreateApproval(ctx context.Context, a *Approval) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *repository) FindPendingApprovalForUpdate(ctx context.Context, timesheetID, approverID uuid.UUID) (*Approval, error) {
	var a Approval
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("timesheet_id = ? AND approver_id = ? AND status = ?", timesheetID, approverID, ApprovalPending).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, timesheeterrors.ErrApprovalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ResolveApproval(ctx context.Context, id uuid.UUID, status string, reason *string, at time.Time) (bool, error) {
	values := map[string]any{
		"status":     status,
		"updated_at": at,
	}
	switch status {
	case ApprovalApproved:
		values["approved_at"] = at
	case ApprovalRejected:
		values["rejected_at"] = at
		values["rejection_reason"] = reason
	}

	res := r.db.WithContext(ctx).
		Model(&Approval{}).
		Where("id = ? AND status = ?", id, ApprovalPending).
		Updates(values)
	return res.RowsAffected == 1, res.Error
}

func (r *repository) ListPendingApprovals(ctx context.Context, approverID uuid.UUID) ([]Approval, error) {
	var approvals []Approval
	err := r.db.WithContext(ctx).
		Preload("Submitter").
		Preload("Timesheet").
		Preload("Timesheet.TimeEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("Timesheet.TimeEntries.Project.Client").
		Preload("Timesheet.TimeEntries.Task").
		Where("approver_id = ? AND status = ?", approverID, ApprovalPending).
		Order("created_at DESC").
		Find(&approvals).Error
	return approvals, err
}

func notFound(ts *Timesheet, err error) (*Timesheet, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, timesheeterrors.ErrTimesheetNotFound
	}
	if err != nil {
		return nil, err
	}
	return ts, nil
}
