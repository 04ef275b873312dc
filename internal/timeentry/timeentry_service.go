package timeentry

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-timesheet/internal/domain"
	"go-timesheet/internal/project"
	"go-timesheet/internal/shared/dateutil"
	"go-timesheet/internal/summary"
	timeentryerrors "go-timesheet/internal/timeentry/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxHoursPerEntry = decimal.NewFromInt(24)

// TimesheetGuard is the workflow engine's edit lock as seen from time
// entries. Both calls run on the caller's transaction so the parent
// timesheet row stays locked until commit.
type TimesheetGuard interface {
	// CanMutate fails with a locked-timesheet error when entry belongs to a
	// timesheet that has left DRAFT.
	CanMutate(ctx context.Context, tx *sql.Tx, entry *TimeEntry) error
	// ResolveWeek returns the id of the user's DRAFT timesheet covering
	// date, nil when there is none, or a locked-timesheet error.
	ResolveWeek(ctx context.Context, tx *sql.Tx, userID uuid.UUID, date time.Time) (*uuid.UUID, error)
}

//go:generate mockgen -source=timeentry_service.go -destination=mock/timeentry_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller domain.Caller, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	List(ctx context.Context, caller domain.Caller, q ListTimeEntriesQuery) ([]TimeEntryResponse, error)
	Update(ctx context.Context, caller domain.Caller, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	Delete(ctx context.Context, caller domain.Caller, id string) error
	WeeklySummary(ctx context.Context, caller domain.Caller, q WeeklySummaryQuery) (WeeklySummaryResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	projects project.Repository
	guard    TimesheetGuard
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, projects project.Repository, guard TimesheetGuard, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeentry.service")
	}
	return &service{db: db, repo: repo, projects: projects, guard: guard, logger: l}
}

func (s *service) Create(ctx context.Context, caller domain.Caller, req CreateTimeEntryRequest) (TimeEntryResponse, error) {
	s.logger.Debug("create time entry requested",
		zap.String("user_id", caller.UserID.String()),
		zap.String("task_id", req.TaskID),
		zap.String("date", req.Date),
	)

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidProjectOrTask
	}
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidProjectOrTask
	}
	date, err := dateutil.Parse(req.Date)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidDateFormat
	}
	if err := validateHours(req.Hours); err != nil {
		return TimeEntryResponse{}, err
	}
	if req.HourlyRate != nil && req.HourlyRate.IsNegative() {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidHourlyRate
	}

	task, err := s.projects.FindTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, project.ErrTaskNotFound) {
			return TimeEntryResponse{}, timeentryerrors.ErrInvalidProjectOrTask
		}
		s.logger.Error("create time entry task lookup failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	if task.ProjectID != projectID {
		s.logger.Warn("create time entry task not in project",
			zap.String("task_id", req.TaskID),
			zap.String("project_id", req.ProjectID),
		)
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidProjectOrTask
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create time entry begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	timesheetID, err := s.guard.ResolveWeek(ctx, tx, caller.UserID, date)
	if err != nil {
		s.logger.Warn("create time entry blocked by timesheet",
			zap.String("user_id", caller.UserID.String()),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return TimeEntryResponse{}, err
	}

	e := &TimeEntry{
		ID:          uuid.New(),
		UserID:      caller.UserID,
		ProjectID:   projectID,
		TaskID:      taskID,
		Date:        date,
		Hours:       req.Hours,
		IsBillable:  task.IsBillable,
		HourlyRate:  task.HourlyRate,
		Notes:       req.Notes,
		TimesheetID: timesheetID,
	}
	if req.IsBillable != nil {
		e.IsBillable = *req.IsBillable
	}
	if req.HourlyRate != nil {
		e.HourlyRate = decimal.NewNullDecimal(*req.HourlyRate)
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create time entry persist failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create time entry commit failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}

	e.Project = task.Project
	e.Task = task
	s.logger.Info("create time entry success",
		zap.String("time_entry_id", e.ID.String()),
		zap.String("user_id", caller.UserID.String()),
		zap.Bool("attached", e.Attached()),
	)
	return MapToResponse(*e), nil
}

func (s *service) List(ctx context.Context, caller domain.Caller, q ListTimeEntriesQuery) ([]TimeEntryResponse, error) {
	f, err := buildFilter(caller, q)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("list time entries failed", zap.Error(err))
		return nil, err
	}
	return MapToListResponse(entries), nil
}

func (s *service) Update(ctx context.Context, caller domain.Caller, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error) {
	s.logger.Debug("update time entry requested",
		zap.String("time_entry_id", id),
		zap.String("user_id", caller.UserID.String()),
	)

	entryID, err := uuid.Parse(id)
	if err != nil {
		return TimeEntryResponse{}, timeentryerrors.ErrTimeEntryNotFound
	}
	if req.Hours != nil {
		if err := validateHours(*req.Hours); err != nil {
			return TimeEntryResponse{}, err
		}
	}
	if req.HourlyRate != nil && req.HourlyRate.IsNegative() {
		return TimeEntryResponse{}, timeentryerrors.ErrInvalidHourlyRate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update time entry begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := s.loadMutable(ctx, tx, qtx, caller, entryID)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	if req.Hours != nil {
		e.Hours = *req.Hours
	}
	if req.IsBillable != nil {
		e.IsBillable = *req.IsBillable
	}
	if req.HourlyRate != nil {
		e.HourlyRate = decimal.NewNullDecimal(*req.HourlyRate)
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update time entry persist failed",
			zap.String("time_entry_id", id),
			zap.Error(err),
		)
		return TimeEntryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update time entry commit failed", zap.String("time_entry_id", id), zap.Error(err))
		return TimeEntryResponse{}, err
	}

	s.logger.Info("update time entry success", zap.String("time_entry_id", id))
	return MapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, caller domain.Caller, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return timeentryerrors.ErrTimeEntryNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete time entry begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.loadMutable(ctx, tx, qtx, caller, entryID); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, entryID); err != nil {
		s.logger.Error("delete time entry persist failed", zap.String("time_entry_id", id), zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("delete time entry commit failed", zap.String("time_entry_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete time entry success", zap.String("time_entry_id", id))
	return nil
}

// loadMutable fetches the entry and applies the ownership rule and the
// timesheet edit lock.
func (s *service) loadMutable(ctx context.Context, tx *sql.Tx, qtx Repository, caller domain.Caller, id uuid.UUID) (*TimeEntry, error) {
	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(e.UserID) && !caller.IsElevated() {
		s.logger.Warn("time entry mutation forbidden",
			zap.String("time_entry_id", id.String()),
			zap.String("user_id", caller.UserID.String()),
		)
		return nil, timeentryerrors.ErrForbidden
	}
	if err := s.guard.CanMutate(ctx, tx, e); err != nil {
		s.logger.Warn("time entry locked",
			zap.String("time_entry_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return e, nil
}

func (s *service) WeeklySummary(ctx context.Context, caller domain.Caller, q WeeklySummaryQuery) (WeeklySummaryResponse, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return WeeklySummaryResponse{}, timeentryerrors.ErrDateRangeRequired
	}
	from, to, err := parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return WeeklySummaryResponse{}, err
	}

	entries, err := s.repo.List(ctx, Filter{UserID: caller.UserID, From: from, To: to})
	if err != nil {
		s.logger.Error("weekly summary list failed", zap.Error(err))
		return WeeklySummaryResponse{}, err
	}

	return WeeklySummaryResponse{
		StartDate: dateutil.Format(from),
		EndDate:   dateutil.Format(to),
		Summary:   summary.Summarize(ToSummaryEntries(entries)),
		Entries:   MapToListResponse(entries),
	}, nil
}

// buildFilter scopes employees to their own entries; other roles may narrow
// by user.
func buildFilter(caller domain.Caller, q ListTimeEntriesQuery) (Filter, error) {
	var f Filter
	if caller.Role == domain.RoleEmployee {
		f.UserID = caller.UserID
	} else if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return Filter{}, timeentryerrors.ErrInvalidUserID
		}
		f.UserID = id
	}
	if q.ProjectID != "" {
		id, err := uuid.Parse(q.ProjectID)
		if err != nil {
			return Filter{}, timeentryerrors.ErrInvalidProjectOrTask
		}
		f.ProjectID = id
	}
	if q.ClientID != "" {
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return Filter{}, timeentryerrors.ErrInvalidProjectOrTask
		}
		f.ClientID = id
	}
	if q.StartDate != "" {
		d, err := dateutil.Parse(q.StartDate)
		if err != nil {
			return Filter{}, timeentryerrors.ErrInvalidDateFormat
		}
		f.From = d
	}
	if q.EndDate != "" {
		d, err := dateutil.Parse(q.EndDate)
		if err != nil {
			return Filter{}, timeentryerrors.ErrInvalidDateFormat
		}
		f.To = d
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return Filter{}, timeentryerrors.ErrInvalidDateRange
	}
	return f, nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := dateutil.Parse(start)
	if err != nil {
		return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidDateFormat
	}
	to, err := dateutil.Parse(end)
	if err != nil {
		return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidDateFormat
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, timeentryerrors.ErrInvalidDateRange
	}
	return from, to, nil
}

func validateHours(h decimal.Decimal) error {
	if !h.IsPositive() || h.GreaterThan(maxHoursPerEntry) {
		return timeentryerrors.ErrInvalidHours
	}
	return nil
}
