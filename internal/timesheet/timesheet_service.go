package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"
	"time"

	"go-timesheet/internal/domain"
	"go-timesheet/internal/events"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/shared/contextutil"
	"go-timesheet/internal/shared/dateutil"
	"go-timesheet/internal/summary"
	"go-timesheet/internal/timeentry"
	timesheeterrors "go-timesheet/internal/timesheet/errors"
	"go-timesheet/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	GetOrCreate(ctx context.Context, caller domain.Caller, req CreateTimesheetRequest) (TimesheetResponse, error)
	GetByID(ctx context.Context, caller domain.Caller, id string) (TimesheetResponse, error)
	Submit(ctx context.Context, caller domain.Caller, id string) (SubmitResponse, error)
	Approve(ctx context.Context, caller domain.Caller, id string) (ApprovalResponse, error)
	Reject(ctx context.Context, caller domain.Caller, id, reason string) (ApprovalResponse, error)
	ListPendingApprovals(ctx context.Context, caller domain.Caller) ([]ApprovalResponse, error)
	ExportPDF(ctx context.Context, caller domain.Caller, id string) ([]byte, string, error)

	// The edit lock used by time entries; both run on the caller's tx.
	CanMutate(ctx context.Context, tx *sql.Tx, entry *timeentry.TimeEntry) error
	ResolveWeek(ctx context.Context, tx *sql.Tx, userID uuid.UUID, date time.Time) (*uuid.UUID, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	entries timeentry.Repository
	users   user.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
	now     func() time.Time
	pending singleflight.Group
}

func NewService(db *sql.DB, repo Repository, entries timeentry.Repository, users user.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, entries, users, nil, logger...)
}

// NewServiceWithOutbox also records a lifecycle event in the outbox inside
// every workflow transaction.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	entries timeentry.Repository,
	users user.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		entries: entries,
		users:   users,
		outbox:  outboxRepo,
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) GetOrCreate(ctx context.Context, caller domain.Caller, req CreateTimesheetRequest) (TimesheetResponse, error) {
	weekStart, err := dateutil.Parse(req.WeekStart)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidWeekStart
	}
	weekEnd := dateutil.WeekEnd(weekStart)

	s.logger.Debug("get or create timesheet requested",
		zap.String("user_id", caller.UserID.String()),
		zap.String("week_start", req.WeekStart),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("get or create timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.InsertIfAbsent(ctx, &Timesheet{
		ID:        uuid.New(),
		UserID:    caller.UserID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Status:    StatusDraft,
	}); err != nil {
		s.logger.Error("get or create timesheet insert failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	ts, err := qtx.FindByUserWeek(ctx, caller.UserID, weekStart)
	if err != nil {
		s.logger.Error("get or create timesheet lookup failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	if ts.Status == StatusDraft {
		attached, err := s.entries.WithTx(tx).AttachToTimesheet(ctx, caller.UserID, ts.ID, ts.WeekStart, ts.WeekEnd)
		if err != nil {
			s.logger.Error("get or create timesheet attach entries failed", zap.Error(err))
			return TimesheetResponse{}, err
		}
		if attached > 0 {
			s.logger.Info("time entries attached",
				zap.String("timesheet_id", ts.ID.String()),
				zap.Int64("count", attached),
			)
		}
	}

	full, err := qtx.FindByID(ctx, ts.ID)
	if err != nil {
		return TimesheetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("get or create timesheet commit failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	return mapToResponse(*full), nil
}

func (s *service) GetByID(ctx context.Context, caller domain.Caller, id string) (TimesheetResponse, error) {
	ts, err := s.loadVisible(ctx, caller, id)
	if err != nil {
		return TimesheetResponse{}, err
	}
	return mapToResponse(*ts), nil
}

// loadVisible returns the timesheet when caller owns it or may review it.
func (s *service) loadVisible(ctx context.Context, caller domain.Caller, id string) (*Timesheet, error) {
	tsID, err := uuid.Parse(id)
	if err != nil {
		return nil, timesheeterrors.ErrTimesheetNotFound
	}
	ts, err := s.repo.FindByID(ctx, tsID)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(ts.UserID) && !caller.CanReview() {
		s.logger.Warn("timesheet access forbidden",
			zap.String("timesheet_id", id),
			zap.String("user_id", caller.UserID.String()),
		)
		return nil, timesheeterrors.ErrForbidden
	}
	return ts, nil
}

func (s *service) Submit(ctx context.Context, caller domain.Caller, id string) (SubmitResponse, error) {
	tsID, err := uuid.Parse(id)
	if err != nil {
		return SubmitResponse{}, timesheeterrors.ErrTimesheetNotFound
	}

	s.logger.Debug("submit timesheet requested",
		zap.String("timesheet_id", id),
		zap.String("user_id", caller.UserID.String()),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit timesheet begin tx failed", zap.Error(err))
		return SubmitResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ts, err := qtx.FindByIDForUpdate(ctx, tsID)
	if err != nil {
		return SubmitResponse{}, err
	}
	if !caller.Owns(ts.UserID) && !caller.IsElevated() {
		s.logger.Warn("submit timesheet forbidden",
			zap.String("timesheet_id", id),
			zap.String("user_id", caller.UserID.String()),
		)
		return SubmitResponse{}, timesheeterrors.ErrForbidden
	}
	if ts.Status != StatusDraft {
		s.logger.Warn("submit timesheet invalid transition",
			zap.String("timesheet_id", id),
			zap.String("from_status", ts.Status),
		)
		return SubmitResponse{}, timesheeterrors.ErrInvalidTransition
	}

	entries, err := s.entries.WithTx(tx).List(ctx, timeentry.Filter{TimesheetID: ts.ID})
	if err != nil {
		s.logger.Error("submit timesheet list entries failed", zap.Error(err))
		return SubmitResponse{}, err
	}
	sum := summary.Summarize(timeentry.ToSummaryEntries(entries))

	now := s.now().UTC()
	ok, err := qtx.MarkSubmitted(ctx, ts.ID, Totals{
		Total:       sum.TotalHours,
		Billable:    sum.BillableHours,
		NonBillable: sum.NonBillableHours,
	}, now)
	if err != nil {
		s.logger.Error("submit timesheet persist failed", zap.String("timesheet_id", id), zap.Error(err))
		return SubmitResponse{}, err
	}
	if !ok {
		return SubmitResponse{}, timesheeterrors.ErrInvalidTransition
	}

	ts.Status = StatusSubmitted
	ts.TotalHours = sum.TotalHours
	ts.BillableHours = sum.BillableHours
	ts.NonBillableHours = sum.NonBillableHours
	ts.SubmittedAt = &now
	ts.TimeEntries = entries

	managerID, err := s.users.WithTx(tx).FindManagerID(ctx, ts.UserID)
	if err != nil {
		s.logger.Error("submit timesheet manager lookup failed", zap.Error(err))
		return SubmitResponse{}, err
	}

	var approval *Approval
	if managerID != nil {
		approval = &Approval{
			ID:          uuid.New(),
			TimesheetID: ts.ID,
			ApproverID:  *managerID,
			SubmitterID: ts.UserID,
			Status:      ApprovalPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := qtx.CreateApproval(ctx, approval); err != nil {
			s.logger.Error("submit timesheet create approval failed", zap.Error(err))
			return SubmitResponse{}, err
		}
	} else {
		s.logger.Warn("submitter has no manager, no approval created",
			zap.String("timesheet_id", id),
			zap.String("user_id", ts.UserID.String()),
		)
	}

	event := s.lifecycleEvent(ctx, events.TimesheetSubmitted, caller, ts, approval)
	event.TotalHours = sum.TotalHours.String()
	event.BillableHours = sum.BillableHours.String()
	if err := s.enqueue(ctx, tx, event); err != nil {
		return SubmitResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit timesheet commit failed", zap.String("timesheet_id", id), zap.Error(err))
		return SubmitResponse{}, err
	}

	s.logger.Info("submit timesheet success",
		zap.String("timesheet_id", id),
		zap.String("total_hours", sum.TotalHours.String()),
		zap.Bool("approval_created", approval != nil),
	)

	resp := SubmitResponse{
		Timesheet: mapToResponse(*ts),
		Summary:   sum,
	}
	if approval != nil {
		a := mapApproval(*approval)
		resp.Approval = &a
	}
	return resp, nil
}

func (s *service) Approve(ctx context.Context, caller domain.Caller, id string) (ApprovalResponse, error) {
	return s.resolve(ctx, caller, id, ApprovalApproved, nil)
}

func (s *service) Reject(ctx context.Context, caller domain.Caller, id, reason string) (ApprovalResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ApprovalResponse{}, timesheeterrors.ErrRejectionReasonRequired
	}
	return s.resolve(ctx, caller, id, ApprovalRejected, &reason)
}

// resolve applies an approver's decision: the pending approval and the
// timesheet change together or not at all.
func (s *service) resolve(ctx context.Context, caller domain.Caller, id, decision string, reason *string) (ApprovalResponse, error) {
	tsID, err := uuid.Parse(id)
	if err != nil {
		return ApprovalResponse{}, timesheeterrors.ErrApprovalNotFound
	}

	s.logger.Debug("resolve timesheet requested",
		zap.String("timesheet_id", id),
		zap.String("approver_id", caller.UserID.String()),
		zap.String("decision", decision),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("resolve timesheet begin tx failed", zap.Error(err))
		return ApprovalResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	approval, err := qtx.FindPendingApprovalForUpdate(ctx, tsID, caller.UserID)
	if err != nil {
		if errors.Is(err, timesheeterrors.ErrApprovalNotFound) {
			s.logger.Warn("resolve timesheet approval not found",
				zap.String("timesheet_id", id),
				zap.String("approver_id", caller.UserID.String()),
			)
		}
		return ApprovalResponse{}, err
	}

	ts, err := qtx.FindByIDForUpdate(ctx, tsID)
	if err != nil {
		return ApprovalResponse{}, err
	}

	now := s.now().UTC()
	ok, err := qtx.ResolveApproval(ctx, approval.ID, decision, reason, now)
	if err != nil {
		s.logger.Error("resolve approval persist failed", zap.String("approval_id", approval.ID.String()), zap.Error(err))
		return ApprovalResponse{}, err
	}
	if !ok {
		return ApprovalResponse{}, timesheeterrors.ErrApprovalNotFound
	}

	target := StatusApproved
	eventType := events.TimesheetApproved
	if decision == ApprovalRejected {
		target = StatusRejected
		eventType = events.TimesheetRejected
	}

	ok, err = qtx.TransitionStatus(ctx, ts.ID, StatusSubmitted, target)
	if err != nil {
		s.logger.Error("resolve timesheet persist failed", zap.String("timesheet_id", id), zap.Error(err))
		return ApprovalResponse{}, err
	}
	if !ok {
		s.logger.Warn("resolve timesheet invalid transition",
			zap.String("timesheet_id", id),
			zap.String("from_status", ts.Status),
			zap.String("to_status", target),
		)
		return ApprovalResponse{}, timesheeterrors.ErrInvalidTransition
	}

	approval.Status = decision
	approval.UpdatedAt = now
	if decision == ApprovalApproved {
		approval.ApprovedAt = &now
	} else {
		approval.RejectedAt = &now
		approval.RejectionReason = reason
	}
	ts.Status = target

	event := s.lifecycleEvent(ctx, eventType, caller, ts, approval)
	if reason != nil {
		event.RejectionReason = *reason
	}
	if err := s.enqueue(ctx, tx, event); err != nil {
		return ApprovalResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("resolve timesheet commit failed", zap.String("timesheet_id", id), zap.Error(err))
		return ApprovalResponse{}, err
	}

	s.logger.Info("resolve timesheet success",
		zap.String("timesheet_id", id),
		zap.String("approval_id", approval.ID.String()),
		zap.String("status", target),
	)

	resp := mapApproval(*approval)
	tsResp := mapToResponse(*ts)
	resp.Timesheet = &tsResp
	return resp, nil
}

// ListPendingApprovals collapses concurrent reads for the same approver into
// one query.
func (s *service) ListPendingApprovals(ctx context.Context, caller domain.Caller) ([]ApprovalResponse, error) {
	// Shared by every caller in the flight; detached from this request.
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := s.pending.Do(caller.UserID.String(), func() (any, error) {
		approvals, err := s.repo.ListPendingApprovals(flightCtx, caller.UserID)
		if err != nil {
			return nil, err
		}
		resp := make([]ApprovalResponse, len(approvals))
		for i, a := range approvals {
			resp[i] = mapApproval(a)
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("list pending approvals failed",
			zap.String("approver_id", caller.UserID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if shared {
		s.logger.Debug("list pending approvals shared", zap.String("approver_id", caller.UserID.String()))
	}
	// Callers sharing a flight get their own slice.
	return slices.Clone(v.([]ApprovalResponse)), nil
}

func (s *service) ExportPDF(ctx context.Context, caller domain.Caller, id string) ([]byte, string, error) {
	ts, err := s.loadVisible(ctx, caller, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := buildTimesheetPDF(ts)
	if err != nil {
		s.logger.Error("export timesheet pdf failed", zap.String("timesheet_id", id), zap.Error(err))
		return nil, "", err
	}
	filename := "timesheet-" + dateutil.Format(ts.WeekStart) + ".pdf"
	return pdf, filename, nil
}

func (s *service) CanMutate(ctx context.Context, tx *sql.Tx, entry *timeentry.TimeEntry) error {
	if entry == nil || !entry.Attached() {
		return nil
	}
	ts, err := s.repo.WithTx(tx).FindByIDForShare(ctx, *entry.TimesheetID)
	if err != nil {
		if errors.Is(err, timesheeterrors.ErrTimesheetNotFound) {
			// A dangling reference behaves like an unattached entry.
			return nil
		}
		return err
	}
	if !EntryMutable(ts.Status) {
		return timesheeterrors.ErrLockedTimesheet
	}
	return nil
}

func (s *service) ResolveWeek(ctx context.Context, tx *sql.Tx, userID uuid.UUID, date time.Time) (*uuid.UUID, error) {
	ts, err := s.repo.WithTx(tx).FindCoveringForShare(ctx, userID, date)
	if err != nil {
		if errors.Is(err, timesheeterrors.ErrTimesheetNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !EntryMutable(ts.Status) {
		return nil, timesheeterrors.ErrLockedTimesheet
	}
	id := ts.ID
	return &id, nil
}

func (s *service) lifecycleEvent(ctx context.Context, eventType string, caller domain.Caller, ts *Timesheet, a *Approval) events.TimesheetLifecycleEvent {
	event := events.TimesheetLifecycleEvent{
		EventType:   eventType,
		RequestID:   contextutil.GetRequestID(ctx),
		TimesheetID: ts.ID.String(),
		UserID:      ts.UserID.String(),
		ActorID:     caller.UserID.String(),
		WeekStart:   dateutil.Format(ts.WeekStart),
		Status:      ts.Status,
		OccurredAt:  s.now().UTC(),
	}
	if a != nil {
		event.ApprovalID = a.ID.String()
		event.ApproverID = a.ApproverID.String()
	}
	return event
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, event events.TimesheetLifecycleEvent) error {
	if s.outbox == nil {
		return nil
	}
	msg, err := kafka.NewOutboxEvent(
		events.TimesheetLifecycleTopic,
		"timesheet",
		event.TimesheetID,
		event.EventType,
		event.RequestID,
		event,
	)
	if err != nil {
		s.logger.Error("build outbox event failed", zap.String("event_type", event.EventType), zap.Error(err))
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, msg); err != nil {
		s.logger.Error("create outbox event failed",
			zap.String("event_type", event.EventType),
			zap.String("timesheet_id", event.TimesheetID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
