package activity

import (
	"context"
	"errors"
	"time"

	activityerrors "go-timesheet/internal/activity/errors"
	"go-timesheet/internal/domain"
	"go-timesheet/internal/events"
	"go-timesheet/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TimesheetViewer applies the timesheet read rule before activity is shown.
type TimesheetViewer interface {
	GetByID(ctx context.Context, caller domain.Caller, id string) (timesheet.TimesheetResponse, error)
}

//go:generate mockgen -source=activity_service.go -destination=mock/activity_service_mock.go -package=mock
type Service interface {
	// Record stores a lifecycle event once per eventID; a redelivery is not
	// an error.
	Record(ctx context.Context, eventID string, event events.TimesheetLifecycleEvent) error
	List(ctx context.Context, caller domain.Caller, timesheetID string) ([]ActivityResponse, error)
}

type service struct {
	repo       Repository
	timesheets TimesheetViewer
	logger     *zap.Logger
}

func NewService(repo Repository, timesheets TimesheetViewer, logger ...*zap.Logger) Service {
	l := zap.L().Named("activity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activity.service")
	}
	return &service{repo: repo, timesheets: timesheets, logger: l}
}

func (s *service) Record(ctx context.Context, eventID string, event events.TimesheetLifecycleEvent) error {
	timesheetID, err := uuid.Parse(event.TimesheetID)
	if err != nil || eventID == "" || event.EventType == "" {
		return activityerrors.ErrInvalidEvent
	}

	a := &Activity{
		ID:          uuid.New(),
		EventID:     eventID,
		TimesheetID: timesheetID,
		EventType:   event.EventType,
		Status:      event.Status,
		Note:        event.RejectionReason,
		RequestID:   event.RequestID,
		OccurredAt:  event.OccurredAt,
	}
	if actor, err := uuid.Parse(event.ActorID); err == nil {
		a.ActorID = &actor
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, activityerrors.ErrDuplicateEvent) {
			s.logger.Warn("activity already recorded, skipping",
				zap.String("event_id", eventID),
				zap.String("timesheet_id", event.TimesheetID),
			)
			return nil
		}
		s.logger.Error("record activity failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, caller domain.Caller, timesheetID string) ([]ActivityResponse, error) {
	ts, err := s.timesheets.GetByID(ctx, caller, timesheetID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(ts.ID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByTimesheet(ctx, id)
	if err != nil {
		s.logger.Error("list activity failed", zap.String("timesheet_id", timesheetID), zap.Error(err))
		return nil, err
	}

	out := make([]ActivityResponse, len(rows))
	for i, a := range rows {
		out[i] = mapToResponse(a)
	}
	return out, nil
}

func mapToResponse(a Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:          a.ID.String(),
		TimesheetID: a.TimesheetID.String(),
		EventType:   a.EventType,
		Status:      a.Status,
		Note:        a.Note,
		OccurredAt:  a.OccurredAt.UTC().Format(time.RFC3339),
	}
	if a.ActorID != nil {
		v := a.ActorID.String()
		resp.ActorID = &v
	}
	return resp
}
