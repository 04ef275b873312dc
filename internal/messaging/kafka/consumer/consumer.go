package consumer

import (
	"context"
	"encoding/json"
	"errors"

	activityerrors "go-timesheet/internal/activity/errors"
	"go-timesheet/internal/events"
	"go-timesheet/internal/messaging/kafka"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type ActivityRecorder interface {
	Record(ctx context.Context, eventID string, event events.TimesheetLifecycleEvent) error
}

// ConsumeTimesheetLifecycle writes every lifecycle event into the activity
// log until ctx is done. Messages that can never be stored are committed and
// dropped; storage failures leave the offset uncommitted.
func ConsumeTimesheetLifecycle(
	ctx context.Context,
	reader MessageReader,
	recorder ActivityRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.timesheet_lifecycle")
	log.Info("timesheet lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("timesheet lifecycle consumer stopped")
				return
			}
			log.Error("fetch timesheet lifecycle message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, recorder, log, msg)
	}
}

func handleMessage(ctx context.Context, reader MessageReader, recorder ActivityRecorder, log *zap.Logger, msg kafkago.Message) {
	var event events.TimesheetLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode timesheet lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		commit(ctx, reader, log, msg)
		return
	}

	eventID := eventIDOf(msg)
	if err := recorder.Record(ctx, eventID, event); err != nil {
		if errors.Is(err, activityerrors.ErrInvalidEvent) {
			log.Warn("invalid timesheet lifecycle event, skipping",
				zap.String("event_id", eventID),
				zap.String("event_type", event.EventType),
			)
			commit(ctx, reader, log, msg)
			return
		}
		log.Error("record timesheet activity failed",
			zap.String("event_id", eventID),
			zap.String("timesheet_id", event.TimesheetID),
			zap.Error(err),
		)
		return
	}

	if !commit(ctx, reader, log, msg) {
		return
	}

	log.Info("timesheet activity recorded",
		zap.String("event_id", eventID),
		zap.String("event_type", event.EventType),
		zap.String("timesheet_id", event.TimesheetID),
		zap.String("request_id", event.RequestID),
	)
}

func commit(ctx context.Context, reader MessageReader, log *zap.Logger, msg kafkago.Message) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit timesheet lifecycle message failed", zap.Error(err))
		return false
	}
	return true
}

// eventIDOf prefers the outbox id header. Messages without it get an id
// derived from their payload so replays still dedupe.
func eventIDOf(msg kafkago.Message) string {
	for _, h := range msg.Headers {
		if h.Key == kafka.HeaderEventID && len(h.Value) > 0 {
			return string(h.Value)
		}
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, msg.Value).String()
}
