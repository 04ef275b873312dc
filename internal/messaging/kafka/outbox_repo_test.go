package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-timesheet/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("timesheet.lifecycle.v1", "timesheet", "ts-1", "timesheet.submitted", "req-1",
		map[string]string{"status": "SUBMITTED"})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Equal(t, "req-1", event.RequestID)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "SUBMITTED", payload["status"])

	_, err = kafka.NewOutboxEvent("", "timesheet", "ts-1", "timesheet.submitted", "", map[string]string{})
	assert.Error(t, err)

	_, err = kafka.NewOutboxEvent("t", "timesheet", "", "timesheet.submitted", "", map[string]string{})
	assert.Error(t, err)

	_, err = kafka.NewOutboxEvent("t", "timesheet", "ts-1", "timesheet.submitted", "", func() {})
	assert.Error(t, err)
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event, err := kafka.NewOutboxEvent("topic", "timesheet", "ts-1", "timesheet.approved", "", map[string]string{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, "", "timesheet", "ts-1", "timesheet.approved", "topic", event.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(context.Background(), event))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	due := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("evt-1", "req-1", "timesheet", "ts-1", "timesheet.submitted", "topic", []byte(`{}`), kafka.OutboxStatusPending, 0, due).
		AddRow("evt-2", "", "timesheet", "ts-2", "timesheet.rejected", "topic", []byte(`{}`), kafka.OutboxStatusFailed, 3, due)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ts-1", events[0].AggregateID)
	assert.Equal(t, 3, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusFailed, "broker down", kafka.MaxOutboxAttempts, kafka.OutboxStatusDead).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "evt-1", "broker down"))

	dbErr := errors.New("conn reset")
	mock.ExpectExec("UPDATE outbox_events").WithArgs("evt-2", kafka.OutboxStatusSent).WillReturnError(dbErr)
	assert.ErrorIs(t, kafka.NewOutboxRepository(db).MarkSent(context.Background(), "evt-2"), dbErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
