package timesheet_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"go-timesheet/internal/timesheet"
	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func newRepoWithMock(t *testing.T) (timesheet.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return timesheet.NewRepository(gormDB), mock
}

func TestTimesheetRepository_InsertIfAbsent(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// An existing row for the week makes the insert a no-op.
	mock.ExpectQuery(`INSERT INTO "timesheets" .*` + regexp.QuoteMeta(`ON CONFLICT ("user_id","week_start") DO NOTHING RETURNING`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.InsertIfAbsent(context.Background(), &timesheet.Timesheet{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		Status:    timesheet.StatusDraft,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetRepository_MarkSubmitted(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE "timesheets" SET "billable_hours"=$1,"non_billable_hours"=$2,"status"=$3,"submitted_at"=$4,"total_hours"=$5,"updated_at"=$6 WHERE id = $7 AND status = $8`)
	totals := timesheet.Totals{
		Total:       decimal.RequireFromString("16"),
		Billable:    decimal.RequireFromString("8"),
		NonBillable: decimal.RequireFromString("8"),
	}

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "draft row flips", affected: 1, want: true},
		{name: "row no longer draft", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			id := uuid.New()

			mock.ExpectExec(query).
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), timesheet.StatusSubmitted, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
					id.String(), timesheet.StatusDraft).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := repo.MarkSubmitted(context.Background(), id, totals, time.Now().UTC())

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTimesheetRepository_TransitionStatus(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "timesheets" SET "status"=$1,"updated_at"=$2 WHERE id = $3 AND status = $4`)).
		WithArgs(timesheet.StatusApproved, sqlmock.AnyArg(), id.String(), timesheet.StatusSubmitted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.TransitionStatus(context.Background(), id, timesheet.StatusSubmitted, timesheet.StatusApproved)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimesheetRepository_ResolveApproval(t *testing.T) {
	at := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	t.Run("approve stamps approved_at", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "timesheet_approvals" SET "approved_at"=$1,"status"=$2,"updated_at"=$3 WHERE id = $4 AND status = $5`)).
			WithArgs(at, timesheet.ApprovalApproved, at, id.String(), timesheet.ApprovalPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.ResolveApproval(context.Background(), id, timesheet.ApprovalApproved, nil, at)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reject stores reason", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		id := uuid.New()
		reason := "Missing Friday"

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "timesheet_approvals" SET "rejected_at"=$1,"rejection_reason"=$2,"status"=$3,"updated_at"=$4 WHERE id = $5 AND status = $6`)).
			WithArgs(at, reason, timesheet.ApprovalRejected, at, id.String(), timesheet.ApprovalPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.ResolveApproval(context.Background(), id, timesheet.ApprovalRejected, &reason, at)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTimesheetRepository_FindByIDForUpdate_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "timesheets" WHERE id = $1`) + `.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByIDForUpdate(context.Background(), uuid.New())

	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproval_OnePerTimesheet(t *testing.T) {
	s, err := schema.Parse(&timesheet.Approval{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	unique := false
	for _, idx := range s.ParseIndexes() {
		if idx.Class == "UNIQUE" && len(idx.Fields) == 1 && idx.Fields[0].DBName == "timesheet_id" {
			unique = true
		}
	}
	assert.True(t, unique)
}
