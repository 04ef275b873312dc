package timeentry_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-timesheet/internal/timeentry"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepoWithMock(t *testing.T) (timeentry.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return timeentry.NewRepository(gormDB), mock
}

func TestTimeEntryRepository_Create_KeepsNonBillable(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	e := &timeentry.TimeEntry{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ProjectID:  uuid.New(),
		TaskID:     uuid.New(),
		Date:       time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Hours:      decimal.RequireFromString("8"),
		IsBillable: false,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "time_entries" ("user_id","project_id","task_id","date","hours","is_billable",`)).
		WithArgs(
			e.UserID.String(), e.ProjectID.String(), e.TaskID.String(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			false,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			e.ID.String(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(e.ID.String()))

	require.NoError(t, repo.Create(context.Background(), e))
	assert.False(t, e.IsBillable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_AttachToTimesheet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	userID, timesheetID := uuid.New(), uuid.New()
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "time_entries" SET "timesheet_id"=$1,"updated_at"=$2 WHERE user_id = $3 AND timesheet_id IS NULL AND `)+
		`\(?date BETWEEN \$4 AND \$5\)?`).
		WithArgs(timesheetID.String(), sqlmock.AnyArg(), userID.String(), "2026-03-02", "2026-03-08").
		WillReturnResult(sqlmock.NewResult(0, 2))

	moved, err := repo.AttachToTimesheet(context.Background(), userID, timesheetID, from, from.AddDate(0, 0, 6))

	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)
	assert.NoError(t, mock.ExpectationsWereMet())
}
