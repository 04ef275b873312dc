package timesheet_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-timesheet/internal/domain"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/timesheet"
	timesheeterrors "go-timesheet/internal/timesheet/errors"
	"go-timesheet/internal/timesheet/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok      bool            `json:"ok"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newTimesheetRouter(svc timesheet.Service, caller *domain.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if caller != nil {
			middleware.SetCaller(c, *caller)
		}
		c.Next()
	})
	h := timesheet.NewHandler(svc)
	r.POST("/timesheets", h.Create)
	r.GET("/timesheets/pending-approvals", h.PendingApprovals)
	r.GET("/timesheets/:id", h.GetByID)
	r.GET("/timesheets/:id/export", h.ExportPDF)
	r.POST("/timesheets/:id/submit", h.Submit)
	r.POST("/timesheets/:id/approve", h.Approve)
	r.POST("/timesheets/:id/reject", h.Reject)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	caller := domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee}

	t.Run("success", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			GetOrCreate(gomock.Any(), caller, timesheet.CreateTimesheetRequest{WeekStart: "2026-03-02"}).
			Return(timesheet.TimesheetResponse{ID: "ts-1", Status: timesheet.StatusDraft}, nil)

		rec := serve(newTimesheetRouter(svc, &caller), http.MethodPost, "/timesheets", `{"week_start":"2026-03-02"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := mustDecodeEnvelope(t, rec.Body.Bytes())
		assert.True(t, env.Ok)
		var data timesheet.TimesheetResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "ts-1", data.ID)
	})

	t.Run("missing week start", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))

		rec := serve(newTimesheetRouter(svc, &caller), http.MethodPost, "/timesheets", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := mustDecodeEnvelope(t, rec.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("no caller", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))

		rec := serve(newTimesheetRouter(svc, nil), http.MethodPost, "/timesheets", `{"week_start":"2026-03-02"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_Submit(t *testing.T) {
	caller := domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "not draft", err: timesheeterrors.ErrInvalidTransition, wantStatus: http.StatusConflict, wantCode: "INVALID_STATE"},
		{name: "not found", err: timesheeterrors.ErrTimesheetNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "forbidden", err: timesheeterrors.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mock.NewMockService(gomock.NewController(t))
			svc.EXPECT().
				Submit(gomock.Any(), caller, "ts-1").
				Return(timesheet.SubmitResponse{Timesheet: timesheet.TimesheetResponse{ID: "ts-1", Status: timesheet.StatusSubmitted}}, tt.err)

			rec := serve(newTimesheetRouter(svc, &caller), http.MethodPost, "/timesheets/ts-1/submit", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := mustDecodeEnvelope(t, rec.Body.Bytes())
			if tt.err == nil {
				assert.True(t, env.Ok)
				assert.Equal(t, "Timesheet submitted successfully", env.Message)
				return
			}
			assert.False(t, env.Ok)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestHandler_ApproveReject(t *testing.T) {
	caller := domain.Caller{UserID: uuid.New(), Role: domain.RoleManager}

	t.Run("approve", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Approve(gomock.Any(), caller, "ts-1").
			Return(timesheet.ApprovalResponse{ID: "ap-1", Status: timesheet.ApprovalApproved}, nil)

		rec := serve(newTimesheetRouter(svc, &caller), http.MethodPost, "/timesheets/ts-1/approve", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		env := mustDecodeEnvelope(t, rec.Body.Bytes())
		assert.Equal(t, "Timesheet approved successfully", env.Message)
	})

	t.Run("approval already processed", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Approve(gomock.Any(), caller, "ts-1").
			Return(timesheet.ApprovalResponse{}, timesheeterrors.ErrApprovalNotFound)

		rec := serve(newTimesheetRouter(svc, &caller), http.MethodPost, "/timesheets/ts-1/approve", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("reject passes the reason through", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Reject(gomock.Any(), caller, "ts-1", "Missing Friday").
			Return(timesheet.ApprovalResponse{ID: "ap-1", Status: timesheet.ApprovalRejected}, nil)

		rec := serve(newTimesheetRouter(svc, &caller), http.MethodPost, "/timesheets/ts-1/reject", `{"rejection_reason":"Missing Friday"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := mustDecodeEnvelope(t, rec.Body.Bytes())
		assert.Equal(t, "Timesheet rejected", env.Message)
	})

	t.Run("reject without reason", func(t *testing.T) {
		svc := mock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			Reject(gomock.Any(), caller, "ts-1", "").
			Return(timesheet.ApprovalResponse{}, timesheeterrors.ErrRejectionReasonRequired)

		rec := serve(newTimesheetRouter(svc, &caller), http.MethodPost, "/timesheets/ts-1/reject", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := mustDecodeEnvelope(t, rec.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}

func TestHandler_PendingApprovals(t *testing.T) {
	caller := domain.Caller{UserID: uuid.New(), Role: domain.RoleManager}
	svc := mock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		ListPendingApprovals(gomock.Any(), caller).
		Return([]timesheet.ApprovalResponse{{ID: "ap-1"}, {ID: "ap-2"}}, nil)

	rec := serve(newTimesheetRouter(svc, &caller), http.MethodGet, "/timesheets/pending-approvals", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := mustDecodeEnvelope(t, rec.Body.Bytes())
	var data []timesheet.ApprovalResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 2)
}

func TestHandler_ExportPDF(t *testing.T) {
	caller := domain.Caller{UserID: uuid.New(), Role: domain.RoleEmployee}
	svc := mock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		ExportPDF(gomock.Any(), caller, "ts-1").
		Return([]byte("%PDF-1.4\n%%EOF"), "timesheet-2026-03-02.pdf", nil)

	rec := serve(newTimesheetRouter(svc, &caller), http.MethodGet, "/timesheets/ts-1/export", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "timesheet-2026-03-02.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}
