package timeentry_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-timesheet/internal/domain"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/timeentry/mock"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const routeSecret = "route-test-secret"

type allowAll struct{}

func (allowAll) Enforce(req domain.EnforceRequest) (bool, error) { return true, nil }

func TestRegisterRoutes_CreateIsIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    string(domain.RoleEmployee),
	}).SignedString([]byte(routeSecret))
	require.NoError(t, err)

	cacheKey := "idemp:/api/v1/time-entries:" + userID.String() + ":key-1"
	body := `{"project_id":"` + uuid.NewString() + `","task_id":"` + uuid.NewString() + `","date":"2026-03-04","hours":2}`

	newRouter := func(t *testing.T) (*gin.Engine, redismock.ClientMock) {
		rdb, redisMock := redismock.NewClientMock()
		// No Create expectation: reaching the service fails the test.
		svc := mock.NewMockService(gomock.NewController(t))
		r := gin.New()
		timeentry.RegisterRoutes(r.Group("/api/v1"), timeentry.NewHandler(svc), allowAll{}, routeSecret, rdb)
		return r, redisMock
	}
	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/time-entries", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set(middleware.IdempotencyHeader, "key-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("retry replays the stored create", func(t *testing.T) {
		r, redisMock := newRouter(t)
		redisMock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true,"data":{"id":"te-1"}}}`)

		rec := post(r)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("Idempotent-Replay"))
		assert.JSONEq(t, `{"ok":true,"data":{"id":"te-1"}}`, rec.Body.String())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate in flight is rejected", func(t *testing.T) {
		r, redisMock := newRouter(t)
		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		rec := post(r)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "CONFLICT")
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
