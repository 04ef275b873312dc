package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timesheet/internal/domain"
	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func serveWithRole(svc middleware.RBACService, role domain.Role) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/timesheets/:id/approve",
		func(c *gin.Context) {
			if role != "" {
				middleware.SetCaller(c, domain.Caller{UserID: uuid.New(), Role: role})
			}
			c.Next()
		},
		middleware.RBACAuthorize(svc, "timesheet", "approve"),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/timesheets/x/approve", nil))
	return w
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, "MANAGER", req.Role)
			assert.Equal(t, "timesheet", req.Resource)
			assert.Equal(t, "approve", req.Action)
			return true, nil
		}}
		w := serveWithRole(svc, domain.RoleManager)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("negative denied role", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, nil }}
		w := serveWithRole(svc, domain.RoleEmployee)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("negative missing caller", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) {
			t.Fatal("enforce must not be called")
			return false, nil
		}}
		w := serveWithRole(svc, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative enforcer error", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, errors.New("boom") }}
		w := serveWithRole(svc, domain.RoleManager)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
