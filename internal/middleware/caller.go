package middleware

import (
	"go-timesheet/internal/domain"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

// SetCaller stores the verified caller on the gin context.
func SetCaller(c *gin.Context, caller domain.Caller) {
	c.Set(callerKey, caller)
	c.Set("user_id", caller.UserID.String())
	c.Set("role", string(caller.Role))
}

// CallerFromContext returns the caller placed by AuthMiddleware.
func CallerFromContext(c *gin.Context) (domain.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	if !ok || caller.IsZero() {
		return domain.Caller{}, false
	}
	return caller, true
}
