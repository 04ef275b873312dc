package timeentry

import (
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb ...*redis.Client,
) {
	create := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, rbac.ResourceTimeEntry, rbac.ActionCreate)}
	if len(rdb) > 0 && rdb[0] != nil {
		create = append(create, middleware.Idempotency(rdb[0]))
	}

	entries := r.Group("/time-entries")
	entries.Use(middleware.AuthMiddleware(jwtSecret))
	{
		entries.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceTimeEntry, rbac.ActionRead), handler.List)
		entries.GET("/weekly-summary", middleware.RBACAuthorize(rbacService, rbac.ResourceTimeEntry, rbac.ActionRead), handler.WeeklySummary)
		entries.POST("", append(create, handler.Create)...)
		entries.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceTimeEntry, rbac.ActionUpdate), handler.Update)
		entries.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceTimeEntry, rbac.ActionDelete), handler.Delete)
	}
}
