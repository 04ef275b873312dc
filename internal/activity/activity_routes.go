package activity

import (
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, jwtSecret string) {
	group := r.Group("/timesheets")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	{
		group.GET("/:id/activity", middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionRead), handler.List)
	}
}
