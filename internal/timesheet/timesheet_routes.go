package timesheet

import (
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	// Workflow writes are throttled per user; reads are not.
	workflowLimit := middleware.RateLimitByUser(rate.Limit(2), 10)

	write := func(action string) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{workflowLimit}
		if redisClient != nil {
			chain = append(chain, middleware.Idempotency(redisClient))
		}
		return append(chain, middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, action))
	}

	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware(jwtSecret))
	{
		timesheets.GET("/pending-approvals",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionReview),
			handler.PendingApprovals,
		)
		timesheets.POST("", append(write(rbac.ActionCreate), handler.Create)...)
		timesheets.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionRead), handler.GetByID)
		timesheets.GET("/:id/export", middleware.RBACAuthorize(rbacService, rbac.ResourceTimesheet, rbac.ActionExport), handler.ExportPDF)
		timesheets.POST("/:id/submit", append(write(rbac.ActionSubmit), handler.Submit)...)
		timesheets.POST("/:id/approve", append(write(rbac.ActionApprove), handler.Approve)...)
		timesheets.POST("/:id/reject", append(write(rbac.ActionApprove), handler.Reject)...)
	}
}
