package app

import (
	"context"
	"database/sql"

	"go-timesheet/internal/activity"
	"go-timesheet/internal/config"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/project"
	"go-timesheet/internal/rbac"
	"go-timesheet/internal/rbac/infra"
	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/timesheet"
	"go-timesheet/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	entryRepo := timeentry.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	activityRepo := activity.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModel)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	timesheetService := timesheet.NewServiceWithOutbox(db, timesheetRepo, entryRepo, userRepo, outboxRepo)
	entryService := timeentry.NewService(db, entryRepo, projectRepo, timesheetService)
	activityService := activity.NewService(activityRepo, timesheetService)

	// --- Handlers ---
	timesheetHandler := timesheet.NewHandler(timesheetService)
	entryHandler := timeentry.NewHandler(entryService)
	activityHandler := activity.NewHandler(activityService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService, cfg.JWTSecret, rdb)
		timeentry.RegisterRoutes(api, entryHandler, rbacService, cfg.JWTSecret, rdb)
		activity.RegisterRoutes(api, activityHandler, rbacService, cfg.JWTSecret)
		rbac.RegisterRoutes(api, rbacHandler, cfg.JWTSecret)
	}

	return nil
}
