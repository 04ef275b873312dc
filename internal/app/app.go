package app

import (
	"context"
	"database/sql"
	"net/http"

	"go-timesheet/internal/activity"
	"go-timesheet/internal/config"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/project"
	"go-timesheet/internal/rbac"
	"go-timesheet/internal/shared/connection"
	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/timesheet"
	"go-timesheet/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// BuildApp connects the stores, migrates when asked to and mounts every
// module on router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.MaxRetries)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxRetries)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	if cfg.AutoMigrate {
		if err := migrate(context.Background(), gormDB, sqlDB); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(20), 40),
	)
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})

	return registerModules(router, cfg, sqlDB, gormDB, rdb)
}

func migrate(ctx context.Context, gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(
		&user.User{},
		&project.Client{},
		&project.Project{},
		&project.Task{},
		&timesheet.Timesheet{},
		&timesheet.Approval{},
		&timeentry.TimeEntry{},
		&rbac.RolePermission{},
		&rbac.RoleInheritance{},
		&activity.Activity{},
	); err != nil {
		return err
	}
	if _, err := sqlDB.ExecContext(ctx, kafka.OutboxSchema); err != nil {
		return err
	}
	return rbac.NewRepository(gormDB).SeedDefaults(ctx)
}
