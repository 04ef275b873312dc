package app

import (
	"context"

	"go-timesheet/internal/activity"
	"go-timesheet/internal/bootstrap"
	"go-timesheet/internal/config"
	"go-timesheet/internal/events"
	"go-timesheet/internal/messaging/kafka/consumer"
	"go-timesheet/internal/shared/connection"
	"go-timesheet/internal/timeentry"
	"go-timesheet/internal/timesheet"
	"go-timesheet/internal/user"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer feeds timesheet lifecycle events into the activity log until
// SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.MaxRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Record never reads timesheets, but the service needs a viewer.
	timesheetService := timesheet.NewService(
		sqlDB,
		timesheet.NewRepository(gormDB),
		timeentry.NewRepository(gormDB),
		user.NewRepository(gormDB),
	)
	activityService := activity.NewService(activity.NewRepository(gormDB), timesheetService)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.TimesheetLifecycleTopic,
		GroupID:        cfg.KafkaGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeTimesheetLifecycle(ctx, reader, activityService, logger)
	}()

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()
	<-done

	return nil
}
