package main

import (
	"os"

	"go-timesheet/internal/app"
	"go-timesheet/internal/bootstrap"
	"go-timesheet/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("timesheet-consumer", os.Args[1:])
	if err != nil {
		panic(err)
	}
	logger, err := bootstrap.NewLogger(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
