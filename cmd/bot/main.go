package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/meowza1/guardian-test/internal/app"
	"github.com/meowza1/guardian-test/internal/config"
	loginfra "github.com/meowza1/guardian-test/internal/infra/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := loginfra.New(cfg.LogLevel, cfg.LogFormat)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("create app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("guardian starting")
	if err := application.Run(ctx); err != nil {
		logger.Error("guardian stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("guardian stopped")
}
