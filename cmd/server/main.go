// Package main runs the stageboard HTTP service. The object graph is
// resolved with samber/do in wire.go. SIGINT or SIGTERM lets in-flight
// requests finish and flushes telemetry before the process exits.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
	"github.com/jsamuelsen11/stageboard/internal/platform/telemetry"
)

// flushTimeout bounds the final telemetry export after shutdown.
const flushTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stageboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	boot, err := config.LoadBootstrap()
	if err != nil {
		return err
	}
	cfg, err := config.Load(boot.Profile, config.WithConfigDir(boot.ConfigDir))
	if err != nil {
		return fmt.Errorf("loading %s config: %w", boot.Profile, err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("starting stageboard",
		slog.String("profile", boot.Profile),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("projects", cfg.Projects.Source),
		slog.Bool("auth", cfg.Auth.Enabled),
		slog.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		// ctx is already canceled here, so flush on a fresh deadline.
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	app, err := wire(ctx, cfg, logger, otel.Metrics)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.server.Run(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	logger.Info("stopped")
	return nil
}
