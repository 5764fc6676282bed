package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"foodiegram/internal/config"
	"foodiegram/internal/observability"
	"foodiegram/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	if cfg.TracingEnabled {
		shutdown, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:  "foodiegram",
			Environment:  cfg.Env,
			Enabled:      true,
			Exporter:     cfg.TracingExporter,
			OTLPEndpoint: cfg.OTLPEndpoint,
			SamplerRatio: cfg.SamplerRatio,
		})
		if err != nil {
			slog.Warn("tracing init failed, continuing without tracing", "error", err)
		} else {
			defer func() {
				_ = shutdown(context.Background())
			}()
		}
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		slog.Error("server init failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := srv.Start(ctx); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
