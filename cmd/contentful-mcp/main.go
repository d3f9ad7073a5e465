package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ivo-toby/contentful-mcp-sub000/internal/contentful"
	"github.com/ivo-toby/contentful-mcp-sub000/internal/logging"
	"github.com/ivo-toby/contentful-mcp-sub000/internal/refresher"
	"github.com/ivo-toby/contentful-mcp-sub000/pkg/mcp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "contentful-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; env vars win.
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	// Logs go to stderr: stdout is the stdio transport.
	logger := slog.New(logging.NewCorrelationHandler(
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}),
	))
	slog.SetDefault(logger)

	client, err := contentful.NewClient(contentful.Config{
		Token:       cfg.Token,
		Host:        cfg.Host,
		GraphQLHost: cfg.GraphQLHost,
		Timeout:     cfg.HTTPTimeout,
		Debug:       cfg.Debug,
	}, logger)
	if err != nil {
		return err
	}

	srv := mcp.NewContentfulServer(mcp.ContentfulServerDeps{
		API:           client,
		Logger:        logger,
		SpaceID:       cfg.SpaceID,
		EnvironmentID: cfg.EnvironmentID,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ref, err := refresher.New(srv, cfg.RefreshCron, logger)
	if err != nil {
		return err
	}
	if err := ref.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := ref.Stop(); err != nil {
			logger.Error("refresher stop failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("starting contentful-mcp",
		slog.String("transport", cfg.Transport),
		slog.String("space_id", cfg.SpaceID),
		slog.String("environment_id", cfg.EnvironmentID),
	)

	switch cfg.Transport {
	case "sse":
		return srv.ServeSSE(ctx, cfg.ListenAddr, cfg.BaseURL)
	case "http":
		return srv.ServeHTTP(ctx, cfg.ListenAddr)
	default:
		return srv.Serve(ctx)
	}
}
