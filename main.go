package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"opendata/internal/config"
	"opendata/internal/datasets"
	"opendata/internal/etl"
	"opendata/internal/etl/sources"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	defer logger.Sync() //nolint:errcheck

	engine := newEngine(cfg, logger)
	if _, err := engine.Run(context.Background(), datasets.Catalog()); err != nil {
		logger.Error("Export failed", zap.Error(err))
		return err
	}
	return nil
}

func newEngine(cfg config.Config, logger *zap.Logger) *etl.Engine {
	return &etl.Engine{
		Source:       &sources.HTTPSource{BaseURL: cfg.BaseURL, Limit: cfg.Limit},
		Dest:         &etl.DirWriter{Root: cfg.DataRoot},
		ManifestPath: cfg.ManifestPath(),
		ReadmePath:   cfg.ReadmePath,
		Log:          logger,
	}
}
