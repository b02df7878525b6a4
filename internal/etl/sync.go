package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"opendata/internal/readme"
)

// ── Engine ─────────────────────────────────────────────────
// Orchestrates: source.Fetch → Dataset.Build → destination.Write,
// for every dataset in order, then stamps the README and flushes
// the manifest.
//
// Precondition: at most one Engine.Run per data root at a time.
// Concurrent runs race on the dataset files and the manifest.

// RunResult is the outcome of a successful run.
type RunResult struct {
	RunID       string        `json:"runId"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Datasets    int           `json:"datasets"`
	Files       int           `json:"files"`
	Duration    time.Duration `json:"duration"`
}

// Engine runs an export over a fixed list of datasets.
type Engine struct {
	Source       Source
	Dest         Destination
	ManifestPath string
	ReadmePath   string // "" skips the README stamp
	Now          func() time.Time
	Log          *zap.Logger
}

// Run processes datasets sequentially and stops at the first error.
// On error no manifest is written and the README is left alone; files
// of datasets already processed stay on disk.
func (e *Engine) Run(ctx context.Context, datasets []Dataset) (*RunResult, error) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	start := now()
	result := &RunResult{RunID: uuid.NewString(), GeneratedAt: start.UTC()}

	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run", result.RunID))
	log.Info("Starting export", zap.Int("datasets", len(datasets)))

	manifest := NewManifest(start)

	for _, ds := range datasets {
		if err := e.runDataset(ctx, log, manifest, ds); err != nil {
			return nil, fmt.Errorf("%s: %w", ds.Name, err)
		}
		result.Datasets++
	}

	if e.ReadmePath != "" {
		if err := readme.Stamp(e.ReadmePath, start); err != nil {
			return nil, fmt.Errorf("update readme: %w", err)
		}
	}
	if err := manifest.Flush(e.ManifestPath); err != nil {
		return nil, fmt.Errorf("flush manifest: %w", err)
	}

	result.Files = manifest.FileCount()
	result.Duration = now().Sub(start)
	log.Info("Done",
		zap.Int("datasets", result.Datasets),
		zap.Int("files", result.Files),
		zap.Duration("duration", result.Duration))
	return result, nil
}

func (e *Engine) runDataset(ctx context.Context, log *zap.Logger, m *Manifest, ds Dataset) error {
	log.Info("Fetching", zap.String("endpoint", ds.Endpoint))
	raw, err := e.Source.Fetch(ctx, ds.Endpoint)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	snapshot, rows := ds.Build(raw)

	if err := e.Dest.Write(m, ds.Name, snapshot, rows); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	log.Debug("Dataset written",
		zap.String("dataset", ds.Name),
		zap.Stringer("kind", ds.Kind),
		zap.Int("rows", len(rows)),
		zap.Int("files", len(m.Files(ds.Name))))
	return nil
}
