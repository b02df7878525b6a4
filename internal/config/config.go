package config

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the fixed settings of an export run. The job takes no
// flags and reads no environment; these are the only knobs.
type Config struct {
	// Open-data API
	BaseURL string
	Limit   int // page size large enough that no collection is truncated

	// Output layout
	DataRoot     string
	ManifestName string
	ReadmePath   string

	// Logging
	LogLevel zapcore.Level
}

// Default returns the production configuration.
func Default() Config {
	return Config{
		BaseURL:      "https://api.opendata.je/v1",
		Limit:        1000000,
		DataRoot:     "data",
		ManifestName: "index.json",
		ReadmePath:   "README.md",
		LogLevel:     zapcore.InfoLevel,
	}
}

// ManifestPath is where the run manifest is written.
func (c Config) ManifestPath() string {
	return filepath.Join(c.DataRoot, c.ManifestName)
}

// NewLogger builds the console logger used by the job (stderr).
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
