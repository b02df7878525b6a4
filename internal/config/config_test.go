package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"opendata/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "https://api.opendata.je/v1", cfg.BaseURL)
	assert.Equal(t, 1000000, cfg.Limit)
	assert.Equal(t, filepath.Join("data", "index.json"), cfg.ManifestPath())
	assert.Equal(t, "README.md", cfg.ReadmePath)
}

func TestNewLogger(t *testing.T) {
	logger, err := config.NewLogger(zapcore.WarnLevel)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
