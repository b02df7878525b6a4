package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"opendata/internal/config"
	"opendata/internal/etl"
	"opendata/internal/etl/sources"
)

func TestNewEngine(t *testing.T) {
	cfg := config.Default()
	logger := zaptest.NewLogger(t)

	engine := newEngine(cfg, logger)

	src, ok := engine.Source.(*sources.HTTPSource)
	require.True(t, ok)
	assert.Equal(t, "https://api.opendata.je/v1", src.BaseURL)
	assert.Equal(t, 1000000, src.Limit)

	dest, ok := engine.Dest.(*etl.DirWriter)
	require.True(t, ok)
	assert.Equal(t, "data", dest.Root)

	assert.Equal(t, filepath.Join("data", "index.json"), engine.ManifestPath)
	assert.Equal(t, "README.md", engine.ReadmePath)
	assert.Same(t, logger, engine.Log)
	assert.Nil(t, engine.Now)
}
