package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samplegen/internal/config"
	"samplegen/internal/exporter"
)

func testConfig(outDir string) *config.Config {
	cfg := config.Default()
	cfg.Paths.OutputDir = outDir
	cfg.Paths.LogsDir = filepath.Join(outDir, "logs")
	return &cfg
}

func TestRun_Defaults(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "datasets")
	cfg := testConfig(outDir)

	require.NoError(t, run(cfg, slog.Default()))

	wantFiles := []string{
		"financial_kpis.json",
		"operations_metrics.csv",
		"operations_efficiency.json",
		"user_engagement.csv",
		"feature_adoption.json",
		"manifest.json",
	}
	for _, name := range wantFiles {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	f, err := os.Open(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)
	defer f.Close()

	doc, err := exporter.ParseDocument(f)
	require.NoError(t, err)
	manifest, ok := doc.(exporter.Object)
	require.True(t, ok)

	files, ok := manifest.Get("files")
	require.True(t, ok)
	assert.Len(t, files, 5)
}

func TestRun_AllFormatsNoManifest(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "datasets")
	cfg := testConfig(outDir)
	cfg.Export.Formats = "csv,json,xlsx"
	cfg.Export.Manifest = false

	require.NoError(t, run(cfg, slog.Default()))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	assert.Len(t, names, 15)
	assert.NotContains(t, names, "manifest.json")
}

func TestRun_InvalidFormat(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "datasets"))
	cfg.Export.Formats = "csv,parquet"

	err := run(cfg, slog.Default())
	assert.Error(t, err)
}
