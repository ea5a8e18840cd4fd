package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all file system locations the generator writes to.
// This is the single source of truth for output paths.
type Paths struct {
	BaseDir   string
	OutputDir string
	LogsDir   string
}

// NewPaths resolves the configured directories against the working
// directory. Absolute paths are kept as-is.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	resolve := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(base, dir)
	}

	return &Paths{
		BaseDir:   base,
		OutputDir: resolve(cfg.OutputDir),
		LogsDir:   resolve(cfg.LogsDir),
	}, nil
}

// EnsureDirectories creates all output directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetDatasetPath returns the full path of a generated dataset file
func (p *Paths) GetDatasetPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// GetManifestPath returns the full path of the run manifest
func (p *Paths) GetManifestPath() string {
	return filepath.Join(p.OutputDir, "manifest.json")
}

// GetLogPath returns the full path of a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists at the given path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
