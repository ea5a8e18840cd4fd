// Command generator writes the built-in sample business datasets to
// disk in CSV, JSON and XLSX form, along with a run manifest.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"samplegen/internal/config"
	"samplegen/internal/dataset"
	"samplegen/internal/infrastructure"
	"samplegen/pkg/contracts"
)

func main() {
	out := flag.String("out", "", "output directory (defaults to data/datasets)")
	formats := flag.String("formats", "", "comma-separated formats: csv,json,xlsx (defaults to each dataset's native format)")
	indent := flag.Int("indent", -1, "spaces per nesting level for JSON output, 0 for compact (defaults to config)")
	manifest := flag.Bool("manifest", true, "write a manifest.json describing the run")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(contracts.GetVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override config
	if *out != "" {
		cfg.Paths.OutputDir = *out
	}
	if *formats != "" {
		cfg.Export.Formats = *formats
	}
	if *indent >= 0 {
		cfg.Export.Indent = *indent
	}
	if !*manifest {
		cfg.Export.Manifest = false
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := run(cfg, infrastructure.WithComponent(logger, "generator")); err != nil {
		logger.Error("Dataset generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		return fmt.Errorf("resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("create output directories: %w", err)
	}

	exportFormats, err := cfg.ExportFormats()
	if err != nil {
		return err
	}

	formatList := cfg.Export.Formats
	if formatList == "" {
		formatList = "per-dataset defaults"
	}
	logger.Info("Starting dataset generation",
		slog.String("output_dir", paths.OutputDir),
		slog.String("formats", formatList),
		slog.Int("indent", cfg.Export.Indent))

	manifest, err := dataset.ExportAll(context.Background(), dataset.ExportOptions{
		OutputDir:  paths.OutputDir,
		Formats:    exportFormats,
		Indent:     cfg.Export.Indent,
		ExcelSheet: cfg.Export.ExcelSheet,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if cfg.Export.Manifest {
		manifestPath := paths.GetManifestPath()
		if err := manifest.WriteFile(manifestPath, cfg.Export.Indent); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		logger.Info("Manifest written", slog.String("path", manifestPath))
	}

	names := make([]string, 0, len(manifest.Entries))
	for _, entry := range manifest.Entries {
		names = append(names, fmt.Sprintf("%s.%s", entry.Dataset, entry.Format))
	}
	logger.Info("All datasets created successfully",
		slog.String("run_id", manifest.RunID),
		slog.Int("file_count", len(manifest.Entries)),
		slog.String("files", strings.Join(names, ", ")))

	return nil
}
