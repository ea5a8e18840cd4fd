package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"samplegen/internal/exporter"
)

// ExportOptions controls where and how ExportAll writes the sample datasets.
type ExportOptions struct {
	// OutputDir receives every generated file
	OutputDir string
	// Formats to write for every dataset; empty means each dataset's default
	Formats []Format
	// Indent is the space count per nesting level for document output
	Indent int
	// ExcelSheet names the sheet of generated workbooks; empty means "Data"
	ExcelSheet string
	// Logger receives per-file progress; nil disables progress logging
	Logger *slog.Logger
}

// exportJob is one dataset/format pair targeting its own destination file
type exportJob struct {
	ds     Dataset
	format Format
	path   string
}

// ExportAll validates and writes every sample dataset in the requested
// formats and returns a manifest of the written files. Each
// dataset/format pair targets a distinct destination, so the individual
// exports run concurrently; the first failure cancels the rest.
func ExportAll(ctx context.Context, opts ExportOptions) (*Manifest, error) {
	datasets, err := All()
	if err != nil {
		return nil, err
	}

	var jobs []exportJob
	for _, ds := range datasets {
		formats := opts.Formats
		if len(formats) == 0 {
			formats = []Format{ds.DefaultFormat()}
		}
		for _, format := range formats {
			filename := fmt.Sprintf("%s.%s", ds.Name(), format)
			jobs = append(jobs, exportJob{
				ds:     ds,
				format: format,
				path:   filepath.Join(opts.OutputDir, filename),
			})
		}
	}

	results := make([]ManifestEntry, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := exportOne(j, opts); err != nil {
				return fmt.Errorf("export %s as %s: %w", j.ds.Name(), j.format, err)
			}
			if opts.Logger != nil {
				opts.Logger.Info("dataset written",
					slog.String("dataset", j.ds.Name()),
					slog.String("format", string(j.format)),
					slog.String("path", j.path),
					slog.Int("rows", j.ds.Len()))
			}
			results[i] = ManifestEntry{
				Dataset: j.ds.Name(),
				Format:  j.format,
				Path:    j.path,
				Rows:    j.ds.Len(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	manifest := NewManifest(time.Now())
	for _, entry := range results {
		manifest.Add(entry)
	}
	return manifest, nil
}

// exportOne writes a single dataset in a single format
func exportOne(j exportJob, opts ExportOptions) error {
	switch j.format {
	case FormatCSV:
		return exporter.WriteTabularFile(j.path, j.ds.Schema(), j.ds.Records())
	case FormatJSON:
		return exporter.WriteDocumentFile(j.path, j.ds.Document(), opts.Indent)
	case FormatXLSX:
		sheet := opts.ExcelSheet
		if sheet == "" {
			sheet = "Data"
		}
		return exporter.WriteWorkbook(j.path, sheet, j.ds.Schema(), j.ds.Records())
	default:
		return fmt.Errorf("unknown format %q", j.format)
	}
}

// WriteFile writes the manifest as a document file
func (m *Manifest) WriteFile(path string, indent int) error {
	return exporter.WriteDocumentFile(path, m.Document(), indent)
}
