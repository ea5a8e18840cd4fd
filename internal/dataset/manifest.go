package dataset

import (
	"time"

	"github.com/google/uuid"

	"samplegen/internal/exporter"
)

// ManifestEntry describes one file written during a generator run.
type ManifestEntry struct {
	Dataset string
	Format  Format
	Path    string
	Rows    int
}

// Manifest summarizes one generator run: which datasets were written,
// where, and in which formats.
type Manifest struct {
	RunID       string
	GeneratedAt time.Time
	Entries     []ManifestEntry
}

// NewManifest creates a manifest with a fresh run ID and UTC timestamp
func NewManifest(now time.Time) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: now.UTC(),
	}
}

// Add appends one written file to the manifest
func (m *Manifest) Add(entry ManifestEntry) {
	m.Entries = append(m.Entries, entry)
}

// Document renders the manifest as an order-stable document tree
func (m *Manifest) Document() any {
	files := make(exporter.Array, 0, len(m.Entries))
	for _, e := range m.Entries {
		files = append(files, exporter.Object{
			{Key: "dataset", Value: e.Dataset},
			{Key: "format", Value: string(e.Format)},
			{Key: "path", Value: e.Path},
			{Key: "rows", Value: e.Rows},
		})
	}

	return exporter.Object{
		{Key: "run_id", Value: m.RunID},
		{Key: "generated_at", Value: m.GeneratedAt.Format(time.RFC3339)},
		{Key: "files", Value: files},
	}
}
