package etl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"opendata/internal/payload"
)

// ── Manifest ───────────────────────────────────────────────
// The run manifest lists every file written during one run.
// It is owned by Engine.Run and flushed once, after every dataset
// has been written.

// ISOMillis is the timestamp layout used for generatedAt.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// ErrManifestFlushed is returned when Flush is called a second time.
var ErrManifestFlushed = errors.New("manifest already flushed")

// FileEntry is one written file, relative to the data root.
type FileEntry struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"sizeBytes"`
}

// Manifest accumulates file entries per dataset.
type Manifest struct {
	generatedAt time.Time
	datasets    *orderedmap.OrderedMap[string, []FileEntry]
	flushed     bool
}

// NewManifest returns an empty manifest stamped with generatedAt.
func NewManifest(generatedAt time.Time) *Manifest {
	return &Manifest{
		generatedAt: generatedAt.UTC(),
		datasets:    orderedmap.New[string, []FileEntry](),
	}
}

// GeneratedAt returns the run timestamp.
func (m *Manifest) GeneratedAt() time.Time { return m.generatedAt }

// Record appends a file entry under dataset.
func (m *Manifest) Record(dataset, path string, sizeBytes int64) {
	files, _ := m.datasets.Get(dataset)
	m.datasets.Set(dataset, append(files, FileEntry{Path: path, SizeBytes: sizeBytes}))
}

// Datasets returns the dataset names in the order they were first recorded.
func (m *Manifest) Datasets() []string {
	names := make([]string, 0, m.datasets.Len())
	for p := m.datasets.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// Files returns the entries recorded for dataset.
func (m *Manifest) Files(dataset string) []FileEntry {
	files, _ := m.datasets.Get(dataset)
	return files
}

// FileCount returns the total number of recorded files.
func (m *Manifest) FileCount() int {
	n := 0
	for p := m.datasets.Oldest(); p != nil; p = p.Next() {
		n += len(p.Value)
	}
	return n
}

// MarshalJSON renders {generatedAt, datasets: {name: {files: [...]}}}.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	datasets := payload.NewObject()
	for p := m.datasets.Oldest(); p != nil; p = p.Next() {
		entry := payload.NewObject()
		entry.Set("files", p.Value)
		datasets.Set(p.Key, entry)
	}
	doc := payload.NewObject()
	doc.Set("generatedAt", m.generatedAt.Format(ISOMillis))
	doc.Set("datasets", datasets)
	return doc.MarshalJSON()
}

// Flush writes the manifest as indented JSON to path. It may only
// succeed once per manifest.
func (m *Manifest) Flush(path string) error {
	if m.flushed {
		return ErrManifestFlushed
	}
	data, err := payload.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	m.flushed = true
	return nil
}
