package etl

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"opendata/internal/payload"
)

// ── Destination ────────────────────────────────────────────
// A Destination persists one dataset: its raw JSON snapshot and,
// when there are rows, its CSV projection. Every file written is
// recorded in the run manifest.

// Destination writes a dataset's files.
type Destination interface {
	Write(m *Manifest, dataset string, raw any, rows []Record) error
}

// ── Directory Destination ──────────────────────────────────
// Writes <Root>/<dataset>/<dataset>.json and .csv.

// DirWriter implements Destination on the local filesystem.
type DirWriter struct {
	Root string
}

func (w *DirWriter) Write(m *Manifest, dataset string, raw any, rows []Record) error {
	dir := filepath.Join(w.Root, dataset)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	jsonData, err := payload.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := w.writeFile(m, dataset, dataset+".json", jsonData); err != nil {
		return err
	}

	// No rows, no CSV file.
	if len(rows) == 0 {
		return nil
	}
	csvData, err := EncodeCSV(rows)
	if err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return w.writeFile(m, dataset, dataset+".csv", csvData)
}

func (w *DirWriter) writeFile(m *Manifest, dataset, name string, data []byte) error {
	full := filepath.Join(w.Root, dataset, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", full, err)
	}
	// Manifest paths always use forward slashes.
	m.Record(dataset, path.Join(dataset, name), int64(len(data)))
	return nil
}

// EncodeCSV renders records with a header row. The header is the union
// of record keys in first-seen order.
func EncodeCSV(records []Record) ([]byte, error) {
	schema := DeriveSchema(records)
	header := schema.FieldNames()

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	row := make([]string, len(header))
	for _, r := range records {
		for i, name := range header {
			row[i] = CellText(r.Get(name))
		}
		if err := cw.Write(row); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
