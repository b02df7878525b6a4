package etl

import "opendata/internal/payload"

// ── Record ─────────────────────────────────────────────────
// Common intermediate data format.
// Every transform emits Records, the writer consumes Records.
// Column order is the key insertion order of Data.

// Record is a single flat row of data flowing through the pipeline.
type Record struct {
	Data *payload.Object
}

// NewRecord returns an empty Record.
func NewRecord() Record {
	return Record{Data: payload.NewObject()}
}

// Set assigns a column value, keeping the column's first position.
func (r Record) Set(column string, v any) {
	r.Data.Set(column, v)
}

// Get returns a column value, nil when absent.
func (r Record) Get(column string) any {
	v, _ := r.Data.Get(column)
	return v
}

// Field describes a single column in a dataset.
type Field struct {
	Name string `json:"name"`
}

// Schema describes the shape of the records written for a dataset.
type Schema struct {
	Fields []Field `json:"fields"`
}

// FieldNames returns an ordered list of field names.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// DeriveSchema builds a schema from the union of record keys, in the
// order they are first seen (first record's keys first).
func DeriveSchema(records []Record) *Schema {
	seen := make(map[string]bool)
	schema := &Schema{}
	for _, r := range records {
		r.Data.Each(func(k string, _ any) {
			if !seen[k] {
				seen[k] = true
				schema.Fields = append(schema.Fields, Field{Name: k})
			}
		})
	}
	return schema
}
