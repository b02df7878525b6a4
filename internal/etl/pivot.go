package etl

import (
	"sort"

	"opendata/internal/payload"
)

// PivotTable is the wide form of a list of (timestamp, category, value)
// triples: one row per timestamp, one column per category.
type PivotTable struct {
	KeyColumn string
	Columns   []string // categories, ascending
	Rows      []Record // newest timestamp first
}

// Pivot builds a PivotTable from raw triples. Entries with fewer than
// three elements are skipped, as are entries whose category equals
// keyColumn, so the timestamp cell is never overwritten. Missing cells
// are "".
//
// A repeated (timestamp, category) pair overwrites the earlier value.
// TODO: report duplicate pairs once the API documents whether they can occur.
func Pivot(triples []any, keyColumn string) PivotTable {
	cells := make(map[string]map[string]any)
	categories := make(map[string]bool)

	for _, t := range triples {
		triple, ok := payload.AsList(t)
		if !ok || len(triple) < 3 {
			continue
		}
		ts := CellText(triple[0])
		cat := CellText(triple[1])
		if cat == keyColumn {
			continue
		}
		categories[cat] = true
		if cells[ts] == nil {
			cells[ts] = make(map[string]any)
		}
		cells[ts][cat] = triple[2]
	}

	table := PivotTable{KeyColumn: keyColumn}
	for c := range categories {
		table.Columns = append(table.Columns, c)
	}
	sort.Strings(table.Columns)

	timestamps := make([]string, 0, len(cells))
	for ts := range cells {
		timestamps = append(timestamps, ts)
	}
	// ISO dates order lexicographically.
	sort.Sort(sort.Reverse(sort.StringSlice(timestamps)))

	for _, ts := range timestamps {
		r := NewRecord()
		r.Set(keyColumn, ts)
		for _, c := range table.Columns {
			if v, ok := cells[ts][c]; ok {
				r.Set(c, v)
			} else {
				r.Set(c, "")
			}
		}
		table.Rows = append(table.Rows, r)
	}
	return table
}
