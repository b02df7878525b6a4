package etl

import "opendata/internal/payload"

// Kind selects how a dataset's payload becomes rows.
type Kind int

const (
	KindRecords   Kind = iota // list of records, one row each
	KindObjectMap             // {key: count} mapping, one row per entry
	KindPivot                 // (timestamp, category, value) triples, pivoted wide
)

func (k Kind) String() string {
	switch k {
	case KindRecords:
		return "records"
	case KindObjectMap:
		return "object-map"
	case KindPivot:
		return "pivot"
	default:
		return "unknown"
	}
}

// DefaultSelect is the path of the result list in every API response.
const DefaultSelect = "results"

// Dataset describes one exported collection. Name is both the
// directory and the file stem under the data root.
type Dataset struct {
	Name     string
	Endpoint string
	Kind     Kind
	Select   string   // dot path to the results; "" means DefaultSelect
	Exclude  []string // fields stripped before projection and from the snapshot

	// KindRecords: nil Projection writes the JSON snapshot only.
	Projection *Projection

	// KindObjectMap: column names for the key and the value.
	// KindPivot: KeyColumn names the timestamp column.
	KeyColumn   string
	ValueColumn string
}

func (d Dataset) selectPath() string {
	if d.Select == "" {
		return DefaultSelect
	}
	return d.Select
}

// Build derives the JSON snapshot to write and the rows for the CSV.
func (d Dataset) Build(raw any) (snapshot any, rows []Record) {
	selected := payload.Lookup(raw, d.selectPath())

	switch d.Kind {
	case KindObjectMap:
		return raw, NormalizeObjectMap(selected, d.KeyColumn, d.ValueColumn)

	case KindPivot:
		triples, _ := payload.AsList(selected)
		return raw, Pivot(triples, d.KeyColumn).Rows

	default:
		results, _ := payload.AsList(selected)
		snapshot = raw
		if len(d.Exclude) > 0 {
			// Strip first, then reattach pagination around the stripped list.
			results = ExcludeAll(results, d.Exclude)
			snapshot = withPagination(raw, results)
		}
		if d.Projection == nil {
			return snapshot, nil
		}
		proj := d.Projection.Without(d.Exclude)
		rows = make([]Record, 0, len(results))
		for _, item := range results {
			obj, _ := payload.AsObject(item)
			rows = append(rows, proj.Project(obj))
		}
		return snapshot, rows
	}
}

// withPagination builds {pagination, results}. The pagination key is
// omitted when the source response had none.
func withPagination(raw any, results []any) *payload.Object {
	out := payload.NewObject()
	if src, ok := payload.AsObject(raw); ok {
		if p, ok := src.Get("pagination"); ok {
			out.Set("pagination", p)
		}
	}
	out.Set("results", results)
	return out
}
