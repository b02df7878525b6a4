package etl

import "opendata/internal/payload"

// NormalizeObjectMap turns a {key: count} mapping into two-column
// records, one per entry, in the order the API returned them.
// Anything other than an object yields no rows.
func NormalizeObjectMap(v any, keyColumn, valueColumn string) []Record {
	obj, ok := payload.AsObject(v)
	if !ok {
		return nil
	}
	rows := make([]Record, 0, obj.Len())
	obj.Each(func(k string, val any) {
		r := NewRecord()
		r.Set(keyColumn, k)
		r.Set(valueColumn, val)
		rows = append(rows, r)
	})
	return rows
}
