package etl

import (
	"encoding/json"
	"strconv"
	"strings"

	"opendata/internal/payload"
)

// ── Projection ─────────────────────────────────────────────
// A Projection maps one raw API record to one flat output Record.
// It is either a fixed list of (column, extractor) pairs or the
// identity projection.

// Extractor reads one output value from a raw record. Extractors are
// total: a missing field and a field of the wrong shape give the same
// default, never a panic.
type Extractor func(rec *payload.Object) any

// Column pairs an output column name with its extractor.
type Column struct {
	Name    string
	Extract Extractor
}

// Projection turns raw records into Records.
type Projection struct {
	columns  []Column
	identity bool
}

// Columns returns a projection that emits exactly cols, in order.
func Columns(cols ...Column) *Projection {
	return &Projection{columns: cols}
}

// Identity returns a projection that keeps every source field in order,
// flattening attribution objects to <field>Name and joining lists.
// When a flattened name collides with a real field, the later one in
// source order supplies the value and the column keeps its first position.
func Identity() *Projection {
	return &Projection{identity: true}
}

// Col is shorthand for a column copied verbatim from the source field
// of the same name.
func Col(name string) Column {
	return Column{Name: name, Extract: Value(name)}
}

// Without returns a copy of p with the named columns dropped.
func (p *Projection) Without(names []string) *Projection {
	if p == nil || len(names) == 0 {
		return p
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := &Projection{identity: p.identity}
	for _, c := range p.columns {
		if !drop[c.Name] {
			out.columns = append(out.columns, c)
		}
	}
	return out
}

// ColumnNames returns the fixed column list; nil for the identity projection.
func (p *Projection) ColumnNames() []string {
	if p.identity {
		return nil
	}
	names := make([]string, len(p.columns))
	for i, c := range p.columns {
		names[i] = c.Name
	}
	return names
}

// Project maps rec to a Record. A nil rec yields all defaults.
func (p *Projection) Project(rec *payload.Object) Record {
	out := NewRecord()
	if p.identity {
		rec.Each(func(k string, v any) {
			if obj, ok := payload.AsObject(v); ok {
				if name, ok := obj.Get("name"); ok {
					out.Set(k+"Name", name)
					return
				}
			}
			if _, ok := payload.AsList(v); ok {
				out.Set(k, JoinList(v))
				return
			}
			out.Set(k, v)
		})
		return out
	}
	for _, c := range p.columns {
		out.Set(c.Name, c.Extract(rec))
	}
	return out
}

// ── Extractors ─────────────────────────────────────────────

// Value copies a top-level field; absent ⇒ nil.
func Value(name string) Extractor {
	return func(rec *payload.Object) any {
		v, _ := rec.Get(name)
		return v
	}
}

// NestedName reads field.name; absent or non-object ⇒ nil.
func NestedName(field string) Extractor {
	return func(rec *payload.Object) any {
		obj, ok := payload.AsObject(fieldValue(rec, field))
		if !ok {
			return nil
		}
		v, _ := obj.Get("name")
		return v
	}
}

// Joined joins a list field with ","; absent, null or non-list ⇒ "".
func Joined(field string) Extractor {
	return func(rec *payload.Object) any {
		return JoinList(fieldValue(rec, field))
	}
}

func fieldValue(rec *payload.Object, field string) any {
	v, _ := rec.Get(field)
	return v
}

// JoinList renders a list as comma-separated text. Null elements become
// empty strings; nested lists are joined recursively.
func JoinList(v any) string {
	list, ok := payload.AsList(v)
	if !ok {
		return ""
	}
	parts := make([]string, len(list))
	for i, el := range list {
		parts[i] = joinElement(el)
	}
	return strings.Join(parts, ",")
}

func joinElement(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(x)
	case []any:
		return JoinList(x)
	default:
		return CellText(v)
	}
}

// ── Exclusion ──────────────────────────────────────────────

// Exclude returns a copy of rec without the named fields.
func Exclude(rec *payload.Object, names []string) *payload.Object {
	if rec == nil {
		return nil
	}
	out := rec.Clone()
	for _, n := range names {
		out.Delete(n)
	}
	return out
}

// ExcludeAll applies Exclude to every object in list. Non-object
// elements pass through untouched.
func ExcludeAll(list []any, names []string) []any {
	out := make([]any, len(list))
	for i, item := range list {
		if obj, ok := payload.AsObject(item); ok {
			out[i] = Exclude(obj, names)
		} else {
			out[i] = item
		}
	}
	return out
}

// ── Cell rendering ─────────────────────────────────────────

// CellText renders a value for a CSV cell: null is empty, true is "1"
// and false is empty, numbers keep their literal text, and objects or
// lists are written as compact JSON.
func CellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		s, err := payload.Compact(v)
		if err != nil {
			return ""
		}
		return s
	}
}
