package payload

import (
	"bytes"
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ── Value model ───────────────────────────────────────────
// A decoded API response is a tree of:
//   *Object      JSON object, keys in document order
//   []any        JSON array
//   string       JSON string
//   json.Number  JSON number, literal text preserved
//   bool         JSON boolean
//   nil          JSON null
//
// Order matters: CSV headers and the object-map rows follow the order
// the API returned, so a plain map[string]any is not enough here.

// Object is a JSON object that remembers key insertion order.
type Object struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: orderedmap.New[string, any]()}
}

// Set stores v under key. An existing key keeps its original position.
func (o *Object) Set(key string, v any) {
	o.m.Set(key, v)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.m.Get(key)
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	o.m.Delete(key)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.m.Len()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, o.m.Len())
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Each calls fn for every entry in insertion order.
func (o *Object) Each(fn func(key string, v any)) {
	if o == nil {
		return
	}
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

// Clone returns a shallow copy: nested values are shared.
func (o *Object) Clone() *Object {
	c := NewObject()
	o.Each(c.Set)
	return c
}

// MarshalJSON encodes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := encodeTo(&buf, p.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeTo(&buf, p.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ── Accessors ─────────────────────────────────────────────
// All accessors are total: an absent key, a null, and a value of the
// wrong shape all resolve to the zero result.

// AsObject reports whether v is a JSON object.
func AsObject(v any) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok && o != nil
}

// AsList reports whether v is a JSON array.
func AsList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// Lookup walks a dot-separated path through nested objects.
// Returns nil when any segment is missing or not an object.
func Lookup(v any, path string) any {
	if path == "" {
		return v
	}
	current := v
	for _, part := range strings.Split(path, ".") {
		obj, ok := AsObject(current)
		if !ok {
			return nil
		}
		current, _ = obj.Get(part)
	}
	return current
}

// ── Encoding ──────────────────────────────────────────────

// Marshal renders v as two-space indented JSON without HTML escaping
// and without a trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Compact renders v as single-line JSON.
func Compact(v any) (string, error) {
	var buf bytes.Buffer
	if err := encodeTo(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// encodeTo writes v without HTML escaping. U+2028 and U+2029 are still
// written as \u2028 and \u2029.
func encodeTo(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode always terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
