package codec

import (
	"bytes"
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/rtc"
)

type absent struct{}

func (absent) String() string { return "<absent>" }

// Absent marks an optional value that is not set. Encoders write it instead
// of omitting the key; transports render it as null.
var Absent any = absent{}

// IsAbsent reports whether v is Absent or nil.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(absent)
	return ok
}

// Map is an insertion-ordered string-keyed map of normalised values:
// nil, Absent, bool, int64, float64, string, []byte, []any and *Map.
type Map struct {
	om *orderedmap.OrderedMap[string, any]
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{om: orderedmap.New[string, any]()}
}

// Set stores v under key, normalising it. Set panics on a value that has no
// host representation; that is a programming error, not a data error.
func (m *Map) Set(key string, v any) *Map {
	n, err := Normalize(v)
	if err != nil {
		panic(fmt.Sprintf("codec: key %q: %v", key, err))
	}
	m.om.Set(key, n)
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	return m.om.Get(key)
}

// Delete removes key.
func (m *Map) Delete(key string) {
	m.om.Delete(key)
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.om.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, v any) bool) {
	if m == nil {
		return
	}
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Clone returns a deep copy.
func (m *Map) Clone() *Map {
	out := NewMap()
	m.Range(func(k string, v any) bool {
		out.om.Set(k, cloneValue(v))
		return true
	})
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case *Map:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case []byte:
		return bytes.Clone(x)
	}
	return v
}

// Equal reports whether both maps hold the same keys with equal values.
// Key order is not compared; nil and Absent compare equal.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	equal := true
	m.Range(func(k string, v any) bool {
		ov, ok := o.Get(k)
		if !ok || !valuesEqual(v, ov) {
			equal = false
		}
		return equal
	})
	return equal
}

func valuesEqual(a, b any) bool {
	if IsAbsent(a) || IsAbsent(b) {
		return IsAbsent(a) && IsAbsent(b)
	}
	switch x := a.(type) {
	case *Map:
		y, ok := b.(*Map)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valuesEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	}
	return a == b
}

// Plain converts the map into nested map[string]any / []any values with
// Absent rendered as nil, for transports that cannot carry *Map.
func (m *Map) Plain() map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(k string, v any) bool {
		out[k] = PlainValue(v)
		return true
	})
	return out
}

// PlainValue is Plain for a single value.
func PlainValue(v any) any {
	switch x := v.(type) {
	case absent:
		return nil
	case *Map:
		return x.Plain()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = PlainValue(e)
		}
		return out
	}
	return v
}

// FromPlain builds a Map from a decoded transport value. Go maps carry no
// order, so keys are inserted sorted.
func FromPlain(p map[string]any) (*Map, error) {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := NewMap()
	for _, k := range keys {
		n, err := Normalize(p[k])
		if err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
				Path(k).Cause(err).Build()
		}
		m.om.Set(k, n)
	}
	return m, nil
}

// Normalize converts v to its canonical host representation. Records are
// encoded through the schema table.
func Normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil, absent, bool, int64, float64, string:
		return v, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint:
		return int64(x), nil
	case uint64:
		if x > 1<<63-1 {
			return nil, fmt.Errorf("uint64 %d overflows int64", x)
		}
		return int64(x), nil
	case float32:
		return float64(x), nil
	case []byte:
		return x, nil
	case *Map:
		return x, nil
	case map[string]any:
		return FromPlain(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			n, err := Normalize(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out, nil
	case []int:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = int64(e)
		}
		return out, nil
	case []int64:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out, nil
	case []float64:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out, nil
	case rtc.Record:
		return Encode(x)
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

// typeName names a normalised value's host type for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil, absent:
		return "null"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case []any:
		return "list"
	case *Map:
		return "map"
	}
	return fmt.Sprintf("%T", v)
}
