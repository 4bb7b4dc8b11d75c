package codec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wippyai/rtc-bridge/errors"
)

// Reader decodes values out of a Map. The first failure is kept and every
// later read becomes a no-op returning the zero value, so a decoder can read
// all of its fields and check Err once:
//
//	r := codec.NewReader(args)
//	token := r.String("token")
//	cfg := codec.Read[rtc.RoomConfig](r, "roomConfig")
//	if err := r.Err(); err != nil {
//		return nil, err
//	}
//
// Nested readers share the parent's error.
type Reader struct {
	m    *Map
	path []string
	st   *readState
}

type readState struct {
	err error
}

// NewReader creates a reader over m. A nil map reads as empty.
func NewReader(m *Map) *Reader {
	return &Reader{m: m, st: &readState{}}
}

// Err returns the first decode failure.
func (r *Reader) Err() error {
	return r.st.err
}

// Fail records err unless an earlier failure is already held.
func (r *Reader) Fail(err error) {
	if r.st.err == nil {
		r.st.err = err
	}
}

// Source returns the map being read.
func (r *Reader) Source() *Map {
	return r.m
}

func (r *Reader) keyPath(key string) []string {
	p := make([]string, len(r.path)+1)
	copy(p, r.path)
	p[len(r.path)] = key
	return p
}

func (r *Reader) child(m *Map, key string) *Reader {
	return &Reader{m: m, path: r.keyPath(key), st: r.st}
}

// Has reports whether key holds a value other than null or Absent.
func (r *Reader) Has(key string) bool {
	v, ok := r.m.Get(key)
	return ok && !IsAbsent(v)
}

// value fetches a required value, recording a missing-field failure.
func (r *Reader) value(key, expected string) (any, bool) {
	if r.st.err != nil {
		return nil, false
	}
	v, ok := r.m.Get(key)
	if !ok || IsAbsent(v) {
		r.Fail(errors.FieldMissing(errors.PhaseDecode, r.keyPath(key), expected))
		return nil, false
	}
	return v, true
}

func (r *Reader) mismatch(key, expected string, v any) {
	r.Fail(errors.TypeMismatch(errors.PhaseDecode, r.keyPath(key), expected, typeName(v)))
}

// Int64 reads an integer. Integral floats are accepted.
func (r *Reader) Int64(key string) int64 {
	v, ok := r.value(key, "int")
	if !ok {
		return 0
	}
	n, ok := asInt(v)
	if !ok {
		r.mismatch(key, "int", v)
	}
	return n
}

// Int reads an integer into an int.
func (r *Reader) Int(key string) int {
	return int(r.Int64(key))
}

func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case float64:
		if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
			return int64(x), true
		}
	}
	return 0, false
}

// Float64 reads a number. Integers are accepted.
func (r *Reader) Float64(key string) float64 {
	v, ok := r.value(key, "float")
	if !ok {
		return 0
	}
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	}
	r.mismatch(key, "float", v)
	return 0
}

// Float32 reads a number narrowed to float32.
func (r *Reader) Float32(key string) float32 {
	return float32(r.Float64(key))
}

func (r *Reader) Bool(key string) bool {
	v, ok := r.value(key, "bool")
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.mismatch(key, "bool", v)
	}
	return b
}

func (r *Reader) String(key string) string {
	v, ok := r.value(key, "string")
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.mismatch(key, "string", v)
	}
	return s
}

// ID reads an instance identifier given either as a string or an integer.
func (r *Reader) ID(key string) string {
	v, ok := r.value(key, "string or int")
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	}
	if n, ok := asInt(v); ok {
		return strconv.FormatInt(n, 10)
	}
	r.mismatch(key, "string or int", v)
	return ""
}

// OptString reads an optional string; nil when unset.
func (r *Reader) OptString(key string) *string {
	if r.st.err != nil || !r.Has(key) {
		return nil
	}
	s := r.String(key)
	return &s
}

func (r *Reader) Bytes(key string) []byte {
	v, ok := r.value(key, "bytes")
	if !ok {
		return nil
	}
	b, ok := v.([]byte)
	if !ok {
		r.mismatch(key, "bytes", v)
	}
	return b
}

// OptBytes reads optional bytes; nil when unset.
func (r *Reader) OptBytes(key string) []byte {
	if r.st.err != nil || !r.Has(key) {
		return nil
	}
	return r.Bytes(key)
}

// Map returns a reader for a required nested map.
func (r *Reader) Map(key string) *Reader {
	v, ok := r.value(key, "map")
	if !ok {
		return r.child(nil, key)
	}
	m, ok := v.(*Map)
	if !ok {
		r.mismatch(key, "map", v)
	}
	return r.child(m, key)
}

// OptMap returns a reader for an optional nested map, or nil when unset.
func (r *Reader) OptMap(key string) *Reader {
	if r.st.err != nil || !r.Has(key) {
		return nil
	}
	return r.Map(key)
}

// List reads a required list.
func (r *Reader) List(key string) []any {
	v, ok := r.value(key, "list")
	if !ok {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		r.mismatch(key, "list", v)
	}
	return l
}

// Each calls fn with a reader for every map element of a required list.
func (r *Reader) Each(key string, fn func(i int, elem *Reader)) {
	for i, v := range r.List(key) {
		if r.st.err != nil {
			return
		}
		elemKey := fmt.Sprintf("%s[%d]", key, i)
		m, ok := v.(*Map)
		if !ok {
			r.mismatch(elemKey, "map", v)
			return
		}
		fn(i, r.child(m, elemKey))
	}
}

// Ints reads a required list of integers.
func (r *Reader) Ints(key string) []int {
	l := r.List(key)
	out := make([]int, 0, len(l))
	for i, v := range l {
		n, ok := asInt(v)
		if !ok {
			r.mismatch(fmt.Sprintf("%s[%d]", key, i), "int", v)
			return nil
		}
		out = append(out, int(n))
	}
	return out
}

// Strings reads a required list of strings.
func (r *Reader) Strings(key string) []string {
	l := r.List(key)
	out := make([]string, 0, len(l))
	for i, v := range l {
		str, ok := v.(string)
		if !ok {
			r.mismatch(fmt.Sprintf("%s[%d]", key, i), "string", v)
			return nil
		}
		out = append(out, str)
	}
	return out
}

// Float64s reads a required list of numbers.
func (r *Reader) Float64s(key string) []float64 {
	l := r.List(key)
	out := make([]float64, 0, len(l))
	for i, v := range l {
		switch x := v.(type) {
		case float64:
			out = append(out, x)
		case int64:
			out = append(out, float64(x))
		default:
			r.mismatch(fmt.Sprintf("%s[%d]", key, i), "float", v)
			return nil
		}
	}
	return out
}

// Plain reads a required nested map as plain Go values.
func (r *Reader) Plain(key string) map[string]any {
	sub := r.Map(key)
	if r.st.err != nil {
		return nil
	}
	return sub.m.Plain()
}

// OptPlain reads an optional nested map as plain Go values; nil when unset.
func (r *Reader) OptPlain(key string) map[string]any {
	if r.st.err != nil || !r.Has(key) {
		return nil
	}
	return r.Plain(key)
}

type intEnum interface {
	~int | ~int64
	Valid() bool
}

type stringEnum interface {
	~string
	Valid() bool
}

// Enum reads an integer-tagged enum, rejecting unknown tags.
func Enum[E intEnum](r *Reader, key string) E {
	n := r.Int64(key)
	if r.st.err != nil {
		return 0
	}
	e := E(n)
	if !e.Valid() {
		r.Fail(errors.InvalidEnum(errors.PhaseDecode, r.keyPath(key), n, fmt.Sprintf("%T", e)))
		return 0
	}
	return e
}

// StringEnum reads a string-tagged enum, rejecting unknown tags.
func StringEnum[E stringEnum](r *Reader, key string) E {
	s := r.String(key)
	if r.st.err != nil {
		return ""
	}
	e := E(s)
	if !e.Valid() {
		r.Fail(errors.InvalidEnum(errors.PhaseDecode, r.keyPath(key), s, fmt.Sprintf("%T", e)))
		return ""
	}
	return e
}

// Enums reads a list of integer-tagged enums.
func Enums[E intEnum](r *Reader, key string) []E {
	l := r.List(key)
	out := make([]E, 0, len(l))
	for i, v := range l {
		elemKey := fmt.Sprintf("%s[%d]", key, i)
		n, ok := asInt(v)
		if !ok {
			r.mismatch(elemKey, "int", v)
			return nil
		}
		e := E(n)
		if !e.Valid() {
			r.Fail(errors.InvalidEnum(errors.PhaseDecode, r.keyPath(elemKey), n, fmt.Sprintf("%T", e)))
			return nil
		}
		out = append(out, e)
	}
	return out
}
