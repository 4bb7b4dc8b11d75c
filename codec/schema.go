package codec

import (
	"sort"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/rtc"
)

// schema pairs a record's encoder and decoder. The table is closed: every
// record type is registered once in init and selected by its RecordName tag.
type schema struct {
	encode func(rtc.Record) (*Map, bool)
	decode func(*Reader) rtc.Record
}

var schemas = map[string]schema{}

func register[T rtc.Record](enc func(T) *Map, dec func(*Reader) T) {
	var zero T
	name := zero.RecordName()
	if _, dup := schemas[name]; dup {
		panic("codec: duplicate schema " + name)
	}
	schemas[name] = schema{
		encode: func(v rtc.Record) (*Map, bool) {
			t, ok := v.(T)
			if !ok {
				return nil, false
			}
			return enc(t), true
		},
		decode: func(r *Reader) rtc.Record { return dec(r) },
	}
}

// Names returns the registered record tags, sorted.
func Names() []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode converts a record into its map form.
func Encode(v rtc.Record) (*Map, error) {
	if v == nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			Detail("nil record").Build()
	}
	s, ok := schemas[v.RecordName()]
	if !ok {
		return nil, errors.New(errors.PhaseEncode, errors.KindNotImplemented).
			Detail("no schema for %s", v.RecordName()).Build()
	}
	m, ok := s.encode(v)
	if !ok {
		return nil, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Expected(v.RecordName()).Detail("record passed by pointer").Build()
	}
	return m, nil
}

// Decode converts a map into the record type T.
func Decode[T rtc.Record](m *Map) (T, error) {
	r := NewReader(m)
	v := decodeWith[T](r)
	if err := r.Err(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func decodeWith[T rtc.Record](r *Reader) T {
	var zero T
	s, ok := schemas[zero.RecordName()]
	if !ok {
		r.Fail(errors.New(errors.PhaseDecode, errors.KindNotImplemented).
			Detail("no schema for %s", zero.RecordName()).Build())
		return zero
	}
	v, ok := s.decode(r).(T)
	if !ok {
		return zero
	}
	return v
}

// Read decodes a required nested record under key.
func Read[T rtc.Record](r *Reader, key string) T {
	sub := r.Map(key)
	if r.Err() != nil {
		var zero T
		return zero
	}
	return decodeWith[T](sub)
}

// ReadOpt decodes an optional nested record; nil when unset.
func ReadOpt[T rtc.Record](r *Reader, key string) *T {
	sub := r.OptMap(key)
	if sub == nil || r.Err() != nil {
		return nil
	}
	v := decodeWith[T](sub)
	return &v
}

// ReadList decodes a required list of records under key.
func ReadList[T rtc.Record](r *Reader, key string) []T {
	var out []T
	r.Each(key, func(_ int, elem *Reader) {
		out = append(out, decodeWith[T](elem))
	})
	if out == nil && r.Err() == nil {
		out = []T{}
	}
	return out
}

// EncodeList encodes records into a host list.
func EncodeList[T rtc.Record](vs []T) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		m, _ := Encode(v)
		out = append(out, m)
	}
	return out
}

func optString(p *string) any {
	if p == nil {
		return Absent
	}
	return *p
}

func optBytes(b []byte) any {
	if b == nil {
		return Absent
	}
	return b
}

func floatList(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func listOf[T any](vs []T, enc func(T) *Map) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = enc(v)
	}
	return out
}

func readListOf[T any](r *Reader, key string, dec func(*Reader) T) []T {
	out := []T{}
	r.Each(key, func(_ int, elem *Reader) {
		out = append(out, dec(elem))
	})
	return out
}

func enumList[E ~int | ~int64](vs []E) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out
}
