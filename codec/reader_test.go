package codec

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/rtc"
)

func TestReader_Scalars(t *testing.T) {
	m := NewMap().
		Set("i", 42).
		Set("fint", 3.0).
		Set("f", 2.5).
		Set("fi", 4).
		Set("b", true).
		Set("s", "hi").
		Set("raw", []byte("xyz")).
		Set("id", 7)

	r := NewReader(m)
	if got := r.Int("i"); got != 42 {
		t.Errorf("Int = %d", got)
	}
	if got := r.Int64("fint"); got != 3 {
		t.Errorf("integral float = %d", got)
	}
	if got := r.Float64("f"); got != 2.5 {
		t.Errorf("Float64 = %v", got)
	}
	if got := r.Float32("fi"); got != 4 {
		t.Errorf("int as float = %v", got)
	}
	if !r.Bool("b") {
		t.Error("Bool = false")
	}
	if got := r.String("s"); got != "hi" {
		t.Errorf("String = %q", got)
	}
	if got := string(r.Bytes("raw")); got != "xyz" {
		t.Errorf("Bytes = %q", got)
	}
	if got := r.ID("id"); got != "7" {
		t.Errorf("ID = %q", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		m        *Map
		read     func(r *Reader)
		kind     errors.Kind
		path     string
		expected string
	}{
		{
			name:     "missing key",
			m:        NewMap(),
			read:     func(r *Reader) { r.String("token") },
			kind:     errors.KindFieldMissing,
			path:     "token",
			expected: "string",
		},
		{
			name:     "absent required",
			m:        NewMap().Set("token", Absent),
			read:     func(r *Reader) { r.String("token") },
			kind:     errors.KindFieldMissing,
			path:     "token",
			expected: "string",
		},
		{
			name:     "wrong type",
			m:        NewMap().Set("width", "wide"),
			read:     func(r *Reader) { r.Int("width") },
			kind:     errors.KindTypeMismatch,
			path:     "width",
			expected: "int",
		},
		{
			name:     "fractional int",
			m:        NewMap().Set("width", 1.5),
			read:     func(r *Reader) { r.Int("width") },
			kind:     errors.KindTypeMismatch,
			path:     "width",
			expected: "int",
		},
		{
			name:     "int64 overflow",
			m:        NewMap().Set("width", float64(1<<63)),
			read:     func(r *Reader) { r.Int64("width") },
			kind:     errors.KindTypeMismatch,
			path:     "width",
			expected: "int",
		},
		{
			name:     "nested path",
			m:        NewMap().Set("roomConfig", NewMap().Set("profile", true)),
			read:     func(r *Reader) { r.Map("roomConfig").Int("profile") },
			kind:     errors.KindTypeMismatch,
			path:     "roomConfig.profile",
			expected: "int",
		},
		{
			name:     "list element",
			m:        NewMap().Set("regions", []any{NewMap(), "oops"}),
			read:     func(r *Reader) { r.Each("regions", func(int, *Reader) {}) },
			kind:     errors.KindTypeMismatch,
			path:     "regions[1]",
			expected: "map",
		},
		{
			name:     "string list element",
			m:        NewMap().Set("effectNodes", []any{"a", int64(2)}),
			read:     func(r *Reader) { r.Strings("effectNodes") },
			kind:     errors.KindTypeMismatch,
			path:     "effectNodes[1]",
			expected: "string",
		},
		{
			name:     "unknown enum tag",
			m:        NewMap().Set("profile", 99),
			read:     func(r *Reader) { Enum[rtc.RoomProfile](r, "profile") },
			kind:     errors.KindInvalidEnum,
			path:     "profile",
			expected: "rtc.RoomProfile",
		},
		{
			name:     "unknown string enum tag",
			m:        NewMap().Set("codec", "VP9"),
			read:     func(r *Reader) { StringEnum[rtc.TranscodingVideoCodec](r, "codec") },
			kind:     errors.KindInvalidEnum,
			path:     "codec",
			expected: "rtc.TranscodingVideoCodec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.m)
			tt.read(r)

			var e *errors.Error
			if !stderrors.As(r.Err(), &e) {
				t.Fatalf("expected *errors.Error, got %v", r.Err())
			}
			if e.Phase != errors.PhaseDecode {
				t.Errorf("Phase = %s", e.Phase)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", e.Kind, tt.kind)
			}
			if got := strings.Join(e.Path, "."); got != tt.path {
				t.Errorf("Path = %s, want %s", got, tt.path)
			}
			if e.Expected != tt.expected {
				t.Errorf("Expected = %s, want %s", e.Expected, tt.expected)
			}
		})
	}
}

func TestReader_FirstErrorWins(t *testing.T) {
	r := NewReader(NewMap().Set("b", "x"))

	r.Int("a")
	r.Bool("b")

	var e *errors.Error
	if !stderrors.As(r.Err(), &e) || e.Path[0] != "a" {
		t.Fatalf("expected first failure on a, got %v", r.Err())
	}
}

func TestReader_Optional(t *testing.T) {
	r := NewReader(NewMap().Set("meta", Absent).Set("name", "n"))

	if r.OptString("meta") != nil {
		t.Error("absent optional should be nil")
	}
	if r.OptString("missing") != nil {
		t.Error("missing optional should be nil")
	}
	if p := r.OptString("name"); p == nil || *p != "n" {
		t.Errorf("OptString = %v", p)
	}
	if r.OptMap("meta") != nil {
		t.Error("absent optional map should be nil")
	}
	if err := r.Err(); err != nil {
		t.Fatalf("optional reads failed: %v", err)
	}
}

func TestReader_Lists(t *testing.T) {
	r := NewReader(NewMap().
		Set("ints", []int{1, 2, 3}).
		Set("floats", []any{int64(1), 2.5}).
		Set("nodes", []string{"beauty", "reshape"}).
		Set("filters", []int{0, 4}))

	if got := r.Ints("ints"); len(got) != 3 || got[2] != 3 {
		t.Errorf("Ints = %v", got)
	}
	if got := r.Float64s("floats"); len(got) != 2 || got[0] != 1 || got[1] != 2.5 {
		t.Errorf("Float64s = %v", got)
	}
	if got := r.Strings("nodes"); len(got) != 2 || got[1] != "reshape" {
		t.Errorf("Strings = %v", got)
	}
	filters := Enums[rtc.MusicFilterType](r, "filters")
	if len(filters) != 2 || filters[1] != rtc.MusicFilterUnsupportedAccompany {
		t.Errorf("Enums = %v", filters)
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}

	bad := NewReader(NewMap().Set("filters", []int{3}))
	Enums[rtc.MusicFilterType](bad, "filters")
	if !errors.IsDecode(bad.Err()) {
		t.Errorf("expected decode error, got %v", bad.Err())
	}
}

func TestReader_NilMap(t *testing.T) {
	r := NewReader(nil)
	if r.Has("x") {
		t.Error("nil map has no keys")
	}
	r.Bool("x")
	if !stderrors.Is(r.Err(), &errors.Error{Kind: errors.KindFieldMissing}) {
		t.Errorf("expected field missing, got %v", r.Err())
	}
}
