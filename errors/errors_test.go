package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindTypeMismatch,
				Path:     []string{"roomConfig", "remoteVideoConfig", "width"},
				Expected: "int",
				Actual:   "string",
				Detail:   "cannot convert",
			},
			contains: []string{"[decode]", "type_mismatch", "roomConfig.remoteVideoConfig.width", "expected int", "got string", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRegistry,
				Kind:  KindAlreadyExists,
			},
			contains: []string{"[registry]", "already_exists"},
		},
		{
			name: "native error",
			err: &Error{
				Phase:      PhaseNative,
				Kind:       KindNative,
				NativeCode: -1003,
				Detail:     "joinRoom",
			},
			contains: []string{"[native]", "code -1003", "joinRoom"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseTransport,
				Kind:   KindInternal,
				Detail: "write failed",
				Cause:  errors.New("broken pipe"),
			},
			contains: []string{"[transport]", "internal", "write failed", "caused by", "broken pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseEvent, KindInternal, cause, "publish")

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := InstanceNotFound(PhaseCall, "room", "7")

	if !errors.Is(err, ErrInstanceNotFound) {
		t.Error("kind-only sentinel should match")
	}
	if !errors.Is(err, &Error{Phase: PhaseCall, Kind: KindInstanceNotFound}) {
		t.Error("phase and kind should match")
	}
	if errors.Is(err, &Error{Phase: PhaseEvent, Kind: KindInstanceNotFound}) {
		t.Error("different phase should not match")
	}
	if errors.Is(err, ErrAlreadyExists) {
		t.Error("different kind should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindFieldMissing).
		Path("userInfo", "uid").
		Expected("string").
		Value(nil).
		Detail("key %q", "uid").
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindFieldMissing {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if strings.Join(err.Path, ".") != "userInfo.uid" {
		t.Errorf("Path = %v", err.Path)
	}
	if err.Detail != `key "uid"` {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		err  *Error
		code int
	}{
		{NotImplemented("room#1", "fly"), CodeNotImplemented},
		{InstanceNotFound(PhaseCall, "room", "1"), CodeInstanceNotFound},
		{AlreadyExists("room", "1"), CodeAlreadyExists},
		{FieldMissing(PhaseDecode, []string{"token"}, "string"), CodeDecode},
		{TypeMismatch(PhaseDecode, []string{"token"}, "string", "int"), CodeDecode},
		{InvalidEnum(PhaseDecode, []string{"profile"}, 99, "RoomProfile"), CodeDecode},
		{Native(-1003, "join"), -1003},
		{New(PhaseCall, KindInvalidChannel).Build(), CodeInvalidChannel},
		{New(PhaseLifecycle, KindNotInitialized).Build(), CodeNotInitialized},
		{New(PhaseCall, KindInternal).Build(), CodeInternal},
	}

	for _, tt := range tests {
		if got := tt.err.Code(); got != tt.code {
			t.Errorf("%s: Code() = %d, want %d", tt.err.Kind, got, tt.code)
		}
	}
}

func TestReplyOf(t *testing.T) {
	r := ReplyOf(Native(-1002, "publish"))
	if r.Code != -1002 || r.Kind != KindNative {
		t.Errorf("native reply = %+v", r)
	}

	r = ReplyOf(errors.New("boom"))
	if r.Code != CodeInternal || r.Kind != KindInternal || r.Message != "boom" {
		t.Errorf("foreign reply = %+v", r)
	}

	wrapped := Wrap(PhaseCall, KindInternal, FieldMissing(PhaseDecode, []string{"x"}, "int"), "outer")
	if got := ReplyOf(wrapped).Code; got != CodeInternal {
		t.Errorf("outer kind should win, got %d", got)
	}
}

func TestIsDecode(t *testing.T) {
	if !IsDecode(FieldMissing(PhaseDecode, nil, "int")) {
		t.Error("field missing should be a decode error")
	}
	if IsDecode(Native(-1, "")) {
		t.Error("native error is not a decode error")
	}
	if IsDecode(errors.New("x")) {
		t.Error("plain error is not a decode error")
	}
}
