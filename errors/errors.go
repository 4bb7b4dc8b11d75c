package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCall      Phase = "call"      // host call routing
	PhaseEncode    Phase = "encode"    // native to host
	PhaseDecode    Phase = "decode"    // host to native
	PhaseRegistry  Phase = "registry"  // instance bookkeeping
	PhaseEvent     Phase = "event"     // native callback delivery
	PhaseLifecycle Phase = "lifecycle" // attach/detach
	PhaseNative    Phase = "native"    // native engine operations
	PhaseTransport Phase = "transport" // host transport adapters
	PhaseConfig    Phase = "config"    // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindInstanceNotFound    Kind = "instance_not_found"
	KindAlreadyExists       Kind = "already_exists"
	KindFieldMissing        Kind = "field_missing"
	KindTypeMismatch        Kind = "type_mismatch"
	KindInvalidEnum         Kind = "invalid_enum"
	KindNative              Kind = "native"
	KindUnmatchedCompletion Kind = "unmatched_completion"
	KindNotImplemented      Kind = "not_implemented"
	KindInvalidChannel      Kind = "invalid_channel"
	KindNotInitialized      Kind = "not_initialized"
	KindInvalidInput        Kind = "invalid_input"
	KindClosed              Kind = "closed"
	KindInternal            Kind = "internal"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	Expected   string
	Actual     string
	Detail     string
	Path       []string
	NativeCode int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Expected != "" {
		b.WriteString(": expected ")
		b.WriteString(e.Expected)
		if e.Actual != "" {
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		}
	}

	if e.Kind == KindNative {
		fmt.Fprintf(&b, " (code %d)", e.NativeCode)
	}

	if e.Detail != "" {
		if e.Expected != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Code returns the stable numeric code reported to the host.
// Native errors keep the engine's own code.
func (e *Error) Code() int {
	switch e.Kind {
	case KindNative:
		return e.NativeCode
	case KindNotImplemented:
		return CodeNotImplemented
	case KindInstanceNotFound:
		return CodeInstanceNotFound
	case KindAlreadyExists:
		return CodeAlreadyExists
	case KindFieldMissing, KindTypeMismatch, KindInvalidEnum, KindInvalidInput:
		return CodeDecode
	case KindNotInitialized:
		return CodeNotInitialized
	case KindInvalidChannel:
		return CodeInvalidChannel
	case KindClosed:
		return CodeClosed
	default:
		return CodeInternal
	}
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the key path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Expected sets the expected type name
func (b *Builder) Expected(t string) *Builder {
	b.err.Expected = t
	return b
}

// Actual sets the observed type name
func (b *Builder) Actual(t string) *Builder {
	b.err.Actual = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// NativeCode sets the engine error code
func (b *Builder) NativeCode(code int) *Builder {
	b.err.NativeCode = code
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InstanceNotFound creates an error for a missing (kind, id) pair
func InstanceNotFound(phase Phase, kind, id string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInstanceNotFound,
		Detail: fmt.Sprintf("no live %s instance %q", kind, id),
		Value:  id,
	}
}

// AlreadyExists creates an error for a duplicate create
func AlreadyExists(kind, id string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindAlreadyExists,
		Detail: fmt.Sprintf("%s instance %q already exists", kind, id),
		Value:  id,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, expected, actual string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		Expected: expected,
		Actual:   actual,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, expected string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindFieldMissing,
		Path:     path,
		Expected: expected,
		Detail:   "required key not found",
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidEnum,
		Path:     path,
		Expected: enumType,
		Detail:   fmt.Sprintf("invalid tag %v", value),
		Value:    value,
	}
}

// NotImplemented creates an error for an unknown operation on a channel
func NotImplemented(channel, method string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindNotImplemented,
		Detail: fmt.Sprintf("%s has no operation %q", channel, method),
	}
}

// Native wraps an engine failure, keeping its code
func Native(code int, detail string) *Error {
	return &Error{
		Phase:      PhaseNative,
		Kind:       KindNative,
		NativeCode: code,
		Detail:     detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Sentinel values for errors.Is checks on kind alone.
var (
	ErrInstanceNotFound = &Error{Kind: KindInstanceNotFound}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists}
	ErrNotImplemented   = &Error{Kind: KindNotImplemented}
	ErrClosed           = &Error{Kind: KindClosed}
)

// IsDecode reports whether err is an argument decoding failure
func IsDecode(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Phase == PhaseDecode
}
