// Package errors provides structured error types for the rtc bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: key path, expected/actual type names,
// the engine's native code and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Path("roomConfig", "profile").
//		Expected("int").
//		Actual("string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldMissing(errors.PhaseDecode, path, "string")
//	err := errors.Native(-1003, "joinRoom")
//
// ReplyOf converts any error into the {code, message, kind} shape returned to
// the host. All errors implement the standard error interface and support
// errors.Is/As.
package errors
