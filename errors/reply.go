package errors

import "errors"

// Stable reply codes for bridge-originated failures. Native failures carry
// the engine's own code instead.
const (
	CodeNotImplemented   = -900
	CodeInstanceNotFound = -901
	CodeAlreadyExists    = -902
	CodeDecode           = -903
	CodeInternal         = -904
	CodeNotInitialized   = -905
	CodeInvalidChannel   = -906
	CodeClosed           = -907
)

// Reply is the error shape delivered to the host for a failed call.
type Reply struct {
	Code    int
	Message string
	Kind    Kind
}

// ReplyOf maps any error to its host-facing shape.
// Errors outside this package are reported as internal.
func ReplyOf(err error) Reply {
	var e *Error
	if errors.As(err, &e) {
		return Reply{Code: e.Code(), Message: e.Error(), Kind: e.Kind}
	}
	return Reply{Code: CodeInternal, Message: err.Error(), Kind: KindInternal}
}
