package rtc

import "fmt"

// Error is a failure reported by the native engine. Code is the engine's
// own result code and is preserved verbatim in host replies.
type Error struct {
	Op   string
	Code int
}

func (e *Error) Error() string {
	return fmt.Sprintf("rtc: %s failed with code %d", e.Op, e.Code)
}

// Check converts an engine result code into an error. Zero and positive
// codes are success.
func Check(op string, code int) error {
	if code >= 0 {
		return nil
	}
	return &Error{Op: op, Code: code}
}

// Snapshot completion codes.
const (
	SnapshotWriteFailed   = -102
	SnapshotInvalidFormat = -103
)
