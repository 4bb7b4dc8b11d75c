package simengine

import "github.com/wippyai/rtc-bridge/rtc"

// Result codes returned by the simulated engine.
const (
	CodeInvalidArgument = -2
	CodeInvalidState    = -3
	CodeDestroyed       = -4
	CodeNotJoined       = -1001
	CodeTokenExpired    = -1000
	CodeMusicNotFound   = -3023
	CodeDownloadFailed  = -3024
)

var descriptions = map[int]string{
	0:                   "success",
	CodeInvalidArgument: "invalid argument",
	CodeInvalidState:    "operation not allowed in the current state",
	CodeDestroyed:       "object already destroyed",
	CodeNotJoined:       "not joined to the room",
	CodeTokenExpired:    "token expired",
	CodeMusicNotFound:   "music not found",
	CodeDownloadFailed:  "download failed",
}

func fail(op string, code int) error {
	return &rtc.Error{Op: op, Code: code}
}
