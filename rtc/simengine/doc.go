// Package simengine is an in-process rtc.Factory used when no native engine
// is linked. It validates arguments, tracks state, and answers asynchronous
// operations with plausible callbacks delivered on a single callback
// goroutine, so the bridge can be exercised end to end.
package simengine
