// Package rtc declares the native real-time engine contract the bridge
// drives: record and enum types, engine object interfaces and the callback
// handler interfaces the engine fires on its own goroutines.
//
// Records implement Record and are converted to and from host maps by
// package codec. Enums carry explicit stable tags and a Valid method.
//
// A simulated implementation lives in rtc/simengine.
package rtc
