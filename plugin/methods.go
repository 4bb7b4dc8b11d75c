package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
)

// run calls fn unless decoding the arguments failed.
func run(a *codec.Reader, fn func() error) (any, error) {
	if err := a.Err(); err != nil {
		return nil, err
	}
	return nil, fn()
}

// value is run for operations that answer with a value.
func value[V any](a *codec.Reader, fn func() (V, error)) (any, error) {
	if err := a.Err(); err != nil {
		return nil, err
	}
	v, err := fn()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// simple adapts an argument-less native operation, usually a method
// expression such as rtc.Engine.StopASR.
func simple[T any](fn func(T) error) bridge.Method {
	return bridge.Native(func(n T, _ *codec.Reader) (any, error) {
		return nil, fn(n)
	})
}

// instanceID reads the host-chosen id of a multi-instance object. Hosts that
// only ever use one such object may omit it.
func instanceID(a *codec.Reader, key, fallback string) string {
	if !a.Has(key) {
		return fallback
	}
	id := a.ID(key)
	if a.Err() == nil && id == "" {
		a.Fail(errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Path(key).Detail("empty instance id").Build())
	}
	return id
}

// requireID reads a mandatory instance id.
func requireID(a *codec.Reader, key string) string {
	id := a.ID(key)
	if a.Err() == nil && id == "" {
		a.Fail(errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Path(key).Detail("empty instance id").Build())
	}
	return id
}
