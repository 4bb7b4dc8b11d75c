package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/registry"
)

// methodNameKey is added to every event payload.
const methodNameKey = "methodName"

// Emitter delivers native events to the host. Emit may be called from any
// goroutine; delivery happens on the host loop in emission order.
type Emitter struct {
	loop      *host.Loop
	reg       *registry.Registry
	transport host.Transport
	naming    Naming
}

// NewEmitter creates an emitter publishing through t.
func NewEmitter(loop *host.Loop, reg *registry.Registry, t host.Transport, naming Naming) *Emitter {
	return &Emitter{
		loop:      loop,
		reg:       reg,
		transport: t,
		naming:    naming,
	}
}

// Emit publishes an event on the primary channel of the instance under
// key. payload must already be encoded and is owned by the emitter from
// here on.
func (e *Emitter) Emit(key registry.Key, method string, payload *codec.Map) {
	e.EmitOn(key, ChannelFor(key.Kind), method, payload)
}

// EmitOn publishes on a facet channel of the instance under key, such as
// range_audio#7 for room 7.
func (e *Emitter) EmitOn(key registry.Key, channel ChannelKind, method string, payload *codec.Map) {
	if !e.loop.Post(func() { e.deliver(key, channel, method, payload) }) {
		Logger().Debug("event dropped, loop closed",
			zap.Stringer("instance", key),
			zap.String("method", method))
	}
}

// alive reports whether the instance under key can still receive events.
// It runs on the loop.
func (e *Emitter) alive(key registry.Key) bool {
	inst, ok := e.reg.Get(key)
	return ok && inst.Alive()
}

// deliver runs on the loop.
func (e *Emitter) deliver(key registry.Key, channel ChannelKind, method string, payload *codec.Map) {
	inst, ok := e.reg.Get(key)
	if !ok || !inst.Alive() {
		Logger().Debug("event dropped, instance destroyed",
			zap.Stringer("instance", key),
			zap.String("method", method))
		return
	}

	if payload == nil {
		payload = codec.NewMap()
	}
	payload.Set(methodNameKey, method)

	name := inst.Channel
	if channel != ChannelFor(key.Kind) {
		name = e.naming.Format(channel, key.ID)
	}

	err := e.transport.Publish(host.Event{
		Channel: name,
		Method:  method,
		Payload: payload,
	})
	if err != nil {
		Logger().Warn("event publish failed",
			zap.String("channel", name),
			zap.String("method", method),
			zap.Error(err))
	}
}
