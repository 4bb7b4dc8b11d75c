package host

import (
	"context"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
)

// Call is a method invocation addressed to a channel.
type Call struct {
	ID      string
	Channel string
	Method  string
	Args    *codec.Map
}

// Reply answers exactly one Call. Err is nil on success.
type Reply struct {
	Result any
	Err    *errors.Reply
}

// OK reports whether the reply carries a result.
func (r Reply) OK() bool {
	return r.Err == nil
}

// ReplyFunc delivers a reply to the caller.
type ReplyFunc func(Reply)

// Event is a fire-and-forget notification published on a channel.
type Event struct {
	Channel string
	Method  string
	Payload *codec.Map
}

// Handler receives calls for a bound channel. It must call reply exactly
// once, possibly after returning.
type Handler func(ctx context.Context, call Call, reply ReplyFunc)

// Transport connects channel handlers to the host and carries events back.
type Transport interface {
	// Bind installs h for channel, replacing any earlier handler.
	Bind(channel string, h Handler)
	// Unbind removes the channel's handler. Unknown channels are ignored.
	Unbind(channel string)
	// Publish delivers ev to the host.
	Publish(ev Event) error
}

// Fallback is implemented by transports that can hand calls for unbound
// channels to a single handler, so the bridge can answer them with a
// precise error instead of the transport's own.
type Fallback interface {
	SetFallback(h Handler)
}
