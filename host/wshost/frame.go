package wshost

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
)

// Frame types.
const (
	FrameCall  = "call"
	FrameReply = "reply"
	FrameEvent = "event"
)

// Frame is the unit exchanged over the socket.
type Frame struct {
	Type    string          `cbor:"t"`
	ID      string          `cbor:"id,omitempty"`
	Channel string          `cbor:"ch,omitempty"`
	Method  string          `cbor:"m,omitempty"`
	Args    map[string]any  `cbor:"a,omitempty"`
	Result  cbor.RawMessage `cbor:"r,omitempty"`
	Error   *ErrorFrame     `cbor:"e,omitempty"`
}

// ErrorFrame is a failed reply.
type ErrorFrame struct {
	Code    int    `cbor:"code"`
	Message string `cbor:"message"`
	Kind    string `cbor:"kind"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wshost: failed to create CBOR enc mode: %v", err))
	}
	encMode = em

	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("wshost: failed to create CBOR dec mode: %v", err))
	}
	decMode = dm
}

// Marshal encodes f with canonical CBOR.
func Marshal(f *Frame) ([]byte, error) {
	return encMode.Marshal(f)
}

// Unmarshal decodes a frame.
func Unmarshal(data []byte) (*Frame, error) {
	var f Frame
	if err := decMode.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.PhaseTransport, errors.KindInvalidInput, err, "unmarshal frame")
	}
	return &f, nil
}

// CallFrame builds the frame for a call.
func CallFrame(id, channel, method string, args *codec.Map) *Frame {
	f := &Frame{Type: FrameCall, ID: id, Channel: channel, Method: method}
	if args != nil {
		f.Args = args.Plain()
	}
	return f
}

func replyFrame(id string, r host.Reply) (*Frame, error) {
	f := &Frame{Type: FrameReply, ID: id}
	if r.Err != nil {
		f.Error = &ErrorFrame{
			Code:    r.Err.Code,
			Message: r.Err.Message,
			Kind:    string(r.Err.Kind),
		}
		return f, nil
	}
	raw, err := encMode.Marshal(codec.PlainValue(r.Result))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseTransport, errors.KindInternal, err, "encode result")
	}
	f.Result = raw
	return f, nil
}

func eventFrame(ev host.Event) *Frame {
	f := &Frame{Type: FrameEvent, Channel: ev.Channel, Method: ev.Method}
	if ev.Payload != nil {
		f.Args = ev.Payload.Plain()
	}
	return f
}

// call converts a call frame into a host call.
func (f *Frame) call() (host.Call, error) {
	if f.Type != FrameCall {
		return host.Call{}, errors.New(errors.PhaseTransport, errors.KindInvalidInput).
			Detail("unexpected frame type %q", f.Type).Build()
	}
	if f.ID == "" || f.Channel == "" || f.Method == "" {
		return host.Call{}, errors.New(errors.PhaseTransport, errors.KindInvalidInput).
			Detail("call frame needs id, ch and m").Build()
	}
	args, err := codec.FromPlain(f.Args)
	if err != nil {
		return host.Call{}, err
	}
	return host.Call{ID: f.ID, Channel: f.Channel, Method: f.Method, Args: args}, nil
}

// Reply converts a reply frame back into a host reply. Results are
// normalised into codec values.
func (f *Frame) Reply() (host.Reply, error) {
	if f.Type != FrameReply {
		return host.Reply{}, errors.New(errors.PhaseTransport, errors.KindInvalidInput).
			Detail("unexpected frame type %q", f.Type).Build()
	}
	if f.Error != nil {
		return host.Reply{Err: &errors.Reply{
			Code:    f.Error.Code,
			Message: f.Error.Message,
			Kind:    errors.Kind(f.Error.Kind),
		}}, nil
	}
	var result any
	if len(f.Result) > 0 {
		if err := decMode.Unmarshal(f.Result, &result); err != nil {
			return host.Reply{}, errors.Wrap(errors.PhaseTransport, errors.KindInvalidInput, err, "reply result")
		}
	}
	v, err := codec.Normalize(result)
	if err != nil {
		return host.Reply{}, errors.Wrap(errors.PhaseTransport, errors.KindInvalidInput, err, "reply result")
	}
	return host.Reply{Result: v}, nil
}

// Event converts an event frame back into a host event.
func (f *Frame) Event() (host.Event, error) {
	if f.Type != FrameEvent {
		return host.Event{}, errors.New(errors.PhaseTransport, errors.KindInvalidInput).
			Detail("unexpected frame type %q", f.Type).Build()
	}
	payload, err := codec.FromPlain(f.Args)
	if err != nil {
		return host.Event{}, err
	}
	return host.Event{Channel: f.Channel, Method: f.Method, Payload: payload}, nil
}
