package bridge

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

// Request is a call being dispatched to a method.
type Request struct {
	Ctx   context.Context
	Call  host.Call
	Route Route
	// Instance is nil for root channel calls. It is acquired for the
	// duration of the method.
	Instance *registry.Instance
	Args     *codec.Reader
}

// Method implements one operation of a channel kind. It decodes every
// argument from req.Args and checks req.Args.Err before touching the
// native object.
type Method func(req *Request) (any, error)

// Table maps operation names to methods.
type Table map[string]Method

// Native adapts a method that only needs the instance's native object of
// type T.
func Native[T any](fn func(native T, args *codec.Reader) (any, error)) Method {
	return func(req *Request) (any, error) {
		native, ok := req.Instance.Native.(T)
		if !ok {
			var zero T
			return nil, errors.New(errors.PhaseCall, errors.KindInternal).
				Expected(fmt.Sprintf("%T", zero)).
				Actual(fmt.Sprintf("%T", req.Instance.Native)).
				Detail("native object type").Build()
		}
		return fn(native, req.Args)
	}
}

// Dispatcher routes host calls to native objects. Handle runs on the host
// loop.
type Dispatcher struct {
	reg    *registry.Registry
	naming Naming
	tables map[ChannelKind]Table
	mu     sync.RWMutex
}

// NewDispatcher creates a dispatcher resolving instances through reg.
func NewDispatcher(reg *registry.Registry, naming Naming) *Dispatcher {
	return &Dispatcher{
		reg:    reg,
		naming: naming,
		tables: make(map[ChannelKind]Table),
	}
}

// Register installs the method table for a channel kind.
func (d *Dispatcher) Register(kind ChannelKind, t Table) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables[kind] = t
}

func (d *Dispatcher) table(kind ChannelKind) Table {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tables[kind]
}

// Methods returns the operation names registered for kind, sorted.
func (d *Dispatcher) Methods(kind ChannelKind) []string {
	t := d.table(kind)
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handle dispatches call and replies exactly once, including when the
// method panics.
func (d *Dispatcher) Handle(ctx context.Context, call host.Call, reply host.ReplyFunc) {
	var once sync.Once
	send := func(r host.Reply) {
		once.Do(func() { reply(r) })
	}

	defer func() {
		if p := recover(); p != nil {
			Logger().Error("method panicked",
				zap.String("channel", call.Channel),
				zap.String("method", call.Method),
				zap.Any("panic", p))
			send(errorReply(errors.New(errors.PhaseCall, errors.KindInternal).
				Path(call.Channel, call.Method).
				Detail("panic: %v", p).Build()))
		}
	}()

	result, err := d.dispatch(ctx, call)
	if err != nil {
		Logger().Debug("call failed",
			zap.String("channel", call.Channel),
			zap.String("method", call.Method),
			zap.Error(err))
		send(errorReply(err))
		return
	}
	send(host.Reply{Result: result})
}

func (d *Dispatcher) dispatch(ctx context.Context, call host.Call) (any, error) {
	route, err := d.naming.Parse(call.Channel)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Ctx:   ctx,
		Call:  call,
		Route: route,
		Args:  codec.NewReader(call.Args),
	}

	if !route.Root() {
		key := route.Key()
		inst, err := d.reg.Lookup(key.Kind, key.ID)
		if err != nil {
			return nil, err
		}
		if !inst.Acquire() {
			return nil, errors.InstanceNotFound(errors.PhaseCall, string(key.Kind), key.ID)
		}
		defer inst.Release()
		req.Instance = inst
	}

	method, ok := d.table(route.Kind)[call.Method]
	if !ok {
		return nil, errors.NotImplemented(call.Channel, call.Method)
	}

	result, err := method(req)
	if err != nil {
		return nil, err
	}
	if err := req.Args.Err(); err != nil {
		return nil, err
	}
	return encodeResult(result)
}

func encodeResult(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	out, err := codec.Normalize(v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInternal, err, "encode result")
	}
	return out, nil
}

func errorReply(err error) host.Reply {
	var nativeErr *rtc.Error
	if stderrors.As(err, &nativeErr) {
		err = errors.New(errors.PhaseNative, errors.KindNative).
			NativeCode(nativeErr.Code).
			Cause(nativeErr).
			Detail("%s", nativeErr.Op).Build()
	}
	r := errors.ReplyOf(err)
	return host.Reply{Err: &r}
}
