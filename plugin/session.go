package plugin

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

var engineKey = registry.Key{Kind: registry.KindEngine}

// session is one attached lifetime: a loop, a registry and everything
// bound to them.
type session struct {
	factory     rtc.Factory
	transport   host.Transport
	defaults    map[string]bool
	naming      bridge.Naming
	loop        *host.Loop
	reg         *registry.Registry
	disp        *bridge.Dispatcher
	emitter     *bridge.Emitter
	completions *bridge.Completions
	unsubscribe func()

	mu       sync.Mutex
	switches map[registry.Key]*bridge.Switches
	bound    map[registry.Key][]string
}

func newSession(factory rtc.Factory, transport host.Transport, cfg Config) *session {
	naming := bridge.Naming{Namespace: cfg.Namespace}
	s := &session{
		factory:   factory,
		transport: transport,
		defaults:  cfg.Switches,
		naming:    naming,
		loop:      host.NewLoop(),
		reg:       registry.New(registry.WithNamer(naming.ForKey)),
		switches:  make(map[registry.Key]*bridge.Switches),
		bound:     make(map[registry.Key][]string),
	}
	s.disp = bridge.NewDispatcher(s.reg, naming)
	s.emitter = bridge.NewEmitter(s.loop, s.reg, transport, naming)
	s.completions = bridge.NewCompletions(s.emitter)
	s.unsubscribe = s.reg.Subscribe(registry.ObserverFunc(s.onInstanceEvent))

	s.disp.Register(bridge.ChannelPlugin, s.rootTable())
	s.disp.Register(bridge.ChannelEngine, s.engineTable())
	s.disp.Register(bridge.ChannelRoom, s.roomTable())
	s.disp.Register(bridge.ChannelSpatialAudio, spatialAudioTable())
	s.disp.Register(bridge.ChannelRangeAudio, s.rangeAudioTable())
	s.disp.Register(bridge.ChannelMediaPlayer, s.mediaPlayerTable())
	s.disp.Register(bridge.ChannelAudioEffectPlayer, s.audioEffectPlayerTable())
	s.disp.Register(bridge.ChannelKTVManager, s.ktvManagerTable())
	s.disp.Register(bridge.ChannelKTVPlayer, s.ktvPlayerTable())
	s.disp.Register(bridge.ChannelAudioMixing, audioMixingTable())
	s.disp.Register(bridge.ChannelVideoEffect, videoEffectTable())
	s.disp.Register(bridge.ChannelSingScoring, s.singScoringTable())
	return s
}

// handle is the transport handler for every bound channel. Calls are run
// on the loop; once the loop is closed they are answered with closed.
func (s *session) handle(ctx context.Context, call host.Call, reply host.ReplyFunc) {
	if s.loop.Post(func() { s.disp.Handle(ctx, call, reply) }) {
		return
	}
	r := errors.ReplyOf(errors.New(errors.PhaseLifecycle, errors.KindClosed).
		Path(call.Channel, call.Method).
		Detail("bridge detached").Build())
	reply(host.Reply{Err: &r})
}

// bindRoot binds the plugin channel. Transports that support a fallback
// also route unbound channels here, so calls to unknown instances are
// answered with instance_not_found.
func (s *session) bindRoot() {
	s.transport.Bind(s.naming.Format(bridge.ChannelPlugin, ""), s.handle)
	if fb, ok := s.transport.(host.Fallback); ok {
		fb.SetFallback(s.handle)
	}
}

// channelsFor lists the channels an instance answers on. Rooms also own
// their spatial and range audio facets; the engine owns audio mixing and
// video effects.
func (s *session) channelsFor(inst *registry.Instance) []string {
	names := []string{inst.Channel}
	switch inst.Kind {
	case registry.KindRoom:
		names = append(names,
			s.naming.Format(bridge.ChannelSpatialAudio, inst.ID),
			s.naming.Format(bridge.ChannelRangeAudio, inst.ID))
	case registry.KindEngine:
		names = append(names,
			s.naming.Format(bridge.ChannelAudioMixing, ""),
			s.naming.Format(bridge.ChannelVideoEffect, ""))
	}
	return names
}

func (s *session) onInstanceEvent(e registry.Event) {
	key := e.Instance.Key()
	switch e.Type {
	case registry.EventCreated:
		names := s.channelsFor(e.Instance)
		for _, name := range names {
			s.transport.Bind(name, s.handle)
		}
		s.mu.Lock()
		s.bound[key] = names
		s.mu.Unlock()
	case registry.EventDestroyed:
		s.mu.Lock()
		names := s.bound[key]
		delete(s.bound, key)
		delete(s.switches, key)
		s.mu.Unlock()
		for _, name := range names {
			s.transport.Unbind(name)
		}
	}
	Logger().Debug("instance "+e.Type.String(),
		zap.Stringer("instance", key),
		zap.String("channel", e.Instance.Channel))
}

// newSwitches creates the event gates of a proxy, seeded from the
// configured defaults, and records them for eventHandlerSwitches.
func (s *session) newSwitches(key registry.Key, names ...bridge.Switch) *bridge.Switches {
	sw := bridge.NewSwitches(names...)
	sw.SetDefaults(s.defaults)
	s.mu.Lock()
	s.switches[key] = sw
	s.mu.Unlock()
	return sw
}

// dropSwitches forgets the gates of a native that failed to construct.
func (s *session) dropSwitches(key registry.Key) {
	s.mu.Lock()
	delete(s.switches, key)
	s.mu.Unlock()
}

func (s *session) switchesFor(key registry.Key) *bridge.Switches {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.switches[key]
}

// createEngine runs on the loop. An existing engine is returned as is.
func (s *session) createEngine(cfg rtc.EngineConfig) (*registry.Instance, error) {
	if inst, ok := s.reg.Get(engineKey); ok {
		return inst, nil
	}
	return s.reg.Create(registry.KindEngine, "", func(key registry.Key) (any, error) {
		proxy := &engineEvents{
			key:         key,
			emitter:     s.emitter,
			completions: s.completions,
			switches:    s.newSwitches(key, bridge.EngineSwitches...),
		}
		engine, err := s.factory.CreateEngine(cfg, proxy)
		if err != nil {
			s.dropSwitches(key)
			return nil, err
		}
		return engine, nil
	})
}

func (s *session) close() {
	if fb, ok := s.transport.(host.Fallback); ok {
		fb.SetFallback(nil)
	}
	s.transport.Unbind(s.naming.Format(bridge.ChannelPlugin, ""))
	s.reg.Close()
	s.unsubscribe()
	s.loop.Close()
}
