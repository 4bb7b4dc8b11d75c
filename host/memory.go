package host

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
)

// Memory is an in-process Transport. It serves tests and the console.
type Memory struct {
	handlers map[string]Handler
	fallback Handler
	mu       sync.RWMutex

	events []Event
	subs   map[int]func(Event)
	nextID int
	evMu   sync.Mutex
}

// NewMemory creates an empty in-memory transport.
func NewMemory() *Memory {
	return &Memory{
		handlers: make(map[string]Handler),
		subs:     make(map[int]func(Event)),
	}
}

func (m *Memory) Bind(channel string, h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[channel] = h
}

func (m *Memory) Unbind(channel string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.handlers, channel)
}

// SetFallback routes calls for unbound channels to h. A nil h restores
// the invalid_channel error.
func (m *Memory) SetFallback(h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = h
}

// Channels returns the bound channel names, sorted.
func (m *Memory) Channels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.handlers))
	for ch := range m.handlers {
		out = append(out, ch)
	}
	sort.Strings(out)
	return out
}

// Bound reports whether channel has a handler.
func (m *Memory) Bound(channel string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.handlers[channel]
	return ok
}

// Publish records ev and forwards it to subscribers.
func (m *Memory) Publish(ev Event) error {
	m.evMu.Lock()
	m.events = append(m.events, ev)
	subs := make([]func(Event), 0, len(m.subs))
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		subs = append(subs, m.subs[id])
	}
	m.evMu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
	return nil
}

// Subscribe registers fn for every published event and returns a function
// that removes it.
func (m *Memory) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.evMu.Lock()
	defer m.evMu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.evMu.Lock()
		defer m.evMu.Unlock()
		delete(m.subs, id)
	}
}

// Events returns a copy of every event published so far.
func (m *Memory) Events() []Event {
	m.evMu.Lock()
	defer m.evMu.Unlock()
	return append([]Event(nil), m.events...)
}

// Invoke sends a call to channel and waits for its reply.
func (m *Memory) Invoke(ctx context.Context, channel, method string, args *codec.Map) (Reply, error) {
	m.mu.RLock()
	h, ok := m.handlers[channel]
	if !ok && m.fallback != nil {
		h, ok = m.fallback, true
	}
	m.mu.RUnlock()
	if !ok {
		return Reply{}, errors.New(errors.PhaseTransport, errors.KindInvalidChannel).
			Detail("no handler bound for %q", channel).Build()
	}
	if args == nil {
		args = codec.NewMap()
	}

	replies := make(chan Reply, 1)
	var once sync.Once
	call := Call{
		ID:      uuid.NewString(),
		Channel: channel,
		Method:  method,
		Args:    args,
	}
	h(ctx, call, func(r Reply) {
		once.Do(func() { replies <- r })
	})

	select {
	case r := <-replies:
		return r, nil
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}
}
