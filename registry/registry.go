package registry

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/errors"
)

// Registry maps (kind, id) to live instances. It is safe for concurrent
// use; natives are destroyed outside its lock.
type Registry struct {
	instances map[Key]*Instance
	pending   map[Key]struct{}
	namer     func(Key) string
	mu        sync.RWMutex

	observers []subscription
	nextSub   int
	obsMu     sync.RWMutex

	closed bool
}

type subscription struct {
	id int
	o  Observer
}

// Option configures a Registry.
type Option func(*Registry)

// WithNamer sets the function that names an instance's channel.
// The default is Key.String.
func WithNamer(fn func(Key) string) Option {
	return func(r *Registry) {
		r.namer = fn
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		instances: make(map[Key]*Instance),
		pending:   make(map[Key]struct{}),
		namer:     Key.String,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create builds and registers a new instance. A live or in-construction
// instance under the same key yields AlreadyExists without invoking
// factory.
func (r *Registry) Create(kind Kind, id string, factory Factory) (*Instance, error) {
	key := Key{Kind: kind, ID: id}
	if err := validate(key); err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, errors.New(errors.PhaseRegistry, errors.KindClosed).
			Detail("registry closed").Build()
	}
	if _, ok := r.instances[key]; ok {
		r.mu.Unlock()
		return nil, errors.AlreadyExists(string(kind), id)
	}
	if _, ok := r.pending[key]; ok {
		r.mu.Unlock()
		return nil, errors.AlreadyExists(string(kind), id)
	}
	r.pending[key] = struct{}{}
	r.mu.Unlock()

	native, err := factory(key)

	r.mu.Lock()
	delete(r.pending, key)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	inst := &Instance{
		Kind:    kind,
		ID:      id,
		Native:  native,
		Channel: r.namer(key),
	}
	if r.closed {
		r.mu.Unlock()
		inst.kill()
		inst.destroyNative()
		return nil, errors.New(errors.PhaseRegistry, errors.KindClosed).
			Detail("registry closed during create").Build()
	}
	r.instances[key] = inst
	r.mu.Unlock()

	Logger().Debug("instance created",
		zap.Stringer("instance", key),
		zap.String("channel", inst.Channel))
	r.notify(Event{Type: EventCreated, Instance: inst})
	return inst, nil
}

func validate(key Key) error {
	p, ok := policies[key.Kind]
	if !ok {
		return errors.New(errors.PhaseRegistry, errors.KindInvalidInput).
			Detail("unknown kind %q", key.Kind).Build()
	}
	if p.Singleton && key.ID != "" {
		return errors.New(errors.PhaseRegistry, errors.KindInvalidInput).
			Detail("%s is a singleton and takes no id", key.Kind).Build()
	}
	if !p.Singleton && key.ID == "" {
		return errors.New(errors.PhaseRegistry, errors.KindInvalidInput).
			Detail("%s requires an id", key.Kind).Build()
	}
	return nil
}

// Get returns the live instance under key.
func (r *Registry) Get(key Key) (*Instance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[key]
	return inst, ok
}

// Lookup returns the live instance for (kind, id) or an InstanceNotFound
// error.
func (r *Registry) Lookup(kind Kind, id string) (*Instance, error) {
	inst, ok := r.Get(Key{Kind: kind, ID: id})
	if !ok {
		return nil, errors.InstanceNotFound(errors.PhaseRegistry, string(kind), id)
	}
	return inst, nil
}

// Destroy removes the instance under (kind, id). The instance is dead for
// lookups immediately; its native destructor runs now, or when the last
// in-flight user releases it. Destroying an unknown key is a no-op and
// reports false.
func (r *Registry) Destroy(kind Kind, id string) bool {
	key := Key{Kind: kind, ID: id}

	r.mu.Lock()
	inst, ok := r.instances[key]
	if ok {
		delete(r.instances, key)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.finish(inst)
	return true
}

func (r *Registry) finish(inst *Instance) {
	now := inst.kill()
	Logger().Debug("instance destroyed",
		zap.Stringer("instance", inst.Key()),
		zap.Bool("deferred", !now))
	r.notify(Event{Type: EventDestroyed, Instance: inst})
	if now {
		inst.destroyNative()
	}
}

// DestroyAll destroys every instance of the given kinds, or of all kinds
// when none are given, dependents before their owners. It returns the
// number of instances destroyed.
func (r *Registry) DestroyAll(kinds ...Kind) int {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	r.mu.Lock()
	var victims []*Instance
	for key, inst := range r.instances {
		if len(want) > 0 && !want[key.Kind] {
			continue
		}
		victims = append(victims, inst)
		delete(r.instances, key)
	}
	r.mu.Unlock()

	sortForTeardown(victims)
	for _, inst := range victims {
		r.finish(inst)
	}
	return len(victims)
}

func sortForTeardown(insts []*Instance) {
	sort.Slice(insts, func(i, j int) bool {
		pi, pj := policies[insts[i].Kind], policies[insts[j].Kind]
		if pi.Rank != pj.Rank {
			return pi.Rank < pj.Rank
		}
		if insts[i].Kind != insts[j].Kind {
			return insts[i].Kind < insts[j].Kind
		}
		return insts[i].ID < insts[j].ID
	})
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Each calls fn for every live instance in teardown order until fn
// returns false.
func (r *Registry) Each(fn func(*Instance) bool) {
	r.mu.RLock()
	insts := make([]*Instance, 0, len(r.instances))
	for _, inst := range r.instances {
		insts = append(insts, inst)
	}
	r.mu.RUnlock()

	sortForTeardown(insts)
	for _, inst := range insts {
		if !fn(inst) {
			return
		}
	}
}

// Subscribe adds an observer for lifecycle events and returns a function
// that removes it.
func (r *Registry) Subscribe(o Observer) (unsubscribe func()) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	id := r.nextSub
	r.nextSub++
	r.observers = append(r.observers, subscription{id: id, o: o})
	return func() {
		r.obsMu.Lock()
		defer r.obsMu.Unlock()
		for i, s := range r.observers {
			if s.id == id {
				r.observers = append(r.observers[:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

// Close destroys every instance and rejects further creates.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.DestroyAll()
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, s := range r.observers {
		s.o.OnInstanceEvent(e)
	}
}
