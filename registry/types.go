package registry

import "sort"

// Kind names a class of native object.
type Kind string

const (
	KindEngine            Kind = "engine"
	KindRoom              Kind = "room"
	KindMediaPlayer       Kind = "media_player"
	KindAudioEffectPlayer Kind = "audio_effect_player"
	KindKTVManager        Kind = "ktv_manager"
	KindKTVPlayer         Kind = "ktv_player"
	KindSingScoring       Kind = "sing_scoring_manager"
)

// Policy describes how instances of a kind are keyed and torn down.
type Policy struct {
	// Singleton kinds have exactly one instance, keyed by the empty id.
	Singleton bool
	// Rank orders DestroyAll: lower ranks go first.
	Rank int
}

var policies = map[Kind]Policy{
	KindKTVPlayer:         {Rank: 0},
	KindRoom:              {Rank: 1},
	KindMediaPlayer:       {Rank: 1},
	KindAudioEffectPlayer: {Rank: 1},
	KindKTVManager:        {Singleton: true, Rank: 2},
	KindSingScoring:       {Singleton: true, Rank: 2},
	KindEngine:            {Singleton: true, Rank: 3},
}

// PolicyOf returns the policy registered for k.
func PolicyOf(k Kind) (Policy, bool) {
	p, ok := policies[k]
	return p, ok
}

// Kinds returns every known kind in teardown order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(policies))
	for k := range policies {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		pi, pj := policies[kinds[i]], policies[kinds[j]]
		if pi.Rank != pj.Rank {
			return pi.Rank < pj.Rank
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}

// Key identifies an instance.
type Key struct {
	Kind Kind
	ID   string
}

func (k Key) String() string {
	if k.ID == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + "#" + k.ID
}

// EventType classifies instance lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDestroyed
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Event is an instance lifecycle notification.
type Event struct {
	Instance *Instance
	Type     EventType
}

// Observer receives notifications about instance lifecycle events.
// Notifications are delivered synchronously and must not call back into
// the registry's mutating methods.
type Observer interface {
	OnInstanceEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnInstanceEvent(e Event) { f(e) }

// Destroyer is implemented by native objects that need an explicit
// destructor. Every rtc engine object does.
type Destroyer interface {
	Destroy()
}

// Factory builds the native object for a new instance. It runs without the
// registry lock held, so it may look up other instances.
type Factory func(key Key) (any, error)
