package bridge

import (
	"sync/atomic"

	"github.com/wippyai/rtc-bridge/codec"
)

// Switch names a gate on a high-frequency event.
type Switch string

const (
	SwitchSysStats            Switch = "enableSysStats"
	SwitchRoomStats           Switch = "enableRoomStats"
	SwitchLocalStreamStats    Switch = "enableLocalStreamStats"
	SwitchRemoteStreamStats   Switch = "enableRemoteStreamStats"
	SwitchNetworkQualityStats Switch = "enableNetworkQualityStats"
)

// EngineSwitches and RoomSwitches list the gates each proxy kind honours.
var (
	EngineSwitches = []Switch{SwitchSysStats}
	RoomSwitches   = []Switch{
		SwitchRoomStats,
		SwitchLocalStreamStats,
		SwitchRemoteStreamStats,
		SwitchNetworkQualityStats,
	}
)

// Switches is a fixed set of event gates, read lock-free from native
// goroutines.
type Switches struct {
	order []Switch
	flags map[Switch]*atomic.Bool
}

// NewSwitches creates gates for names, all off.
func NewSwitches(names ...Switch) *Switches {
	s := &Switches{flags: make(map[Switch]*atomic.Bool, len(names))}
	for _, n := range names {
		if _, dup := s.flags[n]; dup {
			continue
		}
		s.order = append(s.order, n)
		s.flags[n] = new(atomic.Bool)
	}
	return s
}

// Enabled reports whether the gate is open. Unknown gates are closed.
func (s *Switches) Enabled(name Switch) bool {
	if s == nil {
		return false
	}
	f, ok := s.flags[name]
	return ok && f.Load()
}

// Set opens or closes a known gate and reports whether it exists.
func (s *Switches) Set(name Switch, on bool) bool {
	f, ok := s.flags[name]
	if ok {
		f.Store(on)
	}
	return ok
}

// SetDefaults applies on to every known gate named in defaults.
func (s *Switches) SetDefaults(defaults map[string]bool) {
	for name, on := range defaults {
		s.Set(Switch(name), on)
	}
}

// Apply reads the gates present in args; absent keys keep their value and
// unknown keys are ignored. Nothing changes unless every present key
// decodes.
func (s *Switches) Apply(args *codec.Reader) {
	next := make(map[Switch]bool, len(s.order))
	for _, name := range s.order {
		if args.Has(string(name)) {
			next[name] = args.Bool(string(name))
		}
	}
	if args.Err() != nil {
		return
	}
	for name, on := range next {
		s.Set(name, on)
	}
}

// Snapshot returns the current gate values.
func (s *Switches) Snapshot() map[Switch]bool {
	out := make(map[Switch]bool, len(s.order))
	for _, name := range s.order {
		out[name] = s.flags[name].Load()
	}
	return out
}
