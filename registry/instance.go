package registry

import (
	"sync"

	"go.uber.org/zap"
)

// Instance is a live native object bound to a channel. Kind, ID, Native and
// Channel never change after creation.
type Instance struct {
	Kind    Kind
	ID      string
	Native  any
	Channel string

	mu     sync.Mutex
	refs   int
	dead   bool
	closed bool
}

// Key returns the instance's registry key.
func (i *Instance) Key() Key {
	return Key{Kind: i.Kind, ID: i.ID}
}

// Alive reports whether the instance has not been destroyed.
func (i *Instance) Alive() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return !i.dead
}

// Acquire marks the native object as in use. It fails once the instance
// has been destroyed. Every successful Acquire must be paired with Release.
func (i *Instance) Acquire() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.dead {
		return false
	}
	i.refs++
	return true
}

// Release ends a use started by Acquire. The last release of a destroyed
// instance runs its native destructor.
func (i *Instance) Release() {
	i.mu.Lock()
	if i.refs == 0 {
		i.mu.Unlock()
		panic("registry: Release without Acquire on " + i.Key().String())
	}
	i.refs--
	run := i.dead && i.refs == 0 && !i.closed
	if run {
		i.closed = true
	}
	i.mu.Unlock()

	if run {
		i.destroyNative()
	}
}

// kill marks the instance dead and reports whether the destructor should
// run now.
func (i *Instance) kill() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.dead {
		return false
	}
	i.dead = true
	if i.refs > 0 || i.closed {
		return false
	}
	i.closed = true
	return true
}

func (i *Instance) destroyNative() {
	d, ok := i.Native.(Destroyer)
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("native destructor panicked",
				zap.Stringer("instance", i.Key()),
				zap.Any("panic", r))
		}
	}()
	d.Destroy()
	Logger().Debug("native destroyed", zap.Stringer("instance", i.Key()))
}
