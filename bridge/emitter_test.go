package bridge

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/registry"
)

type emitFixture struct {
	loop *host.Loop
	reg  *registry.Registry
	mem  *host.Memory
	em   *Emitter
}

func newEmitFixture(t *testing.T) *emitFixture {
	t.Helper()
	loop := host.NewLoop()
	t.Cleanup(loop.Close)

	naming := Naming{}
	reg := registry.New(registry.WithNamer(naming.ForKey))
	mem := host.NewMemory()
	return &emitFixture{
		loop: loop,
		reg:  reg,
		mem:  mem,
		em:   NewEmitter(loop, reg, mem, naming),
	}
}

func (f *emitFixture) create(t *testing.T, kind registry.Kind, id string) registry.Key {
	t.Helper()
	inst, err := f.reg.Create(kind, id, func(registry.Key) (any, error) { return struct{}{}, nil })
	if err != nil {
		t.Fatal(err)
	}
	return inst.Key()
}

// flush waits until everything posted so far has run.
func (f *emitFixture) flush(t *testing.T) {
	t.Helper()
	if err := f.loop.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatal(err)
	}
}

func TestEmitter_OrderAndMethodName(t *testing.T) {
	f := newEmitFixture(t)
	room := f.create(t, registry.KindRoom, "7")

	for _, m := range []string{"e1", "e2", "e3"} {
		f.em.Emit(room, m, codec.NewMap().Set("seq", m))
	}
	f.flush(t)

	evs := f.mem.Events()
	if len(evs) != 3 {
		t.Fatalf("published %d events", len(evs))
	}
	for i, want := range []string{"e1", "e2", "e3"} {
		ev := evs[i]
		if ev.Channel != "room#7" || ev.Method != want {
			t.Errorf("event %d = %s.%s", i, ev.Channel, ev.Method)
		}
		if name, _ := ev.Payload.Get("methodName"); name != want {
			t.Errorf("methodName = %v", name)
		}
	}
}

func TestEmitter_ConcurrentPerInstanceOrder(t *testing.T) {
	f := newEmitFixture(t)

	const rooms, perRoom = 4, 100
	keys := make([]registry.Key, rooms)
	for i := range keys {
		keys[i] = f.create(t, registry.KindRoom, fmt.Sprint(i))
	}

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(key registry.Key) {
			defer wg.Done()
			for i := 0; i < perRoom; i++ {
				f.em.Emit(key, "onTick", codec.NewMap().Set("i", i))
			}
		}(key)
	}
	wg.Wait()
	f.flush(t)

	next := make(map[string]int64)
	for _, ev := range f.mem.Events() {
		i, _ := ev.Payload.Get("i")
		if i != next[ev.Channel] {
			t.Fatalf("%s: got %v, want %d", ev.Channel, i, next[ev.Channel])
		}
		next[ev.Channel]++
	}
	for _, key := range keys {
		if next[key.String()] != perRoom {
			t.Errorf("%s delivered %d events", key, next[key.String()])
		}
	}
}

func TestEmitter_DropsDestroyedInstance(t *testing.T) {
	f := newEmitFixture(t)
	room := f.create(t, registry.KindRoom, "7")

	// Hold the loop so the destroy lands between emission and delivery.
	release := make(chan struct{})
	f.loop.Post(func() { <-release })

	f.em.Emit(room, "onRoomStats", nil)
	f.reg.Destroy(room.Kind, room.ID)
	close(release)
	f.flush(t)

	if evs := f.mem.Events(); len(evs) != 0 {
		t.Errorf("published %d events for a destroyed instance", len(evs))
	}
}

func TestEmitter_FacetChannel(t *testing.T) {
	f := newEmitFixture(t)
	room := f.create(t, registry.KindRoom, "7")

	f.em.EmitOn(room, ChannelRangeAudio, "onRangeAudioInfo", codec.NewMap())
	f.flush(t)

	evs := f.mem.Events()
	if len(evs) != 1 || evs[0].Channel != "range_audio#7" {
		t.Fatalf("events = %+v", evs)
	}
}

func TestEmitter_ClosedLoop(t *testing.T) {
	f := newEmitFixture(t)
	room := f.create(t, registry.KindRoom, "7")

	f.loop.Close()
	f.em.Emit(room, "onLeaveRoom", nil)

	if evs := f.mem.Events(); len(evs) != 0 {
		t.Errorf("published after close: %+v", evs)
	}
}
