package host

import (
	"context"
	"testing"

	"github.com/wippyai/rtc-bridge/codec"
)

func TestMemory_Invoke(t *testing.T) {
	m := NewMemory()
	m.Bind("room#7", func(ctx context.Context, call Call, reply ReplyFunc) {
		if call.ID == "" {
			t.Error("call without id")
		}
		reply(Reply{Result: call.Method})
		reply(Reply{Result: "second"})
	})

	r, err := m.Invoke(context.Background(), "room#7", "joinRoom", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !r.OK() || r.Result != "joinRoom" {
		t.Errorf("reply = %+v", r)
	}

	m.Unbind("room#7")
	if _, err := m.Invoke(context.Background(), "room#7", "joinRoom", nil); err == nil {
		t.Error("expected error for unbound channel")
	}
}

func TestMemory_Fallback(t *testing.T) {
	m := NewMemory()
	m.SetFallback(func(ctx context.Context, call Call, reply ReplyFunc) {
		reply(Reply{Result: "fallback:" + call.Channel})
	})

	r, err := m.Invoke(context.Background(), "room#9", "leaveRoom", nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Result != "fallback:room#9" {
		t.Errorf("reply = %+v", r)
	}
	if m.Bound("room#9") {
		t.Error("fallback must not bind the channel")
	}

	m.SetFallback(nil)
	if _, err := m.Invoke(context.Background(), "room#9", "leaveRoom", nil); err == nil {
		t.Error("expected error once the fallback is cleared")
	}
}

func TestMemory_AsyncReply(t *testing.T) {
	m := NewMemory()
	m.Bind("engine", func(ctx context.Context, call Call, reply ReplyFunc) {
		go reply(Reply{Result: int64(1)})
	})

	r, err := m.Invoke(context.Background(), "engine", "login", codec.NewMap())
	if err != nil {
		t.Fatal(err)
	}
	if r.Result != int64(1) {
		t.Errorf("Result = %v", r.Result)
	}
}

func TestMemory_Publish(t *testing.T) {
	m := NewMemory()

	var got []string
	unsubscribe := m.Subscribe(func(ev Event) { got = append(got, ev.Method) })

	m.Publish(Event{Channel: "room#7", Method: "onRoomStateChanged"})
	unsubscribe()
	m.Publish(Event{Channel: "room#7", Method: "onLeaveRoom"})

	if len(got) != 1 || got[0] != "onRoomStateChanged" {
		t.Errorf("subscriber saw %v", got)
	}
	if evs := m.Events(); len(evs) != 2 {
		t.Errorf("recorded %d events", len(evs))
	}
}

func TestMemory_Channels(t *testing.T) {
	m := NewMemory()
	noop := func(context.Context, Call, ReplyFunc) {}
	m.Bind("room#2", noop)
	m.Bind("engine", noop)

	chs := m.Channels()
	if len(chs) != 2 || chs[0] != "engine" || chs[1] != "room#2" {
		t.Errorf("Channels = %v", chs)
	}
	if !m.Bound("engine") || m.Bound("plugin") {
		t.Error("Bound mismatch")
	}
}
