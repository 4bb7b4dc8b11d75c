package bridge

import (
	"testing"

	"github.com/wippyai/rtc-bridge/codec"
)

func TestSwitches(t *testing.T) {
	s := NewSwitches(RoomSwitches...)

	for _, name := range RoomSwitches {
		if s.Enabled(name) {
			t.Errorf("%s on by default", name)
		}
	}

	args := codec.NewReader(codec.NewMap().
		Set("enableRoomStats", true).
		Set("enableSysStats", true).
		Set("unknown", 1))
	s.Apply(args)
	if err := args.Err(); err != nil {
		t.Fatal(err)
	}

	if !s.Enabled(SwitchRoomStats) {
		t.Error("enableRoomStats not applied")
	}
	if s.Enabled(SwitchSysStats) {
		t.Error("engine gate leaked into room switches")
	}

	s.Apply(codec.NewReader(codec.NewMap().Set("enableLocalStreamStats", true)))
	if !s.Enabled(SwitchRoomStats) {
		t.Error("absent key reset an existing gate")
	}

	bad := codec.NewReader(codec.NewMap().Set("enableRoomStats", "yes"))
	s.Apply(bad)
	if bad.Err() == nil {
		t.Error("expected decode error")
	}
	if !s.Enabled(SwitchRoomStats) {
		t.Error("failed decode changed a gate")
	}
}

func TestSwitches_Defaults(t *testing.T) {
	s := NewSwitches(EngineSwitches...)
	s.SetDefaults(map[string]bool{"enableSysStats": true, "enableRoomStats": true})

	snap := s.Snapshot()
	if len(snap) != 1 || !snap[SwitchSysStats] {
		t.Errorf("Snapshot = %v", snap)
	}

	var nilSwitches *Switches
	if nilSwitches.Enabled(SwitchSysStats) {
		t.Error("nil switches report enabled")
	}
}

func TestSwitches_ApplyAllOrNothing(t *testing.T) {
	s := NewSwitches(RoomSwitches...)

	args := codec.NewReader(codec.NewMap().
		Set("enableRoomStats", true).
		Set("enableLocalStreamStats", "yes"))
	s.Apply(args)

	if args.Err() == nil {
		t.Fatal("expected decode error for enableLocalStreamStats")
	}
	for name, on := range s.Snapshot() {
		if on {
			t.Errorf("%s applied despite decode error", name)
		}
	}
}
