package wshost

import (
	"bytes"
	"testing"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
)

func TestFrame_Canonical(t *testing.T) {
	a := CallFrame("1", "engine", "setAudioProfile", codec.NewMap().Set("z", 1).Set("a", 2))
	b := CallFrame("1", "engine", "setAudioProfile", codec.NewMap().Set("a", 2).Set("z", 1))

	da, err := Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(da, db) {
		t.Error("equal frames encode differently")
	}
}

func TestFrame_CallRoundTrip(t *testing.T) {
	data, err := Marshal(CallFrame("c1", "room#7", "joinRoom", codec.NewMap().
		Set("token", "t").
		Set("roomConfig", codec.NewMap().Set("profile", 0))))
	if err != nil {
		t.Fatal(err)
	}
	f, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	c, err := f.call()
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if c.ID != "c1" || c.Channel != "room#7" || c.Method != "joinRoom" {
		t.Errorf("call = %+v", c)
	}
	r := codec.NewReader(c.Args)
	if r.Map("roomConfig").Int("profile") != 0 || r.String("token") != "t" {
		t.Errorf("args = %v", c.Args.Plain())
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestFrame_ErrorReply(t *testing.T) {
	reply := errors.ReplyOf(errors.Native(-1001, "not joined"))
	f, err := replyFrame("x", host.Reply{Err: &reply})
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	r, err := back.Reply()
	if err != nil {
		t.Fatal(err)
	}
	if r.OK() || r.Err.Code != -1001 || r.Err.Kind != errors.KindNative {
		t.Errorf("reply = %+v", r.Err)
	}
}

func TestFrame_Garbage(t *testing.T) {
	if _, err := Unmarshal([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error")
	}
	if _, err := (&Frame{Type: FrameEvent}).call(); err == nil {
		t.Error("event frame accepted as call")
	}
}
