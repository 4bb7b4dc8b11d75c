package bridge

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

type fakeRoom struct {
	joins     atomic.Int32
	destroyed atomic.Int32
}

func (f *fakeRoom) Join(token string, cfg rtc.RoomConfig) error {
	f.joins.Add(1)
	if token == "expired" {
		return &rtc.Error{Op: "joinRoom", Code: -1004}
	}
	return nil
}

func (f *fakeRoom) Destroy() { f.destroyed.Add(1) }

type dispatchFixture struct {
	reg  *registry.Registry
	d    *Dispatcher
	room *fakeRoom
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	reg := registry.New()
	room := &fakeRoom{}
	if _, err := reg.Create(registry.KindRoom, "7", func(registry.Key) (any, error) { return room, nil }); err != nil {
		t.Fatal(err)
	}

	d := NewDispatcher(reg, Naming{})
	d.Register(ChannelRoom, Table{
		"joinRoom": Native(func(room *fakeRoom, args *codec.Reader) (any, error) {
			token := args.String("token")
			cfg := codec.Read[rtc.RoomConfig](args, "roomConfig")
			if err := args.Err(); err != nil {
				return nil, err
			}
			return nil, room.Join(token, cfg)
		}),
		"getStats": Native(func(room *fakeRoom, args *codec.Reader) (any, error) {
			return rtc.VideoFrameInfo{Width: 640, Height: 360}, nil
		}),
		"count": Native(func(room *fakeRoom, args *codec.Reader) (any, error) {
			return int(room.joins.Load()), nil
		}),
		"explode": func(req *Request) (any, error) {
			panic("boom")
		},
		"destroy": func(req *Request) (any, error) {
			reg.Destroy(req.Instance.Kind, req.Instance.ID)
			if room.destroyed.Load() != 0 {
				t.Error("native destroyed while its own call was in flight")
			}
			return nil, nil
		},
	})
	d.Register(ChannelPlugin, Table{
		"getSDKVersion": func(req *Request) (any, error) { return "1.0.0", nil },
	})
	return &dispatchFixture{reg: reg, d: d, room: room}
}

func (f *dispatchFixture) call(t *testing.T, channel, method string, args *codec.Map) []host.Reply {
	t.Helper()
	var replies []host.Reply
	f.d.Handle(context.Background(), host.Call{ID: "c1", Channel: channel, Method: method, Args: args},
		func(r host.Reply) { replies = append(replies, r) })
	if len(replies) != 1 {
		t.Fatalf("%s.%s: got %d replies", channel, method, len(replies))
	}
	return replies
}

func joinArgs(token string) *codec.Map {
	return codec.NewMap().
		Set("token", token).
		Set("roomConfig", rtc.RoomConfig{Profile: rtc.RoomProfileCommunication})
}

func TestDispatcher_Success(t *testing.T) {
	f := newDispatchFixture(t)

	r := f.call(t, "room#7", "joinRoom", joinArgs("tok"))[0]
	if !r.OK() {
		t.Fatalf("joinRoom failed: %+v", r.Err)
	}
	if f.room.joins.Load() != 1 {
		t.Errorf("native join called %d times", f.room.joins.Load())
	}

	r = f.call(t, "room#7", "count", nil)[0]
	if r.Result != int64(1) {
		t.Errorf("count = %#v, want normalised int64", r.Result)
	}

	r = f.call(t, "plugin", "getSDKVersion", nil)[0]
	if r.Result != "1.0.0" {
		t.Errorf("getSDKVersion = %v", r.Result)
	}
}

func TestDispatcher_EncodesRecords(t *testing.T) {
	f := newDispatchFixture(t)

	r := f.call(t, "room#7", "getStats", nil)[0]
	m, ok := r.Result.(*codec.Map)
	if !ok {
		t.Fatalf("Result = %T", r.Result)
	}
	if w, _ := m.Get("width"); w != int64(640) {
		t.Errorf("width = %v", w)
	}
}

func TestDispatcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		method  string
		args    *codec.Map
		code    int
		kind    errors.Kind
	}{
		{"invalid channel", "room", "joinRoom", nil, errors.CodeInvalidChannel, errors.KindInvalidChannel},
		{"unknown instance", "room#8", "joinRoom", joinArgs("tok"), errors.CodeInstanceNotFound, errors.KindInstanceNotFound},
		{"unknown method", "room#7", "fly", nil, errors.CodeNotImplemented, errors.KindNotImplemented},
		{"unbound kind", "media_player#1", "start", nil, errors.CodeInstanceNotFound, errors.KindInstanceNotFound},
		{"missing arg", "room#7", "joinRoom", codec.NewMap().Set("token", "tok"), errors.CodeDecode, errors.KindFieldMissing},
		{"native failure", "room#7", "joinRoom", joinArgs("expired"), -1004, errors.KindNative},
		{"panic", "room#7", "explode", nil, errors.CodeInternal, errors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatchFixture(t)
			r := f.call(t, tt.channel, tt.method, tt.args)[0]
			if r.OK() {
				t.Fatal("expected error reply")
			}
			if r.Err.Code != tt.code {
				t.Errorf("Code = %d, want %d", r.Err.Code, tt.code)
			}
			if r.Err.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", r.Err.Kind, tt.kind)
			}
		})
	}
}

func TestDispatcher_DecodeFailureSkipsNative(t *testing.T) {
	f := newDispatchFixture(t)

	args := joinArgs("tok")
	cfg, _ := args.Get("roomConfig")
	cfg.(*codec.Map).Set("profile", 99)

	r := f.call(t, "room#7", "joinRoom", args)[0]
	if r.OK() || r.Err.Kind != errors.KindInvalidEnum {
		t.Fatalf("reply = %+v", r)
	}
	if f.room.joins.Load() != 0 {
		t.Error("native called despite decode failure")
	}
}

func TestDispatcher_SelfDestroy(t *testing.T) {
	f := newDispatchFixture(t)

	r := f.call(t, "room#7", "destroy", nil)[0]
	if !r.OK() {
		t.Fatalf("destroy failed: %+v", r.Err)
	}
	if f.room.destroyed.Load() != 1 {
		t.Errorf("native destroyed %d times", f.room.destroyed.Load())
	}

	r = f.call(t, "room#7", "count", nil)[0]
	if r.OK() || r.Err.Code != errors.CodeInstanceNotFound {
		t.Errorf("call after destroy = %+v", r)
	}
}

func TestNative_WrongType(t *testing.T) {
	m := Native(func(s string, _ *codec.Reader) (any, error) { return s, nil })
	_, err := m(&Request{Instance: &registry.Instance{Native: 42}})
	if err == nil {
		t.Fatal("expected error for mismatched native type")
	}
}
