package plugin

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc/simengine"
)

type fixture struct {
	ctrl   *Controller
	mem    *host.Memory
	engine *simengine.Engine
}

func newFixture(t *testing.T, cfg Config, transport host.Transport) *fixture {
	t.Helper()
	mem, _ := transport.(*host.Memory)
	if transport == nil {
		mem = host.NewMemory()
		transport = mem
	}
	cfg.Engine.AppID = "app"
	ctrl := New(simengine.NewFactory(), transport, cfg)
	inst, err := ctrl.Attach(context.Background())
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { _ = ctrl.Detach(context.Background()) })
	return &fixture{ctrl: ctrl, mem: mem, engine: inst.Native.(*simengine.Engine)}
}

func (f *fixture) call(t *testing.T, channel, method string, args *codec.Map) host.Reply {
	t.Helper()
	r, err := f.mem.Invoke(context.Background(), channel, method, args)
	if err != nil {
		t.Fatalf("%s.%s: %v", channel, method, err)
	}
	return r
}

func (f *fixture) mustCall(t *testing.T, channel, method string, args *codec.Map) any {
	t.Helper()
	r := f.call(t, channel, method, args)
	if !r.OK() {
		t.Fatalf("%s.%s failed: %+v", channel, method, *r.Err)
	}
	return r.Result
}

// settle waits for native callbacks and their delivery on the loop.
func (f *fixture) settle(t *testing.T) {
	t.Helper()
	f.engine.Flush()
	if err := f.ctrl.Sync(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) events(channel, method string) []host.Event {
	var out []host.Event
	for _, ev := range f.mem.Events() {
		if ev.Channel == channel && ev.Method == method {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fixture) createRoom(t *testing.T, id int, roomID string) {
	t.Helper()
	got := f.mustCall(t, "engine", "createRTCRoom", codec.NewMap().
		Set("roomInsId", id).
		Set("roomId", roomID))
	if got != true {
		t.Fatalf("createRTCRoom = %v", got)
	}
}

func wantKind(t *testing.T, r host.Reply, kind errors.Kind) {
	t.Helper()
	if r.OK() {
		t.Fatalf("expected %s, got result %v", kind, r.Result)
	}
	if r.Err.Kind != kind {
		t.Fatalf("kind = %s, want %s (%s)", r.Err.Kind, kind, r.Err.Message)
	}
}

func TestController_AttachDetach(t *testing.T) {
	mem := host.NewMemory()
	ctrl := New(simengine.NewFactory(), mem, Config{})
	ctx := context.Background()

	if ctrl.State() != StateUninitialized {
		t.Fatalf("state = %s", ctrl.State())
	}
	if err := ctrl.Sync(ctx); !stderrors.Is(err, &errors.Error{Kind: errors.KindNotInitialized}) {
		t.Errorf("Sync before attach = %v", err)
	}

	first, err := ctrl.Attach(ctx)
	if err != nil {
		t.Fatal(err)
	}
	again, err := ctrl.Attach(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Error("second Attach created a new engine")
	}
	if !mem.Bound("plugin") || !mem.Bound("engine") {
		t.Fatalf("channels = %v", mem.Channels())
	}

	if err := ctrl.Detach(ctx); err != nil {
		t.Fatal(err)
	}
	if err := ctrl.Detach(ctx); err != nil {
		t.Fatalf("second Detach: %v", err)
	}
	if ctrl.State() != StateDetached {
		t.Errorf("state = %s", ctrl.State())
	}
	if chs := mem.Channels(); len(chs) != 0 {
		t.Errorf("channels left bound: %v", chs)
	}
	if err := first.Native.(*simengine.Engine).StartAudioCapture(); err == nil {
		t.Error("engine survived Detach")
	}

	fresh, err := ctrl.Attach(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer ctrl.Detach(ctx)
	if fresh == first {
		t.Error("re-attach reused the destroyed engine")
	}
}

func TestRoot_Channel(t *testing.T) {
	f := newFixture(t, Config{}, nil)

	if v := f.mustCall(t, "plugin", "getSDKVersion", nil); v != simengine.DefaultVersion {
		t.Errorf("version = %v", v)
	}
	desc := f.mustCall(t, "plugin", "getErrorDescription", codec.NewMap().Set("code", simengine.CodeTokenExpired))
	if desc != "token expired" {
		t.Errorf("description = %v", desc)
	}
	if v := f.mustCall(t, "plugin", "createRTCVideo", codec.NewMap().Set("appId", "app")); v != true {
		t.Errorf("createRTCVideo = %v", v)
	}

	f.mustCall(t, "plugin", "destroyRTCVideo", nil)
	if f.mem.Bound("engine") {
		t.Fatal("engine channel still bound")
	}
	wantKind(t, f.call(t, "engine", "startAudioCapture", nil), errors.KindInstanceNotFound)

	f.mustCall(t, "plugin", "createRTCVideo", codec.NewMap().
		Set("appId", "app").
		Set("parameters", map[string]any{"mode": "test"}))
	if !f.mem.Bound("engine") {
		t.Fatal("engine not rebound")
	}
}

func TestRoom_JoinBeforeAndAfterCreate(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	join := codec.NewMap().Set("token", "t").Set("userId", "u1")

	wantKind(t, f.call(t, "room#7", "joinRoom", join), errors.KindInstanceNotFound)

	f.createRoom(t, 7, "r7")
	for _, ch := range []string{"room#7", "spatial_audio#7", "range_audio#7"} {
		if !f.mem.Bound(ch) {
			t.Errorf("%s not bound", ch)
		}
	}
	f.mustCall(t, "room#7", "joinRoom", join)
	f.createRoom(t, 8, "r8")

	// Callbacks that ran before a call are delivered before its reply.
	f.engine.Flush()
	f.mustCall(t, "room#8", "updateToken", codec.NewMap().Set("token", "t8"))

	evs := f.events("room#7", "onRoomStateChanged")
	if len(evs) != 1 {
		t.Fatalf("onRoomStateChanged events = %d", len(evs))
	}
	p := codec.NewReader(evs[0].Payload)
	if p.String("roomId") != "r7" || p.String("uid") != "u1" || p.Int("state") != 0 {
		t.Errorf("payload = %v", evs[0].Payload.Plain())
	}
	if p.String("methodName") != "onRoomStateChanged" {
		t.Errorf("methodName = %q", p.String("methodName"))
	}
	if len(f.events("room#7", "onStreamPublishSuccess")) != 1 {
		t.Error("default room config should auto publish")
	}
}

func TestRoom_Errors(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	f.createRoom(t, 7, "r7")

	wantKind(t, f.call(t, "engine", "createRTCRoom", codec.NewMap().
		Set("roomInsId", 7).
		Set("roomId", "other")), errors.KindAlreadyExists)

	before := len(f.engine.Calls())
	wantKind(t, f.call(t, "room#7", "joinRoom", codec.NewMap().
		Set("token", 5).
		Set("userId", "u1")), errors.KindTypeMismatch)
	wantKind(t, f.call(t, "room#7", "publishStream", codec.NewMap().Set("type", 9)), errors.KindInvalidEnum)
	if after := len(f.engine.Calls()); after != before {
		t.Errorf("decode failures reached the engine: %v", f.engine.Calls()[before:])
	}

	r := f.call(t, "room#7", "sendRoomMessage", codec.NewMap().Set("message", "hi"))
	wantKind(t, r, errors.KindNative)
	if r.Err.Code != simengine.CodeNotJoined {
		t.Errorf("native code = %d", r.Err.Code)
	}

	wantKind(t, f.call(t, "room#7", "noSuchMethod", nil), errors.KindNotImplemented)

	f.mustCall(t, "room#7", "destroy", nil)
	if f.mem.Bound("room#7") || f.mem.Bound("range_audio#7") {
		t.Error("room channels still bound after destroy")
	}
	f.createRoom(t, 7, "r7")
}

func TestRoom_Messages(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	f.createRoom(t, 7, "r7")
	f.mustCall(t, "room#7", "joinRoom", codec.NewMap().
		Set("token", "t").
		Set("userInfo", codec.NewMap().Set("uid", "u1").Set("metaData", codec.Absent)).
		Set("roomConfig", codec.NewMap().
			Set("profile", 0).
			Set("isAutoPublish", false).
			Set("isAutoSubscribeAudio", true).
			Set("isAutoSubscribeVideo", true).
			Set("remoteVideoConfig", codec.NewMap().
				Set("width", 640).
				Set("height", 360).
				Set("frameRate", 15))))

	id := f.mustCall(t, "room#7", "sendRoomMessage", codec.NewMap().Set("message", "hello"))
	f.settle(t)

	evs := f.events("room#7", "onRoomMessageSendResult")
	if len(evs) != 1 {
		t.Fatalf("send results = %d", len(evs))
	}
	if got, _ := evs[0].Payload.Get("msgid"); got != id {
		t.Errorf("msgid = %v, want %v", got, id)
	}
	if len(f.events("room#7", "onStreamPublishSuccess")) != 0 {
		t.Error("auto publish was disabled")
	}
}

func TestSwitches_GateStats(t *testing.T) {
	f := newFixture(t, Config{Switches: map[string]bool{"enableSysStats": true}}, nil)
	f.createRoom(t, 7, "r7")
	f.mustCall(t, "room#7", "joinRoom", codec.NewMap().Set("token", "t").Set("userId", "u1"))

	var room *simengine.Room
	f.ctrl.Each(func(inst *registry.Instance) bool {
		if r, ok := inst.Native.(*simengine.Room); ok {
			room = r
		}
		return true
	})
	if room == nil {
		t.Fatal("room native not found")
	}

	f.engine.Tick()
	room.Tick()
	f.settle(t)
	if len(f.events("engine", "onSysStats")) != 1 {
		t.Error("configured default did not open the sys stats gate")
	}
	if len(f.events("room#7", "onRoomStats")) != 0 {
		t.Error("room stats delivered with the gate closed")
	}

	f.mustCall(t, "room#7", "eventHandlerSwitches", codec.NewMap().Set("enableRoomStats", true))
	room.Tick()
	f.settle(t)
	if len(f.events("room#7", "onRoomStats")) != 1 {
		t.Error("room stats not delivered after enabling")
	}
	if len(f.events("room#7", "onLocalStreamStats")) != 0 {
		t.Error("local stream stats should stay gated")
	}

	wantKind(t, f.call(t, "engine", "eventHandlerSwitches", codec.NewMap().Set("enableSysStats", "yes")),
		errors.KindTypeMismatch)
}

type unbindLog struct {
	*host.Memory
	mu      sync.Mutex
	unbound []string
}

func (u *unbindLog) Unbind(channel string) {
	u.mu.Lock()
	u.unbound = append(u.unbound, channel)
	u.mu.Unlock()
	u.Memory.Unbind(channel)
}

func TestDestroyAll_DependentsFirst(t *testing.T) {
	log := &unbindLog{Memory: host.NewMemory()}
	f := newFixture(t, Config{}, log)
	f.mem = log.Memory

	f.createRoom(t, 7, "r7")
	f.mustCall(t, "engine", "getMediaPlayer", codec.NewMap().Set("playerId", 1))
	f.mustCall(t, "engine", "getKTVManager", nil)
	f.mustCall(t, "ktv_manager", "getKTVPlayer", nil)
	wantKind(t, f.call(t, "engine", "getMediaPlayer", codec.NewMap().Set("playerId", 1)), errors.KindAlreadyExists)

	f.mustCall(t, "plugin", "destroyRTCVideo", nil)

	pos := make(map[string]int)
	for i, ch := range log.unbound {
		pos[ch] = i
	}
	order := []string{"ktv_player#0", "room#7", "ktv_manager", "engine"}
	for i := 1; i < len(order); i++ {
		a, okA := pos[order[i-1]]
		b, okB := pos[order[i]]
		if !okA || !okB || a > b {
			t.Fatalf("unbind order = %v", log.unbound)
		}
	}
	if _, ok := pos["media_player#1"]; !ok || pos["media_player#1"] > pos["ktv_manager"] {
		t.Errorf("media player unbound late: %v", log.unbound)
	}
}

func TestController_Methods(t *testing.T) {
	f := newFixture(t, Config{}, nil)

	methods := f.ctrl.Methods("room#3")
	if len(methods) == 0 || methods[0] != "destroy" {
		t.Fatalf("room methods = %v", methods)
	}
	if got := f.ctrl.Methods("spatial_audio#3"); len(got) != 4 {
		t.Errorf("spatial_audio methods = %v", got)
	}
	if got := f.ctrl.Methods("bogus"); got != nil {
		t.Errorf("unknown channel methods = %v", got)
	}
}
