package registry

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/wippyai/rtc-bridge/errors"
)

type fakeNative struct {
	name  string
	log   *[]string
	mu    *sync.Mutex
	count int
}

func (f *fakeNative) Destroy() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	*f.log = append(*f.log, f.name)
}

type recorder struct {
	mu  sync.Mutex
	log []string
}

func (r *recorder) factory(name string) Factory {
	return func(Key) (any, error) {
		return &fakeNative{name: name, log: &r.log, mu: &r.mu}, nil
	}
}

func (r *recorder) destroyed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.log...)
}

func TestRegistry_CreateLookup(t *testing.T) {
	reg := New()
	rec := &recorder{}

	inst, err := reg.Create(KindRoom, "7", rec.factory("room7"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if inst.Channel != "room#7" {
		t.Errorf("Channel = %s", inst.Channel)
	}

	got, err := reg.Lookup(KindRoom, "7")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got != inst {
		t.Fatal("Lookup returned a different instance")
	}

	_, err = reg.Lookup(KindRoom, "8")
	if !stderrors.Is(err, errors.ErrInstanceNotFound) {
		t.Errorf("expected instance_not_found, got %v", err)
	}
}

func TestRegistry_DuplicateCreate(t *testing.T) {
	reg := New()
	rec := &recorder{}

	first, err := reg.Create(KindMediaPlayer, "1", rec.factory("p1"))
	if err != nil {
		t.Fatal(err)
	}

	called := false
	_, err = reg.Create(KindMediaPlayer, "1", func(Key) (any, error) {
		called = true
		return nil, nil
	})
	if !stderrors.Is(err, errors.ErrAlreadyExists) {
		t.Fatalf("expected already_exists, got %v", err)
	}
	if called {
		t.Error("factory invoked for duplicate key")
	}
	if got, _ := reg.Lookup(KindMediaPlayer, "1"); got != first {
		t.Error("live instance replaced")
	}
}

func TestRegistry_Validation(t *testing.T) {
	reg := New()
	rec := &recorder{}

	tests := []struct {
		name string
		kind Kind
		id   string
	}{
		{"unknown kind", Kind("camera"), "1"},
		{"singleton with id", KindEngine, "1"},
		{"multi without id", KindRoom, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := reg.Create(tt.kind, tt.id, rec.factory("x")); err == nil {
				t.Error("expected error")
			}
		})
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d", reg.Len())
	}
}

func TestRegistry_FactoryError(t *testing.T) {
	reg := New()
	boom := stderrors.New("boom")

	if _, err := reg.Create(KindRoom, "1", func(Key) (any, error) { return nil, boom }); err != boom {
		t.Fatalf("err = %v", err)
	}
	if _, err := reg.Create(KindRoom, "1", (&recorder{}).factory("r")); err != nil {
		t.Fatalf("key stayed reserved after failed create: %v", err)
	}
}

func TestRegistry_DestroyIdempotent(t *testing.T) {
	reg := New()
	rec := &recorder{}
	inst, _ := reg.Create(KindRoom, "7", rec.factory("room7"))

	if !reg.Destroy(KindRoom, "7") {
		t.Fatal("first Destroy reported nothing removed")
	}
	if reg.Destroy(KindRoom, "7") {
		t.Error("second Destroy reported a removal")
	}
	if reg.Destroy(KindRoom, "unknown") {
		t.Error("Destroy of unknown key reported a removal")
	}

	if inst.Alive() {
		t.Error("destroyed instance still alive")
	}
	if n := inst.Native.(*fakeNative).count; n != 1 {
		t.Errorf("native destroyed %d times", n)
	}
}

func TestRegistry_DestroyAllOrder(t *testing.T) {
	reg := New()
	rec := &recorder{}

	mustCreate := func(kind Kind, id, name string) {
		t.Helper()
		if _, err := reg.Create(kind, id, rec.factory(name)); err != nil {
			t.Fatal(err)
		}
	}
	mustCreate(KindEngine, "", "engine")
	mustCreate(KindKTVManager, "", "ktv_manager")
	mustCreate(KindRoom, "a", "room_a")
	mustCreate(KindMediaPlayer, "1", "media_player_1")
	mustCreate(KindKTVPlayer, "k", "ktv_player")

	if n := reg.DestroyAll(); n != 5 {
		t.Fatalf("DestroyAll = %d", n)
	}

	got := rec.destroyed()
	want := []string{"ktv_player", "media_player_1", "room_a", "ktv_manager", "engine"}
	if len(got) != len(want) {
		t.Fatalf("destroyed %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("destroy[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d", reg.Len())
	}
}

func TestRegistry_DestroyAllKinds(t *testing.T) {
	reg := New()
	rec := &recorder{}
	reg.Create(KindEngine, "", rec.factory("engine"))
	reg.Create(KindRoom, "a", rec.factory("room_a"))
	reg.Create(KindRoom, "b", rec.factory("room_b"))

	if n := reg.DestroyAll(KindRoom); n != 2 {
		t.Fatalf("DestroyAll(room) = %d", n)
	}
	if _, err := reg.Lookup(KindEngine, ""); err != nil {
		t.Error("engine destroyed by kind-filtered DestroyAll")
	}
}

func TestInstance_DeferredDestroy(t *testing.T) {
	reg := New()
	rec := &recorder{}
	inst, _ := reg.Create(KindRoom, "7", rec.factory("room7"))

	if !inst.Acquire() {
		t.Fatal("Acquire failed on live instance")
	}

	// Destroy from inside an in-flight call.
	reg.Destroy(KindRoom, "7")

	if _, err := reg.Lookup(KindRoom, "7"); err == nil {
		t.Error("destroyed instance still resolvable")
	}
	if inst.Acquire() {
		t.Error("Acquire succeeded on destroyed instance")
	}
	if len(rec.destroyed()) != 0 {
		t.Fatal("native destroyed while in flight")
	}

	inst.Release()
	if got := rec.destroyed(); len(got) != 1 || got[0] != "room7" {
		t.Errorf("destroyed = %v", got)
	}
}

func TestInstance_ReleaseWithoutAcquirePanics(t *testing.T) {
	inst := &Instance{Kind: KindRoom, ID: "1"}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	inst.Release()
}

func TestRegistry_Observers(t *testing.T) {
	reg := New(WithNamer(func(k Key) string { return "rtc." + k.String() }))
	rec := &recorder{}

	var events []Event
	unsubscribe := reg.Subscribe(ObserverFunc(func(e Event) {
		events = append(events, e)
	}))

	inst, _ := reg.Create(KindRoom, "7", rec.factory("room7"))
	if inst.Channel != "rtc.room#7" {
		t.Errorf("Channel = %s", inst.Channel)
	}
	reg.Destroy(KindRoom, "7")

	if len(events) != 2 {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Type != EventCreated || events[1].Type != EventDestroyed {
		t.Errorf("events = %v, %v", events[0].Type, events[1].Type)
	}
	if events[1].Instance != inst {
		t.Error("wrong instance in event")
	}

	unsubscribe()
	reg.Create(KindRoom, "8", rec.factory("room8"))
	if len(events) != 2 {
		t.Error("observer notified after unsubscribe")
	}
}

func TestRegistry_Close(t *testing.T) {
	reg := New()
	rec := &recorder{}
	reg.Create(KindEngine, "", rec.factory("engine"))

	reg.Close()

	if reg.Len() != 0 {
		t.Errorf("Len = %d", reg.Len())
	}
	_, err := reg.Create(KindEngine, "", rec.factory("engine"))
	if !stderrors.Is(err, errors.ErrClosed) {
		t.Errorf("expected closed, got %v", err)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := New()
	rec := &recorder{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Create(KindRoom, "shared", rec.factory("shared")); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("created %d instances for one key", created)
	}
}

func TestKinds_TeardownOrder(t *testing.T) {
	kinds := Kinds()
	if kinds[0] != KindKTVPlayer || kinds[len(kinds)-1] != KindEngine {
		t.Errorf("Kinds = %v", kinds)
	}
}
