package host

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/wippyai/rtc-bridge/errors"
)

func TestLoop_FIFO(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	var got []int
	for i := 0; i < 1000; i++ {
		i := i
		l.Post(func() { got = append(got, i) })
	}
	if err := l.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatal(err)
	}

	if len(got) != 1000 {
		t.Fatalf("ran %d tasks", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran at position %d", v, i)
		}
	}
}

func TestLoop_PerProducerOrder(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	const producers, perProducer = 8, 200
	seen := make(map[int][]int)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				i := i
				l.Post(func() { seen[p] = append(seen[p], i) })
			}
		}(p)
	}
	wg.Wait()
	l.Do(context.Background(), func() error { return nil })

	for p := 0; p < producers; p++ {
		if len(seen[p]) != perProducer {
			t.Fatalf("producer %d: %d tasks", p, len(seen[p]))
		}
		for i, v := range seen[p] {
			if v != i {
				t.Fatalf("producer %d out of order at %d: %d", p, i, v)
			}
		}
	}
}

func TestLoop_PostNeverBlocks(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	release := make(chan struct{})
	l.Post(func() { <-release })

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			l.Post(func() {})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Post blocked while the loop was busy")
	}
	close(release)
}

func TestLoop_DoRecoversPanic(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	err := l.Do(context.Background(), func() error { panic("boom") })
	if !stderrors.Is(err, &errors.Error{Kind: errors.KindInternal}) {
		t.Fatalf("expected internal error, got %v", err)
	}

	// The loop survives.
	if err := l.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatal(err)
	}
}

func TestLoop_PostRecoversPanic(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	l.Post(func() { panic("boom") })
	if err := l.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("loop died after panicking task: %v", err)
	}
}

func TestLoop_Close(t *testing.T) {
	l := NewLoop()

	ran := false
	l.Post(func() { ran = true })
	l.Close()

	if !ran {
		t.Error("queued task dropped on Close")
	}
	if l.Post(func() {}) {
		t.Error("Post accepted after Close")
	}
	err := l.Do(context.Background(), func() error { return nil })
	if !stderrors.Is(err, errors.ErrClosed) {
		t.Errorf("expected closed, got %v", err)
	}
	l.Close()
}

func TestLoop_DoContextCancel(t *testing.T) {
	l := NewLoop()
	defer l.Close()

	release := make(chan struct{})
	l.Post(func() { <-release })
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Do(ctx, func() error { return nil }); err != context.DeadlineExceeded {
		t.Errorf("err = %v", err)
	}
}
