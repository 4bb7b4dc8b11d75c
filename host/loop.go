package host

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/errors"
)

// Loop is the host's single accepting goroutine. Tasks run one at a time
// in the order they were posted. The queue is unbounded, so Post never
// blocks the caller.
type Loop struct {
	queue   []func()
	mu      sync.Mutex
	wake    chan struct{}
	done    chan struct{}
	closing bool
}

// NewLoop creates a Loop and starts its goroutine.
func NewLoop() *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

// Post enqueues fn. It reports false when the loop is closing.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	select {
	case l.wake <- struct{}{}:
	default:
	}
	l.mu.Unlock()
	return true
}

// Do runs fn on the loop and waits for it. A panic in fn is returned as an
// internal error. Do must not be called from the loop itself.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	ok := l.Post(func() {
		done <- l.safely(fn)
	})
	if !ok {
		return errors.New(errors.PhaseCall, errors.KindClosed).
			Detail("loop closed").Build()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.PhaseCall, errors.KindInternal).
				Detail("panic: %v", r).Build()
		}
	}()
	return fn()
}

// Close stops accepting tasks, runs what is already queued and waits for
// the loop goroutine to exit.
func (l *Loop) Close() {
	l.mu.Lock()
	if !l.closing {
		l.closing = true
		close(l.wake)
	}
	l.mu.Unlock()
	<-l.done
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		_, open := <-l.wake
		for {
			l.mu.Lock()
			if len(l.queue) == 0 {
				l.mu.Unlock()
				break
			}
			batch := l.queue
			l.queue = nil
			l.mu.Unlock()

			for _, fn := range batch {
				l.exec(fn)
			}
		}
		if !open {
			return
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("loop task panicked", zap.String("panic", fmt.Sprint(r)))
		}
	}()
	fn()
}
