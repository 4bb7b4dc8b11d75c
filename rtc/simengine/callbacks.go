package simengine

import "sync"

// callbacks is the engine's callback thread. Work is delivered in FIFO
// order on one goroutine, like a native SDK's event thread.
type callbacks struct {
	queue  []func()
	mu     sync.Mutex
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

func newCallbacks() *callbacks {
	c := &callbacks{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *callbacks) post(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.queue = append(c.queue, fn)
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// flush blocks until every callback posted before it has run.
func (c *callbacks) flush() {
	done := make(chan struct{})
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		<-c.done
		return
	}
	c.queue = append(c.queue, func() { close(done) })
	select {
	case c.wake <- struct{}{}:
	default:
	}
	c.mu.Unlock()
	<-done
}

// stop delivers what is queued and ends the thread.
func (c *callbacks) stop() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.wake)
	}
	c.mu.Unlock()
	<-c.done
}

func (c *callbacks) run() {
	defer close(c.done)
	for {
		_, open := <-c.wake
		for {
			c.mu.Lock()
			batch := c.queue
			c.queue = nil
			c.mu.Unlock()
			if len(batch) == 0 {
				break
			}
			for _, fn := range batch {
				fn()
			}
		}
		if !open {
			return
		}
	}
}
