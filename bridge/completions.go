package bridge

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/registry"
)

// Completions correlates one-shot native completions with the metadata
// recorded when the request was issued. Entries are evicted on first use.
type Completions struct {
	emitter  *Emitter
	pending  map[int64]*codec.Map
	inflight int
	mu       sync.Mutex
	idle     *sync.Cond
}

// NewCompletions creates a side table delivering through e.
func NewCompletions(e *Emitter) *Completions {
	c := &Completions{
		emitter: e,
		pending: make(map[int64]*codec.Map),
	}
	c.idle = sync.NewCond(&c.mu)
	return c
}

// Register records meta for requestID. It is called on the loop before the
// request's completion can be consulted.
func (c *Completions) Register(requestID int64, meta *codec.Map) {
	if meta == nil {
		meta = codec.NewMap()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[requestID] = meta
}

// Pending returns the number of outstanding requests.
func (c *Completions) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Completions) take(requestID int64) (*codec.Map, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	meta, ok := c.pending[requestID]
	if ok {
		delete(c.pending, requestID)
	}
	return meta, ok
}

// Finisher builds the completion payload from the registered metadata. It
// runs off the loop, so it may block on I/O. It reports whether the
// completion succeeded.
type Finisher func(meta *codec.Map) (payload *codec.Map, success bool)

// Complete consults the table on the loop. A matched completion for a live
// instance is finished on its own goroutine, then gets the registered
// metadata and success merged into its payload and is published on the
// instance channel. An unmatched one is logged and dropped, and one whose
// instance is gone is dropped without running finish.
func (c *Completions) Complete(key registry.Key, method string, requestID int64, finish Finisher) {
	ok := c.emitter.loop.Post(func() {
		meta, found := c.take(requestID)
		if !found {
			err := errors.New(errors.PhaseEvent, errors.KindUnmatchedCompletion).
				Value(requestID).
				Detail("%s completion without a pending request", method).Build()
			Logger().Warn("completion dropped",
				zap.Stringer("instance", key),
				zap.Int64("request_id", requestID),
				zap.Error(err))
			return
		}
		if !c.emitter.alive(key) {
			Logger().Debug("completion dropped, instance destroyed",
				zap.Stringer("instance", key),
				zap.Int64("request_id", requestID))
			return
		}

		c.begin()
		go func() {
			defer c.end()
			payload, success := finish(meta)
			if payload == nil {
				payload = codec.NewMap()
			}
			meta.Range(func(k string, v any) bool {
				payload.Set(k, v)
				return true
			})
			payload.Set("success", success)
			c.emitter.EmitOn(key, ChannelFor(key.Kind), method, payload)
		}()
	})
	if !ok {
		Logger().Debug("completion dropped, loop closed",
			zap.Stringer("instance", key),
			zap.Int64("request_id", requestID))
	}
}

// Wait blocks until every completion handed off the loop so far has been
// posted back to it.
func (c *Completions) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inflight > 0 {
		c.idle.Wait()
	}
}

func (c *Completions) begin() {
	c.mu.Lock()
	c.inflight++
	c.mu.Unlock()
}

func (c *Completions) end() {
	c.mu.Lock()
	c.inflight--
	if c.inflight == 0 {
		c.idle.Broadcast()
	}
	c.mu.Unlock()
}
