package plugin

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

// State is the controller's lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateAttached
	StateDetached
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAttached:
		return "attached"
	case StateDetached:
		return "detached"
	}
	return "unknown"
}

// Config parameterises a controller.
type Config struct {
	// Namespace prefixes every channel name.
	Namespace string
	// Engine is used to create the engine on Attach.
	Engine rtc.EngineConfig
	// Switches holds the initial value of event switches, by key.
	Switches map[string]bool
}

// Controller owns the bridge's lifecycle: it creates the engine, binds the
// root and engine channels and tears everything down on Detach.
type Controller struct {
	factory   rtc.Factory
	transport host.Transport
	cfg       Config

	mu    sync.Mutex
	state State
	sess  *session
}

// New creates a controller in the uninitialized state.
func New(factory rtc.Factory, transport host.Transport, cfg Config) *Controller {
	return &Controller{
		factory:   factory,
		transport: transport,
		cfg:       cfg,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Naming returns the channel naming in use.
func (c *Controller) Naming() bridge.Naming {
	return bridge.Naming{Namespace: c.cfg.Namespace}
}

// Attach creates the engine and binds the root and engine channels. Attach
// while attached returns the existing engine instance; after Detach it
// starts over with a fresh engine.
func (c *Controller) Attach(ctx context.Context) (*registry.Instance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateAttached {
		if inst, ok := c.sess.reg.Get(engineKey); ok {
			return inst, nil
		}
	} else {
		c.sess = newSession(c.factory, c.transport, c.cfg)
		c.sess.bindRoot()
		c.state = StateAttached
	}

	var inst *registry.Instance
	err := c.sess.loop.Do(ctx, func() error {
		var err error
		inst, err = c.sess.createEngine(c.cfg.Engine)
		return err
	})
	if err != nil {
		Logger().Error("attach failed", zap.Error(err))
		return nil, err
	}
	Logger().Info("attached",
		zap.String("sdk_version", c.factory.SDKVersion()),
		zap.String("channel", inst.Channel))
	return inst, nil
}

// Detach destroys every instance, dependents first, unbinds every channel
// and stops accepting calls. It is a no-op unless attached.
func (c *Controller) Detach(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAttached {
		return nil
	}
	s := c.sess
	c.state = StateDetached

	var n int
	err := s.loop.Do(ctx, func() error {
		n = s.reg.DestroyAll()
		return nil
	})
	s.close()
	if err != nil {
		return errors.Wrap(errors.PhaseLifecycle, errors.KindInternal, err, "detach")
	}
	Logger().Info("detached", zap.Int("destroyed", n))
	return nil
}

// Sync waits until everything posted to the loop so far has run,
// including completions that were being finished off the loop.
func (c *Controller) Sync(ctx context.Context) error {
	s, err := c.current()
	if err != nil {
		return err
	}
	if err := s.loop.Do(ctx, func() error { return nil }); err != nil {
		return err
	}
	s.completions.Wait()
	return s.loop.Do(ctx, func() error { return nil })
}

// Each calls fn for every live instance in teardown order.
func (c *Controller) Each(fn func(inst *registry.Instance) bool) {
	s, err := c.current()
	if err != nil {
		return
	}
	s.reg.Each(fn)
}

// Methods returns the operations a channel accepts, sorted. Unknown
// channels have none.
func (c *Controller) Methods(channel string) []string {
	s, err := c.current()
	if err != nil {
		return nil
	}
	route, err := s.naming.Parse(channel)
	if err != nil {
		return nil
	}
	return s.disp.Methods(route.Kind)
}

func (c *Controller) current() (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAttached {
		return nil, errors.New(errors.PhaseLifecycle, errors.KindNotInitialized).
			Detail("controller is %s", c.state).Build()
	}
	return c.sess, nil
}
