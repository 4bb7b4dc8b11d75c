package wshost

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	sendBuffer = 256
)

// Options configures a Server.
type Options struct {
	// MaxMessageBytes limits inbound frames. Zero means no limit.
	MaxMessageBytes int64
	// CheckOrigin overrides the upgrader's origin check.
	CheckOrigin func(r *http.Request) bool
}

// Server is a host.Transport backed by WebSocket clients. It implements
// http.Handler; mount it on the path clients dial.
type Server struct {
	opts     Options
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	handlers map[string]host.Handler
	fallback host.Handler

	connMu sync.Mutex
	conns  map[string]*conn
	closed bool
}

var (
	_ host.Transport = (*Server)(nil)
	_ host.Fallback  = (*Server)(nil)
)

// New creates a server with no bound channels and no clients.
func New(opts Options) *Server {
	return &Server{
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     opts.CheckOrigin,
		},
		handlers: make(map[string]host.Handler),
		conns:    make(map[string]*conn),
	}
}

func (s *Server) Bind(channel string, h host.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[channel] = h
}

func (s *Server) Unbind(channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.handlers, channel)
}

func (s *Server) SetFallback(h host.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = h
}

func (s *Server) handler(channel string) (host.Handler, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h, ok := s.handlers[channel]; ok {
		return h, true
	}
	if s.fallback != nil {
		return s.fallback, true
	}
	return nil, false
}

// Publish broadcasts ev to every connected client. Clients whose event
// buffer is full miss the event; replies are queued separately.
func (s *Server) Publish(ev host.Event) error {
	data, err := Marshal(eventFrame(ev))
	if err != nil {
		return errors.Wrap(errors.PhaseTransport, errors.KindInternal, err, "encode event")
	}

	s.connMu.Lock()
	targets := make([]*conn, 0, len(s.conns))
	for _, c := range s.conns {
		targets = append(targets, c)
	}
	s.connMu.Unlock()

	for _, c := range targets {
		if !c.enqueue(data) {
			Logger().Warn("event dropped",
				zap.String("conn", c.id),
				zap.String("channel", ev.Channel),
				zap.String("method", ev.Method))
		}
	}
	return nil
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	return len(s.conns)
}

// ServeHTTP upgrades the request and serves the connection until either
// side closes it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.connMu.Lock()
	closed := s.closed
	s.connMu.Unlock()
	if closed {
		http.Error(w, "server closed", http.StatusServiceUnavailable)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		Logger().Debug("upgrade failed", zap.Error(err))
		return
	}

	c := newConn(s, ws, uuid.NewString())
	s.connMu.Lock()
	if s.closed {
		s.connMu.Unlock()
		ws.Close()
		return
	}
	s.conns[c.id] = c
	s.connMu.Unlock()

	Logger().Info("client connected",
		zap.String("conn", c.id),
		zap.String("remote", r.RemoteAddr))

	go c.writePump()
	c.readPump()
}

func (s *Server) remove(c *conn) {
	s.connMu.Lock()
	delete(s.conns, c.id)
	s.connMu.Unlock()
	Logger().Info("client disconnected", zap.String("conn", c.id))
}

// dispatch hands a call to its channel handler. Unknown channels are
// answered with invalid_channel.
func (s *Server) dispatch(ctx context.Context, c *conn, call host.Call) {
	h, ok := s.handler(call.Channel)
	if !ok {
		err := errors.New(errors.PhaseTransport, errors.KindInvalidChannel).
			Detail("no handler bound for %q", call.Channel).Build()
		reply := errors.ReplyOf(err)
		c.reply(call.ID, host.Reply{Err: &reply})
		return
	}

	var once sync.Once
	h(ctx, call, func(r host.Reply) {
		once.Do(func() { c.reply(call.ID, r) })
	})
}

// Close disconnects every client and refuses new ones.
func (s *Server) Close() error {
	s.connMu.Lock()
	s.closed = true
	conns := make([]*conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.connMu.Unlock()

	for _, c := range conns {
		c.close()
	}
	return nil
}
