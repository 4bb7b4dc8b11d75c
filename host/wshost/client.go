package wshost

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
)

// Client is the host side of a Server connection.
type Client struct {
	ws     *websocket.Conn
	events chan host.Event

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan host.Reply
	err     error
	done    chan struct{}
}

// Dial connects to a Server at url (ws:// or wss://).
func Dial(ctx context.Context, url string) (*Client, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseTransport, errors.KindClosed, err, "dial "+url)
	}
	c := &Client{
		ws:      ws,
		events:  make(chan host.Event, sendBuffer),
		pending: make(map[string]chan host.Reply),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Events delivers published events in arrival order. It is closed when
// the connection ends.
func (c *Client) Events() <-chan host.Event {
	return c.events
}

// Call sends a call and waits for its reply.
func (c *Client) Call(ctx context.Context, channel, method string, args *codec.Map) (host.Reply, error) {
	id := uuid.NewString()
	ch := make(chan host.Reply, 1)

	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return host.Reply{}, err
	}
	c.pending[id] = ch
	c.mu.Unlock()

	data, err := Marshal(CallFrame(id, channel, method, args))
	if err == nil {
		c.writeMu.Lock()
		err = c.ws.WriteMessage(websocket.BinaryMessage, data)
		c.writeMu.Unlock()
	}
	if err != nil {
		c.forget(id)
		return host.Reply{}, errors.Wrap(errors.PhaseTransport, errors.KindClosed, err, "send call")
	}

	select {
	case r := <-ch:
		return r, nil
	case <-c.done:
		c.forget(id)
		return host.Reply{}, c.Err()
	case <-ctx.Done():
		c.forget(id)
		return host.Reply{}, ctx.Err()
	}
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// Err returns the error that ended the connection, if any.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close closes the connection.
func (c *Client) Close() error {
	c.writeMu.Lock()
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()
	err := c.ws.Close()
	<-c.done
	return err
}

func (c *Client) readLoop() {
	defer func() {
		c.mu.Lock()
		if c.err == nil {
			c.err = errors.New(errors.PhaseTransport, errors.KindClosed).Detail("connection closed").Build()
		}
		c.mu.Unlock()
		close(c.events)
		close(c.done)
	}()

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			c.mu.Lock()
			c.err = errors.Wrap(errors.PhaseTransport, errors.KindClosed, err, "connection closed")
			c.mu.Unlock()
			return
		}
		f, err := Unmarshal(data)
		if err != nil {
			Logger().Warn("bad frame from server", zap.Error(err))
			continue
		}

		switch f.Type {
		case FrameReply:
			r, err := f.Reply()
			if err != nil {
				reply := errors.ReplyOf(err)
				r = host.Reply{Err: &reply}
			}
			c.mu.Lock()
			ch, ok := c.pending[f.ID]
			delete(c.pending, f.ID)
			c.mu.Unlock()
			if ok {
				ch <- r
			}
		case FrameEvent:
			ev, err := f.Event()
			if err != nil {
				Logger().Warn("bad event from server", zap.Error(err))
				continue
			}
			select {
			case c.events <- ev:
			default:
				Logger().Warn("client event buffer full", zap.String("channel", ev.Channel), zap.String("method", ev.Method))
			}
		}
	}
}
