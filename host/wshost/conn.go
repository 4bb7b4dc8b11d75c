package wshost

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
)

// conn is one connected client. Replies and events are queued apart: a
// slow client sheds events but every reply is written or the connection
// is closed.
type conn struct {
	srv     *Server
	ws      *websocket.Conn
	id      string
	send    chan []byte
	replies chan []byte

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool
}

func newConn(srv *Server, ws *websocket.Conn, id string) *conn {
	ctx, cancel := context.WithCancel(context.Background())
	return &conn{
		srv:     srv,
		ws:      ws,
		id:      id,
		send:    make(chan []byte, sendBuffer),
		replies: make(chan []byte, sendBuffer),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// enqueue queues an event for the write pump. It reports false when the
// client is gone or its event buffer is full.
func (c *conn) enqueue(data []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// pushReply waits up to writeWait for room in the reply queue.
func (c *conn) pushReply(data []byte) bool {
	select {
	case c.replies <- data:
		return true
	default:
	}
	timer := time.NewTimer(writeWait)
	defer timer.Stop()
	select {
	case c.replies <- data:
		return true
	case <-c.ctx.Done():
		return false
	case <-timer.C:
		return false
	}
}

func (c *conn) reply(id string, r host.Reply) {
	f, err := replyFrame(id, r)
	if err != nil {
		Logger().Error("reply encode failed", zap.String("conn", c.id), zap.String("id", id), zap.Error(err))
		failed := errors.ReplyOf(err)
		f, _ = replyFrame(id, host.Reply{Err: &failed})
	}
	data, err := Marshal(f)
	if err != nil {
		Logger().Error("reply marshal failed", zap.String("conn", c.id), zap.String("id", id), zap.Error(err))
		return
	}
	if c.pushReply(data) {
		return
	}
	if c.ctx.Err() != nil {
		Logger().Debug("reply after disconnect", zap.String("conn", c.id), zap.String("id", id))
		return
	}
	// The client is not draining replies; drop it rather than leave the
	// call unanswered on a live connection.
	Logger().Warn("reply stalled, closing connection", zap.String("conn", c.id), zap.String("id", id))
	c.close()
}

// close stops the write pump. Queued frames are discarded.
func (c *conn) close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

func (c *conn) readPump() {
	defer func() {
		c.close()
		c.srv.remove(c)
		c.ws.Close()
	}()

	if c.srv.opts.MaxMessageBytes > 0 {
		c.ws.SetReadLimit(c.srv.opts.MaxMessageBytes)
	}
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				Logger().Warn("read failed", zap.String("conn", c.id), zap.Error(err))
			}
			return
		}
		c.handle(data)
	}
}

func (c *conn) handle(data []byte) {
	f, err := Unmarshal(data)
	if err != nil {
		Logger().Warn("bad frame", zap.String("conn", c.id), zap.Error(err))
		return
	}
	call, err := f.call()
	if err != nil {
		// A call we can identify still gets an answer.
		if f.Type == FrameCall && f.ID != "" {
			reply := errors.ReplyOf(err)
			c.reply(f.ID, host.Reply{Err: &reply})
			return
		}
		Logger().Warn("bad frame", zap.String("conn", c.id), zap.Error(err))
		return
	}

	Logger().Debug("call",
		zap.String("conn", c.id),
		zap.String("id", call.ID),
		zap.String("channel", call.Channel),
		zap.String("method", call.Method))
	c.srv.dispatch(c.ctx, c, call)
}

func (c *conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		// Replies go out ahead of queued events.
		select {
		case data := <-c.replies:
			if !c.write(websocket.BinaryMessage, data) {
				return
			}
			continue
		default:
		}

		select {
		case data := <-c.replies:
			if !c.write(websocket.BinaryMessage, data) {
				return
			}

		case data := <-c.send:
			if !c.write(websocket.BinaryMessage, data) {
				return
			}

		case <-ticker.C:
			if !c.write(websocket.PingMessage, nil) {
				return
			}

		case <-c.ctx.Done():
			c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *conn) write(messageType int, data []byte) bool {
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(messageType, data) == nil
}
