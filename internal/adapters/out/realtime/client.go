package realtime

import (
	"log/slog"
	"sync"
	"time"

	"pos/internal/pkg/wire"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Client is one connected socket. Outgoing frames go through a bounded
// queue drained by WritePump; a full queue drops the frame.
type Client struct {
	id       uuid.UUID
	conn     *websocket.Conn
	send     chan []byte
	done     chan struct{}
	once     sync.Once
	pongWait time.Duration
	logger   *slog.Logger
}

func newClient(conn *websocket.Conn, queueSize int, pongWait time.Duration, logger *slog.Logger) *Client {
	id := uuid.New()
	return &Client{
		id:       id,
		conn:     conn,
		send:     make(chan []byte, queueSize),
		done:     make(chan struct{}),
		pongWait: pongWait,
		logger:   logger.With("client_id", id.String()),
	}
}

func (c *Client) ID() uuid.UUID {
	return c.id
}

// Send encodes and enqueues one event for this client only.
func (c *Client) Send(event string, data any) bool {
	frame, err := wire.Encode(event, data)
	if err != nil {
		c.logger.Error("Failed to encode socket event", "event", event, "error", err)
		return false
	}
	return c.enqueue(frame)
}

// enqueue never blocks. It reports false when the frame was dropped.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		c.logger.Warn("Socket queue full, dropping frame")
		return false
	}
}

// WritePump writes queued frames until the client is closed or a write fails.
func (c *Client) WritePump() {
	defer c.Close()

	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Debug("Socket write failed", "error", err)
				return
			}
		}
	}
}

// ReadPump discards incoming messages and returns when the peer goes away
// or stops answering pings.
func (c *Client) ReadPump() {
	defer c.Close()

	c.conn.SetReadLimit(4096)
	if c.pongWait > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
		})
	}

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("Socket closed unexpectedly", "error", err)
			}
			return
		}
	}
}

// Ping sends a ping control frame. Safe to call concurrently with WritePump.
func (c *Client) Ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Close stops the pumps and closes the connection. Safe to call more than once.
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait),
		)
		_ = c.conn.Close()
	})
}
