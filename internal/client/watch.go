package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pos/internal/pkg/wire"

	"github.com/gorilla/websocket"
)

// DefaultFallbackDelay is how long a watcher waits after losing the socket
// before reading the board over REST.
const DefaultFallbackDelay = 3 * time.Second

// Update is one event of the order board, either pushed by the socket or
// synthesized from a REST read.
type Update struct {
	Event string
	Data  json.RawMessage
	// Polled is true when the update comes from a REST read.
	Polled bool
}

// Watcher follows the order board. It prefers the socket; when the socket
// cannot be opened or drops it waits FallbackDelay and reads products and
// orders once over REST. With a positive PollInterval it keeps reading
// orders at that interval instead of stopping after the single read.
type Watcher struct {
	client        *Client
	dialer        *websocket.Dialer
	FallbackDelay time.Duration
	PollInterval  time.Duration
	// OnFallback, when set, is told why the socket could not be used or
	// was lost.
	OnFallback func(err error)
}

func NewWatcher(c *Client) *Watcher {
	return &Watcher{
		client:        c,
		dialer:        websocket.DefaultDialer,
		FallbackDelay: DefaultFallbackDelay,
	}
}

// SocketURL is the push channel address of the server.
func (w *Watcher) SocketURL() string {
	u := *w.client.baseURL
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	return u.String()
}

// Watch calls handle for every update until ctx is done or handle returns
// an error. A socket that cannot be opened, or that drops once open, falls
// back to the delayed REST read. A closed context is not an error.
func (w *Watcher) Watch(ctx context.Context, handle func(Update) error) error {
	conn, _, err := w.dialer.DialContext(ctx, w.SocketURL(), nil)
	if err != nil {
		return w.fallback(ctx, err, handle)
	}

	err = w.read(ctx, conn, handle)
	if !errors.Is(err, errSocketLost) {
		return err
	}
	return w.fallback(ctx, err, handle)
}

// errSocketLost marks a read loop that ended because the connection went
// away rather than because of ctx or the handler.
var errSocketLost = errors.New("socket connection lost")

func (w *Watcher) read(ctx context.Context, conn *websocket.Conn, handle func(Update) error) error {
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%w: %w", errSocketLost, err)
		}

		msg, err := wire.Decode(frame)
		if err != nil {
			continue
		}
		if err = handle(Update{Event: msg.Event, Data: msg.Data}); err != nil {
			return err
		}
	}
}

func (w *Watcher) fallback(ctx context.Context, cause error, handle func(Update) error) error {
	if ctx.Err() != nil {
		return nil
	}
	if w.OnFallback != nil {
		w.OnFallback(cause)
	}
	return w.poll(ctx, handle)
}

func (w *Watcher) poll(ctx context.Context, handle func(Update) error) error {
	if err := sleep(ctx, w.FallbackDelay); err != nil {
		return nil
	}

	products, err := w.client.Products(ctx)
	if err != nil {
		return err
	}
	if err = emit(handle, wire.EventProducts, products); err != nil {
		return err
	}
	if err = w.pollOrders(ctx, handle); err != nil {
		return err
	}

	if w.PollInterval <= 0 {
		return nil
	}

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err = w.pollOrders(ctx, handle); err != nil && !errors.Is(err, ErrUnreachable) {
				return err
			}
		}
	}
}

func (w *Watcher) pollOrders(ctx context.Context, handle func(Update) error) error {
	orders, err := w.client.Orders(ctx, "")
	if err != nil {
		return err
	}
	return emit(handle, wire.EventOrders, orders)
}

func emit(handle func(Update) error, event string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return handle(Update{Event: event, Data: raw, Polled: true})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
