package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/clok/kemba"
	"github.com/gofrs/uuid/v5"
	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
)

var localKemba = kemba.New("backand:realtime")

// DefaultURL is the hosted Backand socket endpoint.
const DefaultURL = "wss://socket.backand.com/socket.io/?EIO=3&transport=websocket"

const defaultPingInterval = 25 * time.Second

// Handler receives one event's payload.
type Handler func(data gjson.Result)

// SubscriptionID identifies one registered handler.
type SubscriptionID = uuid.UUID

// Conn is one live event connection. There is no reconnect: when the
// socket drops, the connection is closed and stays closed.
type Conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex

	mu       sync.RWMutex
	handlers map[string]map[SubscriptionID]Handler

	closeOnce sync.Once
	done      chan struct{}
}

// Dial connects, waits for the engine.io handshake and sends the login
// event with (user token, anonymous token, app name). An empty
// socketURL means DefaultURL.
func Dial(ctx context.Context, socketURL, appName, userToken, anonymousToken string) (*Conn, error) {
	k := localKemba.Extend("Dial")
	if socketURL == "" {
		socketURL = DefaultURL
	}

	ws, resp, err := websocket.DefaultDialer.DialContext(ctx, socketURL, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 && resp.StatusCode != 101 {
		ws.Close()
		return nil, errors.New("socket endpoint's initial response was not 200/101: " + resp.Status)
	}

	// The server opens with "0{...}" carrying sid and ping settings.
	_, raw, err := ws.ReadMessage()
	if err != nil {
		ws.Close()
		return nil, err
	}
	p, err := parsePacket(raw)
	if err != nil || p.typ != packetOpen {
		ws.Close()
		return nil, errors.New("expected engine.io open packet, got: " + string(raw))
	}
	interval := time.Duration(gjson.GetBytes(p.data, "pingInterval").Int()) * time.Millisecond
	if interval <= 0 {
		interval = defaultPingInterval
	}
	k.Printf("open: sid=%s pingInterval=%s", gjson.GetBytes(p.data, "sid").String(), interval)

	c := &Conn{
		ws:       ws,
		handlers: map[string]map[SubscriptionID]Handler{},
		done:     make(chan struct{}),
	}

	login, err := encodeEvent("login", userToken, anonymousToken, appName)
	if err != nil {
		ws.Close()
		return nil, err
	}
	if err := c.write(login); err != nil {
		ws.Close()
		return nil, err
	}

	go c.readLoop()
	go c.pingLoop(interval)
	return c, nil
}

// On registers a handler for the named event. Handlers run on the read
// loop goroutine, one event at a time.
func (c *Conn) On(event string, h Handler) SubscriptionID {
	id := uuid.Must(uuid.NewV4())
	c.mu.Lock()
	if c.handlers[event] == nil {
		c.handlers[event] = map[SubscriptionID]Handler{}
	}
	c.handlers[event][id] = h
	c.mu.Unlock()
	localKemba.Extend("On").Printf("%s += %s", event, id)
	return id
}

// Off removes one handler.
func (c *Conn) Off(event string, id SubscriptionID) {
	c.mu.Lock()
	delete(c.handlers[event], id)
	c.mu.Unlock()
}

// Done is closed when the connection has shut down, whether by Close
// or by the peer going away.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close shuts the connection down. Closing twice is harmless.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.write([]byte{packetClose})
		err = c.ws.Close()
	})
	return err
}

func (c *Conn) write(frame []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, frame)
}

func (c *Conn) readLoop() {
	k := localKemba.Extend("readLoop")
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			k.Printf("read ended: %v", err)
			c.Close()
			return
		}
		p, err := parsePacket(raw)
		if err != nil {
			k.Printf("dropping frame: %v", err)
			continue
		}
		switch p.typ {
		case packetPing:
			_ = c.write([]byte{packetPong})
		case packetMessage:
			if name, payload, ok := parseEvent(p.data); ok {
				c.dispatch(name, payload)
			}
		case packetClose:
			c.Close()
			return
		}
	}
}

func (c *Conn) pingLoop(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			if err := c.write([]byte{packetPing}); err != nil {
				return
			}
		}
	}
}

func (c *Conn) dispatch(name string, payload gjson.Result) {
	c.mu.RLock()
	hs := make([]Handler, 0, len(c.handlers[name]))
	for _, h := range c.handlers[name] {
		hs = append(hs, h)
	}
	c.mu.RUnlock()
	localKemba.Extend("dispatch").Printf("%s -> %d handler(s)", name, len(hs))
	for _, h := range hs {
		h(payload)
	}
}
