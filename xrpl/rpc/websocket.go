package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"

	"github.com/ripplecore/xrplgo/xrpl/queries"
)

// subscriptionQueueSize bounds the unsolicited-frame queue; once full,
// new subscription pushes are dropped rather than blocking the read
// loop (a slow subscriber should not stall request/response traffic).
const subscriptionQueueSize = 256

type waiterResult struct {
	resp *queries.Response
	err  error
}

// WSClient multiplexes requests over one long-lived connection: a
// single writer lock serializes outbound frames, and a background
// dispatch loop demultiplexes inbound frames by id to the waiting
// caller (spec §5, §4.7 WebSocket variant).
type WSClient struct {
	cfg *ClientConfig
	sm  stateMachine

	conn *gorilla.Conn

	writeMu sync.Mutex

	waitersMu sync.Mutex
	waiters   map[string]chan waiterResult

	Subscriptions chan *queries.Response

	done chan struct{}
}

// NewWSClient builds a WebSocket transport against cfg.URL. Call
// Connect before issuing requests.
func NewWSClient(cfg *ClientConfig) *WSClient {
	return &WSClient{
		cfg:           cfg,
		waiters:       make(map[string]chan waiterResult),
		Subscriptions: make(chan *queries.Response, subscriptionQueueSize),
	}
}

// Connect dials the WebSocket endpoint and starts the dispatch loop.
// Calling Connect on an already-connected client is a no-op.
func (c *WSClient) Connect(ctx context.Context) error {
	if !c.sm.transitionToConnected() {
		return nil
	}
	conn, _, err := gorilla.DefaultDialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		c.sm.transitionToDisconnected()
		return wrapErr(ErrConnectionFailed, c.cfg.URL, err)
	}
	c.conn = conn
	c.done = make(chan struct{})
	go c.dispatchLoop()
	return nil
}

// Connected reports whether the client currently holds an open
// connection.
func (c *WSClient) Connected() bool {
	return c.sm.current() == stateConnected
}

// Close tears down the connection, failing every pending waiter with a
// Disconnected error. Calling Close when not connected is a no-op.
func (c *WSClient) Close() error {
	if !c.sm.transitionToDisconnected() {
		return nil
	}
	close(c.done)
	err := c.conn.Close()
	c.failAllWaiters(newErr(ErrDisconnected, "connection closed"))
	return err
}

// Request sends req over the shared connection and waits for the
// response whose id matches, or for ctx to be cancelled.
func (c *WSClient) Request(ctx context.Context, req queries.Request) (*queries.Response, error) {
	if c.sm.current() != stateConnected {
		return nil, newErr(ErrDisconnected, "not connected")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	frame, err := requestFrame(req, id)
	if err != nil {
		return nil, wrapErr(ErrMalformedResponse, "encode request", err)
	}
	// requestFrame keeps a caller-supplied id, so key the waiter by the
	// id the frame actually carries.
	var sent struct {
		ID interface{} `json:"id"`
	}
	if err := json.Unmarshal(frame, &sent); err == nil && sent.ID != nil {
		id = fmt.Sprintf("%v", sent.ID)
	}

	wait := make(chan waiterResult, 1)
	c.waitersMu.Lock()
	c.waiters[id] = wait
	c.waitersMu.Unlock()

	if err := c.writeFrame(frame); err != nil {
		c.removeWaiter(id)
		return nil, wrapErr(ErrConnectionFailed, "write frame", err)
	}

	select {
	case <-ctx.Done():
		c.removeWaiter(id)
		return nil, wrapErr(ErrCancelled, "request cancelled", ctx.Err())
	case result := <-wait:
		return result.resp, result.err
	}
}

func (c *WSClient) removeWaiter(id string) {
	c.waitersMu.Lock()
	delete(c.waiters, id)
	c.waitersMu.Unlock()
}

func (c *WSClient) writeFrame(frame []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(gorilla.TextMessage, frame)
}

// dispatchLoop is the single reader of the connection: it owns
// conn.ReadMessage exclusively, per the one-reader contract in spec §5.
func (c *WSClient) dispatchLoop() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.sm.transitionToDisconnected()
			c.failAllWaiters(wrapErr(ErrDisconnected, "read failed", err))
			return
		}

		var resp queries.Response
		if err := json.Unmarshal(msg, &resp); err != nil {
			continue // malformed frame; not attributable to any waiter
		}

		if resp.ID == nil {
			c.pushSubscription(&resp)
			continue
		}

		key := fmt.Sprintf("%v", resp.ID)
		c.waitersMu.Lock()
		wait, ok := c.waiters[key]
		if ok {
			delete(c.waiters, key)
		}
		c.waitersMu.Unlock()

		if !ok {
			// A response arrived for an id nobody is waiting on (already
			// cancelled, or a subscribe-specific id) — treat as a push.
			c.pushSubscription(&resp)
			continue
		}
		wait <- waiterResult{resp: &resp}
	}
}

func (c *WSClient) pushSubscription(resp *queries.Response) {
	select {
	case c.Subscriptions <- resp:
	default:
		// queue full: drop rather than stall the single reader
	}
}

func (c *WSClient) failAllWaiters(err error) {
	c.waitersMu.Lock()
	defer c.waitersMu.Unlock()
	for id, wait := range c.waiters {
		wait <- waiterResult{err: err}
		delete(c.waiters, id)
	}
}

// requestFrame renders req as the outbound WebSocket object: its own
// fields plus "command" and "id" (spec §6 WebSocket wire).
func requestFrame(req queries.Request, id string) ([]byte, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["command"] = req.GetCommand()
	if v, ok := fields["id"]; !ok || v == "" || v == nil {
		fields["id"] = id
	}
	return json.Marshal(fields)
}
