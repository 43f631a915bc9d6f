package rpc

import (
	"context"
	"strings"

	"github.com/ripplecore/xrplgo/xrpl/queries"
)

// Client is satisfied by both transports: assign-an-id-wait-for-match
// request/response, transport-agnostic per spec §4.7.
type Client interface {
	Request(ctx context.Context, req queries.Request) (*queries.Response, error)
	Close() error
}

// NewClient picks a transport by cfg.URL's scheme: ws/wss dial a
// persistent WebSocket connection (Connect is called automatically),
// anything else (http/https) uses one-shot JSON-RPC POSTs.
func NewClient(ctx context.Context, cfg *ClientConfig) (Client, error) {
	if isWebSocketURL(cfg.URL) {
		ws := NewWSClient(cfg)
		if err := ws.Connect(ctx); err != nil {
			return nil, err
		}
		return ws, nil
	}
	return NewJSONRPCClient(cfg), nil
}

func isWebSocketURL(url string) bool {
	return strings.HasPrefix(url, "ws://") || strings.HasPrefix(url, "wss://")
}
