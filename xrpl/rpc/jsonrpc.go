package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ripplecore/xrplgo/xrpl/queries"
)

// jsonrpcEnvelope is the wire body spec §6 defines: the command renamed
// to "method", remaining parameters wrapped into a one-element "params"
// array. This intentionally does NOT carry a "jsonrpc" field.
type jsonrpcEnvelope struct {
	Method string            `json:"method"`
	Params [1]json.RawMessage `json:"params"`
}

// jsonrpcResultEnvelope is the response body: {"result": {...}}.
type jsonrpcResultEnvelope struct {
	Result queries.Response `json:"result"`
}

// JSONRPCClient sends each request as one HTTP POST. It owns a single
// shared *http.Client (spec §9: standardize on one shared client rather
// than constructing one per call).
type JSONRPCClient struct {
	cfg *ClientConfig
}

// NewJSONRPCClient builds a JSON-RPC transport against cfg.URL.
func NewJSONRPCClient(cfg *ClientConfig) *JSONRPCClient {
	return &JSONRPCClient{cfg: cfg}
}

// Request sends req as a single JSON-RPC POST and decodes the reply.
func (c *JSONRPCClient) Request(ctx context.Context, req queries.Request) (*queries.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// "command" becomes the top-level "method"; it is not repeated
	// inside params[0].
	rawParams, err := json.Marshal(req)
	if err != nil {
		return nil, wrapErr(ErrMalformedResponse, "encode request params", err)
	}
	var paramFields map[string]interface{}
	if err := json.Unmarshal(rawParams, &paramFields); err != nil {
		return nil, wrapErr(ErrMalformedResponse, "encode request params", err)
	}
	delete(paramFields, "command")
	paramsJSON, err := json.Marshal(paramFields)
	if err != nil {
		return nil, wrapErr(ErrMalformedResponse, "encode request params", err)
	}

	body, err := json.Marshal(jsonrpcEnvelope{
		Method: req.GetCommand(),
		Params: [1]json.RawMessage{paramsJSON},
	})
	if err != nil {
		return nil, wrapErr(ErrMalformedResponse, "encode request envelope", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, wrapErr(ErrConnectionFailed, "build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, wrapErr(ErrCancelled, "request cancelled", ctx.Err())
		}
		return nil, wrapErr(ErrConnectionFailed, "send request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapErr(ErrConnectionFailed, "read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, wrapErr(ErrHTTPStatus, fmt.Sprintf("HTTP %d", resp.StatusCode), fmt.Errorf("%s", string(raw)))
	}

	var envelope jsonrpcResultEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, wrapErr(ErrMalformedResponse, "decode response", err)
	}
	return &envelope.Result, nil
}

// Close is a no-op: the JSON-RPC transport holds no persistent
// connection.
func (c *JSONRPCClient) Close() error { return nil }
