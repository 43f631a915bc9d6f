// Package faucet implements the testnet/devnet funding helper: a POST
// to the network's faucet endpoint, followed by polling account_info
// until the funded account appears (spec §6 Faucet).
package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ripplecore/xrplgo/xrpl/queries"
)

const (
	defaultPollInterval = 1 * time.Second
	defaultPollCount    = 20
)

// FundRequest is the body posted to the faucet endpoint.
type FundRequest struct {
	Destination  string `json:"destination"`
	XRPAmount    string `json:"xrpAmount,omitempty"`
	UsageContext string `json:"usageContext,omitempty"`
	UserAgent    string `json:"userAgent,omitempty"`
}

// FundResult is the faucet's JSON reply. Real faucets vary in shape
// across networks; unknown fields are preserved in Raw.
type FundResult struct {
	Account struct {
		Address string `json:"address"`
	} `json:"account"`
	Amount float64         `json:"amount,omitempty"`
	Raw    json.RawMessage `json:"-"`
}

// Client posts funding requests to a faucet URL.
type Client struct {
	FaucetURL  string
	HTTPClient *http.Client
}

// NewClient builds a faucet client against faucetURL, reusing httpClient
// if non-nil (the rpc package's shared client is a common choice).
func NewClient(faucetURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{FaucetURL: faucetURL, HTTPClient: httpClient}
}

// Fund requests testnet/devnet funds for destination.
func (c *Client) Fund(ctx context.Context, req FundRequest) (*FundResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, wrapErr(ErrRequestFailed, "encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.FaucetURL, bytes.NewReader(body))
	if err != nil {
		return nil, wrapErr(ErrRequestFailed, "build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, wrapErr(ErrRequestFailed, "send request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapErr(ErrRequestFailed, "read response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newErr(ErrRequestFailed, fmt.Sprintf("faucet returned HTTP %d: %s", resp.StatusCode, string(raw)))
	}

	var result FundResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, wrapErr(ErrRequestFailed, "decode response", err)
	}
	result.Raw = raw
	return &result, nil
}

// Requester is the subset of an rpc client the faucet poll needs: send
// an account_info request and get back its typed result or an error.
// The rpc.Client satisfies this without either package importing the
// other's concrete type.
type Requester interface {
	Request(ctx context.Context, req queries.Request) (*queries.Response, error)
}

// WaitForFunding polls account_info for account until it appears or the
// poll budget is exhausted. Non-existence (e.g. actNotFound) is treated
// as "not yet funded" and retried; any other error is returned
// immediately.
func WaitForFunding(ctx context.Context, client Requester, account string, pollInterval time.Duration, pollCount int) (*queries.AccountInfoResult, error) {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if pollCount <= 0 {
		pollCount = defaultPollCount
	}

	req := queries.NewAccountInfo(account)
	for i := 0; i < pollCount; i++ {
		resp, err := client.Request(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.IsSuccess() {
			var result queries.AccountInfoResult
			if err := resp.DecodeResult(&result); err != nil {
				return nil, err
			}
			return &result, nil
		}
		if resp.Error != "actNotFound" {
			return nil, newErr(ErrRequestFailed, "account_info: "+resp.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
	return nil, newErr(ErrFundingTimeout, account)
}
