package rpc

import (
	"net/http"
	"time"

	"github.com/ripplecore/xrplgo/addresscodec"
)

// defaults per spec §6 Configuration knobs.
const (
	DefaultFeeCapDrops        = 2_000_000 // 2 XRP
	DefaultLastLedgerOffset   = 20
	DefaultPollInterval       = 1 * time.Second
	DefaultPollCount          = 20
	DefaultHTTPClientTimeout  = 30 * time.Second
)

// ClientConfig holds the knobs spec §6 names, plus the transport target
// and an optional shared HTTP client. It is built once via options and
// is immutable afterward.
type ClientConfig struct {
	URL                string
	HTTPClient         *http.Client
	FeeCapDrops        uint64
	SkipFeeCapCheck    bool
	LastLedgerOffset   uint32
	PollInterval       time.Duration
	PollCount          int
	AllowedAlgorithms  []addresscodec.Algorithm
}

// Option configures a ClientConfig.
type Option func(*ClientConfig)

// WithHTTPClient overrides the shared HTTP client used by the JSON-RPC
// transport (and, if shared by the caller, a faucet client).
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *ClientConfig) { cfg.HTTPClient = c }
}

// WithFeeCap overrides the drops ceiling checkTxnFee enforces.
func WithFeeCap(drops uint64) Option {
	return func(cfg *ClientConfig) { cfg.FeeCapDrops = drops }
}

// WithoutFeeCapCheck disables checkTxnFee entirely (the caller opts
// out, per spec §4.8).
func WithoutFeeCapCheck() Option {
	return func(cfg *ClientConfig) { cfg.SkipFeeCapCheck = true }
}

// WithLastLedgerOffset overrides the offset added to the current
// validated ledger when autofilling last_ledger_sequence.
func WithLastLedgerOffset(offset uint32) Option {
	return func(cfg *ClientConfig) { cfg.LastLedgerOffset = offset }
}

// WithPollInterval overrides submit_and_wait's poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *ClientConfig) { cfg.PollInterval = d }
}

// WithPollCount overrides submit_and_wait's poll ceiling.
func WithPollCount(n int) Option {
	return func(cfg *ClientConfig) { cfg.PollCount = n }
}

// WithAllowedAlgorithms overrides the set of seed algorithms Sign and
// MultiSign accept.
func WithAllowedAlgorithms(algos ...addresscodec.Algorithm) Option {
	return func(cfg *ClientConfig) { cfg.AllowedAlgorithms = algos }
}

// NewClientConfig builds a ClientConfig for url with defaults applied,
// then overridden by opts in order.
func NewClientConfig(url string, opts ...Option) *ClientConfig {
	cfg := &ClientConfig{
		URL:               url,
		HTTPClient:        &http.Client{Timeout: DefaultHTTPClientTimeout},
		FeeCapDrops:       DefaultFeeCapDrops,
		LastLedgerOffset:  DefaultLastLedgerOffset,
		PollInterval:      DefaultPollInterval,
		PollCount:         DefaultPollCount,
		AllowedAlgorithms: []addresscodec.Algorithm{addresscodec.Ed25519, addresscodec.Secp256k1},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// allowsAlgorithm reports whether algo is in the configured allow-list.
func (c *ClientConfig) allowsAlgorithm(algo addresscodec.Algorithm) bool {
	for _, a := range c.AllowedAlgorithms {
		if a == algo {
			return true
		}
	}
	return false
}
