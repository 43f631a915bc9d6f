// Package queries models XRPL JSON-RPC/WebSocket requests and their
// result envelopes: a command discriminator, a per-command parameter
// set, and the shared response shape both transports decode into.
package queries

// Request is implemented by every concrete request type: it reports the
// command name the rpc client dispatches on and its own local field
// validity (exactly-one-of constraints, required fields).
type Request interface {
	GetCommand() string
	Validate() error
}

// AccountInfo requests the current state of an account.
type AccountInfo struct {
	ID          string `json:"id,omitempty"`
	Command     string `json:"command"`
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index,omitempty"`
	Strict      bool   `json:"strict,omitempty"`
	Queue       bool   `json:"queue,omitempty"`
}

func NewAccountInfo(account string) *AccountInfo {
	return &AccountInfo{Command: "account_info", Account: account}
}

func (r *AccountInfo) GetCommand() string { return r.Command }
func (r *AccountInfo) Validate() error {
	if r.Account == "" {
		return newErr(ErrMissingParameter, "account")
	}
	return nil
}

// AccountTx requests an account's transaction history.
type AccountTx struct {
	ID           string `json:"id,omitempty"`
	Command      string `json:"command"`
	Account      string `json:"account"`
	LedgerIndexMin int  `json:"ledger_index_min,omitempty"`
	LedgerIndexMax int  `json:"ledger_index_max,omitempty"`
	Limit        int    `json:"limit,omitempty"`
	Marker       interface{} `json:"marker,omitempty"`
}

func NewAccountTx(account string) *AccountTx {
	return &AccountTx{Command: "account_tx", Account: account, LedgerIndexMin: -1, LedgerIndexMax: -1}
}

func (r *AccountTx) GetCommand() string { return r.Command }
func (r *AccountTx) Validate() error {
	if r.Account == "" {
		return newErr(ErrMissingParameter, "account")
	}
	return nil
}

// Tx requests a single transaction by hash.
type Tx struct {
	ID          string `json:"id,omitempty"`
	Command     string `json:"command"`
	Transaction string `json:"transaction"`
	Binary      bool   `json:"binary,omitempty"`
}

func NewTx(hash string) *Tx {
	return &Tx{Command: "tx", Transaction: hash}
}

func (r *Tx) GetCommand() string { return r.Command }
func (r *Tx) Validate() error {
	if r.Transaction == "" {
		return newErr(ErrMissingParameter, "transaction")
	}
	return nil
}

// Submit submits a signed transaction blob.
type Submit struct {
	ID      string `json:"id,omitempty"`
	Command string `json:"command"`
	TxBlob  string `json:"tx_blob"`
	FailHard bool  `json:"fail_hard,omitempty"`
}

func NewSubmit(txBlob string) *Submit {
	return &Submit{Command: "submit", TxBlob: txBlob}
}

func (r *Submit) GetCommand() string { return r.Command }
func (r *Submit) Validate() error {
	if r.TxBlob == "" {
		return newErr(ErrMissingParameter, "tx_blob")
	}
	return nil
}

// SubmitMultisigned submits a completed multi-signed transaction in JSON
// form (as opposed to a serialized blob).
type SubmitMultisigned struct {
	ID      string                 `json:"id,omitempty"`
	Command string                 `json:"command"`
	TxJSON  map[string]interface{} `json:"tx_json"`
}

func NewSubmitMultisigned(tx map[string]interface{}) *SubmitMultisigned {
	return &SubmitMultisigned{Command: "submit_multisigned", TxJSON: tx}
}

func (r *SubmitMultisigned) GetCommand() string { return r.Command }
func (r *SubmitMultisigned) Validate() error {
	if len(r.TxJSON) == 0 {
		return newErr(ErrMissingParameter, "tx_json")
	}
	return nil
}

// Fee requests the current transaction cost.
type Fee struct {
	ID      string `json:"id,omitempty"`
	Command string `json:"command"`
}

func NewFee() *Fee { return &Fee{Command: "fee"} }

func (r *Fee) GetCommand() string { return r.Command }
func (r *Fee) Validate() error    { return nil }

// ServerState requests consensus/load status.
type ServerState struct {
	ID      string `json:"id,omitempty"`
	Command string `json:"command"`
}

func NewServerState() *ServerState { return &ServerState{Command: "server_state"} }

func (r *ServerState) GetCommand() string { return r.Command }
func (r *ServerState) Validate() error    { return nil }

// ServerInfo requests general server status.
type ServerInfo struct {
	ID      string `json:"id,omitempty"`
	Command string `json:"command"`
}

func NewServerInfo() *ServerInfo { return &ServerInfo{Command: "server_info"} }

func (r *ServerInfo) GetCommand() string { return r.Command }
func (r *ServerInfo) Validate() error    { return nil }

// Ledger requests a ledger header, optionally with its transactions.
type Ledger struct {
	ID           string `json:"id,omitempty"`
	Command      string `json:"command"`
	LedgerIndex  interface{} `json:"ledger_index,omitempty"`
	Transactions bool   `json:"transactions,omitempty"`
	Expand       bool   `json:"expand,omitempty"`
}

func NewLedger() *Ledger { return &Ledger{Command: "ledger", LedgerIndex: "validated"} }

func (r *Ledger) GetCommand() string { return r.Command }
func (r *Ledger) Validate() error    { return nil }

// ChannelAuthorize signs a payment channel claim. Exactly one of
// Secret/Seed/SeedHex/Passphrase must be set (spec §4.6).
type ChannelAuthorize struct {
	ID         string `json:"id,omitempty"`
	Command    string `json:"command"`
	ChannelID  string `json:"channel_id"`
	Amount     string `json:"amount"`
	Secret     string `json:"secret,omitempty"`
	Seed       string `json:"seed,omitempty"`
	SeedHex    string `json:"seed_hex,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
	KeyType    string `json:"key_type,omitempty"`
}

func NewChannelAuthorize(channelID, amount string) *ChannelAuthorize {
	return &ChannelAuthorize{Command: "channel_authorize", ChannelID: channelID, Amount: amount}
}

func (r *ChannelAuthorize) GetCommand() string { return r.Command }
func (r *ChannelAuthorize) Validate() error {
	set := 0
	for _, v := range []string{r.Secret, r.Seed, r.SeedHex, r.Passphrase} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return newErr(ErrMustSetExactlyOneOf, "secret, seed, seed_hex, passphrase")
	}
	return nil
}

// PathFind requests or cancels a pathfinding subscription.
type PathFind struct {
	ID          string      `json:"id,omitempty"`
	Command     string      `json:"command"`
	Subcommand  string      `json:"subcommand"`
	SourceAccount string    `json:"source_account,omitempty"`
	Destination string      `json:"destination_account,omitempty"`
	DestinationAmount interface{} `json:"destination_amount,omitempty"`
}

func NewPathFindCreate(source, destination string, amount interface{}) *PathFind {
	return &PathFind{Command: "path_find", Subcommand: "create", SourceAccount: source, Destination: destination, DestinationAmount: amount}
}

func NewPathFindClose() *PathFind {
	return &PathFind{Command: "path_find", Subcommand: "close"}
}

func (r *PathFind) GetCommand() string { return r.Command }
func (r *PathFind) Validate() error {
	switch r.Subcommand {
	case "create":
		if r.SourceAccount == "" || r.Destination == "" {
			return newErr(ErrMissingParameter, "source_account/destination_account")
		}
		return nil
	case "close", "status":
		return nil
	default:
		return newErr(ErrUnimplemented, "path_find subcommand "+r.Subcommand)
	}
}
