package queries

import "encoding/json"

// Response is the shared envelope both JSON-RPC and WebSocket transports
// decode a reply into, per spec §3/§6.
type Response struct {
	ID           interface{}     `json:"id,omitempty"`
	Status       string          `json:"status,omitempty"`
	Type         string          `json:"type,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	ErrorCode    int             `json:"error_code,omitempty"`
	Validated    *bool           `json:"validated,omitempty"`
}

// IsSuccess reports whether the response represents a successful result.
func (r *Response) IsSuccess() bool {
	return r.Status == "success" && r.Error == ""
}

// DecodeResult unmarshals the response's result payload into v.
func (r *Response) DecodeResult(v interface{}) error {
	return json.Unmarshal(r.Result, v)
}

// AccountData is the subset of an AccountRoot ledger entry returned by
// account_info.
type AccountData struct {
	Account           string `json:"Account"`
	Balance           string `json:"Balance"`
	Flags             uint32 `json:"Flags"`
	OwnerCount        uint32 `json:"OwnerCount"`
	Sequence          uint32 `json:"Sequence"`
	PreviousTxnID     string `json:"PreviousTxnID,omitempty"`
	RegularKey        string `json:"RegularKey,omitempty"`
}

// AccountInfoResult is the result of an AccountInfo request.
type AccountInfoResult struct {
	AccountData AccountData `json:"account_data"`
	LedgerIndex uint32      `json:"ledger_index,omitempty"`
	Validated   bool        `json:"validated,omitempty"`
}

// FeeResult is the result of a Fee request.
type FeeResult struct {
	CurrentLedgerSize string `json:"current_ledger_size"`
	Drops             struct {
		BaseFee       string `json:"base_fee"`
		MedianFee     string `json:"median_fee"`
		MinimumFee    string `json:"minimum_fee"`
		OpenLedgerFee string `json:"open_ledger_fee"`
	} `json:"drops"`
	ExpectedLedgerSize string `json:"expected_ledger_size"`
	LedgerCurrentIndex uint32 `json:"ledger_current_index"`
}

// ServerStateResult is the result of a ServerState request.
type ServerStateResult struct {
	State struct {
		BuildVersion      string  `json:"build_version"`
		CompleteLedgers   string  `json:"complete_ledgers"`
		LoadFactor        uint32  `json:"load_factor"`
		LoadBase          uint32  `json:"load_base"`
		NetworkID         *uint32 `json:"network_id,omitempty"`
		ValidatedLedger   struct {
			BaseFee  uint32 `json:"base_fee"`
			Seq      uint32 `json:"seq"`
			ReserveBase uint32 `json:"reserve_base"`
			ReserveInc  uint32 `json:"reserve_inc"`
		} `json:"validated_ledger"`
	} `json:"state"`
}

// TxResult is the result of a Tx request.
type TxResult struct {
	Hash            string `json:"hash"`
	LedgerIndex     uint32 `json:"ledger_index,omitempty"`
	Validated       bool   `json:"validated"`
	Meta            json.RawMessage `json:"meta,omitempty"`
	TransactionType string `json:"TransactionType,omitempty"`
}

// SubmitResult is the result of a Submit request.
type SubmitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultCode    int    `json:"engine_result_code"`
	EngineResultMessage string `json:"engine_result_message"`
	TxBlob              string `json:"tx_blob,omitempty"`
	Accepted            bool   `json:"accepted,omitempty"`
}
