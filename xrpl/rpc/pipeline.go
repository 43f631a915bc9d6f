package rpc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/xrpl/queries"
	"github.com/ripplecore/xrplgo/xrpl/transaction"
	"github.com/ripplecore/xrplgo/xrpl/wallet"
)

// Autofill populates absent fee, sequence, last_ledger_sequence, and
// network_id fields by querying the server (spec §4.8 Autofill). It
// returns a new map; fields is not mutated. signerCount is the number
// of signers a multi-signed fee should be scaled for (0 for a
// single-signed transaction).
func Autofill(ctx context.Context, client Client, fields map[string]interface{}, cfg *ClientConfig, signerCount int) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}

	if err := checkAccountTag(out); err != nil {
		return nil, err
	}

	account, _ := out["Account"].(string)
	if account == "" {
		return nil, newErr(ErrMalformedResponse, "transaction has no Account")
	}

	if _, ok := out["Sequence"]; !ok || isZeroOrEmpty(out["Sequence"]) {
		seq, err := fetchSequence(ctx, client, account)
		if err != nil {
			return nil, err
		}
		out["Sequence"] = uint64(seq)
	}

	var state *queries.ServerStateResult
	if _, ok := out["LastLedgerSequence"]; !ok {
		s, err := fetchServerState(ctx, client)
		if err != nil {
			return nil, err
		}
		state = s
		out["LastLedgerSequence"] = uint64(state.State.ValidatedLedger.Seq + cfg.LastLedgerOffset)
	}

	if _, ok := out["NetworkID"]; !ok {
		if state == nil {
			s, err := fetchServerState(ctx, client)
			if err != nil {
				return nil, err
			}
			state = s
		}
		if state.State.NetworkID != nil {
			out["NetworkID"] = uint64(*state.State.NetworkID)
		}
	}

	if _, ok := out["Fee"]; !ok || isZeroOrEmpty(out["Fee"]) {
		fee, err := computeFee(ctx, client, signerCount)
		if err != nil {
			return nil, err
		}
		out["Fee"] = fee
	}

	return out, nil
}

func isZeroOrEmpty(v interface{}) bool {
	switch x := v.(type) {
	case string:
		return x == ""
	case uint64:
		return x == 0
	case uint32:
		return x == 0
	case nil:
		return true
	default:
		return false
	}
}

// checkAccountTag rejects an X-address Account whose embedded tag
// conflicts with an already-set SourceTag (spec §4.8 Autofill step 1).
func checkAccountTag(fields map[string]interface{}) error {
	account, _ := fields["Account"].(string)
	if account == "" || !addresscodec.IsValidXAddress(account) {
		return nil
	}
	_, tag, _, err := addresscodec.XAddressToClassicAddress(account)
	if err != nil {
		return wrapErr(ErrMalformedResponse, "invalid X-address account", err)
	}
	if existing, ok := fields["SourceTag"]; ok && tag != nil {
		existingTag, ok := toUint32(existing)
		if !ok || existingTag != *tag {
			return newErr(ErrMalformedResponse, "X-address tag conflicts with SourceTag")
		}
	}
	return nil
}

func toUint32(v interface{}) (uint32, bool) {
	switch x := v.(type) {
	case uint64:
		return uint32(x), true
	case uint32:
		return x, true
	default:
		return 0, false
	}
}

func fetchSequence(ctx context.Context, client Client, account string) (uint32, error) {
	resp, err := client.Request(ctx, queries.NewAccountInfo(account))
	if err != nil {
		return 0, err
	}
	if !resp.IsSuccess() {
		return 0, newErr(ErrSubmissionFailed, "account_info: "+resp.Error)
	}
	var result queries.AccountInfoResult
	if err := resp.DecodeResult(&result); err != nil {
		return 0, wrapErr(ErrMalformedResponse, "account_info result", err)
	}
	return result.AccountData.Sequence, nil
}

func fetchServerState(ctx context.Context, client Client) (*queries.ServerStateResult, error) {
	resp, err := client.Request(ctx, queries.NewServerState())
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, newErr(ErrSubmissionFailed, "server_state: "+resp.Error)
	}
	var result queries.ServerStateResult
	if err := resp.DecodeResult(&result); err != nil {
		return nil, wrapErr(ErrMalformedResponse, "server_state result", err)
	}
	return &result, nil
}

// computeFee derives the fee in drops from base_fee × load_factor /
// load_base, rounded up, scaled by (1 + signerCount) for multisign.
func computeFee(ctx context.Context, client Client, signerCount int) (string, error) {
	resp, err := client.Request(ctx, queries.NewFee())
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", newErr(ErrSubmissionFailed, "fee: "+resp.Error)
	}
	var result queries.FeeResult
	if err := resp.DecodeResult(&result); err != nil {
		return "", wrapErr(ErrMalformedResponse, "fee result", err)
	}

	state, err := fetchServerState(ctx, client)
	if err != nil {
		return "", err
	}

	base := parseDrops(result.Drops.BaseFee)
	loadFactor := uint64(state.State.LoadFactor)
	loadBase := uint64(state.State.LoadBase)
	if loadBase == 0 {
		loadBase = 1
	}
	scaled := base * loadFactor
	fee := (scaled + loadBase - 1) / loadBase // round up
	fee *= uint64(1 + signerCount)
	return uint64ToString(fee), nil
}

func parseDrops(s string) uint64 {
	var n uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + uint64(c-'0')
	}
	return n
}

func uint64ToString(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// CheckTxnFee enforces the configurable fee cap (spec §4.8
// check_txn_fee). Disabled entirely when cfg.SkipFeeCapCheck is set.
func CheckTxnFee(fields map[string]interface{}, cfg *ClientConfig) error {
	if cfg.SkipFeeCapCheck {
		return nil
	}
	feeStr, _ := fields["Fee"].(string)
	if feeStr == "" {
		return nil
	}
	fee := parseDrops(feeStr)
	if fee > cfg.FeeCapDrops {
		return newErr(ErrFeeTooHigh, feeStr)
	}
	return nil
}

// Sign runs tx's local validity checks, then single-signs fields with
// w (spec §4.8 Sign, single-signer path). fields should already carry
// any autofilled values; tx is the same transaction fields were
// derived from, consulted only for GetErrors. cfg's allowed seed
// algorithms (§6 configuration knob) gate which wallets may sign.
func Sign(fields map[string]interface{}, tx transaction.Transaction, w *wallet.Wallet, cfg *ClientConfig) (txBlob string, txHash string, err error) {
	if !cfg.allowsAlgorithm(w.Algorithm) {
		return "", "", newErr(ErrUnsupportedAlgorithm, w.Algorithm.String())
	}
	if errs := tx.GetErrors(); len(errs) > 0 {
		return "", "", errs[0]
	}
	return w.Sign(fields)
}

// MultiSign runs tx's local validity checks, then computes this
// wallet's contribution to a multi-signed transaction (spec §4.8 Sign,
// multi-signer path). The caller merges the returned Signer into the
// transaction's Signers list and re-renders fields via tx.FieldMap();
// Common.baseFieldMap sorts Signers before the final Submit. cfg's
// allowed seed algorithms gate which wallets may contribute a signature.
func MultiSign(fields map[string]interface{}, tx transaction.Transaction, w *wallet.Wallet, cfg *ClientConfig) (transaction.Signer, error) {
	if !cfg.allowsAlgorithm(w.Algorithm) {
		return transaction.Signer{}, newErr(ErrUnsupportedAlgorithm, w.Algorithm.String())
	}
	if errs := tx.GetErrors(); len(errs) > 0 {
		return transaction.Signer{}, errs[0]
	}
	return w.Multisign(fields)
}

// Submit sends a single-signed transaction's hex-encoded blob (spec
// §4.8 Submit, binary path).
func Submit(ctx context.Context, client Client, txBlobHex string) (*queries.SubmitResult, error) {
	resp, err := client.Request(ctx, queries.NewSubmit(txBlobHex))
	if err != nil {
		return nil, err
	}
	return decodeSubmitResult(resp)
}

// SubmitMultisigned sends a completed multi-signed transaction's JSON
// form (spec §4.8 Submit, json path). fields must already carry the
// sorted Signers array.
func SubmitMultisigned(ctx context.Context, client Client, fields map[string]interface{}) (*queries.SubmitResult, error) {
	resp, err := client.Request(ctx, queries.NewSubmitMultisigned(fields))
	if err != nil {
		return nil, err
	}
	return decodeSubmitResult(resp)
}

func decodeSubmitResult(resp *queries.Response) (*queries.SubmitResult, error) {
	var result queries.SubmitResult
	if err := resp.DecodeResult(&result); err != nil {
		return nil, wrapErr(ErrMalformedResponse, "submit result", err)
	}
	if !resp.IsSuccess() {
		return &result, newErr(ErrSubmissionFailed, resp.Error)
	}
	return &result, nil
}

// hasPrefix reports whether an engine result string starts with a given
// preliminary-result class (e.g. "tem" for malformed, which
// submit_and_wait short-circuits on without polling, per spec §4.8).
func hasPrefix(result, prefix string) bool {
	return len(result) >= len(prefix) && result[:len(prefix)] == prefix
}

// SubmitAndWaitResult is the terminal outcome of submit_and_wait.
type SubmitAndWaitResult struct {
	Hash              string
	EngineResult      string
	TransactionResult string
	Validated         bool
	Dropped           bool
}

type txMeta struct {
	TransactionResult string `json:"TransactionResult"`
}

// SubmitAndWait drives the full S0→S3 state machine for a
// single-signed transaction: autofill, sign, submit, then poll tx(hash)
// every cfg.PollInterval up to cfg.PollCount times (spec §4.8).
func SubmitAndWait(ctx context.Context, client Client, tx transaction.Transaction, w *wallet.Wallet, cfg *ClientConfig) (*SubmitAndWaitResult, error) {
	if w == nil {
		return nil, newErr(ErrWalletRequired, "")
	}

	// S0: Autofill
	fields, err := Autofill(ctx, client, tx.FieldMap(), cfg, 0)
	if err != nil {
		return nil, err
	}
	if err := CheckTxnFee(fields, cfg); err != nil {
		return nil, err
	}

	// S1: Sign
	blob, txHash, err := Sign(fields, tx, w, cfg)
	if err != nil {
		return nil, err
	}

	// S2: Submit
	submitResult, err := Submit(ctx, client, blob)
	if err != nil {
		if submitResult != nil && hasPrefix(submitResult.EngineResult, "tem") {
			return &SubmitAndWaitResult{Hash: txHash, EngineResult: submitResult.EngineResult}, newErr(ErrSubmissionFailed, submitResult.EngineResult)
		}
		return nil, err
	}
	if hasPrefix(submitResult.EngineResult, "tem") {
		return &SubmitAndWaitResult{Hash: txHash, EngineResult: submitResult.EngineResult}, newErr(ErrSubmissionFailed, submitResult.EngineResult)
	}

	lastLedgerSequence, _ := toUint32(fields["LastLedgerSequence"])

	// S3: Poll
	for i := 0; i < cfg.PollCount; i++ {
		select {
		case <-ctx.Done():
			return nil, wrapErr(ErrCancelled, "submit_and_wait cancelled", ctx.Err())
		case <-time.After(cfg.PollInterval):
		}

		resp, err := client.Request(ctx, queries.NewTx(txHash))
		if err != nil {
			return nil, err
		}
		if !resp.IsSuccess() {
			if resp.Error == "txnNotFound" {
				continue
			}
			return nil, newErr(ErrSubmissionFailed, resp.Error)
		}

		var result queries.TxResult
		if err := resp.DecodeResult(&result); err != nil {
			return nil, wrapErr(ErrMalformedResponse, "tx result", err)
		}
		if result.Validated {
			var meta txMeta
			_ = json.Unmarshal(result.Meta, &meta)
			return &SubmitAndWaitResult{
				Hash:              txHash,
				EngineResult:      submitResult.EngineResult,
				TransactionResult: meta.TransactionResult,
				Validated:         true,
			}, nil
		}
		if result.LedgerIndex > lastLedgerSequence && lastLedgerSequence != 0 {
			return &SubmitAndWaitResult{Hash: txHash, EngineResult: submitResult.EngineResult, Dropped: true},
				&Error{Kind: ErrSubmissionTimeout, LastLedgerSequence: lastLedgerSequence, ValidatedLedgerIndex: result.LedgerIndex}
		}
	}

	return &SubmitAndWaitResult{Hash: txHash, EngineResult: submitResult.EngineResult},
		&Error{Kind: ErrSubmissionTimeout, LastLedgerSequence: lastLedgerSequence}
}
