package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/xrpl/queries"
	"github.com/ripplecore/xrplgo/xrpl/transaction"
	"github.com/ripplecore/xrplgo/xrpl/wallet"
)

func TestJSONRPCClientRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var envelope jsonrpcEnvelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		assert.Equal(t, "account_info", envelope.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":{"status":"success","account_data":null}}`))
	}))
	defer srv.Close()

	cfg := NewClientConfig(srv.URL)
	client := NewJSONRPCClient(cfg)
	resp, err := client.Request(context.Background(), queries.NewAccountInfo("rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw"))
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}

func TestJSONRPCClientSurfacesHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewJSONRPCClient(NewClientConfig(srv.URL))
	_, err := client.Request(context.Background(), queries.NewFee())
	require.Error(t, err)
	assert.Equal(t, ErrHTTPStatus, err.(*Error).Kind)
}

// mockClient is an in-memory Client stand-in for pipeline tests,
// dispatching canned responses by command.
type mockClient struct {
	handlers map[string]func(req queries.Request) *queries.Response
}

func newMockClient() *mockClient {
	return &mockClient{handlers: make(map[string]func(req queries.Request) *queries.Response)}
}

func (m *mockClient) on(command string, h func(req queries.Request) *queries.Response) {
	m.handlers[command] = h
}

func (m *mockClient) Request(ctx context.Context, req queries.Request) (*queries.Response, error) {
	h, ok := m.handlers[req.GetCommand()]
	if !ok {
		return nil, newErr(ErrUnexpectedMessage, req.GetCommand())
	}
	return h(req), nil
}

func (m *mockClient) Close() error { return nil }

func successResult(v interface{}) *queries.Response {
	raw, _ := json.Marshal(v)
	return &queries.Response{Status: "success", Result: raw}
}

func testPayment(account string) *transaction.Payment {
	p := &transaction.Payment{}
	p.Account = account
	p.TransactionType = "Payment"
	p.Destination = "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw"
	p.Amount = "1000000"
	return p
}

func TestAutofillPopulatesFeeSequenceLastLedger(t *testing.T) {
	w, err := wallet.New(addresscodec.Ed25519)
	require.NoError(t, err)

	client := newMockClient()
	client.on("account_info", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"account_data": map[string]interface{}{"Account": w.ClassicAddress, "Sequence": 5}})
	})
	client.on("server_state", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"state": map[string]interface{}{
			"load_factor": 256, "load_base": 256,
			"validated_ledger": map[string]interface{}{"seq": 1000},
		}})
	})
	client.on("fee", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"drops": map[string]interface{}{"base_fee": "10"}})
	})

	p := testPayment(w.ClassicAddress)
	fields, err := Autofill(context.Background(), client, p.FieldMap(), NewClientConfig("http://x"), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), fields["Sequence"])
	assert.Equal(t, uint64(1020), fields["LastLedgerSequence"])
	assert.Equal(t, "10", fields["Fee"])
}

func TestCheckTxnFeeRejectsAboveCap(t *testing.T) {
	cfg := NewClientConfig("http://x", WithFeeCap(1000))
	err := CheckTxnFee(map[string]interface{}{"Fee": "5000"}, cfg)
	require.Error(t, err)
	assert.Equal(t, ErrFeeTooHigh, err.(*Error).Kind)
}

func TestCheckTxnFeeCanBeDisabled(t *testing.T) {
	cfg := NewClientConfig("http://x", WithFeeCap(1000), WithoutFeeCapCheck())
	assert.NoError(t, CheckTxnFee(map[string]interface{}{"Fee": "999999999"}, cfg))
}

func TestSubmitAndWaitSucceedsAfterRetries(t *testing.T) {
	w, err := wallet.New(addresscodec.Ed25519)
	require.NoError(t, err)

	client := newMockClient()
	client.on("account_info", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"account_data": map[string]interface{}{"Account": w.ClassicAddress, "Sequence": 1}})
	})
	client.on("server_state", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"state": map[string]interface{}{
			"load_factor": 256, "load_base": 256,
			"validated_ledger": map[string]interface{}{"seq": 1000},
		}})
	})
	client.on("fee", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"drops": map[string]interface{}{"base_fee": "10"}})
	})

	attempts := 0
	client.on("tx", func(req queries.Request) *queries.Response {
		attempts++
		if attempts < 3 {
			return &queries.Response{Status: "error", Error: "txnNotFound"}
		}
		return successResult(map[string]interface{}{
			"validated":    true,
			"ledger_index": 1001,
			"meta":         map[string]interface{}{"TransactionResult": "tesSUCCESS"},
		})
	})
	client.on("submit", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"engine_result": "tesSUCCESS"})
	})

	p := testPayment(w.ClassicAddress)
	cfg := NewClientConfig("http://x", WithPollInterval(1*time.Millisecond), WithPollCount(10))
	result, err := SubmitAndWait(context.Background(), client, p, w, cfg)
	require.NoError(t, err)
	assert.True(t, result.Validated)
	assert.Equal(t, "tesSUCCESS", result.TransactionResult)
	assert.Equal(t, 3, attempts)
}

func TestSubmitAndWaitTimesOut(t *testing.T) {
	w, err := wallet.New(addresscodec.Ed25519)
	require.NoError(t, err)

	client := newMockClient()
	client.on("account_info", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"account_data": map[string]interface{}{"Account": w.ClassicAddress, "Sequence": 1}})
	})
	client.on("server_state", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"state": map[string]interface{}{
			"load_factor": 256, "load_base": 256,
			"validated_ledger": map[string]interface{}{"seq": 1000},
		}})
	})
	client.on("fee", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"drops": map[string]interface{}{"base_fee": "10"}})
	})
	client.on("tx", func(req queries.Request) *queries.Response {
		return &queries.Response{Status: "error", Error: "txnNotFound"}
	})
	client.on("submit", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"engine_result": "tesSUCCESS"})
	})

	p := testPayment(w.ClassicAddress)
	cfg := NewClientConfig("http://x", WithPollInterval(1*time.Millisecond), WithPollCount(3))
	_, err = SubmitAndWait(context.Background(), client, p, w, cfg)
	require.Error(t, err)
	assert.Equal(t, ErrSubmissionTimeout, err.(*Error).Kind)
}

func TestSignRejectsDisallowedAlgorithm(t *testing.T) {
	w, err := wallet.New(addresscodec.Secp256k1)
	require.NoError(t, err)

	p := testPayment(w.ClassicAddress)
	fields := p.FieldMap()
	fields["Sequence"] = uint64(1)
	fields["Fee"] = "10"
	fields["LastLedgerSequence"] = uint64(1020)

	cfg := NewClientConfig("http://x", WithAllowedAlgorithms(addresscodec.Ed25519))
	_, _, err = Sign(fields, p, w, cfg)
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedAlgorithm, err.(*Error).Kind)
}

func TestSubmitAndWaitShortCircuitsOnMalformed(t *testing.T) {
	w, err := wallet.New(addresscodec.Ed25519)
	require.NoError(t, err)

	client := newMockClient()
	client.on("account_info", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"account_data": map[string]interface{}{"Account": w.ClassicAddress, "Sequence": 1}})
	})
	client.on("server_state", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"state": map[string]interface{}{
			"load_factor": 256, "load_base": 256,
			"validated_ledger": map[string]interface{}{"seq": 1000},
		}})
	})
	client.on("fee", func(req queries.Request) *queries.Response {
		return successResult(map[string]interface{}{"drops": map[string]interface{}{"base_fee": "10"}})
	})
	client.on("submit", func(req queries.Request) *queries.Response {
		return &queries.Response{Status: "error", Error: "temMALFORMED", Result: mustMarshal(map[string]interface{}{"engine_result": "temMALFORMED"})}
	})

	p := testPayment(w.ClassicAddress)
	cfg := NewClientConfig("http://x", WithPollInterval(1*time.Millisecond), WithPollCount(5))
	_, err = SubmitAndWait(context.Background(), client, p, w, cfg)
	require.Error(t, err)
	assert.Equal(t, ErrSubmissionFailed, err.(*Error).Kind)
}

func mustMarshal(v interface{}) json.RawMessage {
	raw, _ := json.Marshal(v)
	return raw
}
