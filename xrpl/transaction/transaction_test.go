package transaction

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/binarycodec"
)

func testCommon(txType string) Common {
	return Common{
		Account:         "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp",
		TransactionType: txType,
		Fee:             "12",
		Sequence:        1,
		SigningPubKey:   "",
	}
}

func TestPaymentFieldMapEncodes(t *testing.T) {
	p := Payment{
		Common:      testCommon("Payment"),
		Destination: "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		Amount:      "1000000",
	}
	assert.Empty(t, p.GetErrors())

	blob, err := binarycodec.Encode(p.FieldMap())
	require.NoError(t, err)
	assert.NotEmpty(t, blob)

	decoded, err := binarycodec.Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw", decoded["Destination"])
	assert.Equal(t, "1000000", decoded["Amount"])
}

func TestFieldMapSetsOwnTransactionTypeRegardlessOfCommonField(t *testing.T) {
	trustSet := TrustSet{
		Common: Common{
			Account:  "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp",
			Fee:      "12",
			Sequence: 1,
		},
		LimitAmount: map[string]interface{}{
			"value":    "100",
			"currency": "USD",
			"issuer":   "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		},
	}
	assert.Equal(t, TypeCode["TrustSet"], trustSet.FieldMap()["TransactionType"])

	mislabeled := TrustSet{
		Common: Common{
			Account:         "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp",
			TransactionType: "Payment",
			Fee:             "12",
			Sequence:        1,
		},
		LimitAmount: trustSet.LimitAmount,
	}
	assert.Equal(t, TypeCode["TrustSet"], mislabeled.FieldMap()["TransactionType"])
}

func TestSortSignersOrdersByAccountIDNotString(t *testing.T) {
	addrs := []string{
		"rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp",
		"rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		"r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59",
	}
	signers := make([]Signer, len(addrs))
	for i, a := range addrs {
		signers[i] = Signer{Account: a, SigningPubKey: "AA", TxnSignature: "BB"}
	}

	SortSigners(signers)

	var prev []byte
	for i, s := range signers {
		id, err := addresscodec.DecodeClassicAddress(s.Account)
		require.NoError(t, err)
		if i > 0 {
			assert.True(t, bytes.Compare(prev, id) <= 0, "signers not ordered by decoded account id")
		}
		prev = id
	}
}

func TestMultisignedPaymentSerializesSignersByAccountID(t *testing.T) {
	addrs := []string{
		"rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp",
		"rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		"r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59",
	}
	p := Payment{
		Common:      testCommon("Payment"),
		Destination: "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		Amount:      "1000000",
	}
	p.SigningPubKey = ""
	for _, a := range addrs {
		p.Signers = append(p.Signers, Signer{Account: a, SigningPubKey: "AA", TxnSignature: "BB"})
	}

	fields := p.FieldMap()
	signers, ok := fields["Signers"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, signers, len(addrs))

	var prev []byte
	for _, entry := range signers {
		inner, ok := entry["Signer"].(map[string]interface{})
		require.True(t, ok)
		account, ok := inner["Account"].(string)
		require.True(t, ok)
		id, err := addresscodec.DecodeClassicAddress(account)
		require.NoError(t, err)
		if prev != nil {
			assert.True(t, bytes.Compare(prev, id) <= 0, "FieldMap did not emit Signers ordered by account id")
		}
		prev = id
	}
}

func TestPaymentRejectsPathsOnXRPToXRP(t *testing.T) {
	p := Payment{
		Common:      testCommon("Payment"),
		Destination: "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		Amount:      "1000000",
		Paths:       []Path{{{Account: "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw"}}},
	}
	errs := p.GetErrors()
	require.Len(t, errs, 1)
}

func TestAccountSetRejectsEqualSetClearFlag(t *testing.T) {
	flag := uint32(AsfRequireAuth)
	a := AccountSet{
		Common:    testCommon("AccountSet"),
		SetFlag:   &flag,
		ClearFlag: &flag,
	}
	assert.Len(t, a.GetErrors(), 1)
}

func TestEscrowCreateRequiresReleaseCondition(t *testing.T) {
	e := EscrowCreate{
		Common:      testCommon("EscrowCreate"),
		Destination: "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		Amount:      "1000000",
	}
	assert.Len(t, e.GetErrors(), 1)

	cancelAfter := uint32(600000000)
	e.CancelAfter = &cancelAfter
	assert.Empty(t, e.GetErrors())
}

func TestNewConditionRoundTrip(t *testing.T) {
	condition, fulfillment, err := NewCondition([]byte("secret preimage"))
	require.NoError(t, err)
	assert.NotEmpty(t, condition)
	assert.NotEmpty(t, fulfillment)
}

func TestSignerListSetQuorumMustNotExceedWeights(t *testing.T) {
	s := SignerListSet{
		Common:        testCommon("SignerListSet"),
		SignerQuorum:  10,
		SignerEntries: []SignerEntry{{Account: "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw", SignerWeight: 5}},
	}
	assert.NotEmpty(t, s.GetErrors())
}

func TestNFTokenMintTransferFeeRequiresFlag(t *testing.T) {
	fee := uint16(1000)
	n := NFTokenMint{
		Common:      testCommon("NFTokenMint"),
		TransferFee: &fee,
	}
	assert.NotEmpty(t, n.GetErrors())

	n.Flags = uint32(TfTransferable)
	assert.Empty(t, n.GetErrors())
}

func TestOfferCreateMutuallyExclusiveFlags(t *testing.T) {
	o := OfferCreate{
		Common:    testCommon("OfferCreate"),
		TakerGets: "1000000",
		TakerPays: map[string]interface{}{"value": "1", "currency": "USD", "issuer": "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw"},
		Flags:     uint32(TfImmediateOrCancel) | uint32(TfFillOrKill),
	}
	assert.NotEmpty(t, o.GetErrors())
}
