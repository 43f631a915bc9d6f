// Package transaction models XRPL transactions: common fields shared by
// every transaction type, per-type flag sets and field layouts, and the
// local validity checks (GetErrors) that run before a transaction is
// serialized and signed.
package transaction

import (
	"bytes"
	"sort"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/binarycodec/types"
)

// Path and PathStep alias the binary codec's path types so transaction
// types don't need a separate import.
type Path = types.Path
type PathStep = types.PathStep

// TypeCode is the numeric TransactionType value the network assigns to
// each transaction type, per the canonical field definitions.
var TypeCode = map[string]uint16{
	"Payment":            0,
	"EscrowCreate":       1,
	"EscrowFinish":       2,
	"AccountSet":         3,
	"EscrowCancel":       4,
	"OfferCreate":        7,
	"OfferCancel":        8,
	"TicketCreate":       10,
	"SignerListSet":      12,
	"TrustSet":           20,
	"NFTokenMint":        25,
	"NFTokenCreateOffer": 27,
	"NFTokenCancelOffer": 28,
	"NFTokenAcceptOffer": 29,
}

// Memo is an arbitrary hex-encoded annotation attached to a transaction.
type Memo struct {
	MemoData   string
	MemoFormat string
	MemoType   string
}

func (m Memo) fieldMap() map[string]interface{} {
	inner := map[string]interface{}{}
	if m.MemoData != "" {
		inner["MemoData"] = m.MemoData
	}
	if m.MemoFormat != "" {
		inner["MemoFormat"] = m.MemoFormat
	}
	if m.MemoType != "" {
		inner["MemoType"] = m.MemoType
	}
	return map[string]interface{}{"Memo": inner}
}

// Signer is one entry of a multi-signed transaction's Signers array.
type Signer struct {
	Account       string
	SigningPubKey string
	TxnSignature  string
}

func (s Signer) fieldMap() map[string]interface{} {
	return map[string]interface{}{"Signer": map[string]interface{}{
		"Account":       s.Account,
		"SigningPubKey": s.SigningPubKey,
		"TxnSignature":  s.TxnSignature,
	}}
}

// SignerEntry is one entry of a SignerListSet's SignerEntries array.
type SignerEntry struct {
	Account      string
	SignerWeight uint16
}

func (e SignerEntry) fieldMap() map[string]interface{} {
	return map[string]interface{}{"SignerEntry": map[string]interface{}{
		"Account":      e.Account,
		"SignerWeight": e.SignerWeight,
	}}
}

// Common holds the fields every transaction type carries, per spec §3's
// transaction record definition.
type Common struct {
	Account            string
	TransactionType    string
	Fee                string
	Sequence           uint32
	Flags              uint32
	LastLedgerSequence *uint32
	SigningPubKey      string
	TxnSignature       string
	Signers            []Signer
	TicketSequence     *uint32
	NetworkID          *uint32
	SourceTag          *uint32
	Memos              []Memo
}

// baseFieldMap returns the common fields as a JSON-like map, ready to be
// merged with a type's own fields before calling binarycodec.Encode.
// txType is the concrete type's own name (e.g. "Payment"), supplied by
// its FieldMap method rather than read back off Common.TransactionType,
// so a caller who never sets that field still gets the right
// TransactionType on the wire instead of a silent fallback to Payment.
func (c Common) baseFieldMap(txType string) map[string]interface{} {
	out := map[string]interface{}{
		"Account":         c.Account,
		"TransactionType": TypeCode[txType],
		"Sequence":        c.Sequence,
		"Flags":           c.Flags,
		"SigningPubKey":   c.SigningPubKey,
	}
	if c.Fee != "" {
		out["Fee"] = c.Fee
	}
	if c.LastLedgerSequence != nil {
		out["LastLedgerSequence"] = *c.LastLedgerSequence
	}
	if c.TxnSignature != "" {
		out["TxnSignature"] = c.TxnSignature
	}
	if c.TicketSequence != nil {
		out["TicketSequence"] = *c.TicketSequence
	}
	if c.NetworkID != nil {
		out["NetworkID"] = *c.NetworkID
	}
	if c.SourceTag != nil {
		out["SourceTag"] = *c.SourceTag
	}
	if len(c.Memos) > 0 {
		memos := make([]map[string]interface{}, len(c.Memos))
		for i, m := range c.Memos {
			memos[i] = m.fieldMap()
		}
		out["Memos"] = memos
	}
	if len(c.Signers) > 0 {
		SortSigners(c.Signers)
		signers := make([]map[string]interface{}, len(c.Signers))
		for i, s := range c.Signers {
			signers[i] = s.fieldMap()
		}
		out["Signers"] = signers
	}
	return out
}

// SortSigners orders a Signers slice by account id ascending: the
// decoded 20-byte AccountID, not the base58 Account string (the base58
// alphabet is not lexicographically ordered, so string order does not
// match AccountID numeric order). This is the order required before a
// multi-signed transaction is serialized (spec §4.8 step 5).
func SortSigners(signers []Signer) {
	type keyed struct {
		signer    Signer
		accountID []byte
	}
	keys := make([]keyed, len(signers))
	for i, s := range signers {
		id, err := addresscodec.DecodeClassicAddress(s.Account)
		if err != nil {
			id = nil
		}
		keys[i] = keyed{signer: s, accountID: id}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].accountID, keys[j].accountID) < 0
	})
	for i, k := range keys {
		signers[i] = k.signer
	}
}

// Transaction is implemented by every concrete transaction type: it can
// render itself (plus common fields) into the JSON-like map the binary
// codec consumes, and can report local validity violations.
type Transaction interface {
	FieldMap() map[string]interface{}
	GetErrors() []error
}
