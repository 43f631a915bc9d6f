package definitions

// field declares one row of the registry before its ordinal fields are
// filled in by registerField.
type field struct {
	name           string
	typeName       string
	nth            int32
	isVLEncoded    bool
	isSerialized   bool
	isSigningField bool
}

var registry = map[string]FieldInstance{}

func registerField(f field) {
	typeCode, ok := TypeCode(f.typeName)
	if !ok {
		panic("definitions: unknown type name " + f.typeName)
	}
	registry[f.name] = FieldInstance{
		Name:           f.name,
		Type:           f.typeName,
		TypeCode:       typeCode,
		Nth:            f.nth,
		IsVLEncoded:    f.isVLEncoded,
		IsSerialized:   f.isSerialized,
		IsSigningField: f.isSigningField,
	}
}

func init() {
	fields := []field{
		// UInt16
		{"LedgerEntryType", "UInt16", 1, false, true, true},
		{"TransactionType", "UInt16", 2, false, true, true},
		{"SignerWeight", "UInt16", 3, false, true, true},
		{"TransferFee", "UInt16", 4, false, true, true},

		// UInt32
		{"NetworkID", "UInt32", 1, false, true, true},
		{"Flags", "UInt32", 2, false, true, true},
		{"SourceTag", "UInt32", 3, false, true, true},
		{"Sequence", "UInt32", 4, false, true, true},
		{"PreviousTxnLgrSeq", "UInt32", 5, false, true, false},
		{"LedgerSequence", "UInt32", 6, false, true, false},
		{"CloseTime", "UInt32", 7, false, true, false},
		{"Expiration", "UInt32", 10, false, true, true},
		{"TransferRate", "UInt32", 11, false, true, true},
		{"OwnerCount", "UInt32", 13, false, true, false},
		{"DestinationTag", "UInt32", 14, false, true, true},
		{"OfferSequence", "UInt32", 25, false, true, true},
		{"LastLedgerSequence", "UInt32", 27, false, true, true},
		{"SetFlag", "UInt32", 33, false, true, true},
		{"ClearFlag", "UInt32", 34, false, true, true},
		{"SignerQuorum", "UInt32", 35, false, true, true},
		{"CancelAfter", "UInt32", 36, false, true, true},
		{"FinishAfter", "UInt32", 37, false, true, true},
		{"SettleDelay", "UInt32", 39, false, true, true},
		{"TicketSequence", "UInt32", 41, false, true, true},
		{"NFTokenTaxon", "UInt32", 42, false, true, true},

		// UInt64
		{"IndexNext", "UInt64", 1, false, true, false},
		{"IndexPrevious", "UInt64", 2, false, true, false},

		// Hash128
		{"EmailHash", "Hash128", 1, false, true, true},

		// Hash160
		{"TakerPaysCurrency", "Hash160", 1, false, true, false},
		{"TakerPaysIssuer", "Hash160", 2, false, true, false},
		{"TakerGetsCurrency", "Hash160", 3, false, true, false},
		{"TakerGetsIssuer", "Hash160", 4, false, true, false},

		// Hash256
		{"PreviousTxnID", "Hash256", 5, false, true, false},
		{"NFTokenID", "Hash256", 10, false, true, true},
		{"AccountTxnID", "Hash256", 9, false, true, true},
		{"InvoiceID", "Hash256", 17, false, true, true},

		// Amount (self-describing fixed width: 8 bytes XRP, 48 bytes issued;
		// never length-prefixed)
		{"Amount", "Amount", 1, false, true, true},
		{"Fee", "Amount", 8, false, true, true},
		{"TakerPays", "Amount", 4, false, true, true},
		{"TakerGets", "Amount", 5, false, true, true},
		{"LimitAmount", "Amount", 3, false, true, true},
		{"SendMax", "Amount", 9, false, true, true},
		{"DeliverMin", "Amount", 10, false, true, true},

		// PathSet
		{"Paths", "PathSet", 1, false, true, true},

		// Blob
		{"SigningPubKey", "Blob", 3, true, true, true},
		{"TxnSignature", "Blob", 4, true, true, false},
		{"URI", "Blob", 5, true, true, true},
		{"Domain", "Blob", 7, true, true, true},
		{"Condition", "Blob", 17, true, true, true},
		{"Fulfillment", "Blob", 16, true, true, true},
		{"MemoType", "Blob", 12, true, true, true},
		{"MemoData", "Blob", 13, true, true, true},
		{"MemoFormat", "Blob", 14, true, true, true},

		// AccountID
		{"Account", "AccountID", 1, true, true, true},
		{"Owner", "AccountID", 2, true, true, true},
		{"Destination", "AccountID", 3, true, true, true},
		{"Issuer", "AccountID", 4, true, true, true},
		{"RegularKey", "AccountID", 8, true, true, true},

		// STObject (nested, terminated by 0xE1)
		{"Memo", "STObject", 10, false, true, true},
		{"SignerEntry", "STObject", 11, false, true, true},
		{"Signer", "STObject", 16, false, true, false},

		// STArray (nested, terminated by 0xF1)
		{"Signers", "STArray", 3, false, true, false},
		{"SignerEntries", "STArray", 4, false, true, true},
		{"Memos", "STArray", 9, false, true, true},
	}

	for _, f := range fields {
		registerField(f)
	}
}

// GetFieldInstance looks up a field by name.
func GetFieldInstance(name string) (FieldInstance, bool) {
	f, ok := registry[name]
	return f, ok
}

// GetFieldTypeName returns the serialization type name registered for a
// field name.
func GetFieldTypeName(name string) (string, bool) {
	f, ok := registry[name]
	if !ok {
		return "", false
	}
	return f.Type, true
}

// AllFieldNames returns every registered field name, in no particular
// order; callers that need canonical order should look each name up and
// sort by Ordinal().
func AllFieldNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
