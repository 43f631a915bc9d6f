package transaction

// TrustSetFlag enumerates the TrustSet transaction's Flags bits.
type TrustSetFlag uint32

const (
	TfSetfAuth       TrustSetFlag = 0x00010000
	TfSetNoRipple    TrustSetFlag = 0x00020000
	TfClearNoRipple  TrustSetFlag = 0x00040000
	TfSetFreeze      TrustSetFlag = 0x00100000
	TfClearFreeze    TrustSetFlag = 0x00200000
)

// TrustSet creates or modifies a trust line to another account.
type TrustSet struct {
	Common
	LimitAmount map[string]interface{} // {value, currency, issuer}
}

func (t TrustSet) FieldMap() map[string]interface{} {
	out := t.Common.baseFieldMap("TrustSet")
	out["LimitAmount"] = t.LimitAmount
	return out
}

func (t TrustSet) GetErrors() []error {
	var errs []error
	if t.LimitAmount == nil {
		errs = append(errs, newErr(ErrMissingField, "LimitAmount", "trust set requires a limit amount"))
		return errs
	}
	if _, ok := t.LimitAmount["currency"].(string); !ok {
		errs = append(errs, newErr(ErrMissingField, "LimitAmount.currency", "limit amount requires a currency code"))
	}
	if _, ok := t.LimitAmount["issuer"].(string); !ok {
		errs = append(errs, newErr(ErrMissingField, "LimitAmount.issuer", "limit amount requires an issuer"))
	}
	return errs
}
