package transaction

// PaymentFlag enumerates the Payment transaction's Flags bits.
type PaymentFlag uint32

const (
	TfNoRippleDirect PaymentFlag = 0x00010000
	TfPartialPayment PaymentFlag = 0x00020000
	TfLimitQuality   PaymentFlag = 0x00040000
)

// Payment delivers an amount of currency from Account to Destination.
type Payment struct {
	Common
	Destination    string
	Amount         interface{} // drops string or {value,currency,issuer}
	DestinationTag *uint32
	InvoiceID      string
	SendMax        interface{}
	DeliverMin     interface{}
	Paths          []Path
}

func (p Payment) FieldMap() map[string]interface{} {
	out := p.Common.baseFieldMap("Payment")
	out["Destination"] = p.Destination
	out["Amount"] = p.Amount
	if p.DestinationTag != nil {
		out["DestinationTag"] = *p.DestinationTag
	}
	if p.InvoiceID != "" {
		out["InvoiceID"] = p.InvoiceID
	}
	if p.SendMax != nil {
		out["SendMax"] = p.SendMax
	}
	if p.DeliverMin != nil {
		out["DeliverMin"] = p.DeliverMin
	}
	if len(p.Paths) > 0 {
		out["Paths"] = p.Paths
	}
	return out
}

func (p Payment) GetErrors() []error {
	var errs []error
	if p.Destination == "" {
		errs = append(errs, newErr(ErrMissingField, "Destination", "payment requires a destination"))
	}
	if p.Amount == nil {
		errs = append(errs, newErr(ErrMissingField, "Amount", "payment requires an amount"))
	}

	_, amountIsXRP := p.Amount.(string)
	_, sendMaxIsXRP := p.SendMax.(string)
	xrpToXRP := amountIsXRP && (p.SendMax == nil || sendMaxIsXRP)
	if xrpToXRP && len(p.Paths) > 0 {
		errs = append(errs, newErr(ErrMutuallyExclusive, "Paths", "XRP-to-XRP payments must not specify paths"))
	}

	if p.Flags&uint32(TfPartialPayment) != 0 && p.DeliverMin == nil {
		errs = append(errs, newErr(ErrFlagRequiresField, "DeliverMin", "tfPartialPayment without DeliverMin set"))
	}
	return errs
}
