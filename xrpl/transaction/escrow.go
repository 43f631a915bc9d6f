package transaction

import (
	"fmt"

	cc "github.com/go-interledger/cryptoconditions"
)

// NewCondition builds the DER-encoded PREIMAGE-SHA-256 condition and
// fulfillment pair for an escrow, from a secret preimage.
func NewCondition(preimage []byte) (conditionHex string, fulfillmentHex string, err error) {
	fulfillment := cc.NewPreimageSha256(preimage)

	fulfillmentBinary, err := fulfillment.Encode()
	if err != nil {
		return "", "", fmt.Errorf("encode fulfillment: %w", err)
	}

	conditionBinary, err := fulfillment.Condition().Encode()
	if err != nil {
		return "", "", fmt.Errorf("encode condition: %w", err)
	}

	return fmt.Sprintf("%X", conditionBinary), fmt.Sprintf("%X", fulfillmentBinary), nil
}

// EscrowCreate locks XRP until a time or crypto-condition is met.
type EscrowCreate struct {
	Common
	Destination    string
	Amount         string // XRP drops; escrows hold only native XRP
	DestinationTag *uint32
	CancelAfter    *uint32
	FinishAfter    *uint32
	Condition      string
}

func (e EscrowCreate) FieldMap() map[string]interface{} {
	out := e.Common.baseFieldMap("EscrowCreate")
	out["Destination"] = e.Destination
	out["Amount"] = e.Amount
	if e.DestinationTag != nil {
		out["DestinationTag"] = *e.DestinationTag
	}
	if e.CancelAfter != nil {
		out["CancelAfter"] = *e.CancelAfter
	}
	if e.FinishAfter != nil {
		out["FinishAfter"] = *e.FinishAfter
	}
	if e.Condition != "" {
		out["Condition"] = e.Condition
	}
	return out
}

func (e EscrowCreate) GetErrors() []error {
	var errs []error
	if e.Destination == "" {
		errs = append(errs, newErr(ErrMissingField, "Destination", "escrow create requires a destination"))
	}
	if e.Amount == "" {
		errs = append(errs, newErr(ErrMissingField, "Amount", "escrow create requires an amount"))
	}
	if e.CancelAfter == nil && e.FinishAfter == nil && e.Condition == "" {
		errs = append(errs, newErr(ErrMissingField, "FinishAfter", "escrow requires FinishAfter, CancelAfter, or a Condition"))
	}
	if e.CancelAfter != nil && e.FinishAfter != nil && *e.CancelAfter <= *e.FinishAfter {
		errs = append(errs, newErr(ErrValueOutOfRange, "CancelAfter", "CancelAfter must be after FinishAfter"))
	}
	return errs
}

// EscrowFinish delivers the funds of a previously created escrow.
type EscrowFinish struct {
	Common
	Owner         string
	OfferSequence uint32
	Condition     string
	Fulfillment   string
}

func (e EscrowFinish) FieldMap() map[string]interface{} {
	out := e.Common.baseFieldMap("EscrowFinish")
	out["Owner"] = e.Owner
	out["OfferSequence"] = e.OfferSequence
	if e.Condition != "" {
		out["Condition"] = e.Condition
	}
	if e.Fulfillment != "" {
		out["Fulfillment"] = e.Fulfillment
	}
	return out
}

func (e EscrowFinish) GetErrors() []error {
	var errs []error
	if e.Owner == "" {
		errs = append(errs, newErr(ErrMissingField, "Owner", "escrow finish requires the escrow owner"))
	}
	if (e.Condition == "") != (e.Fulfillment == "") {
		errs = append(errs, newErr(ErrFieldConflict, "Fulfillment", "Condition and Fulfillment must be set together or not at all"))
	}
	return errs
}

// EscrowCancel returns the funds of an expired escrow to its owner.
type EscrowCancel struct {
	Common
	Owner         string
	OfferSequence uint32
}

func (e EscrowCancel) FieldMap() map[string]interface{} {
	out := e.Common.baseFieldMap("EscrowCancel")
	out["Owner"] = e.Owner
	out["OfferSequence"] = e.OfferSequence
	return out
}

func (e EscrowCancel) GetErrors() []error {
	var errs []error
	if e.Owner == "" {
		errs = append(errs, newErr(ErrMissingField, "Owner", "escrow cancel requires the escrow owner"))
	}
	return errs
}
