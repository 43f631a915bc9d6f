package transaction

// NFTokenMintFlag enumerates the NFTokenMint transaction's Flags bits.
type NFTokenMintFlag uint32

const (
	TfBurnable     NFTokenMintFlag = 0x00000001
	TfOnlyXRP      NFTokenMintFlag = 0x00000002
	TfTrustLine    NFTokenMintFlag = 0x00000004
	TfTransferable NFTokenMintFlag = 0x00000008
)

const maxTransferFee = 50000

// NFTokenMint issues a new non-fungible token.
type NFTokenMint struct {
	Common
	NFTokenTaxon uint32
	Issuer       string
	TransferFee  *uint16
	URI          string
}

func (n NFTokenMint) FieldMap() map[string]interface{} {
	out := n.Common.baseFieldMap("NFTokenMint")
	out["NFTokenTaxon"] = n.NFTokenTaxon
	if n.Issuer != "" {
		out["Issuer"] = n.Issuer
	}
	if n.TransferFee != nil {
		out["TransferFee"] = *n.TransferFee
	}
	if n.URI != "" {
		out["URI"] = n.URI
	}
	return out
}

func (n NFTokenMint) GetErrors() []error {
	var errs []error
	if n.TransferFee != nil && *n.TransferFee > maxTransferFee {
		errs = append(errs, newErr(ErrValueOutOfRange, "TransferFee", "transfer fee must be <= 50000 (50%)"))
	}
	if n.TransferFee != nil && n.Flags&uint32(TfTransferable) == 0 {
		errs = append(errs, newErr(ErrFieldRequiresFlag, "TransferFee", "TransferFee requires tfTransferable"))
	}
	return errs
}
