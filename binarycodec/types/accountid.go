package types

import "github.com/ripplecore/xrplgo/addresscodec"

// EncodeAccountID decodes a classic base58 address into its raw 20-byte
// AccountID. The caller writes the variable-length prefix.
func EncodeAccountID(address string) ([]byte, error) {
	accountID, err := addresscodec.DecodeClassicAddress(address)
	if err != nil {
		return nil, wrapErr(ErrInvalidValue, "invalid account address", err)
	}
	return accountID, nil
}

// DecodeAccountID encodes a raw 20-byte AccountID as a classic base58
// address.
func DecodeAccountID(b []byte) (string, error) {
	address, err := addresscodec.EncodeClassicAddress(b)
	if err != nil {
		return "", wrapErr(ErrInvalidValue, "invalid account id bytes", err)
	}
	return address, nil
}
