package addresscodec

// classicAddressVersion is the one-byte version prefix for classic
// (AccountID) addresses.
var classicAddressVersion = []byte{0x00}

const accountIDLength = 20

// EncodeClassicAddress renders a 20-byte AccountID as a classic base58check
// address.
func EncodeClassicAddress(accountID []byte) (string, error) {
	if len(accountID) != accountIDLength {
		return "", newErr(ErrInvalidAddress, "account id must be 20 bytes")
	}
	return checkEncode(accountID, classicAddressVersion), nil
}

// DecodeClassicAddress parses a classic base58check address into its
// 20-byte AccountID.
func DecodeClassicAddress(address string) ([]byte, error) {
	payload, version, err := checkDecode(address, len(classicAddressVersion))
	if err != nil {
		return nil, wrapErr(ErrInvalidAddress, "bad base58check encoding", err)
	}
	if version[0] != classicAddressVersion[0] {
		return nil, newErr(ErrInvalidAddress, "unexpected version byte")
	}
	if len(payload) != accountIDLength {
		return nil, newErr(ErrInvalidAddress, "decoded payload is not 20 bytes")
	}
	return payload, nil
}

// IsValidClassicAddress reports whether s decodes as a well-formed classic
// address.
func IsValidClassicAddress(s string) bool {
	_, err := DecodeClassicAddress(s)
	return err == nil
}
