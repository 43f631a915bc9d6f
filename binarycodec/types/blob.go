package types

import "encoding/hex"

// EncodeBlob decodes a hex string into raw bytes. The caller is
// responsible for writing the variable-length prefix.
func EncodeBlob(hexStr string) ([]byte, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, wrapErr(ErrInvalidValue, "blob is not valid hex", err)
	}
	return b, nil
}

// DecodeBlob renders raw bytes as an uppercase hex string.
func DecodeBlob(b []byte) string {
	return upperHex(b)
}
