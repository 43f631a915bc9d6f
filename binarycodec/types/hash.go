package types

import "encoding/hex"

// fixedHash encodes/decodes a fixed-width hash value, hex-encoded for the
// JSON side of the codec.
func encodeFixedHash(hexStr string, size int) ([]byte, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, wrapErr(ErrInvalidValue, "hash is not valid hex", err)
	}
	if len(b) != size {
		return nil, newErr(ErrInvalidValue, "hash has wrong byte length")
	}
	return b, nil
}

func decodeFixedHash(b []byte, size int) (string, error) {
	if len(b) < size {
		return "", newErr(ErrTruncated, "hash input shorter than expected width")
	}
	return upperHex(b[:size]), nil
}

func upperHex(b []byte) string {
	const hexDigits = "0123456789ABCDEF"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0x0F]
	}
	return string(out)
}

// EncodeHash128 encodes a 32-character hex string into 16 bytes.
func EncodeHash128(hexStr string) ([]byte, error) { return encodeFixedHash(hexStr, 16) }

// DecodeHash128 decodes 16 bytes into a 32-character uppercase hex string.
func DecodeHash128(b []byte) (string, error) { return decodeFixedHash(b, 16) }

// EncodeHash160 encodes a 40-character hex string into 20 bytes.
func EncodeHash160(hexStr string) ([]byte, error) { return encodeFixedHash(hexStr, 20) }

// DecodeHash160 decodes 20 bytes into a 40-character uppercase hex string.
func DecodeHash160(b []byte) (string, error) { return decodeFixedHash(b, 20) }

// EncodeHash256 encodes a 64-character hex string into 32 bytes.
func EncodeHash256(hexStr string) ([]byte, error) { return encodeFixedHash(hexStr, 32) }

// DecodeHash256 decodes 32 bytes into a 64-character uppercase hex string.
func DecodeHash256(b []byte) (string, error) { return decodeFixedHash(b, 32) }
