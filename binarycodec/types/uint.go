package types

import "encoding/binary"

// EncodeUInt8 returns the one-byte big-endian encoding of v.
func EncodeUInt8(v uint8) []byte {
	return []byte{v}
}

// DecodeUInt8 reads a one-byte unsigned integer from the front of b.
func DecodeUInt8(b []byte) (uint8, error) {
	if len(b) < 1 {
		return 0, newErr(ErrTruncated, "uint8 requires 1 byte")
	}
	return b[0], nil
}

// EncodeUInt16 returns the two-byte big-endian encoding of v.
func EncodeUInt16(v uint16) []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return buf
}

// DecodeUInt16 reads a two-byte big-endian unsigned integer from the
// front of b.
func DecodeUInt16(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, newErr(ErrTruncated, "uint16 requires 2 bytes")
	}
	return binary.BigEndian.Uint16(b), nil
}

// EncodeUInt32 returns the four-byte big-endian encoding of v.
func EncodeUInt32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

// DecodeUInt32 reads a four-byte big-endian unsigned integer from the
// front of b.
func DecodeUInt32(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, newErr(ErrTruncated, "uint32 requires 4 bytes")
	}
	return binary.BigEndian.Uint32(b), nil
}

// EncodeUInt64 returns the eight-byte big-endian encoding of v.
func EncodeUInt64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

// DecodeUInt64 reads an eight-byte big-endian unsigned integer from the
// front of b.
func DecodeUInt64(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, newErr(ErrTruncated, "uint64 requires 8 bytes")
	}
	return binary.BigEndian.Uint64(b), nil
}
