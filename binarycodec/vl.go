package binarycodec

// maxSingleByteLength is the largest length encodable in a single VL byte.
const maxSingleByteLength = 192

// maxDoubleByteLength is the largest length encodable in a two-byte VL prefix.
const maxDoubleByteLength = 12480

// maxLength is the largest length the three-byte VL prefix can encode.
const maxLength = 918744

// encodeVariableLength returns the 1, 2, or 3 byte variable-length prefix
// for a field body of the given byte length.
func encodeVariableLength(length int) ([]byte, error) {
	switch {
	case length <= maxSingleByteLength:
		return []byte{byte(length)}, nil
	case length <= maxDoubleByteLength:
		length -= maxSingleByteLength + 1
		return []byte{
			byte(193 + (length >> 8)),
			byte(length & 0xFF),
		}, nil
	case length <= maxLength:
		length -= maxDoubleByteLength + 1
		return []byte{
			byte(241 + (length >> 16)),
			byte((length >> 8) & 0xFF),
			byte(length & 0xFF),
		}, nil
	default:
		return nil, newErr(ErrLengthOverflow, "field body exceeds 918744 bytes")
	}
}

// decodeVariableLength reads a VL prefix from the front of b and returns
// the decoded length and the number of prefix bytes consumed.
func decodeVariableLength(b []byte) (length int, consumed int, err error) {
	if len(b) < 1 {
		return 0, 0, newErr(ErrMalformed, "truncated variable-length prefix")
	}
	b0 := int(b[0])

	switch {
	case b0 <= 192:
		return b0, 1, nil
	case b0 <= 240:
		if len(b) < 2 {
			return 0, 0, newErr(ErrMalformed, "truncated variable-length prefix")
		}
		b1 := int(b[1])
		return maxSingleByteLength + 1 + (b0-193)*256 + b1, 2, nil
	case b0 <= 254:
		if len(b) < 3 {
			return 0, 0, newErr(ErrMalformed, "truncated variable-length prefix")
		}
		b1, b2 := int(b[1]), int(b[2])
		return maxDoubleByteLength + 1 + (b0-241)*65536 + b1*256 + b2, 3, nil
	default:
		return 0, 0, newErr(ErrMalformed, "invalid variable-length prefix byte")
	}
}
