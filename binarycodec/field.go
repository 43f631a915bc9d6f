package binarycodec

import "github.com/ripplecore/xrplgo/binarycodec/definitions"

// encodeFieldHeader builds the 1-3 byte field id used to tag a
// serialized field: a packed (type code, field code) pair, expanded to
// extra bytes when either code doesn't fit in 4 bits.
func encodeFieldHeader(fi definitions.FieldInstance) []byte {
	typeCode, fieldCode := fi.FieldHeader()

	switch {
	case typeCode < 16 && fieldCode < 16:
		return []byte{byte(typeCode<<4 | fieldCode)}
	case typeCode < 16:
		return []byte{byte(typeCode << 4), byte(fieldCode)}
	case fieldCode < 16:
		return []byte{byte(fieldCode), byte(typeCode)}
	default:
		return []byte{0x00, byte(typeCode), byte(fieldCode)}
	}
}

// decodeFieldHeader reads a field id from the front of b, returning the
// (type code, field code) pair and the number of bytes consumed.
func decodeFieldHeader(b []byte) (typeCode int32, fieldCode int32, consumed int, err error) {
	if len(b) < 1 {
		return 0, 0, 0, newErr(ErrMalformed, "truncated field header")
	}
	first := b[0]
	hiNibble := int32(first >> 4)
	loNibble := int32(first & 0x0F)

	switch {
	case hiNibble != 0 && loNibble != 0:
		return hiNibble, loNibble, 1, nil
	case hiNibble != 0:
		if len(b) < 2 {
			return 0, 0, 0, newErr(ErrMalformed, "truncated field header")
		}
		return hiNibble, int32(b[1]), 2, nil
	case loNibble != 0:
		if len(b) < 2 {
			return 0, 0, 0, newErr(ErrMalformed, "truncated field header")
		}
		return int32(b[1]), loNibble, 2, nil
	default:
		if len(b) < 3 {
			return 0, 0, 0, newErr(ErrMalformed, "truncated field header")
		}
		return int32(b[1]), int32(b[2]), 3, nil
	}
}

// fieldByHeader resolves a decoded (type code, field code) pair back to
// its registered field instance.
func fieldByHeader(typeCode, fieldCode int32) (definitions.FieldInstance, error) {
	for _, name := range definitions.AllFieldNames() {
		fi, _ := definitions.GetFieldInstance(name)
		if fi.TypeCode == typeCode && fi.Nth == fieldCode {
			return fi, nil
		}
	}
	return definitions.FieldInstance{}, newErr(ErrUnknownField, "no field registered for this type/field code pair")
}
