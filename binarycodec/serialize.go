package binarycodec

import (
	"sort"

	"github.com/ripplecore/xrplgo/binarycodec/definitions"
	"github.com/ripplecore/xrplgo/binarycodec/types"
)

const (
	objectEndMarker byte = 0xE1
	arrayEndMarker  byte = 0xF1
)

// sortedFieldNames returns the keys of fields present in the registry,
// in canonical serialization order (ascending by Ordinal).
func sortedFieldNames(fields map[string]interface{}) ([]string, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := definitions.GetFieldInstance(name); !ok {
			return nil, newErr(ErrUnknownField, name)
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		fi, _ := definitions.GetFieldInstance(names[i])
		fj, _ := definitions.GetFieldInstance(names[j])
		return fi.Ordinal() < fj.Ordinal()
	})
	return names, nil
}

// encodeFieldMap serializes a JSON-like field map in canonical order.
// When signingOnly is true, fields whose registry entry is not marked a
// signing field are omitted (used for EncodeForSigning/EncodeForMultisigning).
func encodeFieldMap(fields map[string]interface{}, signingOnly bool) ([]byte, error) {
	names, err := sortedFieldNames(fields)
	if err != nil {
		return nil, err
	}

	var out []byte
	for _, name := range names {
		fi, _ := definitions.GetFieldInstance(name)
		if signingOnly && !fi.IsSigningField {
			continue
		}
		if !fi.IsSerialized {
			continue
		}
		encoded, err := encodeField(fi, fields[name], signingOnly)
		if err != nil {
			return nil, wrapErr(ErrMalformed, "field "+name, err)
		}
		out = append(out, encoded...)
	}
	return out, nil
}

func encodeField(fi definitions.FieldInstance, value interface{}, signingOnly bool) ([]byte, error) {
	header := encodeFieldHeader(fi)

	if fi.Type == "STObject" {
		inner, ok := value.(map[string]interface{})
		if !ok {
			return nil, newErr(ErrMalformed, fi.Name+" expects a nested object")
		}
		body, err := encodeFieldMap(inner, signingOnly)
		if err != nil {
			return nil, err
		}
		out := append(header, body...)
		out = append(out, objectEndMarker)
		return out, nil
	}

	if fi.Type == "STArray" {
		elements, ok := value.([]map[string]interface{})
		if !ok {
			return nil, newErr(ErrMalformed, fi.Name+" expects an array of objects")
		}
		out := append([]byte{}, header...)
		for _, element := range elements {
			for wrapperName, inner := range element {
				wrapperFi, ok := definitions.GetFieldInstance(wrapperName)
				if !ok {
					return nil, newErr(ErrUnknownField, wrapperName)
				}
				encoded, err := encodeField(wrapperFi, inner, signingOnly)
				if err != nil {
					return nil, err
				}
				out = append(out, encoded...)
			}
		}
		out = append(out, arrayEndMarker)
		return out, nil
	}

	body, err := encodeScalarBody(fi, value)
	if err != nil {
		return nil, err
	}

	out := append([]byte{}, header...)
	if fi.IsVLEncoded {
		vl, err := encodeVariableLength(len(body))
		if err != nil {
			return nil, err
		}
		out = append(out, vl...)
	}
	out = append(out, body...)
	return out, nil
}

func encodeScalarBody(fi definitions.FieldInstance, value interface{}) ([]byte, error) {
	switch fi.Type {
	case "UInt8":
		v, err := toUint64(value)
		if err != nil {
			return nil, err
		}
		return types.EncodeUInt8(uint8(v)), nil
	case "UInt16":
		v, err := toUint64(value)
		if err != nil {
			return nil, err
		}
		return types.EncodeUInt16(uint16(v)), nil
	case "UInt32":
		v, err := toUint64(value)
		if err != nil {
			return nil, err
		}
		return types.EncodeUInt32(uint32(v)), nil
	case "UInt64":
		v, err := toUint64(value)
		if err != nil {
			return nil, err
		}
		return types.EncodeUInt64(v), nil
	case "Hash128":
		return types.EncodeHash128(value.(string))
	case "Hash160":
		return types.EncodeHash160(value.(string))
	case "Hash256":
		return types.EncodeHash256(value.(string))
	case "Blob":
		return types.EncodeBlob(value.(string))
	case "AccountID":
		return types.EncodeAccountID(value.(string))
	case "Vector256":
		hashes, ok := value.([]string)
		if !ok {
			return nil, newErr(ErrMalformed, "vector256 expects a string slice")
		}
		return types.EncodeVector256(hashes)
	case "PathSet":
		paths, ok := value.([]types.Path)
		if !ok {
			return nil, newErr(ErrMalformed, "pathset expects a []types.Path")
		}
		return types.EncodePathSet(paths)
	case "Amount":
		return encodeAmountValue(value)
	default:
		return nil, newErr(ErrMalformed, "unsupported field type "+fi.Type)
	}
}

func encodeAmountValue(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return types.EncodeXRPAmount(v)
	case map[string]interface{}:
		asString := func(x interface{}) string {
			s, _ := x.(string)
			return s
		}
		return types.EncodeIssuedAmount(asString(v["value"]), asString(v["currency"]), asString(v["issuer"]))
	case map[string]string:
		return types.EncodeIssuedAmount(v["value"], v["currency"], v["issuer"])
	default:
		return nil, newErr(ErrMalformed, "amount must be a drops string or an issued-currency object")
	}
}

func toUint64(value interface{}) (uint64, error) {
	switch v := value.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case int:
		return uint64(v), nil
	case int64:
		return uint64(v), nil
	case float64:
		return uint64(v), nil
	default:
		return 0, newErr(ErrMalformed, "expected an unsigned integer value")
	}
}
