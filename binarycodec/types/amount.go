package types

import (
	"math/big"

	"github.com/ripplecore/xrplgo/currency"
)

const (
	notXRPBit   = uint64(1) << 63
	positiveBit = uint64(1) << 62
	exponentShift = 54
	exponentMask  = uint64(0xFF) << exponentShift
	mantissaMask  = uint64(1)<<exponentShift - 1
	exponentBias  = 97
)

// EncodeXRPAmount encodes a non-negative drops string as the 8-byte
// native-currency Amount form.
func EncodeXRPAmount(drops string) ([]byte, error) {
	if !currency.IsValidDrops(drops) {
		return nil, newErr(ErrInvalidValue, "drops value out of range")
	}
	n := new(big.Int)
	n.SetString(drops, 10)
	v := n.Uint64()
	v |= positiveBit
	return EncodeUInt64(v), nil
}

// DecodeXRPAmount decodes the 8-byte native-currency Amount form into its
// drops string. b must have the not-XRP bit clear.
func DecodeXRPAmount(b []byte) (string, error) {
	v, err := DecodeUInt64(b)
	if err != nil {
		return "", err
	}
	if v&notXRPBit != 0 {
		return "", newErr(ErrInvalidValue, "amount is not a native XRP value")
	}
	drops := v &^ positiveBit
	return new(big.Int).SetUint64(drops).String(), nil
}

// EncodeIssuedAmount encodes an issued-currency amount: 8-byte
// value header, 20-byte currency code, 20-byte issuer AccountID.
func EncodeIssuedAmount(value, code, issuer string) ([]byte, error) {
	n, err := currency.ParseValue(value)
	if err != nil {
		return nil, err
	}

	var header uint64
	header |= notXRPBit
	if n.IsZero {
		header |= positiveBit
	} else {
		if !n.Negative {
			header |= positiveBit
		}
		header |= uint64(n.Exponent+exponentBias) << exponentShift
		header |= n.Mantissa & mantissaMask
	}

	currencyBytes, err := currency.EncodeCurrencyCode(code)
	if err != nil {
		return nil, err
	}
	issuerBytes, err := EncodeAccountID(issuer)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 48)
	out = append(out, EncodeUInt64(header)...)
	out = append(out, currencyBytes...)
	out = append(out, issuerBytes...)
	return out, nil
}

// DecodeIssuedAmount decodes a 48-byte issued-currency Amount into its
// value string, currency code, and issuer address.
func DecodeIssuedAmount(b []byte) (value, code, issuer string, err error) {
	if len(b) < 48 {
		return "", "", "", newErr(ErrTruncated, "issued amount requires 48 bytes")
	}
	header, err := DecodeUInt64(b[:8])
	if err != nil {
		return "", "", "", err
	}
	if header&notXRPBit == 0 {
		return "", "", "", newErr(ErrInvalidValue, "amount is not an issued-currency value")
	}

	mantissa := header & mantissaMask
	var n currency.Number
	if mantissa == 0 {
		n = currency.Number{IsZero: true}
	} else {
		exponent := int32((header&exponentMask)>>exponentShift) - exponentBias
		n = currency.Number{
			Mantissa: mantissa,
			Exponent: exponent,
			Negative: header&positiveBit == 0,
		}
	}

	code, err = currency.DecodeCurrencyCode(b[8:28])
	if err != nil {
		return "", "", "", err
	}
	issuer, err = DecodeAccountID(b[28:48])
	if err != nil {
		return "", "", "", err
	}
	return n.String(), code, issuer, nil
}

// IsXRPAmount reports whether the raw Amount header bytes denote a
// native XRP value rather than an issued currency.
func IsXRPAmount(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return b[0]&0x80 == 0
}
