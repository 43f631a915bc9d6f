package currency

import (
	"math/big"
	"strings"
)

// Number is an issued-currency value in the XRPL canonical normalized
// form: mantissa * 10^exponent, with mantissa in
// [MinMantissa, MaxMantissa] (or exactly zero) and exponent in
// [MinExponent, MaxExponent].
type Number struct {
	Mantissa uint64
	Exponent int32
	Negative bool
	IsZero   bool
}

// ParseValue normalizes a decimal value string (e.g. "1", "-0.0045",
// "100.5") into its canonical mantissa/exponent form.
func ParseValue(value string) (Number, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Number{}, newErr(ErrInvalidAmount, "empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	digits := intPart + fracPart
	exponent := -len(fracPart)

	for _, r := range digits {
		if r < '0' || r > '9' {
			return Number{}, newErr(ErrInvalidAmount, "amount must be a decimal number")
		}
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return Number{Negative: false, IsZero: true}, nil
	}

	// Strip trailing zero digits into the exponent; they don't affect the
	// value but do affect how many significant digits remain.
	trimmed := strings.TrimRight(digits, "0")
	exponent += len(digits) - len(trimmed)
	digits = trimmed
	if digits == "" {
		return Number{Negative: false, IsZero: true}, nil
	}

	mantissa := new(big.Int)
	mantissa.SetString(digits, 10)

	ten := big.NewInt(10)
	minM := big.NewInt(MinMantissa)
	maxM := big.NewInt(MaxMantissa)

	for mantissa.Cmp(maxM) > 0 {
		mantissa.Div(mantissa, ten)
		exponent++
	}
	for mantissa.Cmp(minM) < 0 {
		mantissa.Mul(mantissa, ten)
		exponent--
	}

	if exponent < MinExponent || exponent > MaxExponent {
		return Number{}, newErr(ErrOutOfRange, "exponent out of representable range")
	}

	return Number{
		Mantissa: mantissa.Uint64(),
		Exponent: int32(exponent),
		Negative: negative,
	}, nil
}

// String renders the canonical decimal representation of n.
func (n Number) String() string {
	if n.IsZero {
		return "0"
	}
	digits := new(big.Int).SetUint64(n.Mantissa).String()
	sign := ""
	if n.Negative {
		sign = "-"
	}

	exp := int(n.Exponent)
	if exp >= 0 {
		return sign + digits + strings.Repeat("0", exp)
	}

	var out string
	pointPos := len(digits) + exp
	if pointPos <= 0 {
		out = "0." + strings.Repeat("0", -pointPos) + digits
	} else {
		out = digits[:pointPos] + "." + digits[pointPos:]
	}
	// The fraction always follows a '.', so trimming zeros and then a bare
	// '.' never touches the integer part.
	out = strings.TrimRight(strings.TrimRight(out, "0"), ".")
	return sign + out
}
