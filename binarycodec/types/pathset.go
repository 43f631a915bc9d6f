package types

const (
	pathStepAccount  = 0x01
	pathStepCurrency = 0x10
	pathStepIssuer   = 0x20

	pathSeparator    = 0xFF
	pathSetTerminator = 0x00
)

// PathStep is one hop of a payment path: an optional account to route
// through, and/or a currency/issuer pair to change denomination.
type PathStep struct {
	Account  string
	Currency string
	Issuer   string
}

// Path is an ordered list of PathSteps.
type Path []PathStep

// EncodePathSet encodes a full set of alternative payment paths, each
// path separated by 0xFF and the set terminated by 0x00. The result is
// self-terminating and carries no variable-length prefix.
func EncodePathSet(paths []Path) ([]byte, error) {
	var out []byte
	for i, path := range paths {
		for _, step := range path {
			stepBytes, err := encodePathStep(step)
			if err != nil {
				return nil, err
			}
			out = append(out, stepBytes...)
		}
		if i != len(paths)-1 {
			out = append(out, pathSeparator)
		}
	}
	out = append(out, pathSetTerminator)
	return out, nil
}

func encodePathStep(step PathStep) ([]byte, error) {
	var flags byte
	var body []byte

	if step.Account != "" {
		flags |= pathStepAccount
		b, err := EncodeAccountID(step.Account)
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if step.Currency != "" {
		flags |= pathStepCurrency
		b, err := EncodeHash160(currencyCodeHex(step.Currency))
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}
	if step.Issuer != "" {
		flags |= pathStepIssuer
		b, err := EncodeAccountID(step.Issuer)
		if err != nil {
			return nil, err
		}
		body = append(body, b...)
	}

	return append([]byte{flags}, body...), nil
}

// currencyCodeHex is a placeholder hook; callers normally supply
// already-padded 40-char hex currency codes for path step currencies,
// matching the currency package's 20-byte wire form.
func currencyCodeHex(code string) string {
	return code
}

// DecodePathSet reverses EncodePathSet. A path set is self-terminating
// (0xFF between paths, 0x00 after the last one) rather than carrying a
// variable-length prefix, so DecodePathSet also reports how many bytes
// of b it consumed, letting the caller continue parsing the rest of the
// enclosing object/array.
func DecodePathSet(b []byte) ([]Path, int, error) {
	var paths []Path
	var current Path

	i := 0
	for i < len(b) {
		switch b[i] {
		case pathSetTerminator:
			paths = append(paths, current)
			return paths, i + 1, nil
		case pathSeparator:
			paths = append(paths, current)
			current = nil
			i++
			continue
		}

		flags := b[i]
		i++
		step := PathStep{}
		if flags&pathStepAccount != 0 {
			if i+20 > len(b) {
				return nil, 0, newErr(ErrTruncated, "path step account truncated")
			}
			addr, err := DecodeAccountID(b[i : i+20])
			if err != nil {
				return nil, 0, err
			}
			step.Account = addr
			i += 20
		}
		if flags&pathStepCurrency != 0 {
			if i+20 > len(b) {
				return nil, 0, newErr(ErrTruncated, "path step currency truncated")
			}
			step.Currency = upperHex(b[i : i+20])
			i += 20
		}
		if flags&pathStepIssuer != 0 {
			if i+20 > len(b) {
				return nil, 0, newErr(ErrTruncated, "path step issuer truncated")
			}
			addr, err := DecodeAccountID(b[i : i+20])
			if err != nil {
				return nil, 0, err
			}
			step.Issuer = addr
			i += 20
		}
		current = append(current, step)
	}

	return nil, 0, newErr(ErrTruncated, "path set missing terminator")
}
