// Package utils implements small conversions the rest of the SDK and
// its callers need repeatedly: drops/XRP and Ripple-epoch time.
package utils

import (
	"math/big"
	"strings"
)

// rippleEpochOffset is the number of seconds between the Unix epoch
// (1970-01-01T00:00:00Z) and the Ripple epoch (2000-01-01T00:00:00Z).
const rippleEpochOffset = 946684800

// dropsPerXRP is 10^6.
const dropsPerXRP = 1_000_000

// XRPToDrops converts a decimal XRP amount string to an integer drops
// string. It accepts up to 6 fractional digits; anything smaller than a
// drop is rejected rather than silently truncated.
func XRPToDrops(xrp string) (string, error) {
	xrp = strings.TrimSpace(xrp)
	if xrp == "" {
		return "", newErr(ErrInvalidAmount, "empty amount")
	}
	neg := false
	if strings.HasPrefix(xrp, "-") {
		neg = true
		xrp = xrp[1:]
	}

	intPart := xrp
	fracPart := ""
	if idx := strings.IndexByte(xrp, '.'); idx >= 0 {
		intPart = xrp[:idx]
		fracPart = xrp[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 6 {
		return "", newErr(ErrInvalidAmount, "more than 6 fractional digits")
	}
	for len(fracPart) < 6 {
		fracPart += "0"
	}

	digits := intPart + fracPart
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "", newErr(ErrInvalidAmount, xrp)
	}
	if neg {
		n.Neg(n)
	}
	return n.String(), nil
}

// DropsToXRP converts an integer drops string to a decimal XRP string
// with up to 6 fractional digits, trimmed of trailing zeros.
func DropsToXRP(drops string) (string, error) {
	drops = strings.TrimSpace(drops)
	n, ok := new(big.Int).SetString(drops, 10)
	if !ok {
		return "", newErr(ErrInvalidAmount, drops)
	}
	neg := n.Sign() < 0
	if neg {
		n.Neg(n)
	}

	div := big.NewInt(dropsPerXRP)
	intPart := new(big.Int)
	fracPart := new(big.Int)
	intPart.QuoRem(n, div, fracPart)

	fracStr := fracPart.String()
	for len(fracStr) < 6 {
		fracStr = "0" + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")

	out := intPart.String()
	if fracStr != "" {
		out += "." + fracStr
	}
	if neg && out != "0" {
		out = "-" + out
	}
	return out, nil
}

// RippleTimeToUnix converts a Ripple epoch timestamp to a Unix
// timestamp.
func RippleTimeToUnix(rippleTime int64) int64 {
	return rippleTime + rippleEpochOffset
}

// UnixToRippleTime converts a Unix timestamp to a Ripple epoch
// timestamp.
func UnixToRippleTime(unixTime int64) int64 {
	return unixTime - rippleEpochOffset
}
