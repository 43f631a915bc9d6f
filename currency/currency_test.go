package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDrops(t *testing.T) {
	assert.True(t, IsValidDrops("0"))
	assert.True(t, IsValidDrops("100000000"))
	assert.True(t, IsValidDrops("100000000000000000"))
	assert.False(t, IsValidDrops("100000000000000001"))
	assert.False(t, IsValidDrops("01"))
	assert.False(t, IsValidDrops("-1"))
	assert.False(t, IsValidDrops("1.5"))
}

func TestCurrencyCodeRoundTrip(t *testing.T) {
	buf, err := EncodeCurrencyCode("USD")
	require.NoError(t, err)
	require.Len(t, buf, 20)

	decoded, err := DecodeCurrencyCode(buf)
	require.NoError(t, err)
	assert.Equal(t, "USD", decoded)
}

func TestCurrencyCodeXRPReserved(t *testing.T) {
	assert.False(t, IsValidCurrencyCode("XRP"))
	assert.False(t, IsStandardCurrencyCode("xrp"))
}

func TestCurrencyCodeHexRoundTrip(t *testing.T) {
	hex := "0158415500000000C1F76FF6ECB0BAC600000000"
	require.True(t, IsValidCurrencyCode(hex))

	buf, err := EncodeCurrencyCode(hex)
	require.NoError(t, err)
	require.Len(t, buf, 20)

	decoded, err := DecodeCurrencyCode(buf)
	require.NoError(t, err)
	assert.Equal(t, hex, decoded)
}

func TestCurrencyCodeRejectsReservedLeadingZeroByte(t *testing.T) {
	hex := "0058415500000000C1F76FF6ECB0BAC600000000"
	_, err := EncodeCurrencyCode(hex)
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, ErrInvalidCurrencyCode, cerr.Kind)
}

func TestParseValueNormalizesMantissa(t *testing.T) {
	n, err := ParseValue("1")
	require.NoError(t, err)
	assert.Equal(t, uint64(MinMantissa), n.Mantissa)
	assert.Equal(t, int32(-15), n.Exponent)
	assert.False(t, n.Negative)
	assert.Equal(t, "1", n.String())
}

func TestParseValueNegative(t *testing.T) {
	n, err := ParseValue("-100.5")
	require.NoError(t, err)
	assert.True(t, n.Negative)
	assert.Equal(t, "-100.5", n.String())
}

func TestParseValueZero(t *testing.T) {
	n, err := ParseValue("0")
	require.NoError(t, err)
	assert.True(t, n.IsZero)
	assert.Equal(t, "0", n.String())

	n2, err := ParseValue("0.000")
	require.NoError(t, err)
	assert.True(t, n2.IsZero)
}

func TestParseValueRejectsGarbage(t *testing.T) {
	_, err := ParseValue("abc")
	assert.Error(t, err)
}
