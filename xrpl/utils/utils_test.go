package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXRPToDropsFixture(t *testing.T) {
	drops, err := XRPToDrops("100.000001")
	require.NoError(t, err)
	assert.Equal(t, "100000001", drops)
}

func TestXRPToDropsWholeNumber(t *testing.T) {
	drops, err := XRPToDrops("100")
	require.NoError(t, err)
	assert.Equal(t, "100000000", drops)
}

func TestXRPToDropsRejectsSubDropPrecision(t *testing.T) {
	_, err := XRPToDrops("1.0000001")
	assert.Error(t, err)
}

func TestDropsToXRPRoundTrip(t *testing.T) {
	xrp, err := DropsToXRP("100000001")
	require.NoError(t, err)
	assert.Equal(t, "100.000001", xrp)

	xrp, err = DropsToXRP("100000000")
	require.NoError(t, err)
	assert.Equal(t, "100", xrp)
}

func TestRippleTimeConversionFixture(t *testing.T) {
	assert.Equal(t, int64(713502659), UnixToRippleTime(1660187459))
	assert.Equal(t, int64(1660187459), RippleTimeToUnix(713502659))
}
