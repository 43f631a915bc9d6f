package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIntRoundTrip(t *testing.T) {
	assert.Equal(t, []byte{0x2A}, EncodeUInt8(42))
	v16, err := DecodeUInt16(EncodeUInt16(1000))
	require.NoError(t, err)
	assert.Equal(t, uint16(1000), v16)

	v32, err := DecodeUInt32(EncodeUInt32(123456))
	require.NoError(t, err)
	assert.Equal(t, uint32(123456), v32)

	v64, err := DecodeUInt64(EncodeUInt64(123456789))
	require.NoError(t, err)
	assert.Equal(t, uint64(123456789), v64)
}

func TestHashRoundTrip(t *testing.T) {
	h := "0123456789ABCDEF0123456789ABCDEF"[:32]
	b, err := EncodeHash128(h)
	require.NoError(t, err)
	decoded, err := DecodeHash128(b)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
}

func TestBlobRoundTrip(t *testing.T) {
	b, err := EncodeBlob("DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF", DecodeBlob(b))
}

func TestAccountIDRoundTrip(t *testing.T) {
	address := "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp"
	b, err := EncodeAccountID(address)
	require.NoError(t, err)
	require.Len(t, b, 20)

	decoded, err := DecodeAccountID(b)
	require.NoError(t, err)
	assert.Equal(t, address, decoded)
}

func TestVector256RoundTrip(t *testing.T) {
	hashes := []string{
		"0000000000000000000000000000000000000000000000000000000000000001"[:64],
	}
	b, err := EncodeVector256(hashes)
	require.NoError(t, err)
	decoded, err := DecodeVector256(b)
	require.NoError(t, err)
	assert.Equal(t, hashes, decoded)
}

func TestPathSetRoundTrip(t *testing.T) {
	paths := []Path{
		{
			{Issuer: "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp"},
		},
		{
			{Account: "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp"},
		},
	}
	b, err := EncodePathSet(paths)
	require.NoError(t, err)

	decoded, consumed, err := DecodePathSet(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), consumed)
	require.Len(t, decoded, 2)
	assert.Equal(t, "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp", decoded[0][0].Issuer)
	assert.Equal(t, "rJMfWNVbRGBPpVk7h3A4BXoo3BBUczVjfp", decoded[1][0].Account)
}
