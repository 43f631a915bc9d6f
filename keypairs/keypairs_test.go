package keypairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplecore/xrplgo/addresscodec"
)

func testEntropy(seed byte) []byte {
	e := make([]byte, 16)
	for i := range e {
		e[i] = seed + byte(i)
	}
	return e
}

func TestSignThenVerifyBothAlgorithms(t *testing.T) {
	for _, algo := range []addresscodec.Algorithm{addresscodec.Ed25519, addresscodec.Secp256k1} {
		kp, err := FromSeed(testEntropy(1), algo)
		require.NoError(t, err)

		msg := []byte("hello xrpl")
		sig, err := Sign(kp.PrivateKey, algo, msg)
		require.NoError(t, err)

		assert.True(t, Verify(kp.PublicKey, algo, msg, sig))
		assert.False(t, Verify(kp.PublicKey, algo, []byte("tampered"), sig))
	}
}

func TestDeterministicSecp256k1Signatures(t *testing.T) {
	kp, err := FromSeed(testEntropy(2), addresscodec.Secp256k1)
	require.NoError(t, err)

	msg := []byte("repeat me")
	sig1, err := Sign(kp.PrivateKey, addresscodec.Secp256k1, msg)
	require.NoError(t, err)
	sig2, err := Sign(kp.PrivateKey, addresscodec.Secp256k1, msg)
	require.NoError(t, err)

	assert.Equal(t, sig1, sig2)
}

func TestPublicKeyShapes(t *testing.T) {
	ed, err := FromSeed(testEntropy(3), addresscodec.Ed25519)
	require.NoError(t, err)
	assert.Len(t, ed.PublicKey, 33)
	assert.Equal(t, byte(0xED), ed.PublicKey[0])

	secp, err := FromSeed(testEntropy(4), addresscodec.Secp256k1)
	require.NoError(t, err)
	assert.Len(t, secp.PublicKey, 33)
	assert.Contains(t, []byte{0x02, 0x03}, secp.PublicKey[0])
}

func TestDeriveClassicAddress(t *testing.T) {
	kp, err := FromSeed(testEntropy(5), addresscodec.Ed25519)
	require.NoError(t, err)

	accountID, err := DeriveClassicAddress(kp.PublicKey)
	require.NoError(t, err)
	assert.Len(t, accountID, 20)

	encoded, err := addresscodec.EncodeClassicAddress(accountID)
	require.NoError(t, err)
	assert.Equal(t, byte('r'), encoded[0])
}

func TestZeroClearsPrivateKey(t *testing.T) {
	kp, err := FromSeed(testEntropy(6), addresscodec.Secp256k1)
	require.NoError(t, err)
	kp.Zero()
	for _, b := range kp.PrivateKey {
		assert.Zero(t, b)
	}
}
