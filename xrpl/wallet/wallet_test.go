package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/binarycodec"
)

func TestFromSeedDerivesAddress(t *testing.T) {
	w, err := New(addresscodec.Ed25519)
	require.NoError(t, err)
	assert.True(t, addresscodec.IsValidClassicAddress(w.ClassicAddress))
	assert.Equal(t, byte(0xED), w.PublicKey[0])
}

func TestFromSecretIsSeedAlias(t *testing.T) {
	w1, err := New(addresscodec.Secp256k1)
	require.NoError(t, err)

	w2, err := FromSecret(w1.Seed)
	require.NoError(t, err)
	assert.Equal(t, w1.ClassicAddress, w2.ClassicAddress)
}

func TestSignProducesDecodableBlob(t *testing.T) {
	w, err := New(addresscodec.Ed25519)
	require.NoError(t, err)

	fields := map[string]interface{}{
		"Account":         w.ClassicAddress,
		"TransactionType": uint64(0),
		"Fee":             "10",
		"Sequence":        uint64(1),
		"Flags":           uint64(0),
		"Destination":     "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		"Amount":          "1000000",
	}

	blob, txHash, err := w.Sign(fields)
	require.NoError(t, err)
	assert.Len(t, txHash, 64)

	decoded, err := hex.DecodeString(blob)
	require.NoError(t, err)
	out, err := binarycodec.Decode(decoded)
	require.NoError(t, err)
	assert.Equal(t, w.ClassicAddress, out["Account"])
	assert.NotEmpty(t, out["TxnSignature"])
}

func TestMultisignReturnsSignerEntry(t *testing.T) {
	w, err := New(addresscodec.Secp256k1)
	require.NoError(t, err)

	fields := map[string]interface{}{
		"Account":         "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		"TransactionType": uint64(0),
		"Fee":             "10",
		"Sequence":        uint64(1),
		"Flags":           uint64(0),
		"SigningPubKey":   "",
		"Destination":     "rDgZZ3wyprx4ZqrGQUkquE9Fs2Xs8XBcdw",
		"Amount":          "1000000",
	}

	signer, err := w.Multisign(fields)
	require.NoError(t, err)
	assert.Equal(t, w.ClassicAddress, signer.Account)
	assert.NotEmpty(t, signer.TxnSignature)
}

func TestFromMnemonicDerivesSecp256k1Wallet(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	w, err := FromMnemonic(mnemonic)
	require.NoError(t, err)
	assert.Equal(t, addresscodec.Secp256k1, w.Algorithm)
	assert.Empty(t, w.Seed)
	assert.True(t, addresscodec.IsValidClassicAddress(w.ClassicAddress))
}

func TestFromMnemonicRejectsInvalid(t *testing.T) {
	_, err := FromMnemonic("not a valid mnemonic at all")
	assert.Error(t, err)
}
