package addresscodec

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicAddressRoundTrip(t *testing.T) {
	accountID := make([]byte, accountIDLength)
	for i := range accountID {
		accountID[i] = byte(i * 7)
	}

	encoded, err := EncodeClassicAddress(accountID)
	require.NoError(t, err)
	assert.Equal(t, byte('r'), encoded[0])

	decoded, err := DecodeClassicAddress(encoded)
	require.NoError(t, err)
	assert.Equal(t, accountID, decoded)

	reencoded, err := EncodeClassicAddress(decoded)
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}

func TestDecodeClassicAddressErrors(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{"empty", ""},
		{"too short", "rN7n7otQ"},
		{"bad checksum", "rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRI"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeClassicAddress(tt.address)
			assert.Error(t, err)
		})
	}
}

func TestSeedRoundTrip(t *testing.T) {
	for _, algo := range []Algorithm{Ed25519, Secp256k1} {
		entropy := make([]byte, seedEntropyLength)
		for i := range entropy {
			entropy[i] = byte(i + int(algo))
		}
		encoded, err := EncodeSeed(entropy, algo)
		require.NoError(t, err)

		decodedEntropy, decodedAlgo, err := DecodeSeed(encoded)
		require.NoError(t, err)
		assert.Equal(t, entropy, decodedEntropy)
		assert.Equal(t, algo, decodedAlgo)
	}
}

// TestSeedFixture pins the ed25519 seed decode fixture from spec §8.
func TestSeedFixture(t *testing.T) {
	entropy, algo, err := DecodeSeed("sEdTM1uX8pu2do5XvTnutH6HsouMaM2")
	require.NoError(t, err)
	assert.Equal(t, Ed25519, algo)
	assert.Equal(t, "4C3A1D213FBDFB14C7C28D609469B341", strings.ToUpper(hex.EncodeToString(entropy)))
}

func TestXAddressRoundTrip(t *testing.T) {
	accountID := make([]byte, accountIDLength)
	for i := range accountID {
		accountID[i] = byte(i * 3)
	}
	tag := uint32(12345)

	for _, tc := range []struct {
		name    string
		tag     *uint32
		network Network
	}{
		{"no tag mainnet", nil, MainNet},
		{"tag mainnet", &tag, MainNet},
		{"tag testnet", &tag, TestNet},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x, err := ClassicAddressToXAddress(accountID, tc.tag, tc.network)
			require.NoError(t, err)
			assert.True(t, IsValidXAddress(x))

			gotAccount, gotTag, gotNetwork, err := XAddressToClassicAddress(x)
			require.NoError(t, err)
			assert.Equal(t, accountID, gotAccount)
			assert.Equal(t, tc.network, gotNetwork)
			if tc.tag == nil {
				assert.Nil(t, gotTag)
			} else {
				require.NotNil(t, gotTag)
				assert.Equal(t, *tc.tag, *gotTag)
			}
		})
	}
}

// TestXAddressFixture pins the mainnet X-address fixtures from spec §8.
func TestXAddressFixture(t *testing.T) {
	accountID, err := DecodeClassicAddress("r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59")
	require.NoError(t, err)

	noTag, err := ClassicAddressToXAddress(accountID, nil, MainNet)
	require.NoError(t, err)
	assert.Equal(t, "X7AcgcsBL6XDcUb289X4mJ8djcdyKaB5hJDWMArnXr61cqZ", noTag)

	tag := uint32(1)
	withTag, err := ClassicAddressToXAddress(accountID, &tag, MainNet)
	require.NoError(t, err)
	assert.Equal(t, "X7AcgcsBL6XDcUb289X4mJ8djcdyKaGZMhc9YTE92ehJ2Fu", withTag)
}

func TestInvalidXAddress(t *testing.T) {
	assert.False(t, IsValidXAddress("not-an-x-address"))
	assert.False(t, IsValidXAddress(""))
}
