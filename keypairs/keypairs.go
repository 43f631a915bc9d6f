package keypairs

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // XRPL's address algorithm is pinned to RIPEMD-160.

	"github.com/ripplecore/xrplgo/addresscodec"
)

// Keypair is a derived private/public key pair for one of the two
// algorithms the ledger accepts.
type Keypair struct {
	Algorithm  addresscodec.Algorithm
	PrivateKey []byte // 33 bytes: "00"-prefixed 32-byte ed25519 seed, or "00"-prefixed secp256k1 scalar
	PublicKey  []byte // 33 bytes: 0xED-prefixed ed25519, or compressed SEC1 secp256k1
}

// Zero overwrites the private key bytes in place. Callers must call Zero
// when a Keypair goes out of scope.
func (k *Keypair) Zero() {
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
}

// FromSeed derives a deterministic keypair from 16 bytes of seed entropy.
func FromSeed(entropy []byte, algo addresscodec.Algorithm) (*Keypair, error) {
	switch algo {
	case addresscodec.Ed25519:
		return deriveEd25519(entropy)
	case addresscodec.Secp256k1:
		return deriveSecp256k1(entropy)
	default:
		return nil, newErr(ErrUnsupportedAlgorithm, "")
	}
}

// Sign signs msg with priv, producing an algorithm-appropriate signature.
func Sign(priv []byte, algo addresscodec.Algorithm, msg []byte) ([]byte, error) {
	switch algo {
	case addresscodec.Ed25519:
		return signEd25519(priv, msg)
	case addresscodec.Secp256k1:
		return signSecp256k1(priv, msg)
	default:
		return nil, newErr(ErrUnsupportedAlgorithm, "")
	}
}

// Verify reports whether sig is a valid signature of msg under pub.
func Verify(pub []byte, algo addresscodec.Algorithm, msg, sig []byte) bool {
	switch algo {
	case addresscodec.Ed25519:
		return verifyEd25519(pub, msg, sig)
	case addresscodec.Secp256k1:
		return verifySecp256k1(pub, msg, sig)
	default:
		return false
	}
}

// DeriveClassicAddress computes the 20-byte AccountID for a 33-byte public
// key: RIPEMD160(SHA-256(pubkey)).
func DeriveClassicAddress(pub []byte) ([]byte, error) {
	if len(pub) == 0 {
		return nil, newErr(ErrInvalidKey, "public key is empty")
	}
	sum := sha256.Sum256(pub)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil), nil
}

// secp256k1GeneratorMul returns scalar·G, the public point for a private
// scalar, used by the deterministic key derivation in secp256k1.go.
func secp256k1GeneratorMul(scalar *secp256k1.ModNScalar) *secp256k1.PublicKey {
	priv := secp256k1.NewPrivateKey(scalar)
	return priv.PubKey()
}
