package keypairs

import (
	"crypto/ed25519"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/hash"
)

const ed25519PublicPrefix = 0xED

func deriveEd25519(entropy []byte) (*Keypair, error) {
	seed := hash.Sha512Half(entropy)
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	privOut := make([]byte, 0, 33)
	privOut = append(privOut, 0x00)
	privOut = append(privOut, seed...)

	pubOut := make([]byte, 0, 33)
	pubOut = append(pubOut, ed25519PublicPrefix)
	pubOut = append(pubOut, pub...)

	return &Keypair{
		Algorithm:  addresscodec.Ed25519,
		PrivateKey: privOut,
		PublicKey:  pubOut,
	}, nil
}

func ed25519SeedFromPrivate(priv []byte) ([]byte, error) {
	raw := priv
	if len(priv) == 33 && priv[0] == 0x00 {
		raw = priv[1:]
	}
	if len(raw) != ed25519.SeedSize {
		return nil, newErr(ErrInvalidKey, "ed25519 private key must be a 32-byte seed")
	}
	return raw, nil
}

func signEd25519(priv []byte, msg []byte) ([]byte, error) {
	seed, err := ed25519SeedFromPrivate(priv)
	if err != nil {
		return nil, err
	}
	key := ed25519.NewKeyFromSeed(seed)
	return ed25519.Sign(key, msg), nil
}

func verifyEd25519(pub []byte, msg, sig []byte) bool {
	raw := pub
	if len(pub) == 33 && pub[0] == ed25519PublicPrefix {
		raw = pub[1:]
	}
	if len(raw) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(raw), msg, sig)
}
