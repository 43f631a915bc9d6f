package keypairs

import (
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/hash"
)

// deriveScalar implements the network's iterated SHA-512-half scalar
// derivation: hash(seedBytes || discriminant? || counter) until the result
// is a nonzero value strictly less than the curve order.
func deriveScalar(seedBytes []byte, discriminant *uint32) (*secp256k1.ModNScalar, error) {
	for i := uint32(0); ; i++ {
		buf := make([]byte, 0, len(seedBytes)+8)
		buf = append(buf, seedBytes...)
		if discriminant != nil {
			var d [4]byte
			binary.BigEndian.PutUint32(d[:], *discriminant)
			buf = append(buf, d[:]...)
		}
		var c [4]byte
		binary.BigEndian.PutUint32(c[:], i)
		buf = append(buf, c[:]...)

		candidate := hash.Sha512Half(buf)

		var scalar secp256k1.ModNScalar
		overflowed := scalar.SetByteSlice(candidate)
		if !overflowed && !scalar.IsZero() {
			return &scalar, nil
		}
		if i == 0xFFFFFFFF {
			break
		}
	}
	return nil, newErr(ErrInvalidKey, "unable to derive a valid secp256k1 scalar")
}

func deriveSecp256k1(entropy []byte) (*Keypair, error) {
	root, err := deriveScalar(entropy, nil)
	if err != nil {
		return nil, err
	}
	rootPub := secp256k1GeneratorMul(root)
	rootPubCompressed := rootPub.SerializeCompressed()

	accountIndex := uint32(0)
	intermediate, err := deriveScalar(rootPubCompressed, &accountIndex)
	if err != nil {
		return nil, err
	}

	var accountScalar secp256k1.ModNScalar
	accountScalar.Add2(root, intermediate)
	if accountScalar.IsZero() {
		return nil, newErr(ErrInvalidKey, "derived account scalar is zero")
	}

	accountPriv := secp256k1.NewPrivateKey(&accountScalar)
	accountPub := accountPriv.PubKey()

	privBytes := make([]byte, 0, 33)
	privBytes = append(privBytes, 0x00)
	scalarBytes := accountScalar.Bytes()
	privBytes = append(privBytes, scalarBytes[:]...)

	return &Keypair{
		Algorithm:  addresscodec.Secp256k1,
		PrivateKey: privBytes,
		PublicKey:  accountPub.SerializeCompressed(),
	}, nil
}

func secp256k1PrivateScalar(priv []byte) (*secp256k1.ModNScalar, error) {
	raw := priv
	if len(priv) == 33 && priv[0] == 0x00 {
		raw = priv[1:]
	}
	if len(raw) != 32 {
		return nil, newErr(ErrInvalidKey, "secp256k1 private key must be 32 bytes")
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow {
		return nil, newErr(ErrInvalidKey, "secp256k1 private key out of range")
	}
	return &scalar, nil
}

// signSecp256k1 signs SHA-512-half(msg) with a deterministic (RFC 6979)
// low-S canonical ECDSA signature, DER-encoded.
func signSecp256k1(priv []byte, msg []byte) ([]byte, error) {
	scalar, err := secp256k1PrivateScalar(priv)
	if err != nil {
		return nil, err
	}
	privKey := secp256k1.NewPrivateKey(scalar)
	digest := hash.Sha512Half(msg)
	sig := ecdsa.Sign(privKey, digest)
	return sig.Serialize(), nil
}

func verifySecp256k1(pub []byte, msg, sig []byte) bool {
	pubKey, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	digest := hash.Sha512Half(msg)
	return parsed.Verify(digest, pubKey)
}
