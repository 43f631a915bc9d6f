package addresscodec

import "github.com/btcsuite/btcutil/base58"

// Algorithm identifies the signing scheme a seed derives a keypair for.
type Algorithm int

const (
	// Secp256k1 is the network's default signing algorithm.
	Secp256k1 Algorithm = iota
	// Ed25519 is the alternative signing algorithm.
	Ed25519
)

func (a Algorithm) String() string {
	if a == Ed25519 {
		return "ed25519"
	}
	return "secp256k1"
}

const seedEntropyLength = 16

var (
	ed25519SeedVersion   = []byte{0x01, 0xE1, 0x4B}
	secp256k1SeedVersion = []byte{0x21}
)

// EncodeSeed renders 16 bytes of entropy as a base58check seed string for
// the given algorithm.
func EncodeSeed(entropy []byte, algo Algorithm) (string, error) {
	if len(entropy) != seedEntropyLength {
		return "", newErr(ErrInvalidSeed, "entropy must be 16 bytes")
	}
	version := secp256k1SeedVersion
	if algo == Ed25519 {
		version = ed25519SeedVersion
	}
	return checkEncode(entropy, version), nil
}

// DecodeSeed parses a base58check seed string, returning its 16 bytes of
// entropy and the algorithm encoded in its version prefix.
func DecodeSeed(seed string) ([]byte, Algorithm, error) {
	decoded := base58.DecodeAlphabet(seed, rippleAlphabet)
	if decoded == nil || len(decoded) < 4+seedEntropyLength {
		return nil, 0, newErr(ErrInvalidSeed, "bad base58check encoding")
	}
	body := decoded[:len(decoded)-4]
	sum := decoded[len(decoded)-4:]
	want := checksum(body)
	if !bytesEqual(sum, want[:]) {
		return nil, 0, newErr(ErrInvalidSeed, "checksum mismatch")
	}

	versionLen := len(body) - seedEntropyLength
	version := body[:versionLen]
	entropy := body[versionLen:]

	switch {
	case bytesEqual(version, ed25519SeedVersion):
		return entropy, Ed25519, nil
	case bytesEqual(version, secp256k1SeedVersion):
		return entropy, Secp256k1, nil
	default:
		return nil, 0, newErr(ErrInvalidSeed, "unrecognized seed version")
	}
}
