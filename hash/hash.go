// Package hash implements the XRP Ledger's SHA-512-half primitive and the
// prefixed hashes derived from it.
package hash

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// Sha512Half returns the first 32 bytes of SHA-512(data).
func Sha512Half(data []byte) []byte {
	sum := sha512.Sum512(data)
	out := make([]byte, 32)
	copy(out, sum[:32])
	return out
}

// Prefix tags, per spec §4.5/§4.4.
var (
	PrefixTransactionID   = [4]byte{'T', 'X', 'N', 0x00}
	PrefixTransactionSign = [4]byte{'S', 'T', 'X', 0x00}
	PrefixMultiSign       = [4]byte{'S', 'M', 'T', 0x00}
)

func prefixed(prefix [4]byte, parts ...[]byte) []byte {
	total := len(prefix)
	for _, p := range parts {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	buf = append(buf, prefix[:]...)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return Sha512Half(buf)
}

// TransactionID computes the transaction hash: SHA-512-half("TXN\0" ||
// full canonical serialization including the signature), rendered as
// upper-case hex.
func TransactionID(fullSerialization []byte) string {
	return toHex(prefixed(PrefixTransactionID, fullSerialization))
}

// SigningHash computes the single-signing hash: SHA-512-half("STX\0" ||
// signing serialization). Note this is the digest secp256k1 signs; ed25519
// signs the unhashed "STX\0"-prefixed bytes directly (its own internal
// SHA-512 covers that), so keypairs.Sign takes the raw prefixed message
// and branches internally rather than consuming this function's output.
func SigningHash(signingSerialization []byte) []byte {
	return prefixed(PrefixTransactionSign, signingSerialization)
}

// MultiSigningHash computes the multi-signing hash: SHA-512-half("SMT\0" ||
// signing serialization || signer account id).
func MultiSigningHash(signingSerialization []byte, signerAccountID []byte) []byte {
	return prefixed(PrefixMultiSign, signingSerialization, signerAccountID)
}

func toHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
