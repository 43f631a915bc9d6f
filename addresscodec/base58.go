package addresscodec

import (
	"crypto/sha256"
	"errors"

	"github.com/btcsuite/btcutil/base58"
)

var (
	errBadLength   = errors.New("decoded payload too short")
	errBadChecksum = errors.New("checksum mismatch")
)

// rippleAlphabet is the XRPL base58 alphabet: the same 58 symbols as the
// Bitcoin alphabet, permuted so that common account payloads begin with 'r'.
const rippleAlphabetStr = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var rippleAlphabet = base58.NewAlphabet(rippleAlphabetStr)

// checksum returns the first 4 bytes of SHA-256(SHA-256(payload)).
func checksum(payload []byte) [4]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	var out [4]byte
	copy(out[:], second[:4])
	return out
}

// checkEncode prepends version, appends a 4-byte checksum, and base58
// encodes the result using the XRPL alphabet.
func checkEncode(payload []byte, version []byte) string {
	buf := make([]byte, 0, len(version)+len(payload)+4)
	buf = append(buf, version...)
	buf = append(buf, payload...)
	sum := checksum(buf)
	buf = append(buf, sum[:]...)
	return base58.EncodeAlphabet(buf, rippleAlphabet)
}

// checkDecode reverses checkEncode, validating the checksum and the
// expected version length. It returns the payload (without version or
// checksum) and the version bytes actually found.
func checkDecode(s string, versionLen int) (payload []byte, version []byte, err error) {
	decoded := base58.DecodeAlphabet(s, rippleAlphabet)
	if decoded == nil || len(decoded) < versionLen+4 {
		return nil, nil, errBadLength
	}
	body := decoded[:len(decoded)-4]
	sum := decoded[len(decoded)-4:]
	want := checksum(body)
	if !bytesEqual(sum, want[:]) {
		return nil, nil, errBadChecksum
	}
	return body[versionLen:], body[:versionLen], nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
