// Package wallet derives XRPL signing identities from a family seed, a
// raw secret, or a BIP-39 mnemonic, and signs transactions with them.
package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/ripplecore/xrplgo/addresscodec"
	"github.com/ripplecore/xrplgo/binarycodec"
	"github.com/ripplecore/xrplgo/hash"
	"github.com/ripplecore/xrplgo/keypairs"
	"github.com/ripplecore/xrplgo/xrpl/transaction"
)

// bip44Path is the fixed derivation path m/44'/144'/0'/0/0 XRPL mnemonic
// wallets use (coin type 144 is XRP).
var bip44Path = []uint32{
	44 + bip32.FirstHardenedChild,
	144 + bip32.FirstHardenedChild,
	bip32.FirstHardenedChild,
	0,
	0,
}

// Wallet is a derived keypair plus the classic address it signs for.
type Wallet struct {
	Algorithm      addresscodec.Algorithm
	PublicKey      []byte
	privateKey     []byte
	ClassicAddress string
	Seed           string // empty when derived from a mnemonic, which has no family seed
}

// Zero overwrites the wallet's private key material in place. Callers
// must call Zero when a Wallet goes out of scope.
func (w *Wallet) Zero() {
	for i := range w.privateKey {
		w.privateKey[i] = 0
	}
}

// New generates a random wallet using the given algorithm (the zero
// value of addresscodec.Algorithm is Secp256k1).
func New(algo addresscodec.Algorithm) (*Wallet, error) {
	entropy := make([]byte, 16)
	if _, err := rand.Read(entropy); err != nil {
		return nil, newErr(ErrInvalidSeed, err)
	}
	seed, err := addresscodec.EncodeSeed(entropy, algo)
	if err != nil {
		return nil, newErr(ErrInvalidSeed, err)
	}
	return FromSeed(seed)
}

// FromSeed derives a wallet from an XRPL family seed (the "s..." string
// a typical wallet export shows).
func FromSeed(seed string) (*Wallet, error) {
	entropy, algo, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return nil, newErr(ErrInvalidSeed, err)
	}
	kp, err := keypairs.FromSeed(entropy, algo)
	if err != nil {
		return nil, newErr(ErrInvalidSeed, err)
	}
	accountID, err := keypairs.DeriveClassicAddress(kp.PublicKey)
	if err != nil {
		return nil, newErr(ErrInvalidSeed, err)
	}
	address, err := addresscodec.EncodeClassicAddress(accountID)
	if err != nil {
		return nil, newErr(ErrInvalidSeed, err)
	}
	return &Wallet{
		Algorithm:      algo,
		PublicKey:      kp.PublicKey,
		privateKey:     kp.PrivateKey,
		ClassicAddress: address,
		Seed:           seed,
	}, nil
}

// FromSecret is an alias for FromSeed: on the ledger a "secret" and a
// family seed are the same string.
func FromSecret(secret string) (*Wallet, error) {
	w, err := FromSeed(secret)
	if err != nil {
		return nil, newErr(ErrInvalidSecret, err)
	}
	return w, nil
}

// FromMnemonic derives a wallet from a BIP-39 mnemonic via the fixed
// path m/44'/144'/0'/0/0. The derived key is used directly as a
// secp256k1 private key scalar; it does not carry an XRPL family seed.
func FromMnemonic(mnemonic string) (*Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, newErr(ErrInvalidMnemonic, nil)
	}
	seed := bip39.NewSeed(mnemonic, "")

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, newErr(ErrInvalidMnemonic, err)
	}
	for _, childNum := range bip44Path {
		key, err = key.NewChildKey(childNum)
		if err != nil {
			return nil, newErr(ErrInvalidMnemonic, err)
		}
	}

	privKey := secp256k1.PrivKeyFromBytes(key.Key)
	privBytes := make([]byte, 0, 33)
	privBytes = append(privBytes, 0x00)
	privBytes = append(privBytes, privKey.Serialize()...)
	pubBytes := privKey.PubKey().SerializeCompressed()

	accountID, err := keypairs.DeriveClassicAddress(pubBytes)
	if err != nil {
		return nil, newErr(ErrInvalidMnemonic, err)
	}
	address, err := addresscodec.EncodeClassicAddress(accountID)
	if err != nil {
		return nil, newErr(ErrInvalidMnemonic, err)
	}

	return &Wallet{
		Algorithm:      addresscodec.Secp256k1,
		PublicKey:      pubBytes,
		privateKey:     privBytes,
		ClassicAddress: address,
	}, nil
}

// publicKeyHex renders the wallet's public key as upper-case hex, the
// form SigningPubKey carries on the wire.
func (w *Wallet) publicKeyHex() string {
	return strings.ToUpper(hex.EncodeToString(w.PublicKey))
}

// GetAddress returns the wallet's classic address.
func (w *Wallet) GetAddress() string { return w.ClassicAddress }

// Sign single-signs a transaction's field map (spec §4.8 Sign,
// single-signer path): it sets signing_pub_key, computes the signing
// serialization, hashes and signs it, stores txn_signature, then
// serializes and hashes the fully signed transaction.
func (w *Wallet) Sign(fields map[string]interface{}) (txBlob string, txHash string, err error) {
	signFields := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		signFields[k] = v
	}
	signFields["SigningPubKey"] = w.publicKeyHex()

	signingBlob, err := binarycodec.EncodeForSigning(signFields)
	if err != nil {
		return "", "", err
	}
	// keypairs.Sign hashes internally for secp256k1 and signs raw bytes
	// directly for ed25519, so the message here carries the STX\0 prefix
	// unhashed; hash.SigningHash (a precomputed SHA-512-half digest) is
	// not the right input for either algorithm.
	signMsg := append(append([]byte{}, hash.PrefixTransactionSign[:]...), signingBlob...)
	sig, err := keypairs.Sign(w.privateKey, w.Algorithm, signMsg)
	if err != nil {
		return "", "", err
	}

	signFields["TxnSignature"] = strings.ToUpper(hex.EncodeToString(sig))

	full, err := binarycodec.Encode(signFields)
	if err != nil {
		return "", "", err
	}
	return strings.ToUpper(hex.EncodeToString(full)), hash.TransactionID(full), nil
}

// Multisign computes this wallet's contribution to a multi-signed
// transaction (spec §4.8 Sign, multi-signer path): signing_pub_key is
// left empty on the transaction itself, and the signature is taken over
// the signing serialization plus this signer's raw AccountID. The caller
// appends the returned Signer to the transaction's Signers list;
// Common.baseFieldMap sorts that list by account ascending (via
// transaction.SortSigners) before the final Encode.
func (w *Wallet) Multisign(fields map[string]interface{}) (transaction.Signer, error) {
	signFields := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		signFields[k] = v
	}
	signFields["SigningPubKey"] = ""

	multisignBlob, err := binarycodec.EncodeForMultisigning(signFields, w.ClassicAddress)
	if err != nil {
		return transaction.Signer{}, err
	}
	signMsg := append(append([]byte{}, hash.PrefixMultiSign[:]...), multisignBlob...)
	sig, err := keypairs.Sign(w.privateKey, w.Algorithm, signMsg)
	if err != nil {
		return transaction.Signer{}, err
	}
	return transaction.Signer{
		Account:       w.ClassicAddress,
		SigningPubKey: w.publicKeyHex(),
		TxnSignature:  strings.ToUpper(hex.EncodeToString(sig)),
	}, nil
}
