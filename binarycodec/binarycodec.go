// Package binarycodec implements the XRPL canonical binary
// serialization format: field-sorted, type-tagged encoding of
// transactions and ledger objects, built on the field registry in
// binarycodec/definitions and the per-type codecs in binarycodec/types.
package binarycodec

import (
	"github.com/ripplecore/xrplgo/addresscodec"
)

// xAddressTagProjection pairs an account-bearing field with the tag
// field an embedded X-address tag should be projected into.
var xAddressTagProjection = map[string]string{
	"Account":     "SourceTag",
	"Destination": "DestinationTag",
}

// Encode serializes the full field set (every serialized field,
// regardless of whether it participates in signing) in canonical order.
func Encode(fields map[string]interface{}) ([]byte, error) {
	resolved, err := resolveXAddresses(fields)
	if err != nil {
		return nil, err
	}
	return encodeFieldMap(resolved, false)
}

// Decode deserializes a full field set previously produced by Encode.
func Decode(blob []byte) (map[string]interface{}, error) {
	fields, _, err := decodeFieldMap(blob, false)
	return fields, err
}

// EncodeForSigning serializes only the fields marked as signing fields
// in the registry, for use in constructing a single-signature signing
// blob (prefixed separately with hash.PrefixTransactionSign by the
// caller before hashing/signing).
func EncodeForSigning(fields map[string]interface{}) ([]byte, error) {
	resolved, err := resolveXAddresses(fields)
	if err != nil {
		return nil, err
	}
	return encodeFieldMap(resolved, true)
}

// EncodeForMultisigning serializes the signing fields followed by the
// raw 20-byte AccountID of the signer, matching the XRPL multi-signing
// blob layout (prefixed separately with hash.PrefixMultiSign).
func EncodeForMultisigning(fields map[string]interface{}, signerAddress string) ([]byte, error) {
	body, err := EncodeForSigning(fields)
	if err != nil {
		return nil, err
	}
	signerAccountID, err := addresscodec.DecodeClassicAddress(signerAddress)
	if err != nil {
		return nil, wrapErr(ErrMalformed, "invalid signer address", err)
	}
	return append(body, signerAccountID...), nil
}

// resolveXAddresses returns a copy of fields with any X-address valued
// Account/Destination fields replaced by their classic address, with the
// embedded tag (if any) projected into the corresponding SourceTag/
// DestinationTag field. It is an error for an X-address to carry a tag
// that conflicts with an explicitly set tag field.
func resolveXAddresses(fields map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		out[k] = v
	}

	for accountField, tagField := range xAddressTagProjection {
		raw, ok := out[accountField]
		if !ok {
			continue
		}
		address, ok := raw.(string)
		if !ok || !addresscodec.IsValidXAddress(address) {
			continue
		}

		accountID, tag, _, err := addresscodec.XAddressToClassicAddress(address)
		if err != nil {
			return nil, wrapErr(ErrMalformed, "invalid X-address", err)
		}
		classic, err := addresscodec.EncodeClassicAddress(accountID)
		if err != nil {
			return nil, wrapErr(ErrMalformed, "invalid X-address account id", err)
		}

		if existing, hasTag := out[tagField]; hasTag && tag != nil {
			existingTag, err := toUint64(existing)
			if err != nil || uint32(existingTag) != *tag {
				return nil, newErr(ErrXAddressTagMismatch, accountField)
			}
		}

		out[accountField] = classic
		if tag != nil {
			out[tagField] = uint64(*tag)
		}
	}

	return out, nil
}
