// codec.go implements the DER encode/decode for the three composite outer
// structures spec.md §3 and §9 describe — composite signature, composite
// KEM ciphertext, and composite key — plus the domain-separation prefix
// used by composite signing. All three structures are a SEQUENCE of two
// components in a fixed order: the PQ component first. This ordering is
// load-bearing for interoperability (spec.md §9) and is never varied here.
package composite

import (
	"encoding/asn1"
	"strconv"
	"strings"

	qerrors "github.com/pqlabs/pqx/internal/errors"
)

// compositeBitStringPair and compositeOctetPair share one wire shape for composite signatures
// (BIT STRING components) and composite ciphertexts (OCTET STRING
// components); asn1 encodes []byte as OCTET STRING and asn1.BitString as
// BIT STRING, so the two use distinct Go types over the same SEQUENCE
// shape.
type compositeOctetPair struct {
	PQ   []byte
	Trad []byte
}

type compositeBitStringPair struct {
	PQ   asn1.BitString
	Trad asn1.BitString
}

// MarshalCompositeSignature DER-encodes a composite signature as
// SEQUENCE { sigPQ BIT STRING, sigTrad BIT STRING }, PQ first.
func MarshalCompositeSignature(sigPQ, sigTrad []byte) ([]byte, error) {
	pair := compositeBitStringPair{
		PQ:   asn1.BitString{Bytes: sigPQ, BitLength: len(sigPQ) * 8},
		Trad: asn1.BitString{Bytes: sigTrad, BitLength: len(sigTrad) * 8},
	}
	der, err := asn1.Marshal(pair)
	if err != nil {
		return nil, qerrors.NewCryptoError("composite.MarshalSignature", err)
	}
	return der, nil
}

// UnmarshalCompositeSignature decodes a composite signature produced by
// MarshalCompositeSignature, returning the PQ and traditional halves.
func UnmarshalCompositeSignature(der []byte) (sigPQ, sigTrad []byte, err error) {
	var pair compositeBitStringPair
	rest, err := asn1.Unmarshal(der, &pair)
	if err != nil || len(rest) != 0 {
		return nil, nil, qerrors.ErrInvalidSignature
	}
	return pair.PQ.Bytes, pair.Trad.Bytes, nil
}

// MarshalCompositeCiphertext DER-encodes a composite KEM ciphertext as
// SEQUENCE { ctPQ OCTET STRING, ctTrad OCTET STRING }, PQ first.
func MarshalCompositeCiphertext(ctPQ, ctTrad []byte) ([]byte, error) {
	pair := compositeOctetPair{PQ: ctPQ, Trad: ctTrad}
	der, err := asn1.Marshal(pair)
	if err != nil {
		return nil, qerrors.NewCryptoError("composite.MarshalCiphertext", err)
	}
	return der, nil
}

// UnmarshalCompositeCiphertext decodes a composite ciphertext produced by
// MarshalCompositeCiphertext.
func UnmarshalCompositeCiphertext(der []byte) (ctPQ, ctTrad []byte, err error) {
	var pair compositeOctetPair
	rest, err := asn1.Unmarshal(der, &pair)
	if err != nil || len(rest) != 0 {
		return nil, nil, qerrors.ErrInvalidCiphertext
	}
	return pair.PQ, pair.Trad, nil
}

// MarshalCompositeKey DER-encodes a composite private or public key as
// SEQUENCE { pqComponent ANY, tradComponent ANY }, PQ first. The two
// components are themselves already-encoded DER (OneAsymmetricKey for
// private keys, SubjectPublicKeyInfo for public keys); pkg/keys supplies
// those encodings and treats this purely as the outer framing.
func MarshalCompositeKey(pqDER, tradDER []byte) ([]byte, error) {
	var pqRaw, tradRaw asn1.RawValue
	if _, err := asn1.Unmarshal(pqDER, &pqRaw); err != nil {
		return nil, qerrors.NewCryptoError("composite.MarshalKey", err)
	}
	if _, err := asn1.Unmarshal(tradDER, &tradRaw); err != nil {
		return nil, qerrors.NewCryptoError("composite.MarshalKey", err)
	}
	der, err := asn1.Marshal(struct {
		PQ   asn1.RawValue
		Trad asn1.RawValue
	}{pqRaw, tradRaw})
	if err != nil {
		return nil, qerrors.NewCryptoError("composite.MarshalKey", err)
	}
	return der, nil
}

// UnmarshalCompositeKey decodes a composite key outer structure, returning
// the raw DER of each component unchanged.
func UnmarshalCompositeKey(der []byte) (pqDER, tradDER []byte, err error) {
	var pair struct {
		PQ   asn1.RawValue
		Trad asn1.RawValue
	}
	rest, err := asn1.Unmarshal(der, &pair)
	if err != nil || len(rest) != 0 {
		return nil, nil, qerrors.ErrInvalidPrivateKey
	}
	return pair.PQ.FullBytes, pair.Trad.FullBytes, nil
}

// domainPrefix derives the caller-independent domain-separation byte
// string spec.md §4.C requires: the DER encoding of the composite OID
// itself. Using the OID's own canonical encoding means two different
// composite OIDs can never collide on the same prefix, and the prefix
// needs no separate registry column.
func domainPrefix(oid string) ([]byte, error) {
	parts := strings.Split(oid, ".")
	ints := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, qerrors.ErrUnsupportedAlgorithm
		}
		ints[i] = n
	}
	der, err := asn1.Marshal(asn1.ObjectIdentifier(ints))
	if err != nil {
		return nil, qerrors.NewCryptoError("composite.domainPrefix", err)
	}
	return der, nil
}
