// publickey.go implements keys.PublicKey: the algorithm-agnostic wrapper
// spec.md §3 and §4.D describe, carrying an OID, raw key material, and a
// composite flag through DER (SPKI)/PEM round trips and dispatching
// Verify/Encapsulate by registry tag. Grounded on original_source's
// asn1/private_key.rs PrivateKey type (the public-key analogue the
// retrieval pack did not include a file for) and on the teacher's
// per-family dispatch style in pkg/crypto.
package keys

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"strconv"
	"strings"

	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"

	"github.com/cloudflare/circl/kem"
	circlEd448 "github.com/cloudflare/circl/sign/ed448"
	"github.com/cloudflare/circl/sign"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/composite"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

const pemLabelPublicKey = "PUBLIC KEY"

// PublicKey is an algorithm-tagged public key: one of a plain ML-KEM/
// ML-DSA/SLH-DSA/RSA/ECDSA/Ed25519/Ed448 key, or a composite key whose Raw
// field holds the composite.MarshalCompositeKey encoding of its two
// components.
type PublicKey struct {
	Tag       registry.Tag
	Raw       []byte
	Composite bool
}

// NewPublicKey wraps a concrete public key object (the types pkg/crypto's
// Generate*/Parse* functions return) for tag.
func NewPublicKey(tag registry.Tag, primitive interface{}) (*PublicKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	if row.Composite {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	raw, err := publicKeyToRaw(tag, primitive)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Tag: tag, Raw: raw}, nil
}

// FromComposite builds a composite public key from the already-built DER
// (SPKI) of its two components, PQ first.
func FromComposite(tag registry.Tag, pqDER, tradDER []byte) (*PublicKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok || row.Family != registry.FamilyCompositeDSA {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	raw, err := composite.MarshalCompositeKey(pqDER, tradDER)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Tag: tag, Raw: raw, Composite: true}, nil
}

// Components splits a composite public key back into the DER of its two
// sub-keys, PQ first.
func (k *PublicKey) Components() (pqDER, tradDER []byte, err error) {
	if !k.Composite {
		return nil, nil, qerrors.ErrUnsupportedAlgorithm
	}
	return composite.UnmarshalCompositeKey(k.Raw)
}

// Primitive decodes Raw back into the concrete public key object for a
// non-composite key's tag.
func (k *PublicKey) Primitive() (interface{}, error) {
	if k.Composite {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	return publicKeyFromRaw(k.Tag, k.Raw)
}

// ToDER encodes the key as an X.509 SubjectPublicKeyInfo, per spec.md §4.D.
func (k *PublicKey) ToDER() ([]byte, error) {
	row, ok := registry.Lookup(k.Tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	oid, err := oidFromString(row.OID)
	if err != nil {
		return nil, err
	}
	spki := pkix.SubjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{Algorithm: oid},
		PublicKey: asn1.BitString{Bytes: k.Raw, BitLength: len(k.Raw) * 8},
	}
	der, err := asn1.Marshal(spki)
	if err != nil {
		return nil, qerrors.NewCryptoError("keys.PublicKey.ToDER", err)
	}
	return der, nil
}

// FromPublicKeyDER decodes an X.509 SubjectPublicKeyInfo produced by ToDER.
func FromPublicKeyDER(der []byte) (*PublicKey, error) {
	var spki pkix.SubjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil || len(rest) != 0 {
		return nil, qerrors.ErrInvalidPublicKey
	}
	tag, ok := registry.LookupOID(spki.Algorithm.Algorithm.String())
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	row, _ := registry.Lookup(tag)
	return &PublicKey{Tag: tag, Raw: spki.PublicKey.Bytes, Composite: row.Composite}, nil
}

// ToPEM encodes the key as a PEM "PUBLIC KEY" block.
func (k *PublicKey) ToPEM() ([]byte, error) {
	der, err := k.ToDER()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemLabelPublicKey, Bytes: der}), nil
}

// FromPublicKeyPEM decodes a PEM "PUBLIC KEY" block produced by ToPEM.
func FromPublicKeyPEM(data []byte) (*PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemLabelPublicKey {
		return nil, qerrors.ErrInvalidPublicKey
	}
	return FromPublicKeyDER(block.Bytes)
}

// Verify checks a signature produced against this public key. Composite
// keys require both components to verify (pkg/composite.Verify enforces
// this); there is no one-of-two acceptance.
func (k *PublicKey) Verify(message, sig []byte) (bool, error) {
	row, ok := registry.Lookup(k.Tag)
	if !ok {
		return false, qerrors.ErrUnsupportedAlgorithm
	}

	if row.Composite {
		pqDER, tradDER, err := k.Components()
		if err != nil {
			return false, err
		}
		pqPub, err := FromPublicKeyDER(pqDER)
		if err != nil {
			return false, err
		}
		tradPub, err := FromPublicKeyDER(tradDER)
		if err != nil {
			return false, err
		}
		pqPrimitive, err := publicKeyFromRaw(row.PQTag, pqPub.Raw)
		if err != nil {
			return false, err
		}
		tradPrimitive, err := publicKeyFromRaw(row.TradTag, tradPub.Raw)
		if err != nil {
			return false, err
		}
		pqPub2, ok := pqPrimitive.(sign.PublicKey)
		if !ok {
			return false, qerrors.ErrInvalidPublicKey
		}
		compositeSig, err := composite.ParseSignature(sig)
		if err != nil {
			return false, err
		}
		return composite.Verify(k.Tag, pqPub2, tradPrimitive, message, compositeSig)
	}

	primitive, err := k.Primitive()
	if err != nil {
		return false, err
	}
	return verifySimple(k.Tag, primitive, message, sig)
}

// verifySimple dispatches signature verification for a non-composite tag
// to the matching pkg/crypto adapter.
func verifySimple(tag registry.Tag, pub interface{}, message, sig []byte) (bool, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return false, qerrors.ErrUnsupportedAlgorithm
	}

	switch row.Family {
	case registry.FamilyRSAPSS, registry.FamilyRSAPKCS15:
		key, ok := pub.(*rsa.PublicKey)
		if !ok {
			return false, qerrors.ErrInvalidPublicKey
		}
		return crypto.VerifyRSA(tag, key, message, sig)

	case registry.FamilyECDSA:
		key, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return false, qerrors.ErrInvalidPublicKey
		}
		return crypto.VerifyECDSA(tag, key, message, sig)

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			key, ok := pub.(circlEd448.PublicKey)
			if !ok {
				return false, qerrors.ErrInvalidPublicKey
			}
			return crypto.VerifyEd448(key, message, sig)
		}
		key, ok := pub.(ed25519.PublicKey)
		if !ok {
			return false, qerrors.ErrInvalidPublicKey
		}
		return crypto.VerifyEd25519(key, message, sig)

	case registry.FamilyMLDSA, registry.FamilySLHDSA:
		key, ok := pub.(sign.PublicKey)
		if !ok {
			return false, qerrors.ErrInvalidPublicKey
		}
		return crypto.VerifyDSA(tag, key, message, sig)

	default:
		return false, qerrors.ErrUnsupportedAlgorithm
	}
}

// Encapsulate performs KEM encapsulation against this public key, for
// plain ML-KEM tags and composite-KEM tags alike. It returns the encoded
// ciphertext (composite or plain, per the tag) and the shared secret.
func (k *PublicKey) Encapsulate() (ciphertext, sharedSecret []byte, err error) {
	row, ok := registry.Lookup(k.Tag)
	if !ok {
		return nil, nil, qerrors.ErrUnsupportedAlgorithm
	}

	if row.Family == registry.FamilyCompositeKEM {
		compositePub, err := compositeKEMPublicKeyFromKeyObject(k)
		if err != nil {
			return nil, nil, err
		}
		ct, ss, err := composite.Encapsulate(compositePub)
		if err != nil {
			return nil, nil, err
		}
		der, err := composite.MarshalCiphertext(ct)
		if err != nil {
			return nil, nil, err
		}
		return der, ss, nil
	}

	primitive, err := k.Primitive()
	if err != nil {
		return nil, nil, err
	}
	pub, ok := primitive.(kem.PublicKey)
	if !ok {
		return nil, nil, qerrors.ErrInvalidPublicKey
	}
	return crypto.MLKEMEncapsulate(k.Tag, pub)
}

// FromCompositeKEM builds a composite KEM public key from the raw PQ and
// traditional public key bytes (not nested SPKI: unlike composite
// signature components, X25519 and ECDH-P384 carry no registered
// registry.Tag of their own, so their raw bytes are framed directly as an
// OCTET STRING pair rather than recursed through ToDER/FromPublicKeyDER).
func FromCompositeKEM(tag registry.Tag, pqRaw, tradRaw []byte) (*PublicKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok || row.Family != registry.FamilyCompositeKEM {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	raw, err := composite.MarshalCompositeCiphertext(pqRaw, tradRaw)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Tag: tag, Raw: raw, Composite: true}, nil
}

// compositeKEMPublicKeyFromKeyObject decodes k.Raw (an OCTET STRING pair
// of raw PQ/traditional public key bytes) into a composite.PublicKey.
func compositeKEMPublicKeyFromKeyObject(k *PublicKey) (*composite.PublicKey, error) {
	pqRaw, tradRaw, err := composite.UnmarshalCompositeCiphertext(k.Raw)
	if err != nil {
		return nil, err
	}
	return composite.PublicKeyFromRawComponents(k.Tag, pqRaw, tradRaw)
}

// oidFromString parses a dotted-decimal OID string into an
// asn1.ObjectIdentifier.
func oidFromString(oid string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(oid, ".")
	ints := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, qerrors.ErrUnsupportedAlgorithm
		}
		ints[i] = n
	}
	return asn1.ObjectIdentifier(ints), nil
}
