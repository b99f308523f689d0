// privatekey.go implements keys.PrivateKey: the private-key counterpart of
// PublicKey, DER/PEM-framed as PKCS#8 PrivateKeyInfo per spec.md §4.D and
// grounded on original_source's asn1/private_key.rs (oid, key, is_composite
// fields; from_pem/from_der/to_pem/to_der/sign methods carried over
// directly; composite support and Decapsulate added, matching the Rust
// crate's separate CompositePrivateKey/KEM types this module collapses
// into one dispatch-by-tag surface, in keeping with the teacher's
// preference for one generic call site over one type per algorithm).
package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/sign"
	circlEd448 "github.com/cloudflare/circl/sign/ed448"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/composite"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

const pemLabelPrivateKey = "PRIVATE KEY"

// privateKeyInfo mirrors the PKCS#8 OneAsymmetricKey shape (RFC 5958),
// version 0, no attributes.
type privateKeyInfo struct {
	Version    int
	Algorithm  pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// PrivateKey is an algorithm-tagged private key; see PublicKey for the
// Raw/Composite convention this mirrors.
type PrivateKey struct {
	Tag       registry.Tag
	Raw       []byte
	Composite bool
}

// NewPrivateKey wraps a concrete private key object for tag.
func NewPrivateKey(tag registry.Tag, primitive interface{}) (*PrivateKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok || row.Composite {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	raw, err := privateKeyToRaw(tag, primitive)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{Tag: tag, Raw: raw}, nil
}

// FromCompositePrivateKey builds a composite private key from the
// already-built DER (PKCS#8 OneAsymmetricKey) of its two components, PQ
// first.
func FromCompositePrivateKey(tag registry.Tag, pqDER, tradDER []byte) (*PrivateKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok || row.Family != registry.FamilyCompositeDSA {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	raw, err := composite.MarshalCompositeKey(pqDER, tradDER)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{Tag: tag, Raw: raw, Composite: true}, nil
}

// FromCompositeKEMPrivateKey builds a composite KEM private key from the
// raw PQ and traditional private key bytes (see FromCompositeKEM on
// PublicKey for why this is a flat byte pair, not nested DER).
func FromCompositeKEMPrivateKey(tag registry.Tag, pqRaw, tradRaw []byte) (*PrivateKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok || row.Family != registry.FamilyCompositeKEM {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	raw, err := composite.MarshalCompositeCiphertext(pqRaw, tradRaw)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{Tag: tag, Raw: raw, Composite: true}, nil
}

// Components splits a composite signature private key back into the DER
// of its two sub-keys, PQ first.
func (k *PrivateKey) Components() (pqDER, tradDER []byte, err error) {
	if !k.Composite {
		return nil, nil, qerrors.ErrUnsupportedAlgorithm
	}
	return composite.UnmarshalCompositeKey(k.Raw)
}

// Primitive decodes Raw back into the concrete private key object for a
// non-composite key's tag.
func (k *PrivateKey) Primitive() (interface{}, error) {
	if k.Composite {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	return privateKeyFromRaw(k.Tag, k.Raw)
}

// ToDER encodes the key as a PKCS#8 PrivateKeyInfo, per spec.md §4.D.
func (k *PrivateKey) ToDER() ([]byte, error) {
	row, ok := registry.Lookup(k.Tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	oid, err := oidFromString(row.OID)
	if err != nil {
		return nil, err
	}
	info := privateKeyInfo{
		Version:    0,
		Algorithm:  pkix.AlgorithmIdentifier{Algorithm: oid},
		PrivateKey: k.Raw,
	}
	der, err := asn1.Marshal(info)
	if err != nil {
		return nil, qerrors.NewCryptoError("keys.PrivateKey.ToDER", err)
	}
	return der, nil
}

// FromPrivateKeyDER decodes a PKCS#8 PrivateKeyInfo produced by ToDER.
func FromPrivateKeyDER(der []byte) (*PrivateKey, error) {
	var info privateKeyInfo
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil || len(rest) != 0 {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	tag, ok := registry.LookupOID(info.Algorithm.Algorithm.String())
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	row, _ := registry.Lookup(tag)
	return &PrivateKey{Tag: tag, Raw: info.PrivateKey, Composite: row.Composite}, nil
}

// ToPEM encodes the key as a PEM "PRIVATE KEY" block.
func (k *PrivateKey) ToPEM() ([]byte, error) {
	der, err := k.ToDER()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemLabelPrivateKey, Bytes: der}), nil
}

// FromPrivateKeyPEM decodes a PEM "PRIVATE KEY" block produced by ToPEM.
func FromPrivateKeyPEM(data []byte) (*PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemLabelPrivateKey {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	return FromPrivateKeyDER(block.Bytes)
}

// Sign signs message. Composite keys sign with both components and bind
// them with the domain-separated prefix pkg/composite's Sign implements;
// non-composite DSA keys sign directly.
func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	row, ok := registry.Lookup(k.Tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	if row.Composite {
		if row.Family != registry.FamilyCompositeDSA {
			return nil, qerrors.ErrUnsupportedAlgorithm
		}
		pqDER, tradDER, err := k.Components()
		if err != nil {
			return nil, err
		}
		pqPriv, err := FromPrivateKeyDER(pqDER)
		if err != nil {
			return nil, err
		}
		tradPriv, err := FromPrivateKeyDER(tradDER)
		if err != nil {
			return nil, err
		}
		pqPrimitive, err := privateKeyFromRaw(row.PQTag, pqPriv.Raw)
		if err != nil {
			return nil, err
		}
		tradPrimitive, err := privateKeyFromRaw(row.TradTag, tradPriv.Raw)
		if err != nil {
			return nil, err
		}
		pqPriv2, ok := pqPrimitive.(sign.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		kp := &composite.KeyPair{Tag: k.Tag, PQPrivate: pqPriv2, TradPrivate: tradPrimitive}
		sig, err := composite.Sign(kp, message)
		if err != nil {
			return nil, err
		}
		return composite.MarshalSignature(sig)
	}

	primitive, err := k.Primitive()
	if err != nil {
		return nil, err
	}
	return signSimple(k.Tag, primitive, message)
}

// signSimple dispatches signing for a non-composite tag to the matching
// pkg/crypto adapter.
func signSimple(tag registry.Tag, priv interface{}, message []byte) ([]byte, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	switch row.Family {
	case registry.FamilyRSAPSS, registry.FamilyRSAPKCS15:
		key, ok := priv.(*rsa.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return crypto.SignRSA(tag, key, message)

	case registry.FamilyECDSA:
		key, ok := priv.(*ecdsa.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return crypto.SignECDSA(tag, key, message)

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			key, ok := priv.(circlEd448.PrivateKey)
			if !ok {
				return nil, qerrors.ErrInvalidPrivateKey
			}
			return crypto.SignEd448(key, message)
		}
		key, ok := priv.(ed25519.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return crypto.SignEd25519(key, message)

	case registry.FamilyMLDSA, registry.FamilySLHDSA:
		key, ok := priv.(sign.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return crypto.SignDSA(tag, key, message)

	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}

// Decapsulate recovers the shared secret from ciphertext, for plain
// ML-KEM tags and composite-KEM tags alike.
func (k *PrivateKey) Decapsulate(ciphertext []byte) ([]byte, error) {
	row, ok := registry.Lookup(k.Tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	if row.Family == registry.FamilyCompositeKEM {
		pqRaw, tradRaw, err := composite.UnmarshalCompositeCiphertext(k.Raw)
		if err != nil {
			return nil, err
		}
		kp, err := composite.KEMKeyPairFromRawComponents(k.Tag, pqRaw, tradRaw)
		if err != nil {
			return nil, err
		}
		ct, err := composite.ParseCiphertext(ciphertext)
		if err != nil {
			return nil, err
		}
		return composite.Decapsulate(ct, kp)
	}

	primitive, err := k.Primitive()
	if err != nil {
		return nil, err
	}
	priv, ok := primitive.(kem.PrivateKey)
	if !ok {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	return crypto.MLKEMDecapsulate(k.Tag, priv, ciphertext)
}

// Zeroize overwrites the key's raw material with zeros. The PrivateKey
// must not be used afterward.
func (k *PrivateKey) Zeroize() {
	crypto.Zeroize(k.Raw)
}
