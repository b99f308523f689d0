// dsa.go implements the composite signature engine (spec.md §4.C): two
// independent signatures, one PQ and one traditional, bound together by a
// domain-separated message prefix and a fixed PQ-first encoding. This
// generalizes the pairing pattern the teacher's pkg/chkem applies to one
// hardcoded KEM pair into a (pq Tag, trad Tag) dispatch driven by the
// registry, covering every composite ML-DSA row.
package composite

import (
	"github.com/cloudflare/circl/sign"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

// KeyPair holds both halves of a composite signature key pair.
type KeyPair struct {
	Tag registry.Tag

	PQPublic  sign.PublicKey
	PQPrivate sign.PrivateKey

	TradPublic  interface{}
	TradPrivate interface{}
}

// Signature is a decoded composite signature, PQ component first.
type Signature struct {
	PQ   []byte
	Trad []byte
}

// GenerateKeyPair generates both components of a composite signature key
// pair for tag. tag must be a registered composite-DSA tag (pure or
// hashed variant share the same (pq, trad) pair).
func GenerateKeyPair(tag registry.Tag) (*KeyPair, error) {
	row, ok := registry.Lookup(tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeDSA {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	pqPub, pqPriv, err := crypto.GenerateDSAKeyPair(row.PQTag)
	if err != nil {
		return nil, err
	}
	tradPub, tradPriv, err := GenerateClassicalKeyPair(row.TradTag)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		Tag:         tag,
		PQPublic:    pqPub,
		PQPrivate:   pqPriv,
		TradPublic:  tradPub,
		TradPrivate: tradPriv,
	}, nil
}

// preparedMessage builds M' = Domain || M (pure composites) or
// Domain || H(M) (hashed composites) per spec.md §4.C.
func preparedMessage(row registry.Row, message []byte) ([]byte, error) {
	domain, err := domainPrefix(row.OID)
	if err != nil {
		return nil, err
	}

	if !row.Prehash {
		return append(domain, message...), nil
	}

	digest, err := crypto.Digest(row.Hash, message)
	if err != nil {
		return nil, err
	}
	return append(domain, digest...), nil
}

// Sign produces a composite signature over message. Both component
// signatures must succeed; if either fails the whole operation fails
// with ErrSignatureFailed (the caller learns only that signing failed,
// never which half).
func Sign(kp *KeyPair, message []byte) (*Signature, error) {
	if kp == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	row, ok := registry.Lookup(kp.Tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeDSA {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	mPrime, err := preparedMessage(row, message)
	if err != nil {
		return nil, err
	}

	sigPQ, err := crypto.SignDSA(row.PQTag, kp.PQPrivate, mPrime)
	if err != nil {
		return nil, qerrors.NewCryptoError("composite.Sign", qerrors.ErrSignatureFailed)
	}
	sigTrad, err := SignClassical(row.TradTag, kp.TradPrivate, mPrime)
	if err != nil {
		return nil, qerrors.NewCryptoError("composite.Sign", qerrors.ErrSignatureFailed)
	}

	return &Signature{PQ: sigPQ, Trad: sigTrad}, nil
}

// Verify verifies a composite signature. It succeeds iff both component
// signatures verify; there is no one-of-two acceptance.
func Verify(tag registry.Tag, pqPub sign.PublicKey, tradPub interface{}, message []byte, sig *Signature) (bool, error) {
	row, ok := registry.Lookup(tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeDSA {
		return false, qerrors.ErrUnsupportedAlgorithm
	}
	if sig == nil {
		return false, qerrors.ErrInvalidSignature
	}

	mPrime, err := preparedMessage(row, message)
	if err != nil {
		return false, err
	}

	pqOK, err := crypto.VerifyDSA(row.PQTag, pqPub, mPrime, sig.PQ)
	if err != nil {
		return false, err
	}
	tradOK, err := VerifyClassical(row.TradTag, tradPub, mPrime, sig.Trad)
	if err != nil {
		return false, err
	}

	return pqOK && tradOK, nil
}

// MarshalSignature encodes sig as the SEQUENCE{sigPQ, sigTrad} DER form.
func MarshalSignature(sig *Signature) ([]byte, error) {
	if sig == nil {
		return nil, qerrors.ErrInvalidSignature
	}
	return MarshalCompositeSignature(sig.PQ, sig.Trad)
}

// ParseSignature decodes a DER-encoded composite signature.
func ParseSignature(der []byte) (*Signature, error) {
	pq, trad, err := UnmarshalCompositeSignature(der)
	if err != nil {
		return nil, err
	}
	return &Signature{PQ: pq, Trad: trad}, nil
}
