// kem.go implements the composite KEM engine (spec.md §4.C): the direct
// generalization of the teacher's pkg/chkem/chkem.go, which hardcodes one
// X25519+ML-KEM-1024 pair. Here the pair is read from the registry row so
// every composite-KEM tag (ML-KEM-512/768/1024+X25519, ML-KEM-1024+ECDH-
// P384) shares one Encapsulate/Decapsulate implementation.
//
// The registry's composite-KEM rows carry TradTag: 0 (see DESIGN.md) —
// X25519 and ECDH-P384 are not themselves registered DSA/KEM tags, so
// the traditional component here is selected directly from the composite
// tag rather than through row.TradTag.
package composite

import (
	"crypto/ecdh"

	"github.com/cloudflare/circl/kem"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

// tradKEMKind classifies the traditional half of a composite KEM tag.
type tradKEMKind uint8

const (
	tradX25519 tradKEMKind = iota + 1
	tradECDHP384
)

var compositeKEMTradKind = map[registry.Tag]tradKEMKind{
	registry.MLKEM512X25519:    tradX25519,
	registry.MLKEM768X25519:    tradX25519,
	registry.MLKEM1024X25519:   tradX25519,
	registry.MLKEM1024ECDHP384: tradECDHP384,
}

// KEMKeyPair holds both components of a composite KEM key pair.
type KEMKeyPair struct {
	Tag registry.Tag

	PQPublic  kem.PublicKey
	PQPrivate kem.PrivateKey

	// Exactly one of the X25519 or ECDH-P384 pair is populated, per
	// compositeKEMTradKind[Tag].
	X25519   *crypto.X25519KeyPair
	ECDHP384 *crypto.ECDHKeyPair
}

// GenerateKEMKeyPair generates both components of a composite KEM key
// pair for tag.
func GenerateKEMKeyPair(tag registry.Tag) (*KEMKeyPair, error) {
	row, ok := registry.Lookup(tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeKEM {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	kind, ok := compositeKEMTradKind[tag]
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	pqKP, err := crypto.GenerateMLKEMKeyPair(row.PQTag)
	if err != nil {
		return nil, err
	}

	out := &KEMKeyPair{Tag: tag, PQPublic: pqKP.EncapsulationKey, PQPrivate: pqKP.DecapsulationKey}
	switch kind {
	case tradX25519:
		x, err := crypto.GenerateX25519KeyPair()
		if err != nil {
			return nil, err
		}
		out.X25519 = x
	case tradECDHP384:
		e, err := crypto.GenerateECDHP384KeyPair()
		if err != nil {
			return nil, err
		}
		out.ECDHP384 = e
	}
	return out, nil
}

// PublicKey is the recipient-facing half of a composite KEM key pair.
type PublicKey struct {
	Tag      registry.Tag
	PQ       kem.PublicKey
	X25519   *ecdh.PublicKey
	ECDHP384 *ecdh.PublicKey
}

// PublicKey extracts the public components of kp.
func (kp *KEMKeyPair) PublicKey() *PublicKey {
	pub := &PublicKey{Tag: kp.Tag, PQ: kp.PQPublic}
	if kp.X25519 != nil {
		pub.X25519 = kp.X25519.PublicKey
	}
	if kp.ECDHP384 != nil {
		pub.ECDHP384 = kp.ECDHP384.PublicKey
	}
	return pub
}

// RawComponents returns the raw PQ and traditional public key bytes, for
// callers (pkg/keys) that frame them as a DER component pair themselves.
func (pub *PublicKey) RawComponents() (pqRaw, tradRaw []byte, err error) {
	pqRaw, err = crypto.MarshalMLKEMPublicKey(pub.PQ)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case pub.X25519 != nil:
		tradRaw = pub.X25519.Bytes()
	case pub.ECDHP384 != nil:
		tradRaw = pub.ECDHP384.Bytes()
	default:
		return nil, nil, qerrors.ErrInvalidPublicKey
	}
	return pqRaw, tradRaw, nil
}

// PublicKeyFromRawComponents reconstructs a composite KEM public key from
// its raw PQ and traditional public key bytes.
func PublicKeyFromRawComponents(tag registry.Tag, pqRaw, tradRaw []byte) (*PublicKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeKEM {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	kind, ok := compositeKEMTradKind[tag]
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	pqPub, err := crypto.ParseMLKEMPublicKey(row.PQTag, pqRaw)
	if err != nil {
		return nil, err
	}

	pub := &PublicKey{Tag: tag, PQ: pqPub}
	switch kind {
	case tradX25519:
		pub.X25519, err = crypto.ParseX25519PublicKey(tradRaw)
	case tradECDHP384:
		pub.ECDHP384, err = crypto.ParseECDHP384PublicKey(tradRaw)
	}
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// RawComponents returns the raw PQ and traditional private key bytes.
func (kp *KEMKeyPair) RawComponents() (pqRaw, tradRaw []byte, err error) {
	pqRaw, err = crypto.MarshalMLKEMPrivateKey(kp.PQPrivate)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case kp.X25519 != nil:
		tradRaw = kp.X25519.PrivateKeyBytes()
	case kp.ECDHP384 != nil:
		tradRaw = kp.ECDHP384.PrivateKey.Bytes()
	default:
		return nil, nil, qerrors.ErrInvalidPrivateKey
	}
	return pqRaw, tradRaw, nil
}

// KEMKeyPairFromRawComponents reconstructs a composite KEM key pair from
// its raw PQ and traditional private key bytes.
func KEMKeyPairFromRawComponents(tag registry.Tag, pqRaw, tradRaw []byte) (*KEMKeyPair, error) {
	row, ok := registry.Lookup(tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeKEM {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	kind, ok := compositeKEMTradKind[tag]
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	pqPriv, err := crypto.ParseMLKEMPrivateKey(row.PQTag, pqRaw)
	if err != nil {
		return nil, err
	}

	// PQPublic is left nil: Decapsulate only needs PQPrivate, and the
	// traditional half's public component is re-derived below from its
	// private key, so no public component needs round-tripping here.
	kp := &KEMKeyPair{Tag: tag, PQPrivate: pqPriv}
	switch kind {
	case tradX25519:
		priv, perr := crypto.NewX25519KeyPairFromBytes(tradRaw)
		if perr != nil {
			return nil, perr
		}
		kp.X25519 = priv
	case tradECDHP384:
		privKey, perr := crypto.ParseECDHP384PrivateKey(tradRaw)
		if perr != nil {
			return nil, perr
		}
		kp.ECDHP384 = &crypto.ECDHKeyPair{PrivateKey: privKey, PublicKey: privKey.PublicKey()}
	}
	return kp, nil
}

// KEMCiphertext is a decoded composite KEM ciphertext, PQ component first.
type KEMCiphertext struct {
	PQ   []byte
	Trad []byte
}

// domain encodes the OIDs of both sub-KEMs, per spec.md §4.C: here that
// is simply the composite tag's own OID, since the registry already
// binds one composite OID to exactly one (pq, trad) pair.
func kemDomain(row registry.Row) (string, error) {
	return row.OID, nil
}

// Encapsulate performs composite KEM encapsulation against recipientPublic,
// returning the combined ciphertext and the combined shared secret.
func Encapsulate(recipientPublic *PublicKey) (*KEMCiphertext, []byte, error) {
	if recipientPublic == nil || recipientPublic.PQ == nil {
		return nil, nil, qerrors.ErrInvalidPublicKey
	}
	row, ok := registry.Lookup(recipientPublic.Tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeKEM {
		return nil, nil, qerrors.ErrUnsupportedAlgorithm
	}
	kind, ok := compositeKEMTradKind[recipientPublic.Tag]
	if !ok {
		return nil, nil, qerrors.ErrUnsupportedAlgorithm
	}

	ctPQ, ssPQ, err := crypto.MLKEMEncapsulate(row.PQTag, recipientPublic.PQ)
	if err != nil {
		return nil, nil, err
	}

	var ctTrad, ssTrad []byte
	switch kind {
	case tradX25519:
		if recipientPublic.X25519 == nil {
			return nil, nil, qerrors.ErrInvalidPublicKey
		}
		ephemeral, err := crypto.GenerateX25519KeyPair()
		if err != nil {
			return nil, nil, err
		}
		ssTrad, err = crypto.X25519(ephemeral.PrivateKey, recipientPublic.X25519)
		if err != nil {
			return nil, nil, err
		}
		ctTrad = ephemeral.PublicKeyBytes()

	case tradECDHP384:
		if recipientPublic.ECDHP384 == nil {
			return nil, nil, qerrors.ErrInvalidPublicKey
		}
		ephemeral, err := crypto.GenerateECDHP384KeyPair()
		if err != nil {
			return nil, nil, err
		}
		ssTrad, err = crypto.ECDHP384(ephemeral.PrivateKey, recipientPublic.ECDHP384)
		if err != nil {
			return nil, nil, err
		}
		ctTrad = ephemeral.PublicKey.Bytes()
	}

	domain, err := kemDomain(row)
	if err != nil {
		return nil, nil, err
	}
	ss, err := crypto.CombineKEMSecrets(domain, ssPQ, ssTrad, ctPQ, ctTrad, row.SSLen)
	if err != nil {
		return nil, nil, err
	}
	crypto.ZeroizeMultiple(ssPQ, ssTrad)

	return &KEMCiphertext{PQ: ctPQ, Trad: ctTrad}, ss, nil
}

// Decapsulate performs composite KEM decapsulation, recovering the same
// shared secret Encapsulate derived. If either half fails to decapsulate,
// the whole operation fails with ErrDecapFailed without revealing which
// side failed.
func Decapsulate(ct *KEMCiphertext, kp *KEMKeyPair) ([]byte, error) {
	if ct == nil || len(ct.PQ) == 0 || len(ct.Trad) == 0 {
		return nil, qerrors.ErrInvalidCiphertext
	}
	if kp == nil || kp.PQPrivate == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	row, ok := registry.Lookup(kp.Tag)
	if !ok || !row.Composite || row.Family != registry.FamilyCompositeKEM {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	kind, ok := compositeKEMTradKind[kp.Tag]
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	ssPQ, err := crypto.MLKEMDecapsulate(row.PQTag, kp.PQPrivate, ct.PQ)
	if err != nil {
		return nil, qerrors.NewCryptoError("composite.Decapsulate", qerrors.ErrDecapFailed)
	}

	var ssTrad []byte
	switch kind {
	case tradX25519:
		if kp.X25519 == nil {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		ephemeralPub, err := crypto.ParseX25519PublicKey(ct.Trad)
		if err != nil {
			return nil, qerrors.NewCryptoError("composite.Decapsulate", qerrors.ErrDecapFailed)
		}
		ssTrad, err = crypto.X25519(kp.X25519.PrivateKey, ephemeralPub)
		if err != nil {
			return nil, qerrors.NewCryptoError("composite.Decapsulate", qerrors.ErrDecapFailed)
		}

	case tradECDHP384:
		if kp.ECDHP384 == nil {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		ephemeralPub, err := crypto.ParseECDHP384PublicKey(ct.Trad)
		if err != nil {
			return nil, qerrors.NewCryptoError("composite.Decapsulate", qerrors.ErrDecapFailed)
		}
		ssTrad, err = crypto.ECDHP384(kp.ECDHP384.PrivateKey, ephemeralPub)
		if err != nil {
			return nil, qerrors.NewCryptoError("composite.Decapsulate", qerrors.ErrDecapFailed)
		}
	}

	domain, err := kemDomain(row)
	if err != nil {
		return nil, err
	}
	ss, err := crypto.CombineKEMSecrets(domain, ssPQ, ssTrad, ct.PQ, ct.Trad, row.SSLen)
	if err != nil {
		return nil, err
	}
	crypto.ZeroizeMultiple(ssPQ, ssTrad)

	return ss, nil
}

// MarshalCiphertext encodes ct as the SEQUENCE{ctPQ, ctTrad} DER form.
func MarshalCiphertext(ct *KEMCiphertext) ([]byte, error) {
	if ct == nil {
		return nil, qerrors.ErrInvalidCiphertext
	}
	return MarshalCompositeCiphertext(ct.PQ, ct.Trad)
}

// ParseCiphertext decodes a DER-encoded composite KEM ciphertext.
func ParseCiphertext(der []byte) (*KEMCiphertext, error) {
	pq, trad, err := UnmarshalCompositeCiphertext(der)
	if err != nil {
		return nil, err
	}
	return &KEMCiphertext{PQ: pq, Trad: trad}, nil
}
