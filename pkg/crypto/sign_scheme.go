// sign_scheme.go dispatches ML-DSA (FIPS 204) and SLH-DSA (FIPS 205) sign
// and verify operations through circl's generic sign.Scheme interface,
// keyed by registry.Tag. Both families share this dispatch because circl
// exposes them behind the same interface; the registry Row tells us which
// scheme name to ask for and whether the tag is a prehash ("Hash-ML-DSA"/
// "Hash-SLH-DSA") variant.
package crypto

import (
	gocrypto "crypto"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/registry"
)

var dsaSchemeNames = map[registry.Tag]string{
	registry.MLDSA44:     "ML-DSA-44",
	registry.MLDSA65:     "ML-DSA-65",
	registry.MLDSA87:     "ML-DSA-87",
	registry.HashMLDSA44: "ML-DSA-44",
	registry.HashMLDSA65: "ML-DSA-65",
	registry.HashMLDSA87: "ML-DSA-87",

	registry.SLHDSASHA2128s:  "SLH-DSA-SHA2-128s",
	registry.SLHDSASHA2128f:  "SLH-DSA-SHA2-128f",
	registry.SLHDSASHA2192s:  "SLH-DSA-SHA2-192s",
	registry.SLHDSASHA2192f:  "SLH-DSA-SHA2-192f",
	registry.SLHDSASHA2256s:  "SLH-DSA-SHA2-256s",
	registry.SLHDSASHA2256f:  "SLH-DSA-SHA2-256f",
	registry.SLHDSASHAKE128s: "SLH-DSA-SHAKE-128s",
	registry.SLHDSASHAKE128f: "SLH-DSA-SHAKE-128f",
	registry.SLHDSASHAKE192s: "SLH-DSA-SHAKE-192s",
	registry.SLHDSASHAKE192f: "SLH-DSA-SHAKE-192f",
	registry.SLHDSASHAKE256s: "SLH-DSA-SHAKE-256s",
	registry.SLHDSASHAKE256f: "SLH-DSA-SHAKE-256f",

	registry.HashSLHDSASHA2128s:  "SLH-DSA-SHA2-128s",
	registry.HashSLHDSASHA2128f:  "SLH-DSA-SHA2-128f",
	registry.HashSLHDSASHA2192s:  "SLH-DSA-SHA2-192s",
	registry.HashSLHDSASHA2192f:  "SLH-DSA-SHA2-192f",
	registry.HashSLHDSASHA2256s:  "SLH-DSA-SHA2-256s",
	registry.HashSLHDSASHA2256f:  "SLH-DSA-SHA2-256f",
	registry.HashSLHDSASHAKE128s: "SLH-DSA-SHAKE-128s",
	registry.HashSLHDSASHAKE128f: "SLH-DSA-SHAKE-128f",
	registry.HashSLHDSASHAKE192s: "SLH-DSA-SHAKE-192s",
	registry.HashSLHDSASHAKE192f: "SLH-DSA-SHAKE-192f",
	registry.HashSLHDSASHAKE256s: "SLH-DSA-SHAKE-256s",
	registry.HashSLHDSASHAKE256f: "SLH-DSA-SHAKE-256f",
}

var hashToGoHash = map[registry.Hash]gocrypto.Hash{
	registry.HashSHA256: gocrypto.SHA256,
	registry.HashSHA384: gocrypto.SHA384,
	registry.HashSHA512: gocrypto.SHA512,
}

func dsaScheme(tag registry.Tag) (sign.Scheme, error) {
	name, ok := dsaSchemeNames[tag]
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	scheme := schemes.ByName(name)
	if scheme == nil {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	return scheme, nil
}

// GenerateDSAKeyPair generates a key pair for the given ML-DSA/SLH-DSA tag.
// Pure and prehash variants of the same parameter set share one key pair.
func GenerateDSAKeyPair(tag registry.Tag) (pub sign.PublicKey, priv sign.PrivateKey, err error) {
	scheme, err := dsaScheme(tag)
	if err != nil {
		return nil, nil, err
	}
	pub, priv, err = scheme.GenerateKey()
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("dsa.GenerateKey", qerrors.ErrKeygenFailed)
	}
	return pub, priv, nil
}

// SignDSA signs message (or, for a prehash tag, a pre-computed digest) with
// the scheme the tag selects. The caller is responsible for computing the
// digest with the registry-pinned hash before calling this for a prehash tag.
func SignDSA(tag registry.Tag, priv sign.PrivateKey, message []byte) ([]byte, error) {
	scheme, err := dsaScheme(tag)
	if err != nil {
		return nil, err
	}
	if priv == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}

	opts, err := signatureOptsFor(tag)
	if err != nil {
		return nil, err
	}

	sig := scheme.Sign(priv, message, opts)
	if sig == nil {
		return nil, qerrors.NewCryptoError("dsa.Sign", qerrors.ErrSignatureFailed)
	}
	return sig, nil
}

// VerifyDSA verifies a signature produced by SignDSA.
func VerifyDSA(tag registry.Tag, pub sign.PublicKey, message, sig []byte) (bool, error) {
	scheme, err := dsaScheme(tag)
	if err != nil {
		return false, err
	}
	if pub == nil {
		return false, qerrors.ErrInvalidPublicKey
	}

	opts, err := signatureOptsFor(tag)
	if err != nil {
		return false, err
	}

	return scheme.Verify(pub, message, sig, opts), nil
}

func signatureOptsFor(tag registry.Tag) (*sign.SignatureOpts, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	if !row.Prehash {
		return nil, nil
	}
	h, ok := hashToGoHash[row.Hash]
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	return &sign.SignatureOpts{Hash: h}, nil
}

// MarshalDSAPublicKey encodes a public key to its fixed-length byte form.
func MarshalDSAPublicKey(pub sign.PublicKey) ([]byte, error) {
	b, err := pub.MarshalBinary()
	if err != nil {
		return nil, qerrors.NewCryptoError("dsa.MarshalPublicKey", err)
	}
	return b, nil
}

// MarshalDSAPrivateKey encodes a private key to its fixed-length byte form.
func MarshalDSAPrivateKey(priv sign.PrivateKey) ([]byte, error) {
	b, err := priv.MarshalBinary()
	if err != nil {
		return nil, qerrors.NewCryptoError("dsa.MarshalPrivateKey", err)
	}
	return b, nil
}

// ParseDSAPublicKey decodes a public key previously produced by
// MarshalDSAPublicKey.
func ParseDSAPublicKey(tag registry.Tag, data []byte) (sign.PublicKey, error) {
	scheme, err := dsaScheme(tag)
	if err != nil {
		return nil, err
	}
	if len(data) != scheme.PublicKeySize() {
		return nil, qerrors.ErrInvalidPublicKey
	}
	pk, err := scheme.UnmarshalBinaryPublicKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("dsa.ParsePublicKey", err)
	}
	return pk, nil
}

// ParseDSAPrivateKey decodes a private key previously produced by
// MarshalDSAPrivateKey.
func ParseDSAPrivateKey(tag registry.Tag, data []byte) (sign.PrivateKey, error) {
	scheme, err := dsaScheme(tag)
	if err != nil {
		return nil, err
	}
	if len(data) != scheme.PrivateKeySize() {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	sk, err := scheme.UnmarshalBinaryPrivateKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("dsa.ParsePrivateKey", err)
	}
	return sk, nil
}
