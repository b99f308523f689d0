// ecdsa.go wraps classical ECDSA (P-256/P-384) as the traditional half of
// composite ML-DSA constructions and as a standalone classical algorithm.
package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/registry"
)

func ecdsaCurve(tag registry.Tag) (elliptic.Curve, error) {
	switch tag {
	case registry.ECDSAP256:
		return elliptic.P256(), nil
	case registry.ECDSAP384:
		return elliptic.P384(), nil
	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}

// GenerateECDSAKeyPair generates an ECDSA key pair on the tag's curve.
func GenerateECDSAKeyPair(tag registry.Tag) (*ecdsa.PrivateKey, error) {
	curve, err := ecdsaCurve(tag)
	if err != nil {
		return nil, err
	}
	priv, err := ecdsa.GenerateKey(curve, Reader)
	if err != nil {
		return nil, qerrors.NewCryptoError("ecdsa.GenerateKey", qerrors.ErrKeygenFailed)
	}
	return priv, nil
}

// digestForECDSA hashes message with the tag's registry-pinned hash. ECDSA
// always signs a digest, whether or not the tag is marked Prehash in the
// registry: the prehash distinction governs the composite signing prefix,
// not whether the ECDSA step itself hashes.
func digestForECDSA(tag registry.Tag, message []byte) ([]byte, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	switch row.Hash {
	case registry.HashSHA384:
		sum := sha512.Sum384(message)
		return sum[:], nil
	case registry.HashSHA512:
		sum := sha512.Sum512(message)
		return sum[:], nil
	default:
		sum := sha256.Sum256(message)
		return sum[:], nil
	}
}

// SignECDSA signs message with ECDSA, returning an ASN.1 SEQUENCE{r, s}
// signature (RFC 3279).
func SignECDSA(tag registry.Tag, priv *ecdsa.PrivateKey, message []byte) ([]byte, error) {
	if priv == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	digest, err := digestForECDSA(tag, message)
	if err != nil {
		return nil, err
	}
	sig, err := ecdsa.SignASN1(Reader, priv, digest)
	if err != nil {
		return nil, qerrors.NewCryptoError("ecdsa.Sign", qerrors.ErrSignatureFailed)
	}
	return sig, nil
}

// VerifyECDSA verifies an ASN.1-encoded ECDSA signature.
func VerifyECDSA(tag registry.Tag, pub *ecdsa.PublicKey, message, sig []byte) (bool, error) {
	if pub == nil {
		return false, qerrors.ErrInvalidPublicKey
	}
	digest, err := digestForECDSA(tag, message)
	if err != nil {
		return false, err
	}
	return ecdsa.VerifyASN1(pub, digest, sig), nil
}

// MarshalECDSAPublicKey encodes a public key as an uncompressed curve point.
func MarshalECDSAPublicKey(pub *ecdsa.PublicKey) []byte {
	return elliptic.Marshal(pub.Curve, pub.X, pub.Y) //nolint:staticcheck // explicit uncompressed-point encoding for wire compatibility
}

// MarshalECDSAPrivateKey encodes a private key as its raw scalar, left-padded
// to the curve's field size.
func MarshalECDSAPrivateKey(tag registry.Tag, priv *ecdsa.PrivateKey) ([]byte, error) {
	curve, err := ecdsaCurve(tag)
	if err != nil {
		return nil, err
	}
	size := (curve.Params().BitSize + 7) / 8
	out := make([]byte, size)
	priv.D.FillBytes(out)
	return out, nil
}

// ParseECDSAPublicKey decodes an uncompressed curve point produced by
// MarshalECDSAPublicKey.
func ParseECDSAPublicKey(tag registry.Tag, data []byte) (*ecdsa.PublicKey, error) {
	curve, err := ecdsaCurve(tag)
	if err != nil {
		return nil, err
	}
	x, y := elliptic.Unmarshal(curve, data) //nolint:staticcheck // paired with Marshal above
	if x == nil {
		return nil, qerrors.ErrInvalidPublicKey
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}

// ParseECDSAPrivateKey decodes a raw scalar produced by MarshalECDSAPrivateKey.
func ParseECDSAPrivateKey(tag registry.Tag, data []byte) (*ecdsa.PrivateKey, error) {
	curve, err := ecdsaCurve(tag)
	if err != nil {
		return nil, err
	}
	priv := new(ecdsa.PrivateKey)
	priv.Curve = curve
	priv.D = new(big.Int).SetBytes(data)
	priv.X, priv.Y = curve.ScalarBaseMult(data)
	if priv.X == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	return priv, nil
}
