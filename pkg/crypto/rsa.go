// rsa.go wraps classical RSA PKCS#1v1.5 and PSS signing as the traditional
// half of composite ML-DSA constructions and as a standalone classical
// algorithm. Key sizes (2048/3072/4096) are a caller choice, not
// registry-pinned: the registry's RSA rows report LenVariable for all
// length fields.
package crypto

import (
	gocrypto "crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/registry"
)

// GenerateRSAKeyPair generates an RSA key pair of the given modulus size in
// bits (2048, 3072, or 4096 per the spec's supported RSA tags).
func GenerateRSAKeyPair(bits int) (*rsa.PrivateKey, error) {
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, qerrors.NewCryptoError("rsa.GenerateKey", qerrors.ErrKeygenFailed)
	}
	return priv, nil
}

func digestForRSA(tag registry.Tag, message []byte) ([]byte, gocrypto.Hash, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, 0, qerrors.ErrUnsupportedAlgorithm
	}
	switch row.Hash {
	case registry.HashSHA384:
		sum := sha512.Sum384(message)
		return sum[:], gocrypto.SHA384, nil
	case registry.HashSHA512:
		sum := sha512.Sum512(message)
		return sum[:], gocrypto.SHA512, nil
	default:
		sum := sha256.Sum256(message)
		return sum[:], gocrypto.SHA256, nil
	}
}

// SignRSA signs message with the tag's family (PKCS#1v1.5 or PSS) and
// registry-pinned hash.
func SignRSA(tag registry.Tag, priv *rsa.PrivateKey, message []byte) ([]byte, error) {
	if priv == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	digest, h, err := digestForRSA(tag, message)
	if err != nil {
		return nil, err
	}

	var sig []byte
	switch row.Family {
	case registry.FamilyRSAPSS:
		sig, err = rsa.SignPSS(rand.Reader, priv, h, digest, &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash})
	case registry.FamilyRSAPKCS15:
		sig, err = rsa.SignPKCS1v15(rand.Reader, priv, h, digest)
	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, qerrors.NewCryptoError("rsa.Sign", qerrors.ErrSignatureFailed)
	}
	return sig, nil
}

// VerifyRSA verifies a signature produced by SignRSA.
func VerifyRSA(tag registry.Tag, pub *rsa.PublicKey, message, sig []byte) (bool, error) {
	if pub == nil {
		return false, qerrors.ErrInvalidPublicKey
	}
	row, ok := registry.Lookup(tag)
	if !ok {
		return false, qerrors.ErrUnsupportedAlgorithm
	}
	digest, h, err := digestForRSA(tag, message)
	if err != nil {
		return false, err
	}

	switch row.Family {
	case registry.FamilyRSAPSS:
		err = rsa.VerifyPSS(pub, h, digest, sig, &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash})
	case registry.FamilyRSAPKCS15:
		err = rsa.VerifyPKCS1v15(pub, h, digest, sig)
	default:
		return false, qerrors.ErrUnsupportedAlgorithm
	}
	return err == nil, nil
}
