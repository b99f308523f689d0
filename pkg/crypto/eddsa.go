// eddsa.go wraps Ed25519 (stdlib) and Ed448 (circl) as the traditional half
// of composite ML-DSA constructions and as standalone classical algorithms.
package crypto

import (
	"crypto/ed25519"

	circlEd448 "github.com/cloudflare/circl/sign/ed448"

	qerrors "github.com/pqlabs/pqx/internal/errors"
)

// GenerateEd25519KeyPair generates an Ed25519 key pair.
func GenerateEd25519KeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(Reader)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("ed25519.GenerateKey", qerrors.ErrKeygenFailed)
	}
	return pub, priv, nil
}

// SignEd25519 signs message directly (Ed25519 is never used in prehash form).
func SignEd25519(priv ed25519.PrivateKey, message []byte) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	return ed25519.Sign(priv, message), nil
}

// VerifyEd25519 verifies a signature produced by SignEd25519.
func VerifyEd25519(pub ed25519.PublicKey, message, sig []byte) (bool, error) {
	if len(pub) != ed25519.PublicKeySize {
		return false, qerrors.ErrInvalidPublicKey
	}
	return ed25519.Verify(pub, message, sig), nil
}

// GenerateEd448KeyPair generates an Ed448 key pair.
func GenerateEd448KeyPair() (circlEd448.PublicKey, circlEd448.PrivateKey, error) {
	pub, priv, err := circlEd448.GenerateKey(Reader)
	if err != nil {
		return circlEd448.PublicKey{}, circlEd448.PrivateKey{}, qerrors.NewCryptoError("ed448.GenerateKey", qerrors.ErrKeygenFailed)
	}
	return pub, priv, nil
}

// SignEd448 signs message directly with an empty context string.
func SignEd448(priv circlEd448.PrivateKey, message []byte) ([]byte, error) {
	if len(priv) != circlEd448.PrivateKeySize {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	return circlEd448.Sign(priv, message, ""), nil
}

// VerifyEd448 verifies a signature produced by SignEd448.
func VerifyEd448(pub circlEd448.PublicKey, message, sig []byte) (bool, error) {
	if len(pub) != circlEd448.PublicKeySize {
		return false, qerrors.ErrInvalidPublicKey
	}
	return circlEd448.Verify(pub, message, sig, ""), nil
}
