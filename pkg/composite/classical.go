// classical.go dispatches the traditional (non-PQ) half of a composite
// signature or KEM to the right pkg/crypto adapter, keyed by registry.Tag.
// It exists because RSA, ECDSA, Ed25519, and Ed448 each carry a distinct
// Go key type; the composite engine boxes them behind interface{} so
// dsa.go can stay generic over the trad component the same way
// sign_scheme.go is generic over the PQ component. kem.go does not use
// this file: it dispatches its X25519/ECDH-P384 half itself.
package composite

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"

	circlEd448 "github.com/cloudflare/circl/sign/ed448"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

// classicalRSABits is the modulus size this module generates for each
// registry RSA tag. The registry declares RSA lengths as variable because
// a recognized RSA OID does not pin a modulus size on its own; composite
// key generation still needs one concrete choice per tag.
var classicalRSABits = map[registry.Tag]int{
	registry.RSA2048PSS: 2048, registry.RSA2048PKCS15: 2048,
	registry.RSA3072PSS: 3072, registry.RSA3072PKCS15: 3072,
	registry.RSA4096PSS: 4096, registry.RSA4096PKCS15: 4096,
}

// GenerateClassicalKeyPair generates a key pair for the traditional
// component identified by tag. The returned pub/priv are boxed concrete
// types (*rsa.PublicKey, *ecdsa.PublicKey, ed25519.PublicKey,
// circlEd448.PublicKey, and their private-key counterparts).
func GenerateClassicalKeyPair(tag registry.Tag) (pub, priv interface{}, err error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, nil, qerrors.ErrUnsupportedAlgorithm
	}

	switch row.Family {
	case registry.FamilyRSAPSS, registry.FamilyRSAPKCS15:
		bits, ok := classicalRSABits[tag]
		if !ok {
			return nil, nil, qerrors.ErrUnsupportedAlgorithm
		}
		p, err := crypto.GenerateRSAKeyPair(bits)
		if err != nil {
			return nil, nil, err
		}
		return &p.PublicKey, p, nil

	case registry.FamilyECDSA:
		p, err := crypto.GenerateECDSAKeyPair(tag)
		if err != nil {
			return nil, nil, err
		}
		return &p.PublicKey, p, nil

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			pub, priv, err := crypto.GenerateEd448KeyPair()
			if err != nil {
				return nil, nil, err
			}
			return pub, priv, nil
		}
		pub, priv, err := crypto.GenerateEd25519KeyPair()
		if err != nil {
			return nil, nil, err
		}
		return pub, priv, nil

	default:
		return nil, nil, qerrors.ErrUnsupportedAlgorithm
	}
}

// SignClassical signs message with the trad component's adapter.
func SignClassical(tag registry.Tag, priv interface{}, message []byte) ([]byte, error) {
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

	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}

// VerifyClassical verifies a signature produced by SignClassical.
func VerifyClassical(tag registry.Tag, pub interface{}, message, sig []byte) (bool, error) {
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

	default:
		return false, qerrors.ErrUnsupportedAlgorithm
	}
}

// MarshalClassicalPublicKey encodes pub to the byte form the registry tag
// expects (uncompressed point for ECDSA, raw key for Ed25519/Ed448). RSA
// keys are not encoded here and return ErrUnsupportedAlgorithm; RSA
// composite components carry their DER form from pkg/keys.
func MarshalClassicalPublicKey(tag registry.Tag, pub interface{}) ([]byte, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	switch row.Family {
	case registry.FamilyECDSA:
		key, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return nil, qerrors.ErrInvalidPublicKey
		}
		return crypto.MarshalECDSAPublicKey(key), nil

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			key, ok := pub.(circlEd448.PublicKey)
			if !ok {
				return nil, qerrors.ErrInvalidPublicKey
			}
			return append([]byte(nil), key...), nil
		}
		key, ok := pub.(ed25519.PublicKey)
		if !ok {
			return nil, qerrors.ErrInvalidPublicKey
		}
		return append([]byte(nil), key...), nil

	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}
