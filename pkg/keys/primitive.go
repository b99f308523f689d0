// primitive.go converts between the typed key objects pkg/crypto and
// pkg/composite operate on and the raw byte form that PublicKey/PrivateKey
// store and that PKCS#8/SPKI place inside their key-material field. Each
// tag family's raw encoding is whatever its pkg/crypto adapter already
// treats as canonical (a fixed-length scalar for ECDSA, the RFC-defined
// encoding for Ed25519/Ed448/ML-KEM/ML-DSA/SLH-DSA), except RSA, which has
// no single-primitive adapter of its own and falls back to the standard
// PKCS#1 DER the rest of the Go ecosystem uses for exactly this purpose.
package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"

	circlEd448 "github.com/cloudflare/circl/sign/ed448"
	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/sign"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

// publicKeyToRaw encodes a concrete public key object to its raw byte form
// for the given tag.
func publicKeyToRaw(tag registry.Tag, pub interface{}) ([]byte, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	switch row.Family {
	case registry.FamilyRSAPSS, registry.FamilyRSAPKCS15:
		key, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, qerrors.ErrInvalidPublicKey
		}
		return x509.MarshalPKCS1PublicKey(key), nil

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

	case registry.FamilyMLDSA, registry.FamilySLHDSA:
		key, ok := pub.(sign.PublicKey)
		if !ok {
			return nil, qerrors.ErrInvalidPublicKey
		}
		return crypto.MarshalDSAPublicKey(key)

	case registry.FamilyMLKEM:
		key, ok := pub.(kem.PublicKey)
		if !ok {
			return nil, qerrors.ErrInvalidPublicKey
		}
		return crypto.MarshalMLKEMPublicKey(key)

	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}

// publicKeyFromRaw decodes raw bytes produced by publicKeyToRaw back into a
// concrete public key object for tag.
func publicKeyFromRaw(tag registry.Tag, raw []byte) (interface{}, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	switch row.Family {
	case registry.FamilyRSAPSS, registry.FamilyRSAPKCS15:
		key, err := x509.ParsePKCS1PublicKey(raw)
		if err != nil {
			return nil, qerrors.ErrInvalidPublicKey
		}
		return key, nil

	case registry.FamilyECDSA:
		return crypto.ParseECDSAPublicKey(tag, raw)

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			if len(raw) != circlEd448.PublicKeySize {
				return nil, qerrors.ErrInvalidPublicKey
			}
			pub := make(circlEd448.PublicKey, circlEd448.PublicKeySize)
			copy(pub, raw)
			return pub, nil
		}
		if len(raw) != ed25519.PublicKeySize {
			return nil, qerrors.ErrInvalidPublicKey
		}
		pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
		copy(pub, raw)
		return pub, nil

	case registry.FamilyMLDSA, registry.FamilySLHDSA:
		return crypto.ParseDSAPublicKey(tag, raw)

	case registry.FamilyMLKEM:
		return crypto.ParseMLKEMPublicKey(tag, raw)

	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}

// privateKeyToRaw encodes a concrete private key object to its raw byte
// form for the given tag.
func privateKeyToRaw(tag registry.Tag, priv interface{}) ([]byte, error) {
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
		return x509.MarshalPKCS1PrivateKey(key), nil

	case registry.FamilyECDSA:
		key, ok := priv.(*ecdsa.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return crypto.MarshalECDSAPrivateKey(tag, key)

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			key, ok := priv.(circlEd448.PrivateKey)
			if !ok {
				return nil, qerrors.ErrInvalidPrivateKey
			}
			return append([]byte(nil), key...), nil
		}
		key, ok := priv.(ed25519.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return append([]byte(nil), key...), nil

	case registry.FamilyMLDSA, registry.FamilySLHDSA:
		key, ok := priv.(sign.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return crypto.MarshalDSAPrivateKey(key)

	case registry.FamilyMLKEM:
		key, ok := priv.(kem.PrivateKey)
		if !ok {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return crypto.MarshalMLKEMPrivateKey(key)

	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}

// privateKeyFromRaw decodes raw bytes produced by privateKeyToRaw back into
// a concrete private key object for tag.
func privateKeyFromRaw(tag registry.Tag, raw []byte) (interface{}, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	switch row.Family {
	case registry.FamilyRSAPSS, registry.FamilyRSAPKCS15:
		key, err := x509.ParsePKCS1PrivateKey(raw)
		if err != nil {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		return key, nil

	case registry.FamilyECDSA:
		return crypto.ParseECDSAPrivateKey(tag, raw)

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			if len(raw) != circlEd448.PrivateKeySize {
				return nil, qerrors.ErrInvalidPrivateKey
			}
			priv := make(circlEd448.PrivateKey, circlEd448.PrivateKeySize)
			copy(priv, raw)
			return priv, nil
		}
		if len(raw) != ed25519.PrivateKeySize {
			return nil, qerrors.ErrInvalidPrivateKey
		}
		priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(priv, raw)
		return priv, nil

	case registry.FamilyMLDSA, registry.FamilySLHDSA:
		return crypto.ParseDSAPrivateKey(tag, raw)

	case registry.FamilyMLKEM:
		return crypto.ParseMLKEMPrivateKey(tag, raw)

	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}
