// mlkem.go implements ML-KEM key encapsulation across all three parameter
// sets (FIPS 203), dispatched by registry.Tag rather than hardcoded to one
// security level.
//
// ML-KEM (Module-Lattice-based Key-Encapsulation Mechanism) bases its
// security on the hardness of Module Learning With Errors (MLWE) over the
// ring R_q = Z_q[X]/(X^n + 1), n = 256, q = 3329. ML-KEM-512/768/1024 vary
// only the module rank k (2, 3, 4) and noise parameters.
package crypto

import (
	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/schemes"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/registry"
)

var mlkemSchemeNames = map[registry.Tag]string{
	registry.MLKEM512:  "ML-KEM-512",
	registry.MLKEM768:  "ML-KEM-768",
	registry.MLKEM1024: "ML-KEM-1024",
}

func mlkemScheme(tag registry.Tag) (kem.Scheme, error) {
	name, ok := mlkemSchemeNames[tag]
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	scheme := schemes.ByName(name)
	if scheme == nil {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	return scheme, nil
}

// MLKEMKeyPair holds an ML-KEM public/private key pair for one parameter set.
type MLKEMKeyPair struct {
	Tag              registry.Tag
	EncapsulationKey kem.PublicKey
	DecapsulationKey kem.PrivateKey
}

// GenerateMLKEMKeyPair generates a new ML-KEM key pair for the given tag
// (registry.MLKEM512, MLKEM768, or MLKEM1024).
func GenerateMLKEMKeyPair(tag registry.Tag) (*MLKEMKeyPair, error) {
	scheme, err := mlkemScheme(tag)
	if err != nil {
		return nil, err
	}

	pk, sk, err := scheme.GenerateKeyPair()
	if err != nil {
		return nil, qerrors.NewCryptoError("mlkem.GenerateKeyPair", err)
	}

	return &MLKEMKeyPair{Tag: tag, EncapsulationKey: pk, DecapsulationKey: sk}, nil
}

// MLKEMKeyPairFromSeed deterministically derives an ML-KEM key pair from a
// scheme-defined seed. Used for reconstructing keys from stored seeds, not
// for parsing an encoded private key (see ParseMLKEMPrivateKey).
func MLKEMKeyPairFromSeed(tag registry.Tag, seed []byte) (*MLKEMKeyPair, error) {
	scheme, err := mlkemScheme(tag)
	if err != nil {
		return nil, err
	}
	if len(seed) != scheme.SeedSize() {
		return nil, qerrors.ErrInvalidPrivateKey
	}

	pk, sk := scheme.DeriveKeyPair(seed)
	return &MLKEMKeyPair{Tag: tag, EncapsulationKey: pk, DecapsulationKey: sk}, nil
}

// MLKEMEncapsulate performs key encapsulation against a recipient's public key.
func MLKEMEncapsulate(tag registry.Tag, pub kem.PublicKey) (ciphertext, sharedSecret []byte, err error) {
	scheme, err := mlkemScheme(tag)
	if err != nil {
		return nil, nil, err
	}
	if pub == nil {
		return nil, nil, qerrors.ErrInvalidPublicKey
	}

	ct, ss, err := scheme.Encapsulate(pub)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("mlkem.Encapsulate", qerrors.ErrEncapFailed)
	}
	return ct, ss, nil
}

// MLKEMDecapsulate recovers the shared secret from a ciphertext.
func MLKEMDecapsulate(tag registry.Tag, priv kem.PrivateKey, ciphertext []byte) ([]byte, error) {
	scheme, err := mlkemScheme(tag)
	if err != nil {
		return nil, err
	}
	if priv == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	if len(ciphertext) != scheme.CiphertextSize() {
		return nil, qerrors.ErrInvalidCiphertext
	}

	ss, err := scheme.Decapsulate(priv, ciphertext)
	if err != nil {
		return nil, qerrors.NewCryptoError("mlkem.Decapsulate", qerrors.ErrDecapFailed)
	}
	return ss, nil
}

// MarshalMLKEMPublicKey encodes a public key to its fixed-length byte form.
func MarshalMLKEMPublicKey(pub kem.PublicKey) ([]byte, error) {
	b, err := pub.MarshalBinary()
	if err != nil {
		return nil, qerrors.NewCryptoError("mlkem.MarshalPublicKey", err)
	}
	return b, nil
}

// MarshalMLKEMPrivateKey encodes a private key to its fixed-length byte form.
func MarshalMLKEMPrivateKey(priv kem.PrivateKey) ([]byte, error) {
	b, err := priv.MarshalBinary()
	if err != nil {
		return nil, qerrors.NewCryptoError("mlkem.MarshalPrivateKey", err)
	}
	return b, nil
}

// ParseMLKEMPublicKey decodes a public key previously produced by
// MarshalMLKEMPublicKey.
func ParseMLKEMPublicKey(tag registry.Tag, data []byte) (kem.PublicKey, error) {
	scheme, err := mlkemScheme(tag)
	if err != nil {
		return nil, err
	}
	if len(data) != scheme.PublicKeySize() {
		return nil, qerrors.ErrInvalidPublicKey
	}
	pk, err := scheme.UnmarshalBinaryPublicKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("mlkem.ParsePublicKey", err)
	}
	return pk, nil
}

// ParseMLKEMPrivateKey decodes a private key previously produced by
// MarshalMLKEMPrivateKey.
func ParseMLKEMPrivateKey(tag registry.Tag, data []byte) (kem.PrivateKey, error) {
	scheme, err := mlkemScheme(tag)
	if err != nil {
		return nil, err
	}
	if len(data) != scheme.PrivateKeySize() {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	sk, err := scheme.UnmarshalBinaryPrivateKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("mlkem.ParsePrivateKey", err)
	}
	return sk, nil
}
