// ecdh.go wraps stdlib crypto/ecdh for the NIST-curve traditional half of
// composite KEMs (ML-KEM-1024+ECDH-P384). X25519 has its own file because
// it is also used standalone; this file covers the curves X25519 does not.
package crypto

import (
	"crypto/ecdh"

	qerrors "github.com/pqlabs/pqx/internal/errors"
)

// ECDHKeyPair represents a NIST-curve ECDH key pair.
type ECDHKeyPair struct {
	PublicKey  *ecdh.PublicKey
	PrivateKey *ecdh.PrivateKey
}

// GenerateECDHP384KeyPair generates an ECDH key pair on P-384.
func GenerateECDHP384KeyPair() (*ECDHKeyPair, error) {
	curve := ecdh.P384()
	priv, err := curve.GenerateKey(Reader)
	if err != nil {
		return nil, qerrors.NewCryptoError("ECDHKeyPair.Generate", err)
	}
	return &ECDHKeyPair{PublicKey: priv.PublicKey(), PrivateKey: priv}, nil
}

// ECDHP384 performs the ECDH shared-secret computation on P-384.
func ECDHP384(privateKey *ecdh.PrivateKey, peerPublic *ecdh.PublicKey) ([]byte, error) {
	if privateKey == nil {
		return nil, qerrors.ErrInvalidPrivateKey
	}
	if peerPublic == nil {
		return nil, qerrors.ErrInvalidPublicKey
	}
	secret, err := privateKey.ECDH(peerPublic)
	if err != nil {
		return nil, qerrors.NewCryptoError("ECDHP384", err)
	}
	return secret, nil
}

// ParseECDHP384PublicKey parses an uncompressed P-384 point.
func ParseECDHP384PublicKey(data []byte) (*ecdh.PublicKey, error) {
	pub, err := ecdh.P384().NewPublicKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("ParseECDHP384PublicKey", err)
	}
	return pub, nil
}

// ParseECDHP384PrivateKey parses a raw P-384 scalar.
func ParseECDHP384PrivateKey(data []byte) (*ecdh.PrivateKey, error) {
	priv, err := ecdh.P384().NewPrivateKey(data)
	if err != nil {
		return nil, qerrors.NewCryptoError("ParseECDHP384PrivateKey", err)
	}
	return priv, nil
}
