// Package errors defines the flat error-kind taxonomy shared by every pqx
// component. Structural failures (malformed input, unrecognized OID) are
// distinct from a verify operation legitimately returning false: the former
// is always one of the sentinels below, the latter is a plain boolean.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Each is one of the flat error kinds.
var (
	ErrInvalidPublicKey     = errors.New("pqx: invalid public key")
	ErrInvalidPrivateKey    = errors.New("pqx: invalid private key")
	ErrInvalidSignature     = errors.New("pqx: invalid signature")
	ErrInvalidCertificate   = errors.New("pqx: invalid certificate")
	ErrInvalidCiphertext    = errors.New("pqx: invalid ciphertext")
	ErrInvalidAttribute     = errors.New("pqx: invalid attribute")
	ErrUnsupportedAlgorithm = errors.New("pqx: unsupported algorithm")
	ErrKeygenFailed         = errors.New("pqx: key generation failed")
	ErrSignatureFailed      = errors.New("pqx: signature operation failed")
	ErrVerificationFailed   = errors.New("pqx: verification failed")
	ErrEncapFailed          = errors.New("pqx: encapsulation failed")
	ErrDecapFailed          = errors.New("pqx: decapsulation failed")
	ErrDecryptionFailed     = errors.New("pqx: decryption failed")
	ErrSerializationFailed  = errors.New("pqx: serialization failed")
	ErrNoMatchingRecipient  = errors.New("pqx: no matching recipient")
	ErrNotImplemented       = errors.New("pqx: not implemented")
)

// CryptoError wraps an error from a named primitive operation (e.g.
// "mldsa44.Sign", "mlkem768.Decapsulate") with the underlying sentinel.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// ProtocolError wraps an error tied to a CMS/certificate processing phase
// (e.g. "cms.Build", "cms.Open", "certificate.Parse").
type ProtocolError struct {
	Phase string
	Err   error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// NewProtocolError creates a new ProtocolError.
func NewProtocolError(phase string, err error) *ProtocolError {
	return &ProtocolError{Phase: phase, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
