package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCryptoError(t *testing.T) {
	baseErr := errors.New("base error")
	cerr := NewCryptoError("mlkem768.Decapsulate", baseErr)

	errStr := cerr.Error()
	if !strings.Contains(errStr, "mlkem768.Decapsulate") {
		t.Errorf("Error string should contain operation: %q", errStr)
	}
	if !strings.Contains(errStr, "base error") {
		t.Errorf("Error string should contain base error: %q", errStr)
	}

	if unwrapped := cerr.Unwrap(); unwrapped != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, baseErr)
	}
	if cerr.Op != "mlkem768.Decapsulate" {
		t.Errorf("Op = %q, want %q", cerr.Op, "mlkem768.Decapsulate")
	}
	if cerr.Err != baseErr {
		t.Errorf("Err = %v, want %v", cerr.Err, baseErr)
	}
}

func TestProtocolError(t *testing.T) {
	baseErr := errors.New("malformed content info")
	perr := NewProtocolError("cms.Open", baseErr)

	errStr := perr.Error()
	if !strings.Contains(errStr, "cms.Open") {
		t.Errorf("Error string should contain phase: %q", errStr)
	}
	if !strings.Contains(errStr, "malformed content info") {
		t.Errorf("Error string should contain base error: %q", errStr)
	}

	if unwrapped := perr.Unwrap(); unwrapped != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", unwrapped, baseErr)
	}
	if perr.Phase != "cms.Open" {
		t.Errorf("Phase = %q, want %q", perr.Phase, "cms.Open")
	}
}

func TestIsFunction(t *testing.T) {
	err := ErrInvalidPrivateKey
	if !Is(err, ErrInvalidPrivateKey) {
		t.Error("Is() should return true for matching sentinel error")
	}

	wrapped := NewCryptoError("keys.FromPEM", ErrInvalidPrivateKey)
	if !Is(wrapped, ErrInvalidPrivateKey) {
		t.Error("Is() should return true for wrapped sentinel error")
	}

	if Is(err, ErrInvalidCiphertext) {
		t.Error("Is() should return false for non-matching error")
	}
}

func TestAsFunction(t *testing.T) {
	cerr := NewCryptoError("mldsa44.GenerateKey", ErrKeygenFailed)

	var target *CryptoError
	if !As(cerr, &target) {
		t.Error("As() should return true for matching type")
	}
	if target.Op != "mldsa44.GenerateKey" {
		t.Errorf("As() extracted Op = %q, want %q", target.Op, "mldsa44.GenerateKey")
	}

	var protocolErr *ProtocolError
	if As(cerr, &protocolErr) {
		t.Error("As() should return false for non-matching type")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidPublicKey", ErrInvalidPublicKey},
		{"ErrInvalidPrivateKey", ErrInvalidPrivateKey},
		{"ErrInvalidSignature", ErrInvalidSignature},
		{"ErrInvalidCertificate", ErrInvalidCertificate},
		{"ErrInvalidCiphertext", ErrInvalidCiphertext},
		{"ErrInvalidAttribute", ErrInvalidAttribute},
		{"ErrUnsupportedAlgorithm", ErrUnsupportedAlgorithm},
		{"ErrKeygenFailed", ErrKeygenFailed},
		{"ErrSignatureFailed", ErrSignatureFailed},
		{"ErrVerificationFailed", ErrVerificationFailed},
		{"ErrEncapFailed", ErrEncapFailed},
		{"ErrDecapFailed", ErrDecapFailed},
		{"ErrDecryptionFailed", ErrDecryptionFailed},
		{"ErrSerializationFailed", ErrSerializationFailed},
		{"ErrNoMatchingRecipient", ErrNoMatchingRecipient},
		{"ErrNotImplemented", ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Errorf("%s is nil", tt.name)
			}
			if tt.err.Error() == "" {
				t.Errorf("%s.Error() returned empty string", tt.name)
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	baseErr := ErrInvalidPrivateKey
	wrapped := NewCryptoError("keys.FromDER", baseErr)

	if !errors.Is(wrapped, baseErr) {
		t.Error("Wrapped error should match base error with errors.Is")
	}

	doubleWrapped := NewCryptoError("keys.FromPEM", wrapped)
	if !errors.Is(doubleWrapped, baseErr) {
		t.Error("Double-wrapped error should still match base error")
	}

	var cryptoErr *CryptoError
	if !errors.As(doubleWrapped, &cryptoErr) {
		t.Error("Should be able to extract CryptoError from double-wrapped")
	}
	if cryptoErr.Op != "keys.FromPEM" {
		t.Errorf("Extracted Op = %q, want %q", cryptoErr.Op, "keys.FromPEM")
	}
}

func TestProtocolErrorWrapping(t *testing.T) {
	baseErr := ErrNoMatchingRecipient
	wrapped := NewProtocolError("cms.Open", baseErr)

	if !errors.Is(wrapped, baseErr) {
		t.Error("Wrapped error should match base error with errors.Is")
	}

	var protocolErr *ProtocolError
	if !errors.As(wrapped, &protocolErr) {
		t.Error("Should be able to extract ProtocolError")
	}
	if protocolErr.Phase != "cms.Open" {
		t.Errorf("Extracted Phase = %q, want %q", protocolErr.Phase, "cms.Open")
	}
}

func TestMixedErrorTypes(t *testing.T) {
	cryptoErr := NewCryptoError("mlkem768.Decapsulate", ErrDecapFailed)
	protocolErr := NewProtocolError("cms.Open", cryptoErr)

	var ce *CryptoError
	if !errors.As(protocolErr, &ce) {
		t.Error("Should be able to extract CryptoError from ProtocolError wrapper")
	}

	var pe *ProtocolError
	if !errors.As(protocolErr, &pe) {
		t.Error("Should be able to extract ProtocolError")
	}

	if !errors.Is(protocolErr, ErrDecapFailed) {
		t.Error("Should match base sentinel error through multiple wrappers")
	}
}

func TestErrorContextPreservation(t *testing.T) {
	err := NewCryptoError("mldsa44.GenerateKey", ErrKeygenFailed)
	wrapped := NewProtocolError("certificate.Build", err)

	errStr := wrapped.Error()
	if !strings.Contains(errStr, "certificate.Build") {
		t.Errorf("Error string missing protocol phase: %q", errStr)
	}
	if !strings.Contains(errStr, "mldsa44.GenerateKey") {
		t.Errorf("Error string missing crypto operation: %q", errStr)
	}
	if !strings.Contains(errStr, "key generation failed") {
		t.Errorf("Error string missing base error: %q", errStr)
	}
}

func TestNilErrorHandling(t *testing.T) {
	if Is(nil, ErrInvalidPrivateKey) {
		t.Error("Is(nil, target) should return false")
	}

	var target *CryptoError
	if As(nil, &target) {
		t.Error("As(nil, target) should return false")
	}
}
