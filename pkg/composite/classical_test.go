package composite_test

import (
	"bytes"
	"testing"

	"github.com/pqlabs/pqx/pkg/composite"
	"github.com/pqlabs/pqx/pkg/registry"
)

func TestClassicalRoundTripRSA(t *testing.T) {
	pub, priv, err := composite.GenerateClassicalKeyPair(registry.RSA2048PSS)
	if err != nil {
		t.Fatalf("GenerateClassicalKeyPair: %v", err)
	}

	message := []byte("composite classical rsa test")
	sig, err := composite.SignClassical(registry.RSA2048PSS, priv, message)
	if err != nil {
		t.Fatalf("SignClassical: %v", err)
	}
	ok, err := composite.VerifyClassical(registry.RSA2048PSS, pub, message, sig)
	if err != nil {
		t.Fatalf("VerifyClassical: %v", err)
	}
	if !ok {
		t.Error("expected valid signature to verify")
	}
}

func TestClassicalRoundTripECDSA(t *testing.T) {
	pub, priv, err := composite.GenerateClassicalKeyPair(registry.ECDSAP256)
	if err != nil {
		t.Fatalf("GenerateClassicalKeyPair: %v", err)
	}

	message := []byte("composite classical ecdsa test")
	sig, err := composite.SignClassical(registry.ECDSAP256, priv, message)
	if err != nil {
		t.Fatalf("SignClassical: %v", err)
	}
	ok, err := composite.VerifyClassical(registry.ECDSAP256, pub, message, sig)
	if err != nil {
		t.Fatalf("VerifyClassical: %v", err)
	}
	if !ok {
		t.Error("expected valid signature to verify")
	}

	encoded, err := composite.MarshalClassicalPublicKey(registry.ECDSAP256, pub)
	if err != nil {
		t.Fatalf("MarshalClassicalPublicKey: %v", err)
	}
	if len(encoded) == 0 {
		t.Error("expected non-empty encoded public key")
	}
}

func TestClassicalRoundTripEd25519(t *testing.T) {
	pub, priv, err := composite.GenerateClassicalKeyPair(registry.Ed25519)
	if err != nil {
		t.Fatalf("GenerateClassicalKeyPair: %v", err)
	}

	message := []byte("composite classical ed25519 test")
	sig, err := composite.SignClassical(registry.Ed25519, priv, message)
	if err != nil {
		t.Fatalf("SignClassical: %v", err)
	}
	ok, err := composite.VerifyClassical(registry.Ed25519, pub, message, sig)
	if err != nil {
		t.Fatalf("VerifyClassical: %v", err)
	}
	if !ok {
		t.Error("expected valid signature to verify")
	}
}

func TestClassicalRoundTripEd448(t *testing.T) {
	pub, priv, err := composite.GenerateClassicalKeyPair(registry.Ed448)
	if err != nil {
		t.Fatalf("GenerateClassicalKeyPair: %v", err)
	}

	message := []byte("composite classical ed448 test")
	sig, err := composite.SignClassical(registry.Ed448, priv, message)
	if err != nil {
		t.Fatalf("SignClassical: %v", err)
	}
	ok, err := composite.VerifyClassical(registry.Ed448, pub, message, sig)
	if err != nil {
		t.Fatalf("VerifyClassical: %v", err)
	}
	if !ok {
		t.Error("expected valid signature to verify")
	}
}

func TestClassicalRejectsTamperedMessage(t *testing.T) {
	pub, priv, err := composite.GenerateClassicalKeyPair(registry.ECDSAP384)
	if err != nil {
		t.Fatalf("GenerateClassicalKeyPair: %v", err)
	}

	sig, err := composite.SignClassical(registry.ECDSAP384, priv, []byte("original"))
	if err != nil {
		t.Fatalf("SignClassical: %v", err)
	}
	ok, err := composite.VerifyClassical(registry.ECDSAP384, pub, []byte("tampered"), sig)
	if err != nil {
		t.Fatalf("VerifyClassical: %v", err)
	}
	if ok {
		t.Error("expected verification to fail for tampered message")
	}
}

func TestClassicalUnsupportedTag(t *testing.T) {
	if _, _, err := composite.GenerateClassicalKeyPair(registry.MLKEM768); err == nil {
		t.Error("expected error for non-classical tag")
	}
}

func TestClassicalWrongKeyTypeRejected(t *testing.T) {
	_, rsaPriv, err := composite.GenerateClassicalKeyPair(registry.RSA2048PSS)
	if err != nil {
		t.Fatalf("GenerateClassicalKeyPair: %v", err)
	}
	if _, err := composite.SignClassical(registry.ECDSAP256, rsaPriv, []byte("x")); err == nil {
		t.Error("expected error signing with mismatched key type")
	}
}

func TestClassicalMarshalDeterministic(t *testing.T) {
	pub, _, err := composite.GenerateClassicalKeyPair(registry.Ed25519)
	if err != nil {
		t.Fatalf("GenerateClassicalKeyPair: %v", err)
	}
	a, err := composite.MarshalClassicalPublicKey(registry.Ed25519, pub)
	if err != nil {
		t.Fatalf("MarshalClassicalPublicKey: %v", err)
	}
	b, err := composite.MarshalClassicalPublicKey(registry.Ed25519, pub)
	if err != nil {
		t.Fatalf("MarshalClassicalPublicKey: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("expected deterministic encoding of the same public key")
	}
}
