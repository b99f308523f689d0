package crypto_test

import (
	"testing"

	"github.com/pqlabs/pqx/pkg/crypto"
)

func TestEd25519RoundTrip(t *testing.T) {
	pub, priv, err := crypto.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd25519KeyPair: %v", err)
	}
	msg := []byte("Ed25519 composite component message")
	sig, err := crypto.SignEd25519(priv, msg)
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	ok, err := crypto.VerifyEd25519(pub, msg, sig)
	if err != nil {
		t.Fatalf("VerifyEd25519: %v", err)
	}
	if !ok {
		t.Error("signature did not verify")
	}
}

func TestEd25519RejectsTamperedMessage(t *testing.T) {
	pub, priv, err := crypto.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd25519KeyPair: %v", err)
	}
	sig, err := crypto.SignEd25519(priv, []byte("original"))
	if err != nil {
		t.Fatalf("SignEd25519: %v", err)
	}
	ok, err := crypto.VerifyEd25519(pub, []byte("tampered"), sig)
	if err != nil {
		t.Fatalf("VerifyEd25519: %v", err)
	}
	if ok {
		t.Error("signature verified against a different message")
	}
}

func TestEd448RoundTrip(t *testing.T) {
	pub, priv, err := crypto.GenerateEd448KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd448KeyPair: %v", err)
	}
	msg := []byte("Ed448 composite component message")
	sig, err := crypto.SignEd448(priv, msg)
	if err != nil {
		t.Fatalf("SignEd448: %v", err)
	}
	ok, err := crypto.VerifyEd448(pub, msg, sig)
	if err != nil {
		t.Fatalf("VerifyEd448: %v", err)
	}
	if !ok {
		t.Error("signature did not verify")
	}
}

func TestEd448RejectsTamperedMessage(t *testing.T) {
	pub, priv, err := crypto.GenerateEd448KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd448KeyPair: %v", err)
	}
	sig, err := crypto.SignEd448(priv, []byte("original"))
	if err != nil {
		t.Fatalf("SignEd448: %v", err)
	}
	ok, err := crypto.VerifyEd448(pub, []byte("tampered"), sig)
	if err != nil {
		t.Fatalf("VerifyEd448: %v", err)
	}
	if ok {
		t.Error("signature verified against a different message")
	}
}
