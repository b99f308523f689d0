package crypto_test

import (
	"testing"

	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

func TestECDSARoundTrip(t *testing.T) {
	for _, tag := range []registry.Tag{registry.ECDSAP256, registry.ECDSAP384} {
		priv, err := crypto.GenerateECDSAKeyPair(tag)
		if err != nil {
			t.Fatalf("tag %d: GenerateECDSAKeyPair: %v", tag, err)
		}
		msg := []byte("classical component message")
		sig, err := crypto.SignECDSA(tag, priv, msg)
		if err != nil {
			t.Fatalf("tag %d: SignECDSA: %v", tag, err)
		}
		ok, err := crypto.VerifyECDSA(tag, &priv.PublicKey, msg, sig)
		if err != nil {
			t.Fatalf("tag %d: VerifyECDSA: %v", tag, err)
		}
		if !ok {
			t.Errorf("tag %d: signature did not verify", tag)
		}
	}
}

func TestECDSAMarshalParseRoundTrip(t *testing.T) {
	priv, err := crypto.GenerateECDSAKeyPair(registry.ECDSAP256)
	if err != nil {
		t.Fatalf("GenerateECDSAKeyPair: %v", err)
	}

	pubBytes := crypto.MarshalECDSAPublicKey(&priv.PublicKey)
	privBytes, err := crypto.MarshalECDSAPrivateKey(registry.ECDSAP256, priv)
	if err != nil {
		t.Fatalf("MarshalECDSAPrivateKey: %v", err)
	}

	pub2, err := crypto.ParseECDSAPublicKey(registry.ECDSAP256, pubBytes)
	if err != nil {
		t.Fatalf("ParseECDSAPublicKey: %v", err)
	}
	priv2, err := crypto.ParseECDSAPrivateKey(registry.ECDSAP256, privBytes)
	if err != nil {
		t.Fatalf("ParseECDSAPrivateKey: %v", err)
	}

	msg := []byte("reparsed key check")
	sig, err := crypto.SignECDSA(registry.ECDSAP256, priv2, msg)
	if err != nil {
		t.Fatalf("SignECDSA with reparsed key: %v", err)
	}
	ok, err := crypto.VerifyECDSA(registry.ECDSAP256, pub2, msg, sig)
	if err != nil {
		t.Fatalf("VerifyECDSA with reparsed key: %v", err)
	}
	if !ok {
		t.Error("signature did not verify with reparsed keys")
	}
}

func TestECDSARejectsTamperedMessage(t *testing.T) {
	priv, err := crypto.GenerateECDSAKeyPair(registry.ECDSAP384)
	if err != nil {
		t.Fatalf("GenerateECDSAKeyPair: %v", err)
	}
	sig, err := crypto.SignECDSA(registry.ECDSAP384, priv, []byte("original"))
	if err != nil {
		t.Fatalf("SignECDSA: %v", err)
	}
	ok, err := crypto.VerifyECDSA(registry.ECDSAP384, &priv.PublicKey, []byte("tampered"), sig)
	if err != nil {
		t.Fatalf("VerifyECDSA: %v", err)
	}
	if ok {
		t.Error("signature verified against a different message")
	}
}

func TestECDSAUnsupportedCurve(t *testing.T) {
	if _, err := crypto.GenerateECDSAKeyPair(registry.Ed25519); err == nil {
		t.Error("expected error for a non-ECDSA tag")
	}
}
