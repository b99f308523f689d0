package crypto_test

import (
	"testing"

	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

func TestDSARoundTripPure(t *testing.T) {
	tags := []registry.Tag{
		registry.MLDSA44, registry.MLDSA65, registry.MLDSA87,
		registry.SLHDSASHA2128s, registry.SLHDSASHAKE128f,
	}
	for _, tag := range tags {
		pub, priv, err := crypto.GenerateDSAKeyPair(tag)
		if err != nil {
			t.Fatalf("tag %d: GenerateDSAKeyPair: %v", tag, err)
		}
		msg := []byte("pqx composite signature test message")
		sig, err := crypto.SignDSA(tag, priv, msg)
		if err != nil {
			t.Fatalf("tag %d: SignDSA: %v", tag, err)
		}
		ok, err := crypto.VerifyDSA(tag, pub, msg, sig)
		if err != nil {
			t.Fatalf("tag %d: VerifyDSA: %v", tag, err)
		}
		if !ok {
			t.Errorf("tag %d: signature did not verify", tag)
		}
	}
}

func TestDSAPrehashVariant(t *testing.T) {
	pub, priv, err := crypto.GenerateDSAKeyPair(registry.HashMLDSA65)
	if err != nil {
		t.Fatalf("GenerateDSAKeyPair: %v", err)
	}
	digest, err := crypto.Digest(registry.HashSHA512, []byte("message to be prehashed"))
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	sig, err := crypto.SignDSA(registry.HashMLDSA65, priv, digest)
	if err != nil {
		t.Fatalf("SignDSA: %v", err)
	}
	ok, err := crypto.VerifyDSA(registry.HashMLDSA65, pub, digest, sig)
	if err != nil {
		t.Fatalf("VerifyDSA: %v", err)
	}
	if !ok {
		t.Error("Hash-ML-DSA signature did not verify")
	}
}

func TestDSARejectsTamperedMessage(t *testing.T) {
	pub, priv, err := crypto.GenerateDSAKeyPair(registry.MLDSA44)
	if err != nil {
		t.Fatalf("GenerateDSAKeyPair: %v", err)
	}
	sig, err := crypto.SignDSA(registry.MLDSA44, priv, []byte("original"))
	if err != nil {
		t.Fatalf("SignDSA: %v", err)
	}
	ok, err := crypto.VerifyDSA(registry.MLDSA44, pub, []byte("tampered"), sig)
	if err != nil {
		t.Fatalf("VerifyDSA: %v", err)
	}
	if ok {
		t.Error("signature verified against a different message")
	}
}

func TestDSAMarshalParseRoundTrip(t *testing.T) {
	pub, priv, err := crypto.GenerateDSAKeyPair(registry.MLDSA65)
	if err != nil {
		t.Fatalf("GenerateDSAKeyPair: %v", err)
	}
	pubBytes, err := crypto.MarshalDSAPublicKey(pub)
	if err != nil {
		t.Fatalf("MarshalDSAPublicKey: %v", err)
	}
	privBytes, err := crypto.MarshalDSAPrivateKey(priv)
	if err != nil {
		t.Fatalf("MarshalDSAPrivateKey: %v", err)
	}

	pub2, err := crypto.ParseDSAPublicKey(registry.MLDSA65, pubBytes)
	if err != nil {
		t.Fatalf("ParseDSAPublicKey: %v", err)
	}
	priv2, err := crypto.ParseDSAPrivateKey(registry.MLDSA65, privBytes)
	if err != nil {
		t.Fatalf("ParseDSAPrivateKey: %v", err)
	}

	msg := []byte("round trip check")
	sig, err := crypto.SignDSA(registry.MLDSA65, priv2, msg)
	if err != nil {
		t.Fatalf("SignDSA with reparsed key: %v", err)
	}
	ok, err := crypto.VerifyDSA(registry.MLDSA65, pub2, msg, sig)
	if err != nil {
		t.Fatalf("VerifyDSA with reparsed key: %v", err)
	}
	if !ok {
		t.Error("signature did not verify with reparsed keys")
	}
}

func TestDSAUnsupportedTag(t *testing.T) {
	if _, _, err := crypto.GenerateDSAKeyPair(registry.MLKEM768); err == nil {
		t.Error("expected error for a non-DSA tag")
	}
}
