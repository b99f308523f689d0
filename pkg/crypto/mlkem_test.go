package crypto_test

import (
	"bytes"
	"testing"

	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

func TestMLKEMRoundTrip(t *testing.T) {
	for _, tag := range []registry.Tag{registry.MLKEM512, registry.MLKEM768, registry.MLKEM1024} {
		row, _ := registry.Lookup(tag)

		kp, err := crypto.GenerateMLKEMKeyPair(tag)
		if err != nil {
			t.Fatalf("tag %d: GenerateMLKEMKeyPair: %v", tag, err)
		}

		pkBytes, err := crypto.MarshalMLKEMPublicKey(kp.EncapsulationKey)
		if err != nil {
			t.Fatalf("tag %d: MarshalMLKEMPublicKey: %v", tag, err)
		}
		if len(pkBytes) != row.PKLen {
			t.Errorf("tag %d: public key len = %d, want %d", tag, len(pkBytes), row.PKLen)
		}

		ct, ss1, err := crypto.MLKEMEncapsulate(tag, kp.EncapsulationKey)
		if err != nil {
			t.Fatalf("tag %d: MLKEMEncapsulate: %v", tag, err)
		}
		if len(ct) != row.CTLen {
			t.Errorf("tag %d: ciphertext len = %d, want %d", tag, len(ct), row.CTLen)
		}

		ss2, err := crypto.MLKEMDecapsulate(tag, kp.DecapsulationKey, ct)
		if err != nil {
			t.Fatalf("tag %d: MLKEMDecapsulate: %v", tag, err)
		}
		if !bytes.Equal(ss1, ss2) {
			t.Errorf("tag %d: shared secrets differ", tag)
		}
	}
}

func TestMLKEMParsePublicKeyRoundTrip(t *testing.T) {
	kp, err := crypto.GenerateMLKEMKeyPair(registry.MLKEM768)
	if err != nil {
		t.Fatalf("GenerateMLKEMKeyPair: %v", err)
	}
	data, err := crypto.MarshalMLKEMPublicKey(kp.EncapsulationKey)
	if err != nil {
		t.Fatalf("MarshalMLKEMPublicKey: %v", err)
	}
	pk, err := crypto.ParseMLKEMPublicKey(registry.MLKEM768, data)
	if err != nil {
		t.Fatalf("ParseMLKEMPublicKey: %v", err)
	}

	_, ss1, err := crypto.MLKEMEncapsulate(registry.MLKEM768, pk)
	if err != nil {
		t.Fatalf("encapsulate against reparsed key: %v", err)
	}
	if len(ss1) != 32 {
		t.Errorf("shared secret len = %d, want 32", len(ss1))
	}
}

func TestMLKEMInvalidCiphertextLength(t *testing.T) {
	kp, err := crypto.GenerateMLKEMKeyPair(registry.MLKEM512)
	if err != nil {
		t.Fatalf("GenerateMLKEMKeyPair: %v", err)
	}
	if _, err := crypto.MLKEMDecapsulate(registry.MLKEM512, kp.DecapsulationKey, []byte{1, 2, 3}); err == nil {
		t.Error("expected error for undersized ciphertext")
	}
}

func TestMLKEMUnsupportedTag(t *testing.T) {
	if _, err := crypto.GenerateMLKEMKeyPair(registry.Ed25519); err == nil {
		t.Error("expected error for a non-KEM tag")
	}
}
