package crypto_test

import (
	"bytes"
	"testing"

	"github.com/pqlabs/pqx/pkg/crypto"
)

func TestAESCBCRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	if err := crypto.SecureRandom(key); err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}
	plaintext := []byte("EnvelopedData content-encryption payload")

	iv, ciphertext, err := crypto.EncryptAESCBC(key, plaintext)
	if err != nil {
		t.Fatalf("EncryptAESCBC: %v", err)
	}
	if len(iv) != 16 {
		t.Errorf("iv len = %d, want 16", len(iv))
	}
	if len(ciphertext)%16 != 0 {
		t.Errorf("ciphertext len = %d, not a multiple of 16", len(ciphertext))
	}

	recovered, err := crypto.DecryptAESCBC(key, iv, ciphertext)
	if err != nil {
		t.Fatalf("DecryptAESCBC: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("recovered = %q, want %q", recovered, plaintext)
	}
}

func TestAESCBCEmptyPlaintext(t *testing.T) {
	key := make([]byte, 32)
	if err := crypto.SecureRandom(key); err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}
	iv, ciphertext, err := crypto.EncryptAESCBC(key, nil)
	if err != nil {
		t.Fatalf("EncryptAESCBC: %v", err)
	}
	recovered, err := crypto.DecryptAESCBC(key, iv, ciphertext)
	if err != nil {
		t.Fatalf("DecryptAESCBC: %v", err)
	}
	if len(recovered) != 0 {
		t.Errorf("recovered = %q, want empty", recovered)
	}
}

func TestAESCBCWrongKeyFailsOrGarbles(t *testing.T) {
	key := make([]byte, 32)
	if err := crypto.SecureRandom(key); err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}
	wrongKey := make([]byte, 32)
	if err := crypto.SecureRandom(wrongKey); err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}

	iv, ciphertext, err := crypto.EncryptAESCBC(key, []byte("some plaintext to protect"))
	if err != nil {
		t.Fatalf("EncryptAESCBC: %v", err)
	}

	recovered, err := crypto.DecryptAESCBC(wrongKey, iv, ciphertext)
	if err == nil && bytes.Equal(recovered, []byte("some plaintext to protect")) {
		t.Error("decrypting with the wrong key recovered the original plaintext")
	}
}

func TestAESCBCInvalidIVLength(t *testing.T) {
	key := make([]byte, 32)
	if err := crypto.SecureRandom(key); err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}
	if _, err := crypto.DecryptAESCBC(key, []byte{1, 2, 3}, make([]byte, 16)); err == nil {
		t.Error("expected error for malformed IV length")
	}
}

func TestAESCBCInvalidCiphertextLength(t *testing.T) {
	key := make([]byte, 32)
	if err := crypto.SecureRandom(key); err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}
	iv := make([]byte, 16)
	if _, err := crypto.DecryptAESCBC(key, iv, []byte{1, 2, 3}); err == nil {
		t.Error("expected error for non-block-aligned ciphertext")
	}
}
