package crypto_test

import (
	"bytes"
	"testing"

	"github.com/pqlabs/pqx/pkg/crypto"
)

func TestSecureRandom(t *testing.T) {
	b := make([]byte, 32)
	if err := crypto.SecureRandom(b); err != nil {
		t.Fatalf("SecureRandom failed: %v", err)
	}
	if bytes.Equal(b, make([]byte, 32)) {
		t.Error("SecureRandom produced an all-zero buffer")
	}
}

func TestSecureRandomBytes(t *testing.T) {
	b, err := crypto.SecureRandomBytes(16)
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	if len(b) != 16 {
		t.Errorf("len = %d, want 16", len(b))
	}
}

func TestConstantTimeCompare(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{1, 2, 3}
	c := []byte{1, 2, 4}
	if !crypto.ConstantTimeCompare(a, b) {
		t.Error("equal slices should compare equal")
	}
	if crypto.ConstantTimeCompare(a, c) {
		t.Error("unequal slices should not compare equal")
	}
	if crypto.ConstantTimeCompare(a, []byte{1, 2}) {
		t.Error("different-length slices should not compare equal")
	}
}

func TestZeroize(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Zeroize(b)
	if !bytes.Equal(b, make([]byte, 4)) {
		t.Errorf("Zeroize left non-zero bytes: %x", b)
	}
}
