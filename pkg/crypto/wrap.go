// wrap.go implements AES Key Wrap (RFC 3394), used to wrap the CMS
// content-encryption key under the KEMRI-derived key-encryption key
// (RFC 9629 §4.1).
package crypto

import (
	"crypto/aes"
	"encoding/binary"

	qerrors "github.com/pqlabs/pqx/internal/errors"
)

// defaultIV is the RFC 3394 §2.2.3.1 default initial value.
var defaultIV = [8]byte{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}

// WrapKey wraps cek (a multiple of 8 bytes, at least 16) under kek.
func WrapKey(kek, cek []byte) ([]byte, error) {
	if len(cek) < 16 || len(cek)%8 != 0 {
		return nil, qerrors.ErrInvalidAttribute
	}
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, qerrors.NewCryptoError("wrap.WrapKey", err)
	}

	n := len(cek) / 8
	r := make([][8]byte, n)
	for i := range r {
		copy(r[i][:], cek[i*8:(i+1)*8])
	}

	a := defaultIV
	buf := make([]byte, 16)
	for j := 0; j <= 5; j++ {
		for i := 1; i <= n; i++ {
			copy(buf[:8], a[:])
			copy(buf[8:], r[i-1][:])
			block.Encrypt(buf, buf)

			t := uint64(n*j + i)
			var tb [8]byte
			binary.BigEndian.PutUint64(tb[:], t)
			for k := range a {
				a[k] = buf[k] ^ tb[k]
			}
			copy(r[i-1][:], buf[8:])
		}
	}

	out := make([]byte, 8+len(cek))
	copy(out[:8], a[:])
	for i, block8 := range r {
		copy(out[8+i*8:], block8[:])
	}
	return out, nil
}

// UnwrapKey reverses WrapKey, returning ErrDecryptionFailed if the integrity
// check (the recovered A matching defaultIV) fails.
func UnwrapKey(kek, wrapped []byte) ([]byte, error) {
	if len(wrapped) < 24 || len(wrapped)%8 != 0 {
		return nil, qerrors.ErrInvalidCiphertext
	}
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, qerrors.NewCryptoError("wrap.UnwrapKey", err)
	}

	n := len(wrapped)/8 - 1
	var a [8]byte
	copy(a[:], wrapped[:8])

	r := make([][8]byte, n)
	for i := range r {
		copy(r[i][:], wrapped[8+i*8:8+(i+1)*8])
	}

	buf := make([]byte, 16)
	for j := 5; j >= 0; j-- {
		for i := n; i >= 1; i-- {
			t := uint64(n*j + i)
			var tb [8]byte
			binary.BigEndian.PutUint64(tb[:], t)
			var xored [8]byte
			for k := range a {
				xored[k] = a[k] ^ tb[k]
			}

			copy(buf[:8], xored[:])
			copy(buf[8:], r[i-1][:])
			block.Decrypt(buf, buf)

			copy(a[:], buf[:8])
			copy(r[i-1][:], buf[8:])
		}
	}

	if !ConstantTimeCompare(a[:], defaultIV[:]) {
		return nil, qerrors.ErrDecryptionFailed
	}

	out := make([]byte, n*8)
	for i, block8 := range r {
		copy(out[i*8:], block8[:])
	}
	return out, nil
}
