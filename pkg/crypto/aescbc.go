// aescbc.go implements AES-CBC content encryption with PKCS#7 padding, the
// CMS EncryptedContentInfo content-encryption algorithm this module uses
// (spec.md §4.F Non-goals exclude AEAD/AES-GCM content encryption).
package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/internal/constants"
)

// EncryptAESCBC encrypts plaintext under key with a fresh random IV,
// PKCS#7-padding plaintext to the AES block size first. Returns iv||ciphertext
// split as two values; CMS callers place iv in the algorithm parameters.
func EncryptAESCBC(key, plaintext []byte) (iv, ciphertext []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, qerrors.NewCryptoError("aescbc.Encrypt", err)
	}

	iv = make([]byte, constants.AESBlockSize)
	if err := SecureRandom(iv); err != nil {
		return nil, nil, err
	}

	padded := pkcs7Pad(plaintext, constants.AESBlockSize)
	ciphertext = make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return iv, ciphertext, nil
}

// DecryptAESCBC decrypts ciphertext under key and iv, removing PKCS#7 padding.
func DecryptAESCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, qerrors.NewCryptoError("aescbc.Decrypt", err)
	}
	if len(iv) != constants.AESBlockSize {
		return nil, qerrors.ErrInvalidCiphertext
	}
	if len(ciphertext) == 0 || len(ciphertext)%constants.AESBlockSize != 0 {
		return nil, qerrors.ErrInvalidCiphertext
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, constants.AESBlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, qerrors.ErrDecryptionFailed
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, qerrors.ErrDecryptionFailed
	}
	// Constant-time-ish check: verify every padding byte without early exit,
	// so a malformed pad doesn't reveal its length through timing.
	bad := 0
	for i := len(data) - padLen; i < len(data); i++ {
		if int(data[i]) != padLen {
			bad = 1
		}
	}
	if bad != 0 {
		return nil, qerrors.ErrDecryptionFailed
	}
	return data[:len(data)-padLen], nil
}
