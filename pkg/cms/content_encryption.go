package cms

import (
	"github.com/pqlabs/pqx/internal/constants"
	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/crypto"
)

// contentEncryptionKeySize returns the AES key length in bytes for one of
// the three content-encryption OIDs spec.md §4.F allows.
func contentEncryptionKeySize(oid string) (int, error) {
	switch oid {
	case constants.OIDAES128CBC:
		return constants.AES128KeySize, nil
	case constants.OIDAES192CBC:
		return constants.AES192KeySize, nil
	case constants.OIDAES256CBC:
		return constants.AES256KeySize, nil
	default:
		return 0, qerrors.ErrUnsupportedAlgorithm
	}
}

// keyWrapKeySize returns the AES-KW key-encryption-key length in bytes for
// one of the three wrap OIDs spec.md §4.F allows.
func keyWrapKeySize(oid string) (int, error) {
	switch oid {
	case constants.OIDAES128Wrap:
		return constants.AES128KeySize, nil
	case constants.OIDAES192Wrap:
		return constants.AES192KeySize, nil
	case constants.OIDAES256Wrap:
		return constants.AES256KeySize, nil
	default:
		return 0, qerrors.ErrUnsupportedAlgorithm
	}
}

// encryptContent generates a random CEK sized for contentEncAlg and
// encrypts plaintext under it with AES-CBC/PKCS#7 (spec.md §4.F steps 1-2).
func encryptContent(contentEncAlg string, plaintext []byte) (cek, iv, ciphertext []byte, err error) {
	keySize, err := contentEncryptionKeySize(contentEncAlg)
	if err != nil {
		return nil, nil, nil, err
	}
	cek, err = crypto.SecureRandomBytes(keySize)
	if err != nil {
		return nil, nil, nil, err
	}
	iv, ciphertext, err = crypto.EncryptAESCBC(cek, plaintext)
	if err != nil {
		return nil, nil, nil, err
	}
	return cek, iv, ciphertext, nil
}

// decryptContent decrypts ciphertext under cek and iv, stripping PKCS#7
// padding (spec.md §4.F Open step 5).
func decryptContent(cek, iv, ciphertext []byte) ([]byte, error) {
	return crypto.DecryptAESCBC(cek, iv, ciphertext)
}
