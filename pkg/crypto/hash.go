// hash.go dispatches the hash algorithms the registry pins for prehash and
// composite signing: SHA-256/384/512 and SHAKE-128/256.
package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/registry"
)

// Digest computes the digest of data under the given registry.Hash. For the
// SHAKE variants, the output length is 32 bytes (SHAKE-128) or 64 bytes
// (SHAKE-256), matching common composite-signature usage.
func Digest(h registry.Hash, data []byte) ([]byte, error) {
	switch h {
	case registry.HashSHA256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	case registry.HashSHA384:
		sum := sha512.Sum384(data)
		return sum[:], nil
	case registry.HashSHA512:
		sum := sha512.Sum512(data)
		return sum[:], nil
	case registry.HashSHAKE128:
		out := make([]byte, 32)
		sha3.ShakeSum128(out, data)
		return out, nil
	case registry.HashSHAKE256:
		out := make([]byte, 64)
		sha3.ShakeSum256(out, data)
		return out, nil
	default:
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
}
