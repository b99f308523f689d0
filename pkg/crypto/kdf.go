// kdf.go implements key derivation for this module's two KDF consumers:
// the composite-KEM shared-secret combiner (SHAKE-256, domain-separated,
// length-prefixed) and the CMS KEMRI key-encryption-key derivation
// (HKDF, RFC 5869).
//
// Mathematical Foundation (SHAKE-256):
//
// SHAKE-256 is an extendable-output function built on the Keccak-f[1600]
// permutation (rate 1088, capacity 512). Length-prefixing every field
// before absorption makes the construction unambiguous: no input can be
// split differently to produce a colliding transcript.
package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	qerrors "github.com/pqlabs/pqx/internal/errors"
)

const maxKDFOutputLen = 1 << 20 // 1 MiB, generous upper bound against misuse

// DeriveKey derives outputLen bytes from a single domain-separated input
// using SHAKE-256.
//
//	output = SHAKE-256(len(domain) || domain || len(input) || input, outputLen)
func DeriveKey(domain string, input []byte, outputLen int) ([]byte, error) {
	return DeriveKeyMultiple(domain, [][]byte{input}, outputLen)
}

// DeriveKeyMultiple derives outputLen bytes from multiple length-prefixed,
// domain-separated inputs using SHAKE-256. This is the construction the
// composite-KEM combiner uses to fold ss_pq || ss_trad || ct_pq || ct_trad
// into one shared secret (spec.md §4.C).
func DeriveKeyMultiple(domain string, inputs [][]byte, outputLen int) ([]byte, error) {
	if outputLen <= 0 || outputLen > maxKDFOutputLen {
		return nil, qerrors.NewCryptoError("kdf.DeriveKeyMultiple", qerrors.ErrSerializationFailed)
	}

	h := sha3.NewShake256()
	writeLenPrefixed(h, []byte(domain))
	for _, in := range inputs {
		writeLenPrefixed(h, in)
	}

	out := make([]byte, outputLen)
	_, _ = h.Read(out) // SHAKE never errors on Read
	return out, nil
}

func writeLenPrefixed(w io.Writer, data []byte) {
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(data)))
	w.Write(lenBuf) //nolint:errcheck // sha3 state writers never return an error
	w.Write(data)   //nolint:errcheck
}

// TranscriptHash hashes an ordered sequence of length-prefixed components
// with SHA3-256. Used where a fixed-size binding hash (rather than a
// variable-length KDF output) is needed.
func TranscriptHash(components ...[]byte) []byte {
	h := sha3.New256()
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(components)))
	h.Write(lenBuf)
	for _, c := range components {
		writeLenPrefixed(h, c)
	}
	return h.Sum(nil)
}

// CombineKEMSecrets derives the final shared secret for a composite KEM
// from its PQ and traditional components, per spec.md §4.C:
//
//	K = KDF(ss_pq || ss_trad || ct_pq || ct_trad || domain)
func CombineKEMSecrets(domain string, ssPQ, ssTrad, ctPQ, ctTrad []byte, outputLen int) ([]byte, error) {
	return DeriveKeyMultiple("", [][]byte{ssPQ, ssTrad, ctPQ, ctTrad, []byte(domain)}, outputLen)
}

// HKDFExpand derives keyLen bytes of key material from secret using
// HKDF-SHA256 (RFC 5869), as CMS KEMRI requires for deriving the
// key-encryption key from the KEM shared secret (RFC 9629 §4.1).
func HKDFExpand(secret, salt, info []byte, keyLen int) ([]byte, error) {
	if keyLen <= 0 || keyLen > maxKDFOutputLen {
		return nil, qerrors.NewCryptoError("kdf.HKDFExpand", qerrors.ErrSerializationFailed)
	}
	r := hkdf.New(sha256.New, secret, salt, info)
	out := make([]byte, keyLen)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, qerrors.NewCryptoError("kdf.HKDFExpand", err)
	}
	return out, nil
}
