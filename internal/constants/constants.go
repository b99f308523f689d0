// Package constants holds the raw OID, length, and hash tables behind the
// pqx algorithm registry. Values here are data, not behavior: pkg/registry
// turns these tables into the tagged lookup the rest of the module queries.
//
// OIDs and composite secret-key-length arithmetic are drawn from the
// governing IETF LAMPS composite-signature drafts and NIST FIPS 203/204/205;
// the 80.8.1.* composite arc and the exact per-row values mirror the
// reference implementation this toolkit's algorithm catalog was checked
// against.
package constants

// Classical DSA OIDs.
const (
	OIDRSAPSSSHA256    = "1.2.840.113549.1.1.10" // also used for PSS+SHA384/512 variants; hash is a PSS parameter
	OIDRSAPKCS15SHA256 = "1.2.840.113549.1.1.11"
	OIDRSAPKCS15SHA512 = "1.2.840.113549.1.1.13"
	OIDECDSASHA256     = "1.2.840.10045.4.3.2"
	OIDECDSASHA384     = "1.2.840.10045.4.3.3"
	OIDEd25519         = "1.3.101.112"
	OIDEd448           = "1.3.101.113"
)

// ML-DSA and SLH-DSA OIDs (NIST FIPS 204/205, SHA3/SHAKE derived arc).
const (
	OIDMLDSA44 = "2.16.840.1.101.3.4.3.17"
	OIDMLDSA65 = "2.16.840.1.101.3.4.3.18"
	OIDMLDSA87 = "2.16.840.1.101.3.4.3.19"

	OIDSLHDSASHA2128s  = "2.16.840.1.101.3.4.3.20"
	OIDSLHDSASHA2128f  = "2.16.840.1.101.3.4.3.21"
	OIDSLHDSASHA2192s  = "2.16.840.1.101.3.4.3.22"
	OIDSLHDSASHA2192f  = "2.16.840.1.101.3.4.3.23"
	OIDSLHDSASHA2256s  = "2.16.840.1.101.3.4.3.24"
	OIDSLHDSASHA2256f  = "2.16.840.1.101.3.4.3.25"
	OIDSLHDSASHAKE128s = "2.16.840.1.101.3.4.3.26"
	OIDSLHDSASHAKE128f = "2.16.840.1.101.3.4.3.27"
	OIDSLHDSASHAKE192s = "2.16.840.1.101.3.4.3.28"
	OIDSLHDSASHAKE192f = "2.16.840.1.101.3.4.3.29"
	OIDSLHDSASHAKE256s = "2.16.840.1.101.3.4.3.30"
	OIDSLHDSASHAKE256f = "2.16.840.1.101.3.4.3.31"
)

// Composite ML-DSA OIDs, under the 2.16.840.1.114027.80.8.1.* arc.
// Pure composites (the signing operation uses the raw message).
const (
	OIDMLDSA44RSA2048PSS    = "2.16.840.1.114027.80.8.1.21"
	OIDMLDSA44RSA2048PKCS15 = "2.16.840.1.114027.80.8.1.22"
	OIDMLDSA44Ed25519       = "2.16.840.1.114027.80.8.1.23"
	OIDMLDSA44ECDSAP256     = "2.16.840.1.114027.80.8.1.24"
	OIDMLDSA65RSA3072PSS    = "2.16.840.1.114027.80.8.1.26"
	OIDMLDSA65RSA3072PKCS15 = "2.16.840.1.114027.80.8.1.27"
	OIDMLDSA65ECDSAP384     = "2.16.840.1.114027.80.8.1.28"
	OIDMLDSA65ECDSABrainpoolP256r1 = "2.16.840.1.114027.80.8.1.29"
	OIDMLDSA65Ed25519       = "2.16.840.1.114027.80.8.1.30"
	OIDMLDSA87ECDSAP384     = "2.16.840.1.114027.80.8.1.31"
	OIDMLDSA87ECDSABrainpoolP384r1 = "2.16.840.1.114027.80.8.1.32"
	OIDMLDSA87Ed448         = "2.16.840.1.114027.80.8.1.33"
	OIDMLDSA65RSA4096PSS    = "2.16.840.1.114027.80.8.1.34"
	OIDMLDSA65RSA4096PKCS15 = "2.16.840.1.114027.80.8.1.35"
)

// Hash (prehash) composite ML-DSA OIDs. The digest algorithm is pinned by
// the OID, not negotiable by the caller.
const (
	OIDHashMLDSA44RSA2048PSSSHA256    = "2.16.840.1.114027.80.8.1.40"
	OIDHashMLDSA44RSA2048PKCS15SHA256 = "2.16.840.1.114027.80.8.1.41"
	OIDHashMLDSA44Ed25519SHA512       = "2.16.840.1.114027.80.8.1.42"
	OIDHashMLDSA44ECDSAP256SHA256     = "2.16.840.1.114027.80.8.1.43"
	OIDHashMLDSA65RSA3072PSSSHA512    = "2.16.840.1.114027.80.8.1.44"
	OIDHashMLDSA65RSA3072PKCS15SHA512 = "2.16.840.1.114027.80.8.1.45"
	OIDHashMLDSA65RSA4096PSSSHA512    = "2.16.840.1.114027.80.8.1.46"
	OIDHashMLDSA65RSA4096PKCS15SHA512 = "2.16.840.1.114027.80.8.1.47"
	OIDHashMLDSA65ECDSAP384SHA512     = "2.16.840.1.114027.80.8.1.48"
	OIDHashMLDSA65ECDSABrainpoolP256r1SHA512 = "2.16.840.1.114027.80.8.1.49"
	OIDHashMLDSA65Ed25519SHA512       = "2.16.840.1.114027.80.8.1.50"
	OIDHashMLDSA87ECDSAP384SHA512     = "2.16.840.1.114027.80.8.1.51"
	OIDHashMLDSA87ECDSABrainpoolP384r1SHA512 = "2.16.840.1.114027.80.8.1.52"
	OIDHashMLDSA87Ed448SHA512         = "2.16.840.1.114027.80.8.1.53"
)

// ML-KEM OIDs (NIST FIPS 203).
const (
	OIDMLKEM512  = "2.16.840.1.101.3.4.4.1"
	OIDMLKEM768  = "2.16.840.1.101.3.4.4.2"
	OIDMLKEM1024 = "2.16.840.1.101.3.4.4.3"
)

// Composite-KEM OIDs. No composite-KEM arc is named in the governing draft
// the way composite ML-DSA is; these reserve rows under the same vendor arc
// used for composite ML-DSA testing, generalizing the ML-KEM-1024+X25519
// pairing this toolkit's composite engine was built from to every ML-KEM
// level and one ECDH partner curve.
const (
	OIDMLKEM512X25519  = "2.16.840.1.114027.80.9.1.1"
	OIDMLKEM768X25519  = "2.16.840.1.114027.80.9.1.2"
	OIDMLKEM1024X25519 = "2.16.840.1.114027.80.9.1.3"
	OIDMLKEM1024ECDHP384 = "2.16.840.1.114027.80.9.1.4"
)

// CMS OIDs.
const (
	OIDEnvelopedData = "1.2.840.113549.1.9.16.1.23"
	OIDData          = "1.2.840.113549.1.7.1"

	// OIDORIKem is the OtherRecipientInfo type OID carrying a KemRecipientInfo.
	OIDORIKem = "1.2.840.113549.1.9.16.12.7"

	OIDAES128CBC = "2.16.840.1.101.3.4.1.2"
	OIDAES192CBC = "2.16.840.1.101.3.4.1.22"
	OIDAES256CBC = "2.16.840.1.101.3.4.1.42"

	OIDAES128Wrap = "2.16.840.1.101.3.4.1.5"
	OIDAES192Wrap = "2.16.840.1.101.3.4.1.25"
	OIDAES256Wrap = "2.16.840.1.101.3.4.1.45"

	OIDHKDFSHA256 = "1.2.840.113549.1.9.16.3.28"
)

// Fixed key/signature/ciphertext lengths in bytes, for algorithms whose
// encoding the registry pins exactly. RSA rows are intentionally absent:
// their lengths vary by modulus padding and are reported as "unknown" by
// the registry.
const (
	// Ed25519/Ed448 (RFC 8032).
	Ed25519PublicKeySize  = 32
	Ed25519PrivateKeySize = 32
	Ed25519SignatureSize  = 64
	Ed448PublicKeySize    = 57
	Ed448PrivateKeySize   = 57
	Ed448SignatureSize    = 114

	// ECDSA, uncompressed point / raw scalar encoding.
	ECDSAP256PublicKeySize  = 65
	ECDSAP256PrivateKeySize = 32
	ECDSAP384PublicKeySize  = 97
	ECDSAP384PrivateKeySize = 48
	// ECDSA signature length is variable (ASN.1 SEQUENCE of two INTEGERs).

	// ML-DSA (NIST FIPS 204).
	MLDSA44PublicKeySize  = 1312
	MLDSA44PrivateKeySize = 2560
	MLDSA44SignatureSize  = 2420
	MLDSA65PublicKeySize  = 1952
	MLDSA65PrivateKeySize = 4032
	MLDSA65SignatureSize  = 3309
	MLDSA87PublicKeySize  = 2592
	MLDSA87PrivateKeySize = 4896
	MLDSA87SignatureSize  = 4627

	// ML-KEM (NIST FIPS 203).
	MLKEM512PublicKeySize   = 800
	MLKEM512PrivateKeySize  = 1632
	MLKEM512CiphertextSize  = 768
	MLKEM768PublicKeySize   = 1184
	MLKEM768PrivateKeySize  = 2400
	MLKEM768CiphertextSize  = 1088
	MLKEM1024PublicKeySize  = 1568
	MLKEM1024PrivateKeySize = 3168
	MLKEM1024CiphertextSize = 1568
	MLKEMSharedSecretSize   = 32

	// X25519/X448 (RFC 7748), used as the classical half of composite KEMs.
	X25519PublicKeySize  = 32
	X25519PrivateKeySize = 32
	X25519SharedSecretSize = 32

	// ASN.1 overhead of the composite private-key outer structure: two
	// SEQUENCE tag+length headers plus the version INTEGER and minimal
	// AlgorithmIdentifier of each inner OneAsymmetricKey, with no optional
	// fields populated. See DESIGN.md for the Open Question this resolves.
	CompositeSKOverhead = 10
)

// AES / content-encryption parameters.
const (
	AES128KeySize = 16
	AES192KeySize = 24
	AES256KeySize = 32
	AESBlockSize  = 16 // CBC IV size and PKCS#7 padding block size

	// SubjectKeyIdentifier length (SHA-1 of the SPKI bit string, RFC 5280).
	SubjectKeyIdentifierSize = 20

	// Default serial-number length for issued certificates.
	SerialNumberSize = 20
)

// MaxDecodeSize is the input-length bound (16 MiB) for PEM/DER decoding.
// The decode functions in pkg/keys, pkg/certificate and pkg/cms do not
// check their input length against it.
const MaxDecodeSize = 1 << 24

// DomainSeparatorPrefix is a fixed label string; no code in this module
// uses it. The composite domain-separation prefix is the DER encoding of
// the composite tag's OID, computed per call in pkg/composite.
const DomainSeparatorPrefix = "CompositeAlgorithmSignatures2023"
