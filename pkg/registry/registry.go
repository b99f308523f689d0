// Package registry implements the pqx algorithm registry: the tagged
// identification of every DSA/KEM variant this module supports, its OID,
// its key/signature/ciphertext lengths, and the dispatch data needed to
// reach the correct primitive adapter (possibly composite).
//
// Behavior here is data, not inheritance: one Row per Tag, looked up from
// two maps built once at init. Lookup never allocates and never blocks.
package registry

// Tag is a closed enumeration of every supported DSA and KEM variant.
type Tag uint16

// Family classifies a Tag's primitive shape.
type Family uint8

const (
	FamilyRSAPKCS15 Family = iota + 1
	FamilyRSAPSS
	FamilyECDSA
	FamilyEdDSA
	FamilyMLDSA
	FamilySLHDSA
	FamilyCompositeDSA
	FamilyMLKEM
	FamilyCompositeKEM
)

// Hash identifies the hash algorithm a tag pins for prehash/composite use,
// or HashNone if the tag signs the raw message.
type Hash uint8

const (
	HashNone Hash = iota
	HashSHA256
	HashSHA384
	HashSHA512
	HashSHAKE128
	HashSHAKE256
)

// LenVariable marks a length field that is not fixed (RSA, ECDSA signatures).
const LenVariable = -1

// Classical DSA tags.
const (
	RSA2048PKCS15 Tag = iota + 1
	RSA2048PSS
	RSA3072PKCS15
	RSA3072PSS
	RSA4096PKCS15
	RSA4096PSS
	ECDSAP256
	ECDSAP384
	ECDSABrainpoolP256r1
	ECDSABrainpoolP384r1
	Ed25519
	Ed448
)

// ML-DSA tags, pure and prehash ("Hash-ML-DSA").
const (
	MLDSA44 Tag = iota + 100
	MLDSA65
	MLDSA87
	HashMLDSA44
	HashMLDSA65
	HashMLDSA87
)

// SLH-DSA tags, pure.
const (
	SLHDSASHA2128s Tag = iota + 200
	SLHDSASHA2128f
	SLHDSASHA2192s
	SLHDSASHA2192f
	SLHDSASHA2256s
	SLHDSASHA2256f
	SLHDSASHAKE128s
	SLHDSASHAKE128f
	SLHDSASHAKE192s
	SLHDSASHAKE192f
	SLHDSASHAKE256s
	SLHDSASHAKE256f
)

// SLH-DSA tags, prehash ("Hash-SLH-DSA").
const (
	HashSLHDSASHA2128s Tag = iota + 220
	HashSLHDSASHA2128f
	HashSLHDSASHA2192s
	HashSLHDSASHA2192f
	HashSLHDSASHA2256s
	HashSLHDSASHA2256f
	HashSLHDSASHAKE128s
	HashSLHDSASHAKE128f
	HashSLHDSASHAKE192s
	HashSLHDSASHAKE192f
	HashSLHDSASHAKE256s
	HashSLHDSASHAKE256f
)

// Composite ML-DSA tags, pure.
const (
	MLDSA44RSA2048PSS Tag = iota + 300
	MLDSA44RSA2048PKCS15
	MLDSA44Ed25519
	MLDSA44ECDSAP256
	MLDSA65RSA3072PSS
	MLDSA65RSA3072PKCS15
	MLDSA65RSA4096PSS
	MLDSA65RSA4096PKCS15
	MLDSA65ECDSAP384
	MLDSA65ECDSABrainpoolP256r1
	MLDSA65Ed25519
	MLDSA87ECDSAP384
	MLDSA87ECDSABrainpoolP384r1
	MLDSA87Ed448
)

// Composite ML-DSA tags, prehash ("Hash-ML-DSA" composites).
const (
	HashMLDSA44RSA2048PSS Tag = iota + 320
	HashMLDSA44RSA2048PKCS15
	HashMLDSA44Ed25519
	HashMLDSA44ECDSAP256
	HashMLDSA65RSA3072PSS
	HashMLDSA65RSA3072PKCS15
	HashMLDSA65RSA4096PSS
	HashMLDSA65RSA4096PKCS15
	HashMLDSA65ECDSAP384
	HashMLDSA65ECDSABrainpoolP256r1
	HashMLDSA65Ed25519
	HashMLDSA87ECDSAP384
	HashMLDSA87ECDSABrainpoolP384r1
	HashMLDSA87Ed448
)

// ML-KEM tags.
const (
	MLKEM512 Tag = iota + 400
	MLKEM768
	MLKEM1024
)

// Composite KEM tags.
const (
	MLKEM512X25519 Tag = iota + 420
	MLKEM768X25519
	MLKEM1024X25519
	MLKEM1024ECDHP384
)

// Row is one registry entry: every column spec.md §4.A names for a tag.
type Row struct {
	Tag    Tag
	Family Family
	OID    string
	Hash   Hash
	Prehash bool

	PKLen int // LenVariable if not fixed
	SKLen int // LenVariable if not fixed
	SigLen int // LenVariable if not fixed, or 0 for KEM tags
	CTLen  int // 0 for DSA tags
	SSLen  int // 0 for DSA tags

	Composite   bool
	PQTag       Tag // zero if not composite
	TradTag     Tag // zero if not composite
	Unsupported bool // recognized (registered) but not locally implementable (Brainpool)
}

func (t Tag) IsDSA() bool {
	r, ok := byTag[t]
	return ok && r.Family != FamilyMLKEM && r.Family != FamilyCompositeKEM
}

func (t Tag) IsKEM() bool {
	r, ok := byTag[t]
	return ok && (r.Family == FamilyMLKEM || r.Family == FamilyCompositeKEM)
}

func (t Tag) IsComposite() bool {
	r, ok := byTag[t]
	return ok && r.Composite
}

var (
	byTag = make(map[Tag]Row)
	byOID = make(map[string]Tag)
)

func register(r Row) {
	byTag[r.Tag] = r
	if _, dup := byOID[r.OID]; dup {
		panic("registry: duplicate OID " + r.OID)
	}
	byOID[r.OID] = r.Tag
}

// Lookup returns the Row for a tag. ok is false for an unrecognized tag.
func Lookup(t Tag) (Row, bool) {
	r, ok := byTag[t]
	return r, ok
}

// LookupOID returns the Tag for a recognized OID string.
func LookupOID(oid string) (Tag, bool) {
	t, ok := byOID[oid]
	return t, ok
}

// Components returns the (pq, trad) sub-tag pair for a composite tag.
func Components(t Tag) (pq, trad Tag, ok bool) {
	r, found := byTag[t]
	if !found || !r.Composite {
		return 0, 0, false
	}
	return r.PQTag, r.TradTag, true
}

func init() {
	registerClassicalDSA()
	registerMLDSA()
	registerSLHDSA()
	registerCompositeMLDSA()
	registerMLKEM()
	registerCompositeKEM()
}
