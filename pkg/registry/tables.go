package registry

import "github.com/pqlabs/pqx/internal/constants"

// SLH-DSA category key/signature sizes (NIST FIPS 205). All four parameter
// sets within a security category (SHA2/SHAKE × s/f) share the same key
// sizes; the SHA2 and SHAKE variants of an "s" (or "f") set share the same
// signature size.
const (
	slhDSA128PKLen  = 32
	slhDSA128SKLen  = 64
	slhDSA192PKLen  = 48
	slhDSA192SKLen  = 96
	slhDSA256PKLen  = 64
	slhDSA256SKLen  = 128

	slhDSA128sSigLen = 7856
	slhDSA128fSigLen = 17088
	slhDSA192sSigLen = 16224
	slhDSA192fSigLen = 35664
	slhDSA256sSigLen = 29792
	slhDSA256fSigLen = 49856
)

func registerClassicalDSA() {
	register(Row{Tag: RSA2048PKCS15, Family: FamilyRSAPKCS15, OID: constants.OIDRSAPKCS15SHA256, Hash: HashSHA256, PKLen: LenVariable, SKLen: LenVariable, SigLen: LenVariable})
	register(Row{Tag: RSA2048PSS, Family: FamilyRSAPSS, OID: constants.OIDRSAPSSSHA256, Hash: HashSHA256, PKLen: LenVariable, SKLen: LenVariable, SigLen: LenVariable})
	register(Row{Tag: RSA3072PKCS15, Family: FamilyRSAPKCS15, OID: constants.OIDRSAPKCS15SHA512, Hash: HashSHA384, PKLen: LenVariable, SKLen: LenVariable, SigLen: LenVariable})
	register(Row{Tag: RSA3072PSS, Family: FamilyRSAPSS, OID: constants.OIDRSAPSSSHA256, Hash: HashSHA384, PKLen: LenVariable, SKLen: LenVariable, SigLen: LenVariable})
	register(Row{Tag: RSA4096PKCS15, Family: FamilyRSAPKCS15, OID: constants.OIDRSAPKCS15SHA512, Hash: HashSHA512, PKLen: LenVariable, SKLen: LenVariable, SigLen: LenVariable})
	register(Row{Tag: RSA4096PSS, Family: FamilyRSAPSS, OID: constants.OIDRSAPSSSHA256, Hash: HashSHA512, PKLen: LenVariable, SKLen: LenVariable, SigLen: LenVariable})

	register(Row{Tag: ECDSAP256, Family: FamilyECDSA, OID: constants.OIDECDSASHA256, Hash: HashSHA256,
		PKLen: constants.ECDSAP256PublicKeySize, SKLen: constants.ECDSAP256PrivateKeySize, SigLen: LenVariable})
	register(Row{Tag: ECDSAP384, Family: FamilyECDSA, OID: constants.OIDECDSASHA384, Hash: HashSHA384,
		PKLen: constants.ECDSAP384PublicKeySize, SKLen: constants.ECDSAP384PrivateKeySize, SigLen: LenVariable})
	// Brainpool: registered for bijection completeness, not locally implementable.
	register(Row{Tag: ECDSABrainpoolP256r1, Family: FamilyECDSA, OID: constants.OIDECDSASHA256, Hash: HashSHA256,
		PKLen: constants.ECDSAP256PublicKeySize, SKLen: constants.ECDSAP256PrivateKeySize, SigLen: LenVariable, Unsupported: true})
	register(Row{Tag: ECDSABrainpoolP384r1, Family: FamilyECDSA, OID: constants.OIDECDSASHA384, Hash: HashSHA384,
		PKLen: constants.ECDSAP384PublicKeySize, SKLen: constants.ECDSAP384PrivateKeySize, SigLen: LenVariable, Unsupported: true})

	register(Row{Tag: Ed25519, Family: FamilyEdDSA, OID: constants.OIDEd25519,
		PKLen: constants.Ed25519PublicKeySize, SKLen: constants.Ed25519PrivateKeySize, SigLen: constants.Ed25519SignatureSize})
	register(Row{Tag: Ed448, Family: FamilyEdDSA, OID: constants.OIDEd448,
		PKLen: constants.Ed448PublicKeySize, SKLen: constants.Ed448PrivateKeySize, SigLen: constants.Ed448SignatureSize})
}

func registerMLDSA() {
	register(Row{Tag: MLDSA44, Family: FamilyMLDSA, OID: constants.OIDMLDSA44,
		PKLen: constants.MLDSA44PublicKeySize, SKLen: constants.MLDSA44PrivateKeySize, SigLen: constants.MLDSA44SignatureSize})
	register(Row{Tag: MLDSA65, Family: FamilyMLDSA, OID: constants.OIDMLDSA65,
		PKLen: constants.MLDSA65PublicKeySize, SKLen: constants.MLDSA65PrivateKeySize, SigLen: constants.MLDSA65SignatureSize})
	register(Row{Tag: MLDSA87, Family: FamilyMLDSA, OID: constants.OIDMLDSA87,
		PKLen: constants.MLDSA87PublicKeySize, SKLen: constants.MLDSA87PrivateKeySize, SigLen: constants.MLDSA87SignatureSize})

	// Hash-ML-DSA pins SHA-512 as its prehash, per hash_type.rs. These reuse
	// the pure variant's OID arc slot in the registry via distinct Tag values
	// but the same key/signature sizes (only the signed message differs).
	register(Row{Tag: HashMLDSA44, Family: FamilyMLDSA, OID: constants.OIDMLDSA44, Hash: HashSHA512, Prehash: true,
		PKLen: constants.MLDSA44PublicKeySize, SKLen: constants.MLDSA44PrivateKeySize, SigLen: constants.MLDSA44SignatureSize})
	register(Row{Tag: HashMLDSA65, Family: FamilyMLDSA, OID: constants.OIDMLDSA65, Hash: HashSHA512, Prehash: true,
		PKLen: constants.MLDSA65PublicKeySize, SKLen: constants.MLDSA65PrivateKeySize, SigLen: constants.MLDSA65SignatureSize})
	register(Row{Tag: HashMLDSA87, Family: FamilyMLDSA, OID: constants.OIDMLDSA87, Hash: HashSHA512, Prehash: true,
		PKLen: constants.MLDSA87PublicKeySize, SKLen: constants.MLDSA87PrivateKeySize, SigLen: constants.MLDSA87SignatureSize})
}

func registerSLHDSA() {
	type row struct {
		tag      Tag
		oid      string
		pk, sk   int
		sig      int
	}
	pure := []row{
		{SLHDSASHA2128s, constants.OIDSLHDSASHA2128s, slhDSA128PKLen, slhDSA128SKLen, slhDSA128sSigLen},
		{SLHDSASHA2128f, constants.OIDSLHDSASHA2128f, slhDSA128PKLen, slhDSA128SKLen, slhDSA128fSigLen},
		{SLHDSASHA2192s, constants.OIDSLHDSASHA2192s, slhDSA192PKLen, slhDSA192SKLen, slhDSA192sSigLen},
		{SLHDSASHA2192f, constants.OIDSLHDSASHA2192f, slhDSA192PKLen, slhDSA192SKLen, slhDSA192fSigLen},
		{SLHDSASHA2256s, constants.OIDSLHDSASHA2256s, slhDSA256PKLen, slhDSA256SKLen, slhDSA256sSigLen},
		{SLHDSASHA2256f, constants.OIDSLHDSASHA2256f, slhDSA256PKLen, slhDSA256SKLen, slhDSA256fSigLen},
		{SLHDSASHAKE128s, constants.OIDSLHDSASHAKE128s, slhDSA128PKLen, slhDSA128SKLen, slhDSA128sSigLen},
		{SLHDSASHAKE128f, constants.OIDSLHDSASHAKE128f, slhDSA128PKLen, slhDSA128SKLen, slhDSA128fSigLen},
		{SLHDSASHAKE192s, constants.OIDSLHDSASHAKE192s, slhDSA192PKLen, slhDSA192SKLen, slhDSA192sSigLen},
		{SLHDSASHAKE192f, constants.OIDSLHDSASHAKE192f, slhDSA192PKLen, slhDSA192SKLen, slhDSA192fSigLen},
		{SLHDSASHAKE256s, constants.OIDSLHDSASHAKE256s, slhDSA256PKLen, slhDSA256SKLen, slhDSA256sSigLen},
		{SLHDSASHAKE256f, constants.OIDSLHDSASHAKE256f, slhDSA256PKLen, slhDSA256SKLen, slhDSA256fSigLen},
	}
	// Prehash pinning per hash_type.rs: SHA2 128 pins SHA-256; SHA2 192/256
	// pin SHA-512; SHAKE-128 pins SHAKE-128; SHAKE-192/256 pin SHAKE-256.
	prehashOf := map[Tag]Hash{
		SLHDSASHA2128s: HashSHA256, SLHDSASHA2128f: HashSHA256,
		SLHDSASHA2192s: HashSHA512, SLHDSASHA2192f: HashSHA512,
		SLHDSASHA2256s: HashSHA512, SLHDSASHA2256f: HashSHA512,
		SLHDSASHAKE128s: HashSHAKE128, SLHDSASHAKE128f: HashSHAKE128,
		SLHDSASHAKE192s: HashSHAKE256, SLHDSASHAKE192f: HashSHAKE256,
		SLHDSASHAKE256s: HashSHAKE256, SLHDSASHAKE256f: HashSHAKE256,
	}
	hashTagOf := map[Tag]Tag{
		SLHDSASHA2128s: HashSLHDSASHA2128s, SLHDSASHA2128f: HashSLHDSASHA2128f,
		SLHDSASHA2192s: HashSLHDSASHA2192s, SLHDSASHA2192f: HashSLHDSASHA2192f,
		SLHDSASHA2256s: HashSLHDSASHA2256s, SLHDSASHA2256f: HashSLHDSASHA2256f,
		SLHDSASHAKE128s: HashSLHDSASHAKE128s, SLHDSASHAKE128f: HashSLHDSASHAKE128f,
		SLHDSASHAKE192s: HashSLHDSASHAKE192s, SLHDSASHAKE192f: HashSLHDSASHAKE192f,
		SLHDSASHAKE256s: HashSLHDSASHAKE256s, SLHDSASHAKE256f: HashSLHDSASHAKE256f,
	}

	for _, r := range pure {
		register(Row{Tag: r.tag, Family: FamilySLHDSA, OID: r.oid, PKLen: r.pk, SKLen: r.sk, SigLen: r.sig})
		hashTag := hashTagOf[r.tag]
		register(Row{Tag: hashTag, Family: FamilySLHDSA, OID: r.oid, Hash: prehashOf[r.tag], Prehash: true,
			PKLen: r.pk, SKLen: r.sk, SigLen: r.sig})
	}
}

func registerCompositeMLDSA() {
	type combo struct {
		pureTag, hashTag       Tag
		pureOID, hashOID       string
		pq, trad               Tag
		pureHash, hashHash     Hash
		skLen                  int // LenVariable if the trad half is RSA
	}
	combos := []combo{
		{MLDSA44RSA2048PSS, HashMLDSA44RSA2048PSS, constants.OIDMLDSA44RSA2048PSS, constants.OIDHashMLDSA44RSA2048PSSSHA256, MLDSA44, RSA2048PSS, HashNone, HashSHA256, LenVariable},
		{MLDSA44RSA2048PKCS15, HashMLDSA44RSA2048PKCS15, constants.OIDMLDSA44RSA2048PKCS15, constants.OIDHashMLDSA44RSA2048PKCS15SHA256, MLDSA44, RSA2048PKCS15, HashNone, HashSHA256, LenVariable},
		{MLDSA44Ed25519, HashMLDSA44Ed25519, constants.OIDMLDSA44Ed25519, constants.OIDHashMLDSA44Ed25519SHA512, MLDSA44, Ed25519, HashNone, HashSHA512, constants.MLDSA44PrivateKeySize + constants.Ed25519PrivateKeySize + constants.CompositeSKOverhead},
		{MLDSA44ECDSAP256, HashMLDSA44ECDSAP256, constants.OIDMLDSA44ECDSAP256, constants.OIDHashMLDSA44ECDSAP256SHA256, MLDSA44, ECDSAP256, HashNone, HashSHA256, constants.MLDSA44PrivateKeySize + constants.ECDSAP256PrivateKeySize + constants.CompositeSKOverhead},
		{MLDSA65RSA3072PSS, HashMLDSA65RSA3072PSS, constants.OIDMLDSA65RSA3072PSS, constants.OIDHashMLDSA65RSA3072PSSSHA512, MLDSA65, RSA3072PSS, HashNone, HashSHA512, LenVariable},
		{MLDSA65RSA3072PKCS15, HashMLDSA65RSA3072PKCS15, constants.OIDMLDSA65RSA3072PKCS15, constants.OIDHashMLDSA65RSA3072PKCS15SHA512, MLDSA65, RSA3072PKCS15, HashNone, HashSHA512, LenVariable},
		{MLDSA65RSA4096PSS, HashMLDSA65RSA4096PSS, constants.OIDMLDSA65RSA4096PSS, constants.OIDHashMLDSA65RSA4096PSSSHA512, MLDSA65, RSA4096PSS, HashNone, HashSHA512, LenVariable},
		{MLDSA65RSA4096PKCS15, HashMLDSA65RSA4096PKCS15, constants.OIDMLDSA65RSA4096PKCS15, constants.OIDHashMLDSA65RSA4096PKCS15SHA512, MLDSA65, RSA4096PKCS15, HashNone, HashSHA512, LenVariable},
		{MLDSA65ECDSAP384, HashMLDSA65ECDSAP384, constants.OIDMLDSA65ECDSAP384, constants.OIDHashMLDSA65ECDSAP384SHA512, MLDSA65, ECDSAP384, HashNone, HashSHA512, constants.MLDSA65PrivateKeySize + constants.ECDSAP384PrivateKeySize + constants.CompositeSKOverhead},
		{MLDSA65ECDSABrainpoolP256r1, HashMLDSA65ECDSABrainpoolP256r1, constants.OIDMLDSA65ECDSABrainpoolP256r1, constants.OIDHashMLDSA65ECDSABrainpoolP256r1SHA512, MLDSA65, ECDSABrainpoolP256r1, HashNone, HashSHA512, constants.MLDSA65PrivateKeySize + constants.ECDSAP256PrivateKeySize + constants.CompositeSKOverhead},
		{MLDSA65Ed25519, HashMLDSA65Ed25519, constants.OIDMLDSA65Ed25519, constants.OIDHashMLDSA65Ed25519SHA512, MLDSA65, Ed25519, HashNone, HashSHA512, constants.MLDSA65PrivateKeySize + constants.Ed25519PrivateKeySize + constants.CompositeSKOverhead},
		{MLDSA87ECDSAP384, HashMLDSA87ECDSAP384, constants.OIDMLDSA87ECDSAP384, constants.OIDHashMLDSA87ECDSAP384SHA512, MLDSA87, ECDSAP384, HashNone, HashSHA512, constants.MLDSA87PrivateKeySize + constants.ECDSAP384PrivateKeySize + constants.CompositeSKOverhead},
		{MLDSA87ECDSABrainpoolP384r1, HashMLDSA87ECDSABrainpoolP384r1, constants.OIDMLDSA87ECDSABrainpoolP384r1, constants.OIDHashMLDSA87ECDSABrainpoolP384r1SHA512, MLDSA87, ECDSABrainpoolP384r1, HashNone, HashSHA512, constants.MLDSA87PrivateKeySize + constants.ECDSAP384PrivateKeySize + constants.CompositeSKOverhead},
		{MLDSA87Ed448, HashMLDSA87Ed448, constants.OIDMLDSA87Ed448, constants.OIDHashMLDSA87Ed448SHA512, MLDSA87, Ed448, HashNone, HashSHA512, constants.MLDSA87PrivateKeySize + constants.Ed448PrivateKeySize + constants.CompositeSKOverhead},
	}

	for _, c := range combos {
		unsupported := c.trad == ECDSABrainpoolP256r1 || c.trad == ECDSABrainpoolP384r1
		register(Row{Tag: c.pureTag, Family: FamilyCompositeDSA, OID: c.pureOID, Hash: c.pureHash,
			SKLen: c.skLen, SigLen: LenVariable, Composite: true, PQTag: c.pq, TradTag: c.trad, Unsupported: unsupported})
		register(Row{Tag: c.hashTag, Family: FamilyCompositeDSA, OID: c.hashOID, Hash: c.hashHash, Prehash: true,
			SKLen: c.skLen, SigLen: LenVariable, Composite: true, PQTag: c.pq, TradTag: c.trad, Unsupported: unsupported})
	}
}

func registerMLKEM() {
	register(Row{Tag: MLKEM512, Family: FamilyMLKEM, OID: constants.OIDMLKEM512,
		PKLen: constants.MLKEM512PublicKeySize, SKLen: constants.MLKEM512PrivateKeySize,
		CTLen: constants.MLKEM512CiphertextSize, SSLen: constants.MLKEMSharedSecretSize})
	register(Row{Tag: MLKEM768, Family: FamilyMLKEM, OID: constants.OIDMLKEM768,
		PKLen: constants.MLKEM768PublicKeySize, SKLen: constants.MLKEM768PrivateKeySize,
		CTLen: constants.MLKEM768CiphertextSize, SSLen: constants.MLKEMSharedSecretSize})
	register(Row{Tag: MLKEM1024, Family: FamilyMLKEM, OID: constants.OIDMLKEM1024,
		PKLen: constants.MLKEM1024PublicKeySize, SKLen: constants.MLKEM1024PrivateKeySize,
		CTLen: constants.MLKEM1024CiphertextSize, SSLen: constants.MLKEMSharedSecretSize})
}

func registerCompositeKEM() {
	register(Row{Tag: MLKEM512X25519, Family: FamilyCompositeKEM, OID: constants.OIDMLKEM512X25519,
		Composite: true, PQTag: MLKEM512, TradTag: 0, SSLen: constants.MLKEMSharedSecretSize})
	register(Row{Tag: MLKEM768X25519, Family: FamilyCompositeKEM, OID: constants.OIDMLKEM768X25519,
		Composite: true, PQTag: MLKEM768, TradTag: 0, SSLen: constants.MLKEMSharedSecretSize})
	register(Row{Tag: MLKEM1024X25519, Family: FamilyCompositeKEM, OID: constants.OIDMLKEM1024X25519,
		Composite: true, PQTag: MLKEM1024, TradTag: 0, SSLen: constants.MLKEMSharedSecretSize})
	register(Row{Tag: MLKEM1024ECDHP384, Family: FamilyCompositeKEM, OID: constants.OIDMLKEM1024ECDHP384,
		Composite: true, PQTag: MLKEM1024, TradTag: 0, SSLen: constants.MLKEMSharedSecretSize})
}
