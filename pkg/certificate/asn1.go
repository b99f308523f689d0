// asn1.go hand-rolls the X.509 wire shapes this package needs. Go's
// stdlib crypto/x509.CreateCertificate cannot be used directly: its
// internal signatureAlgorithmDetails table has no entries for PQ or
// composite OIDs, so it would reject every certificate this toolkit is
// meant to produce. The shapes below are the same RFC 5280 structures
// crypto/x509 itself marshals, reusing pkix.AlgorithmIdentifier,
// pkix.Name, and pkix.Extension rather than redefining them.
package certificate

import (
	"encoding/asn1"
	"math/big"
	"time"

	"crypto/x509/pkix"
)

// tbsCertificate mirrors RFC 5280 §4.1 TBSCertificate. Issuer and Subject
// are carried as already-encoded RDNSequence DER (asn1.RawValue) so the
// exact bytes signed and verified are byte-identical to what ToRDNSequence
// produced, independent of any later re-marshaling.
type tbsCertificate struct {
	Version      int `asn1:"optional,explicit,default:0,tag:0"`
	SerialNumber *big.Int
	Signature    pkix.AlgorithmIdentifier
	Issuer       asn1.RawValue
	Validity     validity
	Subject      asn1.RawValue
	PublicKey    pkix.SubjectPublicKeyInfo
	Extensions   []pkix.Extension `asn1:"optional,explicit,tag:3"`
}

// validity mirrors RFC 5280's Validity SEQUENCE; asn1.Marshal renders a
// time.Time as UTCTime or GeneralizedTime depending on the year, the same
// rule crypto/x509 relies on.
type validity struct {
	NotBefore, NotAfter time.Time
}

// certificateASN1 mirrors RFC 5280's outer Certificate SEQUENCE. The TBS
// field is kept as the exact bytes that were signed (an asn1.RawValue),
// never re-marshaled, so the signature always covers precisely what was
// sent.
type certificateASN1 struct {
	TBSCertificate     asn1.RawValue
	SignatureAlgorithm pkix.AlgorithmIdentifier
	SignatureValue     asn1.BitString
}

var (
	oidExtKeyUsage         = asn1.ObjectIdentifier{2, 5, 29, 15}
	oidExtBasicConstraints = asn1.ObjectIdentifier{2, 5, 29, 19}
	oidExtSubjectKeyID     = asn1.ObjectIdentifier{2, 5, 29, 14}
)

// basicConstraints mirrors RFC 5280 §4.2.1.9.
type basicConstraints struct {
	IsCA       bool `asn1:"optional"`
	MaxPathLen int  `asn1:"optional,default:-1"`
}

// marshalKeyUsage encodes ku as the BIT STRING RFC 5280 §4.2.1.3 defines,
// bit 0 (digitalSignature) as the first, most-significant bit.
func marshalKeyUsage(ku KeyUsage) (asn1.BitString, error) {
	var bytes [2]byte
	for i := 0; i < 9; i++ {
		if ku&(1<<uint(i)) == 0 {
			continue
		}
		bytePos := i / 8
		bitPos := uint(7 - i%8)
		bytes[bytePos] |= 1 << bitPos
	}
	length := 1
	if bytes[1] != 0 {
		length = 2
	}
	return asn1.BitString{Bytes: bytes[:length], BitLength: length * 8}, nil
}

// unmarshalKeyUsage reverses marshalKeyUsage.
func unmarshalKeyUsage(bs asn1.BitString) KeyUsage {
	var ku KeyUsage
	for i := 0; i < 9; i++ {
		bytePos := i / 8
		if bytePos >= len(bs.Bytes) {
			break
		}
		bitPos := uint(7 - i%8)
		if bs.Bytes[bytePos]&(1<<bitPos) != 0 {
			ku |= 1 << uint(i)
		}
	}
	return ku
}
