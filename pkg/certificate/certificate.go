// Package certificate builds and parses X.509 v3 certificates carrying
// PQ or composite SubjectPublicKeyInfo values, per spec.md §4.E. It
// supports two profiles: a self-signed Root (CA:true) and a Leaf signed
// by a parent, with caller-configurable Key Usage bits. The signer is
// always a keys.PrivateKey whose tag is a DSA tag (plain or composite);
// the certificate's signatureAlgorithm is that tag's OID.
//
// This package hand-rolls the ASN.1 shapes crypto/x509.CreateCertificate
// would otherwise produce, because stdlib's signature-algorithm table has
// no entries for PQ/composite OIDs (see asn1.go).
package certificate

import (
	"crypto/x509/pkix"
	"math/big"
	"time"

	"github.com/pqlabs/pqx/pkg/registry"
	"github.com/pqlabs/pqx/pkg/keys"
)

// KeyUsage mirrors RFC 5280's KeyUsage bit string, the bits spec.md §4.E
// names explicitly (digitalSignature, keyEncipherment, keyAgreement) plus
// the rest of the standard extension for completeness.
type KeyUsage uint16

const (
	KeyUsageDigitalSignature KeyUsage = 1 << iota
	KeyUsageContentCommitment
	KeyUsageKeyEncipherment
	KeyUsageDataEncipherment
	KeyUsageKeyAgreement
	KeyUsageCertSign
	KeyUsageCRLSign
	KeyUsageEncipherOnly
	KeyUsageDecipherOnly
)

// Certificate is a parsed X.509 v3 certificate. Construct one with
// ParseCertificate/ParseCertificatePEM, for instance from the DER that
// CreateCertificate returns.
type Certificate struct {
	Raw          []byte
	SerialNumber *big.Int

	subject    pkix.Name
	rawSubject []byte
	issuer     pkix.Name
	rawIssuer  []byte

	notBefore time.Time
	notAfter  time.Time

	publicKey *keys.PublicKey
	isCA      bool
	keyUsage  KeyUsage

	sigTag       registry.Tag
	subjectKeyID []byte
}

// Subject returns the certificate's subject distinguished name.
func (c *Certificate) Subject() pkix.Name { return c.subject }

// Issuer returns the certificate's issuer distinguished name.
func (c *Certificate) Issuer() pkix.Name { return c.issuer }

// RawSubject returns the DER encoding of the subject RDNSequence, the
// byte-exact form spec.md §4.F's IssuerAndSerialNumber match rule compares.
func (c *Certificate) RawSubject() []byte { return c.rawSubject }

// RawIssuer returns the DER encoding of the issuer RDNSequence.
func (c *Certificate) RawIssuer() []byte { return c.rawIssuer }

// PublicKey returns the certificate's subject public key.
func (c *Certificate) PublicKey() *keys.PublicKey { return c.publicKey }

// NotBefore returns the start of the certificate's validity window.
func (c *Certificate) NotBefore() time.Time { return c.notBefore }

// NotAfter returns the end of the certificate's validity window.
func (c *Certificate) NotAfter() time.Time { return c.notAfter }

// IsCA reports whether the basicConstraints extension marks this
// certificate as a CA (the Root profile).
func (c *Certificate) IsCA() bool { return c.isCA }

// KeyUsage returns the certificate's raw Key Usage bits.
func (c *Certificate) KeyUsage() KeyUsage { return c.keyUsage }

// IsKeyEnciphermentEnabled reports whether the keyEncipherment bit is set,
// the bit a KEMRI recipient certificate must carry (spec.md §4.F step 3).
func (c *Certificate) IsKeyEnciphermentEnabled() bool {
	return c.keyUsage&KeyUsageKeyEncipherment != 0
}

// IsKeyAgreementEnabled reports whether the keyAgreement bit is set.
func (c *Certificate) IsKeyAgreementEnabled() bool {
	return c.keyUsage&KeyUsageKeyAgreement != 0
}

// SignatureAlgorithm returns the registry tag of the algorithm that signed
// this certificate.
func (c *Certificate) SignatureAlgorithm() registry.Tag { return c.sigTag }

// SubjectKeyID returns the 20-byte SHA-1 SubjectKeyIdentifier computed over
// the subject public key's BIT STRING contents (RFC 5280 method 1), used by
// spec.md §4.F's SubjectKeyIdentifier recipient-matching rule.
func (c *Certificate) SubjectKeyID() []byte { return c.subjectKeyID }
