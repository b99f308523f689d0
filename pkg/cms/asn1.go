// asn1.go hand-writes the CMS (RFC 5652) wire shapes this package needs,
// plus the KEMRI RecipientInfo variant (draft-ietf-lamps-cms-kemri). The
// style follows the pack's ietf-cms protocol.go: one Go struct per ASN.1
// SEQUENCE, a RawValue CHOICE field where the grammar calls for one, and
// IssuerAndSerialNumber/SubjectKeyIdentifier as the two recipient
// identifier shapes.
package cms

import (
	"encoding/asn1"
	"math/big"

	"crypto/x509/pkix"
)

// ContentInfo ::= SEQUENCE {
//   contentType ContentType,
//   content [0] EXPLICIT ANY DEFINED BY contentType }
type ContentInfo struct {
	ContentType asn1.ObjectIdentifier
	Content     asn1.RawValue `asn1:"explicit,tag:0"`
}

// EncryptedContentInfo ::= SEQUENCE {
//   contentType ContentType,
//   contentEncryptionAlgorithm ContentEncryptionAlgorithmIdentifier,
//   encryptedContent [0] IMPLICIT OCTET STRING OPTIONAL }
type EncryptedContentInfo struct {
	ContentType                asn1.ObjectIdentifier
	ContentEncryptionAlgorithm pkix.AlgorithmIdentifier
	EncryptedContent           []byte `asn1:"implicit,tag:0"`
}

// EnvelopedData ::= SEQUENCE {
//   version CMSVersion,
//   originatorInfo [0] IMPLICIT OriginatorInfo OPTIONAL,
//   recipientInfos RecipientInfos,
//   encryptedContentInfo EncryptedContentInfo,
//   unprotectedAttrs [1] IMPLICIT UnprotectedAttributes OPTIONAL }
type EnvelopedData struct {
	Version              int
	RecipientInfos       []asn1.RawValue `asn1:"set"`
	EncryptedContentInfo EncryptedContentInfo
}

// issuerAndSerialNumber is the default CHOICE arm of the two
// SubjectIdentifier-ish shapes this package supports for a KEMRI recipient;
// the other is a [0] IMPLICIT SubjectKeyIdentifier.
//
// IssuerAndSerialNumber ::= SEQUENCE {
//   issuer Name,
//   serialNumber CertificateSerialNumber }
type issuerAndSerialNumber struct {
	Issuer       asn1.RawValue
	SerialNumber *big.Int
}

// kemRecipientInfo mirrors draft-ietf-lamps-cms-kemri's KEMRecipientInfo:
//
// KEMRecipientInfo ::= SEQUENCE {
//   version CMSVersion,
//   rid RecipientIdentifier,
//   kem KEMAlgorithmIdentifier,
//   kemct OCTET STRING,
//   kdf KeyDerivationAlgorithmIdentifier,
//   kekLength INTEGER,
//   ukm [0] EXPLICIT UserKeyingMaterial OPTIONAL,
//   wrap KeyEncryptionAlgorithmIdentifier,
//   encryptedKey OCTET STRING }
type kemRecipientInfo struct {
	Version      int
	RID          asn1.RawValue // IssuerAndSerialNumber SEQUENCE, or [0] IMPLICIT SKI OCTET STRING
	KEM          pkix.AlgorithmIdentifier
	KEMCT        []byte
	KDF          pkix.AlgorithmIdentifier
	KEKLength    int
	UKM          []byte `asn1:"optional,explicit,tag:0"`
	Wrap         pkix.AlgorithmIdentifier
	EncryptedKey []byte
}

// otherRecipientInfo mirrors RFC 5652's OtherRecipientInfo, the CHOICE arm
// a KEMRecipientInfo travels under (type id-ori-kem):
//
// OtherRecipientInfo ::= SEQUENCE {
//   oriType OBJECT IDENTIFIER,
//   oriValue ANY DEFINED BY oriType }
type otherRecipientInfo struct {
	ORIType  asn1.ObjectIdentifier
	ORIValue asn1.RawValue
}

// recipientInfoTag values distinguish RecipientInfo's CHOICE arms by their
// outer tag: KTRI is an untagged SEQUENCE, the rest are context-tagged.
const (
	recipientInfoTagKTRI = -1 // untagged SEQUENCE
	recipientInfoTagKARI = 1
	recipientInfoTagKEKRI = 2
	recipientInfoTagPWRI = 3
	recipientInfoTagORI  = 4
)
