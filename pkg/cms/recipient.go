package cms

import (
	"bytes"
	"encoding/asn1"
	"encoding/binary"
	"strconv"
	"strings"

	"crypto/x509/pkix"

	"github.com/pqlabs/pqx/internal/constants"
	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/certificate"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/registry"
)

// Recipient is one entry of EnvelopedData.recipientInfos. KEMRIRecipient is
// the fully elaborated arm; RawRecipientInfo passes through an
// already-encoded RecipientInfo CHOICE value for KEKRI/KTRI/KARI/PWRI/ORI,
// which this package names but does not build.
type Recipient interface {
	encode(cek []byte) (asn1.RawValue, error)
}

// KEMRIRecipient builds a KemRecipientInfo (carried as an OtherRecipientInfo
// under id-ori-kem) targeting Certificate's public key, per spec.md §4.F
// step 3.
type KEMRIRecipient struct {
	Certificate *certificate.Certificate
	// WrapOID selects the AES-KW variant (constants.OIDAES{128,192,256}Wrap);
	// its key length also fixes the KDF output length.
	WrapOID string
	// UKM is optional user keying material folded into the KDF info.
	UKM []byte
	// UseSKI identifies the recipient by its certificate's
	// SubjectKeyIdentifier instead of IssuerAndSerialNumber.
	UseSKI bool
}

// RawRecipientInfo passes an already-DER-encoded RecipientInfo CHOICE value
// through Build unexamined.
type RawRecipientInfo struct {
	DER []byte
}

func (r *RawRecipientInfo) encode(cek []byte) (asn1.RawValue, error) {
	return asn1.RawValue{FullBytes: r.DER}, nil
}

func (r *KEMRIRecipient) encode(cek []byte) (asn1.RawValue, error) {
	if r.Certificate == nil {
		return asn1.RawValue{}, qerrors.ErrInvalidCertificate
	}
	if !r.Certificate.IsKeyEnciphermentEnabled() {
		return asn1.RawValue{}, qerrors.NewProtocolError("cms.Build", qerrors.ErrInvalidCertificate)
	}

	pub := r.Certificate.PublicKey()
	kemCT, ss, err := pub.Encapsulate()
	if err != nil {
		return asn1.RawValue{}, qerrors.NewProtocolError("cms.Build", qerrors.ErrEncapFailed)
	}

	kekLen, err := keyWrapKeySize(r.WrapOID)
	if err != nil {
		return asn1.RawValue{}, err
	}
	wrapOID, err := parseDottedOID(r.WrapOID)
	if err != nil {
		return asn1.RawValue{}, err
	}
	kdfOID, err := parseDottedOID(constants.OIDHKDFSHA256)
	if err != nil {
		return asn1.RawValue{}, err
	}

	info, err := buildKDFInfo(wrapOID, kekLen, r.UKM)
	if err != nil {
		return asn1.RawValue{}, err
	}
	kek, err := crypto.HKDFExpand(ss, nil, info, kekLen)
	if err != nil {
		return asn1.RawValue{}, err
	}
	wrapped, err := crypto.WrapKey(kek, cek)
	if err != nil {
		return asn1.RawValue{}, err
	}

	rid, err := buildRecipientID(r.Certificate, r.UseSKI)
	if err != nil {
		return asn1.RawValue{}, err
	}

	row, ok := registry.Lookup(pub.Tag)
	if !ok {
		return asn1.RawValue{}, qerrors.ErrUnsupportedAlgorithm
	}
	kemOID, err := parseDottedOID(row.OID)
	if err != nil {
		return asn1.RawValue{}, err
	}

	kri := kemRecipientInfo{
		Version:      0,
		RID:          rid,
		KEM:          pkix.AlgorithmIdentifier{Algorithm: kemOID},
		KEMCT:        kemCT,
		KDF:          pkix.AlgorithmIdentifier{Algorithm: kdfOID},
		KEKLength:    kekLen,
		UKM:          r.UKM,
		Wrap:         pkix.AlgorithmIdentifier{Algorithm: wrapOID},
		EncryptedKey: wrapped,
	}
	kriDER, err := asn1.Marshal(kri)
	if err != nil {
		return asn1.RawValue{}, qerrors.NewCryptoError("cms.KEMRIRecipient.encode", err)
	}

	oriOID, err := parseDottedOID(constants.OIDORIKem)
	if err != nil {
		return asn1.RawValue{}, err
	}
	ori := otherRecipientInfo{
		ORIType:  oriOID,
		ORIValue: asn1.RawValue{FullBytes: kriDER},
	}
	oriDER, err := asn1.Marshal(ori)
	if err != nil {
		return asn1.RawValue{}, qerrors.NewCryptoError("cms.KEMRIRecipient.encode", err)
	}

	return asn1.RawValue{FullBytes: implicitContextTag(oriDER, recipientInfoTagORI)}, nil
}

// buildRecipientID encodes cert's recipient identifier as either an
// IssuerAndSerialNumber SEQUENCE or a [0] IMPLICIT SubjectKeyIdentifier.
func buildRecipientID(cert *certificate.Certificate, useSKI bool) (asn1.RawValue, error) {
	if useSKI {
		der, err := asn1.Marshal(cert.SubjectKeyID())
		if err != nil {
			return asn1.RawValue{}, qerrors.NewCryptoError("cms.buildRecipientID", err)
		}
		return asn1.RawValue{FullBytes: implicitContextTag(der, 0)}, nil
	}
	isn := issuerAndSerialNumber{
		Issuer:       asn1.RawValue{FullBytes: cert.RawIssuer()},
		SerialNumber: cert.SerialNumber,
	}
	der, err := asn1.Marshal(isn)
	if err != nil {
		return asn1.RawValue{}, qerrors.NewCryptoError("cms.buildRecipientID", err)
	}
	return asn1.RawValue{FullBytes: der}, nil
}

// ridMatchesCertificate implements spec.md §4.F's recipient identifier match
// rule: IssuerAndSerialNumber compares issuer DN (byte-exact DER) and serial
// integer exactly; SubjectKeyIdentifier compares the 20-byte SKI exactly.
func ridMatchesCertificate(rid asn1.RawValue, cert *certificate.Certificate) bool {
	if rid.Class == asn1.ClassContextSpecific && rid.Tag == 0 {
		return bytes.Equal(rid.Bytes, cert.SubjectKeyID())
	}
	var isn issuerAndSerialNumber
	if _, err := asn1.Unmarshal(rid.FullBytes, &isn); err != nil {
		return false
	}
	return bytes.Equal(isn.Issuer.FullBytes, cert.RawIssuer()) && isn.SerialNumber.Cmp(cert.SerialNumber) == 0
}

// buildKDFInfo encodes the KDF "info" input as the DER of the wrap OID,
// followed by the big-endian key length and any UKM, per spec.md §4.F
// step 3.
func buildKDFInfo(wrapOID asn1.ObjectIdentifier, kekLen int, ukm []byte) ([]byte, error) {
	oidDER, err := asn1.Marshal(wrapOID)
	if err != nil {
		return nil, qerrors.NewCryptoError("cms.buildKDFInfo", err)
	}
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(kekLen))
	info := make([]byte, 0, len(oidDER)+4+len(ukm))
	info = append(info, oidDER...)
	info = append(info, lenBuf...)
	info = append(info, ukm...)
	return info, nil
}

// implicitContextTag rewrites der's leading identifier octet to a
// context-specific IMPLICIT tag, preserving the constructed bit der
// already carries. Used for the RecipientIdentifier and RecipientInfo
// CHOICE arms this package builds, since encoding/asn1 has no native
// CHOICE support.
func implicitContextTag(der []byte, tag int) []byte {
	out := append([]byte(nil), der...)
	constructed := out[0] & 0x20
	out[0] = 0x80 | constructed | byte(tag)
	return out
}

// parseDottedOID parses a dotted-decimal OID string into an
// asn1.ObjectIdentifier.
func parseDottedOID(oid string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(oid, ".")
	ints := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, qerrors.ErrUnsupportedAlgorithm
		}
		ints[i] = n
	}
	return asn1.ObjectIdentifier(ints), nil
}
