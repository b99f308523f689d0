package cms

import (
	"context"
	"encoding/asn1"

	"crypto/x509/pkix"

	"github.com/pqlabs/pqx/internal/constants"
	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/internal/log"
	"github.com/pqlabs/pqx/pkg/certificate"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/keys"
)

// Open decrypts a CMS ContentInfo built by Build, for the recipient
// identified by cert holding privateKey, per spec.md §4.F Open steps 1-5.
func Open(contentInfoDER []byte, privateKey *keys.PrivateKey, cert *certificate.Certificate) (_ []byte, err error) {
	_, end := log.StartSpan(context.Background(), log.SpanCMSOpen, nil)
	defer func() { end(err) }()

	var ci ContentInfo
	rest, err := asn1.Unmarshal(contentInfoDER, &ci)
	if err != nil || len(rest) != 0 {
		return nil, qerrors.ErrInvalidCiphertext
	}

	envelopedDataOID, err := parseDottedOID(constants.OIDEnvelopedData)
	if err != nil {
		return nil, err
	}
	if !ci.ContentType.Equal(envelopedDataOID) {
		return nil, qerrors.NewProtocolError("cms.Open", qerrors.ErrUnsupportedAlgorithm)
	}

	var ed EnvelopedData
	if _, err := asn1.Unmarshal(ci.Content.Bytes, &ed); err != nil {
		return nil, qerrors.ErrInvalidCiphertext
	}

	kri, err := findMatchingKEMRI(ed.RecipientInfos, cert)
	if err != nil {
		return nil, err
	}

	ss, err := privateKey.Decapsulate(kri.KEMCT)
	if err != nil {
		return nil, qerrors.NewProtocolError("cms.Open", qerrors.ErrDecapFailed)
	}

	kekLen, err := keyWrapKeySize(kri.Wrap.Algorithm.String())
	if err != nil {
		return nil, err
	}
	info, err := buildKDFInfo(kri.Wrap.Algorithm, kekLen, kri.UKM)
	if err != nil {
		return nil, err
	}
	kek, err := crypto.HKDFExpand(ss, nil, info, kekLen)
	if err != nil {
		return nil, err
	}

	cek, err := crypto.UnwrapKey(kek, kri.EncryptedKey)
	if err != nil {
		return nil, qerrors.NewProtocolError("cms.Open", qerrors.ErrDecryptionFailed)
	}
	defer crypto.Zeroize(cek)

	iv, err := contentIV(ed.EncryptedContentInfo.ContentEncryptionAlgorithm)
	if err != nil {
		return nil, err
	}

	plaintext, err := decryptContent(cek, iv, ed.EncryptedContentInfo.EncryptedContent)
	if err != nil {
		return nil, qerrors.NewProtocolError("cms.Open", qerrors.ErrDecryptionFailed)
	}
	return plaintext, nil
}

// findMatchingKEMRI scans recipientInfos in document order for the first
// OtherRecipientInfo carrying a KemRecipientInfo whose recipient identifier
// matches cert, per spec.md §4.F's "first in document order wins" rule.
func findMatchingKEMRI(recipientInfos []asn1.RawValue, cert *certificate.Certificate) (*kemRecipientInfo, error) {
	oriOID, err := parseDottedOID(constants.OIDORIKem)
	if err != nil {
		return nil, err
	}

	for _, ri := range recipientInfos {
		if ri.Class != asn1.ClassContextSpecific || ri.Tag != recipientInfoTagORI {
			continue
		}
		var ori otherRecipientInfo
		if _, err := asn1.Unmarshal(universalSequence(ri.FullBytes), &ori); err != nil {
			continue
		}
		if !ori.ORIType.Equal(oriOID) {
			continue
		}
		var kri kemRecipientInfo
		if _, err := asn1.Unmarshal(ori.ORIValue.FullBytes, &kri); err != nil {
			continue
		}
		if ridMatchesCertificate(kri.RID, cert) {
			return &kri, nil
		}
	}
	return nil, qerrors.ErrNoMatchingRecipient
}

// contentIV extracts the AES-CBC IV from a ContentEncryptionAlgorithmIdentifier
// whose parameters are the OCTET STRING IV (RFC 3565).
func contentIV(alg pkix.AlgorithmIdentifier) ([]byte, error) {
	var iv []byte
	if _, err := asn1.Unmarshal(alg.Parameters.FullBytes, &iv); err != nil {
		return nil, qerrors.ErrInvalidCiphertext
	}
	return iv, nil
}

// universalSequence rewrites der's leading identifier octet from a
// context-specific IMPLICIT tag back to the universal constructed SEQUENCE
// tag, the inverse of implicitContextTag, so the struct-based Unmarshal can
// parse an IMPLICIT-tagged SEQUENCE field.
func universalSequence(der []byte) []byte {
	out := append([]byte(nil), der...)
	out[0] = 0x30
	return out
}
