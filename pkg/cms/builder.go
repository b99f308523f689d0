// Package cms implements CMS (RFC 5652) EnvelopedData with the KEMRI
// recipient-info variant (draft-ietf-lamps-cms-kemri), per spec.md §4.F.
// Build produces a ContentInfo carrying AES-CBC/PKCS#7-encrypted content
// for any mix of recipients; Open decrypts it for one recipient holding a
// matching PrivateKey and Certificate.
package cms

import (
	"context"
	"encoding/asn1"

	"crypto/x509/pkix"

	"github.com/pqlabs/pqx/internal/constants"
	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/internal/log"
	"github.com/pqlabs/pqx/pkg/crypto"
)

// Build encrypts plaintext under a fresh CEK sized for contentEncAlg (one
// of constants.OIDAES{128,192,256}CBC), wraps that CEK for each recipient,
// and returns the DER-encoded ContentInfo.
func Build(plaintext []byte, contentEncAlg string, recipients []Recipient) (_ []byte, err error) {
	_, end := log.StartSpan(context.Background(), log.SpanCMSBuild, map[string]interface{}{
		"recipients": len(recipients),
		"cea":        contentEncAlg,
	})
	defer func() { end(err) }()

	if len(recipients) == 0 {
		return nil, qerrors.ErrInvalidAttribute
	}

	cek, iv, ciphertext, err := encryptContent(contentEncAlg, plaintext)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(cek)

	ceaOID, err := parseDottedOID(contentEncAlg)
	if err != nil {
		return nil, err
	}
	ivDER, err := asn1.Marshal(iv)
	if err != nil {
		return nil, qerrors.NewCryptoError("cms.Build", err)
	}
	dataOID, err := parseDottedOID(constants.OIDData)
	if err != nil {
		return nil, err
	}

	recipientInfos := make([]asn1.RawValue, 0, len(recipients))
	for _, r := range recipients {
		ri, err := r.encode(cek)
		if err != nil {
			return nil, err
		}
		recipientInfos = append(recipientInfos, ri)
	}

	ed := EnvelopedData{
		Version:        0,
		RecipientInfos: recipientInfos,
		EncryptedContentInfo: EncryptedContentInfo{
			ContentType: dataOID,
			ContentEncryptionAlgorithm: pkix.AlgorithmIdentifier{
				Algorithm:  ceaOID,
				Parameters: asn1.RawValue{FullBytes: ivDER},
			},
			EncryptedContent: ciphertext,
		},
	}
	edDER, err := asn1.Marshal(ed)
	if err != nil {
		return nil, qerrors.NewCryptoError("cms.Build", err)
	}

	envelopedDataOID, err := parseDottedOID(constants.OIDEnvelopedData)
	if err != nil {
		return nil, err
	}
	ci := ContentInfo{
		ContentType: envelopedDataOID,
		Content: asn1.RawValue{
			Class:      asn1.ClassContextSpecific,
			Tag:        0,
			IsCompound: true,
			Bytes:      edDER,
		},
	}
	out, err := asn1.Marshal(ci)
	if err != nil {
		return nil, qerrors.NewCryptoError("cms.Build", err)
	}
	return out, nil
}
