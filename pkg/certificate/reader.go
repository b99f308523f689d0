package certificate

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"

	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/keys"
	"github.com/pqlabs/pqx/pkg/registry"
)

const pemBlockTypeCertificate = "CERTIFICATE"

// ParseCertificate parses a single DER-encoded X.509 certificate.
func ParseCertificate(der []byte) (*Certificate, error) {
	var raw certificateASN1
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil || len(rest) != 0 {
		return nil, qerrors.ErrInvalidCertificate
	}

	var tbs tbsCertificate
	if _, err := asn1.Unmarshal(raw.TBSCertificate.FullBytes, &tbs); err != nil {
		return nil, qerrors.ErrInvalidCertificate
	}

	var issuerSeq, subjectSeq pkix.RDNSequence
	if _, err := asn1.Unmarshal(tbs.Issuer.FullBytes, &issuerSeq); err != nil {
		return nil, qerrors.ErrInvalidCertificate
	}
	if _, err := asn1.Unmarshal(tbs.Subject.FullBytes, &subjectSeq); err != nil {
		return nil, qerrors.ErrInvalidCertificate
	}
	var issuerName, subjectName pkix.Name
	issuerName.FillFromRDNSequence(&issuerSeq)
	subjectName.FillFromRDNSequence(&subjectSeq)

	spkiDER, err := asn1.Marshal(tbs.PublicKey)
	if err != nil {
		return nil, qerrors.NewCryptoError("certificate.ParseCertificate", err)
	}
	pub, err := keys.FromPublicKeyDER(spkiDER)
	if err != nil {
		return nil, err
	}

	sigTag, ok := registry.LookupOID(raw.SignatureAlgorithm.Algorithm.String())
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}

	cert := &Certificate{
		Raw:          der,
		SerialNumber: tbs.SerialNumber,
		subject:      subjectName,
		rawSubject:   tbs.Subject.FullBytes,
		issuer:       issuerName,
		rawIssuer:    tbs.Issuer.FullBytes,
		notBefore:    tbs.Validity.NotBefore,
		notAfter:     tbs.Validity.NotAfter,
		publicKey:    pub,
		sigTag:       sigTag,
	}

	if err := parseExtensions(cert, tbs.Extensions); err != nil {
		return nil, err
	}

	return cert, nil
}

// VerifySignedBy reports whether c's signature was produced by issuerKey
// over c's TBSCertificate bytes. Callers verify a Root against its own
// PublicKey (self-signed) and a Leaf against its issuing Root's PublicKey.
func (c *Certificate) VerifySignedBy(issuerKey *keys.PublicKey) (bool, error) {
	var raw certificateASN1
	if _, err := asn1.Unmarshal(c.Raw, &raw); err != nil {
		return false, qerrors.ErrInvalidCertificate
	}
	return issuerKey.Verify(raw.TBSCertificate.FullBytes, raw.SignatureValue.RightAlign())
}

// ParseCertificatePEM parses a PEM-encoded X.509 certificate.
func ParseCertificatePEM(data []byte) (*Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemBlockTypeCertificate {
		return nil, qerrors.ErrInvalidCertificate
	}
	return ParseCertificate(block.Bytes)
}

// ToPEM encodes the certificate's raw DER as a PEM block.
func (c *Certificate) ToPEM() []byte {
	return pem.EncodeToMemory(&pem.Block{Type: pemBlockTypeCertificate, Bytes: c.Raw})
}

func parseExtensions(cert *Certificate, exts []pkix.Extension) error {
	for _, ext := range exts {
		switch {
		case ext.Id.Equal(oidExtBasicConstraints):
			var bc basicConstraints
			if _, err := asn1.Unmarshal(ext.Value, &bc); err != nil {
				return qerrors.ErrInvalidCertificate
			}
			cert.isCA = bc.IsCA
		case ext.Id.Equal(oidExtKeyUsage):
			var bs asn1.BitString
			if _, err := asn1.Unmarshal(ext.Value, &bs); err != nil {
				return qerrors.ErrInvalidCertificate
			}
			cert.keyUsage = unmarshalKeyUsage(bs)
		case ext.Id.Equal(oidExtSubjectKeyID):
			var ski []byte
			if _, err := asn1.Unmarshal(ext.Value, &ski); err != nil {
				return qerrors.ErrInvalidCertificate
			}
			cert.subjectKeyID = ski
		}
	}
	return nil
}
