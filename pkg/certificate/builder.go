package certificate

import (
	"context"
	"crypto/sha1" //nolint:gosec // RFC 5280 method-1 SubjectKeyIdentifier is a SHA-1 hash by definition, not a security boundary
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/pqlabs/pqx/internal/log"
	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/keys"
	"github.com/pqlabs/pqx/pkg/registry"
)

// Template holds the caller-supplied fields of a certificate to be built;
// everything else (version, extensions framing, TBS encoding) is this
// package's responsibility.
type Template struct {
	// SerialNumber is used verbatim if non-nil; otherwise a fresh 20-byte
	// random positive integer is generated, per spec.md §4.E.
	SerialNumber *big.Int
	Subject      pkix.Name
	NotBefore    time.Time
	NotAfter     time.Time
	IsCA         bool
	KeyUsage     KeyUsage
}

// CreateCertificate builds a DER-encoded X.509 v3 certificate for tmpl,
// signed by signer. If parent is nil the certificate is self-signed (the
// Root profile: issuer == subject); otherwise parent supplies the issuer
// name (the Leaf profile). signer's tag must be a DSA tag (plain or
// composite); pub is the certificate's own subject public key.
func CreateCertificate(tmpl *Template, parent *Certificate, pub *keys.PublicKey, signer *keys.PrivateKey) (_ []byte, err error) {
	isCA := tmpl != nil && tmpl.IsCA
	_, end := log.StartSpan(context.Background(), log.SpanCertificateBuild, map[string]interface{}{
		"ca": isCA,
	})
	defer func() { end(err) }()

	if tmpl == nil || pub == nil || signer == nil {
		return nil, qerrors.ErrInvalidCertificate
	}
	if !signer.Tag.IsDSA() {
		return nil, qerrors.NewProtocolError("certificate.CreateCertificate", qerrors.ErrUnsupportedAlgorithm)
	}
	row, ok := registry.Lookup(signer.Tag)
	if !ok {
		return nil, qerrors.ErrUnsupportedAlgorithm
	}
	sigOID, err := oidFromString(row.OID)
	if err != nil {
		return nil, err
	}

	serial := tmpl.SerialNumber
	if serial == nil {
		serial, err = randomSerialNumber()
		if err != nil {
			return nil, err
		}
	}

	issuerName := tmpl.Subject
	if parent != nil {
		issuerName = parent.Subject()
	}
	issuerDER, err := asn1.Marshal(issuerName.ToRDNSequence())
	if err != nil {
		return nil, qerrors.NewCryptoError("certificate.CreateCertificate", err)
	}
	subjectDER, err := asn1.Marshal(tmpl.Subject.ToRDNSequence())
	if err != nil {
		return nil, qerrors.NewCryptoError("certificate.CreateCertificate", err)
	}

	pubDER, err := pub.ToDER()
	if err != nil {
		return nil, err
	}
	var spki pkix.SubjectPublicKeyInfo
	if rest, err := asn1.Unmarshal(pubDER, &spki); err != nil || len(rest) != 0 {
		return nil, qerrors.ErrInvalidPublicKey
	}

	exts, err := buildExtensions(tmpl, spki)
	if err != nil {
		return nil, err
	}

	tbs := tbsCertificate{
		Version:      2,
		SerialNumber: serial,
		Signature:    pkix.AlgorithmIdentifier{Algorithm: sigOID},
		Issuer:       asn1.RawValue{FullBytes: issuerDER},
		Validity:     validity{NotBefore: tmpl.NotBefore.UTC(), NotAfter: tmpl.NotAfter.UTC()},
		Subject:      asn1.RawValue{FullBytes: subjectDER},
		PublicKey:    spki,
		Extensions:   exts,
	}
	tbsDER, err := asn1.Marshal(tbs)
	if err != nil {
		return nil, qerrors.NewCryptoError("certificate.CreateCertificate", err)
	}

	sig, err := signer.Sign(tbsDER)
	if err != nil {
		return nil, qerrors.NewProtocolError("certificate.CreateCertificate", qerrors.ErrSignatureFailed)
	}

	cert := certificateASN1{
		TBSCertificate:     asn1.RawValue{FullBytes: tbsDER},
		SignatureAlgorithm: pkix.AlgorithmIdentifier{Algorithm: sigOID},
		SignatureValue:     asn1.BitString{Bytes: sig, BitLength: len(sig) * 8},
	}
	out, err := asn1.Marshal(cert)
	if err != nil {
		return nil, qerrors.NewCryptoError("certificate.CreateCertificate", err)
	}
	return out, nil
}

func buildExtensions(tmpl *Template, spki pkix.SubjectPublicKeyInfo) ([]pkix.Extension, error) {
	var exts []pkix.Extension

	if tmpl.IsCA {
		bc, err := asn1.Marshal(basicConstraints{IsCA: true})
		if err != nil {
			return nil, qerrors.NewCryptoError("certificate.buildExtensions", err)
		}
		exts = append(exts, pkix.Extension{Id: oidExtBasicConstraints, Critical: true, Value: bc})
	}

	if tmpl.KeyUsage != 0 {
		bs, err := marshalKeyUsage(tmpl.KeyUsage)
		if err != nil {
			return nil, err
		}
		ku, err := asn1.Marshal(bs)
		if err != nil {
			return nil, qerrors.NewCryptoError("certificate.buildExtensions", err)
		}
		exts = append(exts, pkix.Extension{Id: oidExtKeyUsage, Critical: true, Value: ku})
	}

	ski := subjectKeyID(spki)
	skiDER, err := asn1.Marshal(ski)
	if err != nil {
		return nil, qerrors.NewCryptoError("certificate.buildExtensions", err)
	}
	exts = append(exts, pkix.Extension{Id: oidExtSubjectKeyID, Value: skiDER})

	return exts, nil
}

// subjectKeyID computes RFC 5280 method 1: the SHA-1 hash of the subject
// public key's BIT STRING contents (excluding tag, length, and unused-bit
// count).
func subjectKeyID(spki pkix.SubjectPublicKeyInfo) []byte {
	sum := sha1.Sum(spki.PublicKey.Bytes)
	return sum[:]
}

// randomSerialNumber generates a 20-byte random positive integer, per
// spec.md §4.E.
func randomSerialNumber() (*big.Int, error) {
	buf, err := crypto.SecureRandomBytes(20)
	if err != nil {
		return nil, err
	}
	buf[0] &= 0x7f // force positive under two's-complement INTEGER encoding
	return new(big.Int).SetBytes(buf), nil
}

// oidFromString parses a dotted-decimal OID string into an
// asn1.ObjectIdentifier.
func oidFromString(oid string) (asn1.ObjectIdentifier, error) {
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
