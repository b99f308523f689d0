package certificate_test

import (
	"bytes"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/pqlabs/pqx/pkg/certificate"
	"github.com/pqlabs/pqx/pkg/composite"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/keys"
	"github.com/pqlabs/pqx/pkg/registry"
)

func ed25519Signer(t *testing.T) (*keys.PrivateKey, *keys.PublicKey) {
	t.Helper()
	pub, priv, err := crypto.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd25519KeyPair: %v", err)
	}
	privKey, err := keys.NewPrivateKey(registry.Ed25519, priv)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	pubKey, err := keys.NewPublicKey(registry.Ed25519, pub)
	if err != nil {
		t.Fatalf("NewPublicKey: %v", err)
	}
	return privKey, pubKey
}

func TestCreateCertificateSelfSignedRoot(t *testing.T) {
	signer, pub := ed25519Signer(t)

	tmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: "pqx root"},
		NotBefore: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2036, 1, 1, 0, 0, 0, 0, time.UTC),
		IsCA:      true,
		KeyUsage:  certificate.KeyUsageCertSign | certificate.KeyUsageCRLSign,
	}

	der, err := certificate.CreateCertificate(tmpl, nil, pub, signer)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}

	cert, err := certificate.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	if !cert.IsCA() {
		t.Error("expected root certificate to be a CA")
	}
	if cert.Subject().CommonName != "pqx root" {
		t.Errorf("unexpected subject: %+v", cert.Subject())
	}
	if !bytes.Equal(cert.RawSubject(), cert.RawIssuer()) {
		t.Error("expected self-signed certificate to have issuer == subject")
	}

	ok, err := cert.VerifySignedBy(pub)
	if err != nil {
		t.Fatalf("VerifySignedBy: %v", err)
	}
	if !ok {
		t.Error("expected self-signed certificate to verify against its own key")
	}
}

func TestCreateCertificateLeafSignedByRoot(t *testing.T) {
	rootSigner, rootPub := ed25519Signer(t)
	rootTmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: "pqx root"},
		NotBefore: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2036, 1, 1, 0, 0, 0, 0, time.UTC),
		IsCA:      true,
		KeyUsage:  certificate.KeyUsageCertSign,
	}
	rootDER, err := certificate.CreateCertificate(rootTmpl, nil, rootPub, rootSigner)
	if err != nil {
		t.Fatalf("CreateCertificate (root): %v", err)
	}
	root, err := certificate.ParseCertificate(rootDER)
	if err != nil {
		t.Fatalf("ParseCertificate (root): %v", err)
	}

	leafSigner, leafPub := ed25519Signer(t)
	leafTmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: "pqx leaf"},
		NotBefore: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		KeyUsage:  certificate.KeyUsageDigitalSignature | certificate.KeyUsageKeyEncipherment,
	}
	leafDER, err := certificate.CreateCertificate(leafTmpl, root, leafPub, rootSigner)
	if err != nil {
		t.Fatalf("CreateCertificate (leaf): %v", err)
	}

	leaf, err := certificate.ParseCertificate(leafDER)
	if err != nil {
		t.Fatalf("ParseCertificate (leaf): %v", err)
	}
	if leaf.IsCA() {
		t.Error("expected leaf certificate to not be a CA")
	}
	if leaf.Issuer().CommonName != "pqx root" {
		t.Errorf("unexpected issuer: %+v", leaf.Issuer())
	}
	if !bytes.Equal(leaf.RawIssuer(), root.RawSubject()) {
		t.Error("expected leaf issuer DER to match root subject DER")
	}
	if !leaf.IsKeyEnciphermentEnabled() {
		t.Error("expected keyEncipherment bit to be set")
	}
	if leaf.IsKeyAgreementEnabled() {
		t.Error("did not expect keyAgreement bit to be set")
	}

	ok, err := leaf.VerifySignedBy(rootPub)
	if err != nil {
		t.Fatalf("VerifySignedBy: %v", err)
	}
	if !ok {
		t.Error("expected leaf certificate to verify against the root's key")
	}

	ok, err = leaf.VerifySignedBy(leafPub)
	if err != nil {
		t.Fatalf("VerifySignedBy (wrong key): %v", err)
	}
	if ok {
		t.Error("did not expect leaf certificate to verify against its own key")
	}
}

func TestCreateCertificateCompositeSigner(t *testing.T) {
	tag := registry.MLDSA44ECDSAP256
	kp, err := composite.GenerateKeyPair(tag)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	pqPriv, err := keys.NewPrivateKey(registry.MLDSA44, kp.PQPrivate)
	if err != nil {
		t.Fatalf("NewPrivateKey(pq): %v", err)
	}
	tradPriv, err := keys.NewPrivateKey(registry.ECDSAP256, kp.TradPrivate)
	if err != nil {
		t.Fatalf("NewPrivateKey(trad): %v", err)
	}
	pqPrivDER, err := pqPriv.ToDER()
	if err != nil {
		t.Fatalf("ToDER(pq): %v", err)
	}
	tradPrivDER, err := tradPriv.ToDER()
	if err != nil {
		t.Fatalf("ToDER(trad): %v", err)
	}
	signer, err := keys.FromCompositePrivateKey(tag, pqPrivDER, tradPrivDER)
	if err != nil {
		t.Fatalf("FromCompositePrivateKey: %v", err)
	}

	pqPub, err := keys.NewPublicKey(registry.MLDSA44, kp.PQPublic)
	if err != nil {
		t.Fatalf("NewPublicKey(pq): %v", err)
	}
	tradPub, err := keys.NewPublicKey(registry.ECDSAP256, kp.TradPublic)
	if err != nil {
		t.Fatalf("NewPublicKey(trad): %v", err)
	}
	pqPubDER, err := pqPub.ToDER()
	if err != nil {
		t.Fatalf("ToDER(pqPub): %v", err)
	}
	tradPubDER, err := tradPub.ToDER()
	if err != nil {
		t.Fatalf("ToDER(tradPub): %v", err)
	}
	pub, err := keys.FromComposite(tag, pqPubDER, tradPubDER)
	if err != nil {
		t.Fatalf("FromComposite: %v", err)
	}

	tmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: "pqx composite root"},
		NotBefore: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2036, 1, 1, 0, 0, 0, 0, time.UTC),
		IsCA:      true,
		KeyUsage:  certificate.KeyUsageCertSign,
	}
	der, err := certificate.CreateCertificate(tmpl, nil, pub, signer)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}

	cert, err := certificate.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	if cert.SignatureAlgorithm() != tag {
		t.Errorf("expected signature algorithm %v, got %v", tag, cert.SignatureAlgorithm())
	}

	ok, err := cert.VerifySignedBy(pub)
	if err != nil {
		t.Fatalf("VerifySignedBy: %v", err)
	}
	if !ok {
		t.Error("expected composite self-signed certificate to verify")
	}
}

func TestCreateCertificateExplicitSerialNumber(t *testing.T) {
	signer, pub := ed25519Signer(t)
	tmpl := &certificate.Template{
		SerialNumber: big.NewInt(42),
		Subject:      pkix.Name{CommonName: "pqx root"},
		NotBefore:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2036, 1, 1, 0, 0, 0, 0, time.UTC),
		IsCA:         true,
	}
	der, err := certificate.CreateCertificate(tmpl, nil, pub, signer)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := certificate.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	if cert.SerialNumber.Int64() != 42 {
		t.Errorf("expected serial 42, got %v", cert.SerialNumber)
	}
}

func TestParseCertificateRejectsGarbage(t *testing.T) {
	if _, err := certificate.ParseCertificate([]byte("not a certificate")); err == nil {
		t.Error("expected error for garbage DER")
	}
}

func TestCertificatePEMRoundTrip(t *testing.T) {
	signer, pub := ed25519Signer(t)
	tmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: "pqx root"},
		NotBefore: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2036, 1, 1, 0, 0, 0, 0, time.UTC),
		IsCA:      true,
	}
	der, err := certificate.CreateCertificate(tmpl, nil, pub, signer)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := certificate.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}

	pemBytes := cert.ToPEM()
	parsed, err := certificate.ParseCertificatePEM(pemBytes)
	if err != nil {
		t.Fatalf("ParseCertificatePEM: %v", err)
	}
	if !bytes.Equal(parsed.Raw, cert.Raw) {
		t.Error("PEM round trip did not preserve raw DER")
	}
}
