package cms_test

import (
	"bytes"
	"crypto/x509/pkix"
	"errors"
	"testing"
	"time"

	"github.com/pqlabs/pqx/internal/constants"
	qerrors "github.com/pqlabs/pqx/internal/errors"
	"github.com/pqlabs/pqx/pkg/certificate"
	"github.com/pqlabs/pqx/pkg/cms"
	"github.com/pqlabs/pqx/pkg/composite"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/keys"
	"github.com/pqlabs/pqx/pkg/registry"
)

// kemRecipient bundles everything needed to open a CMS envelope built for
// one recipient: the private key and the certificate announcing its SPKI.
type kemRecipient struct {
	priv *keys.PrivateKey
	cert *certificate.Certificate
}

func newRootSigner(t *testing.T) (*keys.PrivateKey, *keys.PublicKey) {
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

func newPlainMLKEMRecipient(t *testing.T, name string, signer *keys.PrivateKey, usage certificate.KeyUsage) *kemRecipient {
	t.Helper()
	kp, err := crypto.GenerateMLKEMKeyPair(registry.MLKEM768)
	if err != nil {
		t.Fatalf("GenerateMLKEMKeyPair: %v", err)
	}
	priv, err := keys.NewPrivateKey(registry.MLKEM768, kp.DecapsulationKey)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	pub, err := keys.NewPublicKey(registry.MLKEM768, kp.EncapsulationKey)
	if err != nil {
		t.Fatalf("NewPublicKey: %v", err)
	}

	tmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: name},
		NotBefore: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		KeyUsage:  usage,
	}
	der, err := certificate.CreateCertificate(tmpl, nil, pub, signer)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := certificate.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	return &kemRecipient{priv: priv, cert: cert}
}

func newCompositeKEMRecipient(t *testing.T, name string, signer *keys.PrivateKey) *kemRecipient {
	t.Helper()
	tag := registry.MLKEM1024ECDHP384
	kp, err := composite.GenerateKEMKeyPair(tag)
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair: %v", err)
	}
	pqRaw, tradRaw, err := kp.RawComponents()
	if err != nil {
		t.Fatalf("RawComponents: %v", err)
	}
	priv, err := keys.FromCompositeKEMPrivateKey(tag, pqRaw, tradRaw)
	if err != nil {
		t.Fatalf("FromCompositeKEMPrivateKey: %v", err)
	}

	pubObj := kp.PublicKey()
	pqPubRaw, tradPubRaw, err := pubObj.RawComponents()
	if err != nil {
		t.Fatalf("RawComponents(pub): %v", err)
	}
	pub, err := keys.FromCompositeKEM(tag, pqPubRaw, tradPubRaw)
	if err != nil {
		t.Fatalf("FromCompositeKEM: %v", err)
	}

	tmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: name},
		NotBefore: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		KeyUsage:  certificate.KeyUsageKeyEncipherment,
	}
	der, err := certificate.CreateCertificate(tmpl, nil, pub, signer)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := certificate.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	return &kemRecipient{priv: priv, cert: cert}
}

func TestBuildOpenSingleRecipient(t *testing.T) {
	signer, _ := newRootSigner(t)
	recipient := newPlainMLKEMRecipient(t, "pqx recipient", signer, certificate.KeyUsageKeyEncipherment)

	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	envelope, err := cms.Build(plaintext, constants.OIDAES256CBC, []cms.Recipient{
		&cms.KEMRIRecipient{Certificate: recipient.cert, WrapOID: constants.OIDAES256Wrap},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	opened, err := cms.Open(envelope, recipient.priv, recipient.cert)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Error("opened plaintext does not match original")
	}
}

func TestBuildOpenCompositeKEMRecipient(t *testing.T) {
	signer, _ := newRootSigner(t)
	recipient := newCompositeKEMRecipient(t, "pqx composite recipient", signer)

	plaintext := []byte("composite KEM envelope contents")
	envelope, err := cms.Build(plaintext, constants.OIDAES128CBC, []cms.Recipient{
		&cms.KEMRIRecipient{Certificate: recipient.cert, WrapOID: constants.OIDAES128Wrap},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	opened, err := cms.Open(envelope, recipient.priv, recipient.cert)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Error("opened plaintext does not match original")
	}
}

func TestBuildOpenTwoRecipients(t *testing.T) {
	signer, _ := newRootSigner(t)
	alice := newPlainMLKEMRecipient(t, "alice", signer, certificate.KeyUsageKeyEncipherment)
	bob := newPlainMLKEMRecipient(t, "bob", signer, certificate.KeyUsageKeyEncipherment)

	plaintext := []byte("shared envelope for two recipients")
	envelope, err := cms.Build(plaintext, constants.OIDAES256CBC, []cms.Recipient{
		&cms.KEMRIRecipient{Certificate: alice.cert, WrapOID: constants.OIDAES256Wrap},
		&cms.KEMRIRecipient{Certificate: bob.cert, WrapOID: constants.OIDAES256Wrap, UseSKI: true},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, r := range []*kemRecipient{alice, bob} {
		opened, err := cms.Open(envelope, r.priv, r.cert)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if !bytes.Equal(opened, plaintext) {
			t.Error("opened plaintext does not match original")
		}
	}
}

func TestOpenRejectsMismatchedRecipient(t *testing.T) {
	signer, _ := newRootSigner(t)
	alice := newPlainMLKEMRecipient(t, "alice", signer, certificate.KeyUsageKeyEncipherment)
	eve := newPlainMLKEMRecipient(t, "eve", signer, certificate.KeyUsageKeyEncipherment)

	plaintext := []byte("for alice's eyes only")
	envelope, err := cms.Build(plaintext, constants.OIDAES256CBC, []cms.Recipient{
		&cms.KEMRIRecipient{Certificate: alice.cert, WrapOID: constants.OIDAES256Wrap},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := cms.Open(envelope, eve.priv, eve.cert); !errors.Is(err, qerrors.ErrNoMatchingRecipient) {
		t.Error("expected no-matching-recipient error for a certificate not in the envelope")
	}
}

func TestBuildRejectsCertificateWithoutKeyEncipherment(t *testing.T) {
	signer, _ := newRootSigner(t)
	recipient := newPlainMLKEMRecipient(t, "no key encipherment", signer, certificate.KeyUsageDigitalSignature)

	_, err := cms.Build([]byte("x"), constants.OIDAES256CBC, []cms.Recipient{
		&cms.KEMRIRecipient{Certificate: recipient.cert, WrapOID: constants.OIDAES256Wrap},
	})
	if err == nil {
		t.Error("expected error building a KEMRI recipient whose certificate lacks keyEncipherment")
	}
}

func TestBuildRejectsUnsupportedContentEncryptionAlgorithm(t *testing.T) {
	signer, _ := newRootSigner(t)
	recipient := newPlainMLKEMRecipient(t, "pqx recipient", signer, certificate.KeyUsageKeyEncipherment)

	_, err := cms.Build([]byte("x"), "1.2.3.4.5", []cms.Recipient{
		&cms.KEMRIRecipient{Certificate: recipient.cert, WrapOID: constants.OIDAES256Wrap},
	})
	if err == nil {
		t.Error("expected error for unsupported content-encryption algorithm")
	}
}

func TestBuildRejectsNoRecipients(t *testing.T) {
	if _, err := cms.Build([]byte("x"), constants.OIDAES128CBC, nil); err == nil {
		t.Error("expected error building an envelope with no recipients")
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	signer, _ := newRootSigner(t)
	recipient := newPlainMLKEMRecipient(t, "pqx recipient", signer, certificate.KeyUsageKeyEncipherment)

	if _, err := cms.Open([]byte("not a content info"), recipient.priv, recipient.cert); err == nil {
		t.Error("expected error opening garbage ContentInfo bytes")
	}
}
