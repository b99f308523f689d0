package main

import (
	"crypto/x509/pkix"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pqlabs/pqx/pkg/certificate"
	"github.com/pqlabs/pqx/pkg/keys"
)

func certCommand(args []string) {
	fs := flag.NewFlagSet("cert", flag.ExitOnError)
	signerPath := fs.String("signer-key", "", "PEM private key that signs the certificate (required)")
	subjectPath := fs.String("subject-pub", "", "PEM public key the certificate certifies (required)")
	parentPath := fs.String("parent-cert", "", "PEM issuer certificate; omit for a self-signed Root")
	cn := fs.String("cn", "pqx", "Subject common name")
	isCA := fs.Bool("ca", false, "Set the Root CA basic-constraints bit")
	keyEncipherment := fs.Bool("key-encipherment", false, "Set the keyEncipherment usage bit (required for a KEMRI recipient)")
	digitalSignature := fs.Bool("digital-signature", true, "Set the digitalSignature usage bit")
	days := fs.Int("days", 825, "Validity period in days, starting now")
	out := fs.String("out", "cert.pem", "Output path for the PEM certificate")
	fs.Usage = func() {
		fmt.Println(`USAGE: pqx cert [options]

Build a self-signed Root or parent-signed Leaf X.509 certificate.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *signerPath == "" || *subjectPath == "" {
		fatalf("-signer-key and -subject-pub are required")
	}

	signer, err := keys.FromPrivateKeyPEM(readFile(*signerPath))
	if err != nil {
		fatalf("loading signer key: %v", err)
	}
	subjectPub, err := keys.FromPublicKeyPEM(readFile(*subjectPath))
	if err != nil {
		fatalf("loading subject public key: %v", err)
	}

	var parent *certificate.Certificate
	if *parentPath != "" {
		parent, err = certificate.ParseCertificatePEM(readFile(*parentPath))
		if err != nil {
			fatalf("loading parent certificate: %v", err)
		}
	}

	var usage certificate.KeyUsage
	if *digitalSignature {
		usage |= certificate.KeyUsageDigitalSignature
	}
	if *keyEncipherment {
		usage |= certificate.KeyUsageKeyEncipherment
	}

	now := time.Now()
	tmpl := &certificate.Template{
		Subject:   pkix.Name{CommonName: *cn},
		NotBefore: now,
		NotAfter:  now.AddDate(0, 0, *days),
		IsCA:      *isCA,
		KeyUsage:  usage,
	}

	der, err := certificate.CreateCertificate(tmpl, parent, subjectPub, signer)
	if err != nil {
		fatalf("creating certificate: %v", err)
	}
	cert, err := certificate.ParseCertificate(der)
	if err != nil {
		fatalf("re-parsing created certificate: %v", err)
	}

	if err := writePEMFile(*out, cert.ToPEM()); err != nil {
		fatalf("writing %s: %v", *out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (serial %s)\n", *out, cert.SerialNumber.String())
}
