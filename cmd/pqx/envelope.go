package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pqlabs/pqx/internal/constants"
	"github.com/pqlabs/pqx/pkg/certificate"
	"github.com/pqlabs/pqx/pkg/cms"
	"github.com/pqlabs/pqx/pkg/keys"
)

// repeatedFlag collects one or more occurrences of a repeatable flag, e.g.
// -recipient alice.pem -recipient bob.pem.
type repeatedFlag []string

func (r *repeatedFlag) String() string { return strings.Join(*r, ",") }

func (r *repeatedFlag) Set(v string) error {
	*r = append(*r, v)
	return nil
}

var contentEncAlgByName = map[string]string{
	"aes128-cbc": constants.OIDAES128CBC,
	"aes192-cbc": constants.OIDAES192CBC,
	"aes256-cbc": constants.OIDAES256CBC,
}

var wrapAlgByName = map[string]string{
	"aes128-cbc": constants.OIDAES128Wrap,
	"aes192-cbc": constants.OIDAES192Wrap,
	"aes256-cbc": constants.OIDAES256Wrap,
}

func envelopeCommand(args []string) {
	fs := flag.NewFlagSet("envelope", flag.ExitOnError)
	var recipients repeatedFlag
	fs.Var(&recipients, "recipient", "PEM certificate of a recipient; repeatable")
	inPath := fs.String("in", "", "Plaintext file to envelope (required)")
	out := fs.String("out", "envelope.der", "Output path for the DER ContentInfo")
	cea := fs.String("cea", "aes256-cbc", "Content-encryption algorithm: aes128-cbc, aes192-cbc, aes256-cbc")
	useSKI := fs.Bool("use-ski", false, "Identify recipients by SubjectKeyIdentifier instead of IssuerAndSerialNumber")
	fs.Usage = func() {
		fmt.Println(`USAGE: pqx envelope [options]

Build a CMS EnvelopedData (KEMRI) ContentInfo for one or more recipients.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *inPath == "" || len(recipients) == 0 {
		fatalf("-in and at least one -recipient are required")
	}
	contentEncAlg, ok := contentEncAlgByName[*cea]
	if !ok {
		fatalf("unknown -cea %q", *cea)
	}
	wrapOID := wrapAlgByName[*cea]

	var recipientList []cms.Recipient
	for _, path := range recipients {
		cert, err := certificate.ParseCertificatePEM(readFile(path))
		if err != nil {
			fatalf("loading recipient certificate %s: %v", path, err)
		}
		recipientList = append(recipientList, &cms.KEMRIRecipient{
			Certificate: cert,
			WrapOID:     wrapOID,
			UseSKI:      *useSKI,
		})
	}

	envelope, err := cms.Build(readFile(*inPath), contentEncAlg, recipientList)
	if err != nil {
		fatalf("building envelope: %v", err)
	}
	if err := os.WriteFile(*out, envelope, 0o644); err != nil {
		fatalf("writing %s: %v", *out, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s for %d recipient(s)\n", *out, len(recipientList))
}

func openCommand(args []string) {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	envPath := fs.String("in", "", "DER ContentInfo to open (required)")
	keyPath := fs.String("key", "", "Recipient's PEM private key (required)")
	certPath := fs.String("cert", "", "Recipient's PEM certificate (required)")
	out := fs.String("out", "", "Output path for the recovered plaintext; defaults to stdout")
	fs.Usage = func() {
		fmt.Println(`USAGE: pqx open [options]

Decrypt a CMS EnvelopedData (KEMRI) ContentInfo for one recipient.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *envPath == "" || *keyPath == "" || *certPath == "" {
		fatalf("-in, -key, and -cert are required")
	}

	priv, err := keys.FromPrivateKeyPEM(readFile(*keyPath))
	if err != nil {
		fatalf("loading private key: %v", err)
	}
	cert, err := certificate.ParseCertificatePEM(readFile(*certPath))
	if err != nil {
		fatalf("loading certificate: %v", err)
	}

	plaintext, err := cms.Open(readFile(*envPath), priv, cert)
	if err != nil {
		fatalf("opening envelope: %v", err)
	}

	if *out == "" {
		os.Stdout.Write(plaintext)
		return
	}
	if err := os.WriteFile(*out, plaintext, 0o644); err != nil {
		fatalf("writing %s: %v", *out, err)
	}
}
