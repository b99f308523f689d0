package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	"github.com/pqlabs/pqx/pkg/keys"
)

func signCommand(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	keyPath := fs.String("key", "", "PEM private key (required)")
	inPath := fs.String("in", "", "File to sign (required)")
	out := fs.String("out", "", "Output path for the base64 signature; defaults to stdout")
	fs.Usage = func() {
		fmt.Println(`USAGE: pqx sign [options]

Sign a file with a plain or composite private key.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *keyPath == "" || *inPath == "" {
		fatalf("-key and -in are required")
	}

	priv, err := keys.FromPrivateKeyPEM(readFile(*keyPath))
	if err != nil {
		fatalf("loading private key: %v", err)
	}
	sig, err := priv.Sign(readFile(*inPath))
	if err != nil {
		fatalf("signing: %v", err)
	}

	encoded := []byte(base64.StdEncoding.EncodeToString(sig) + "\n")
	if *out == "" {
		os.Stdout.Write(encoded)
		return
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		fatalf("writing %s: %v", *out, err)
	}
}

func verifyCommand(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	keyPath := fs.String("pub", "", "PEM public key (required)")
	inPath := fs.String("in", "", "Signed file (required)")
	sigPath := fs.String("sig", "", "Base64 signature file (required)")
	fs.Usage = func() {
		fmt.Println(`USAGE: pqx verify [options]

Verify a file's signature against a plain or composite public key.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *keyPath == "" || *inPath == "" || *sigPath == "" {
		fatalf("-pub, -in, and -sig are required")
	}

	pub, err := keys.FromPublicKeyPEM(readFile(*keyPath))
	if err != nil {
		fatalf("loading public key: %v", err)
	}
	sigB64 := readFile(*sigPath)
	sig, err := base64.StdEncoding.DecodeString(trimNewline(string(sigB64)))
	if err != nil {
		fatalf("decoding signature: %v", err)
	}

	ok, err := pub.Verify(readFile(*inPath), sig)
	if err != nil {
		fatalf("verify: %v", err)
	}
	if !ok {
		fmt.Println("INVALID")
		os.Exit(1)
	}
	fmt.Println("OK")
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
