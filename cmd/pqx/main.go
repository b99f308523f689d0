// Command pqx is the CLI front end for the pqx toolkit: key generation,
// certificate issuance, signing, and CMS EnvelopedData (KEMRI) envelope/
// open, dispatched by subcommand the way cmd/quantum-vpn dispatches its
// demo/bench/example subcommands.
package main

import (
	"fmt"
	"os"

	pqxversion "github.com/pqlabs/pqx/pkg/version"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "keygen":
		keygenCommand(os.Args[2:])
	case "cert":
		certCommand(os.Args[2:])
	case "sign":
		signCommand(os.Args[2:])
	case "verify":
		verifyCommand(os.Args[2:])
	case "envelope":
		envelopeCommand(os.Args[2:])
	case "open":
		openCommand(os.Args[2:])
	case "version":
		fmt.Println(pqxversion.Full())
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "pqx: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pqx - post-quantum / hybrid X.509 & CMS toolkit

USAGE:
    pqx <command> [options]

COMMANDS:
    keygen    Generate a plain key pair (-alg list for the supported set)
    cert      Build a self-signed Root or parent-signed Leaf certificate
    sign      Sign a file with a private key
    verify    Verify a file's signature against a public key
    envelope  Build a CMS EnvelopedData (KEMRI) ContentInfo
    open      Decrypt a CMS EnvelopedData (KEMRI) ContentInfo
    version   Print version information
    help      Show this help message

Run 'pqx <command> -h' for more information on a command.`)
}
