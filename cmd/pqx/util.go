package main

import (
	"fmt"
	"os"
)

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pqx: "+format+"\n", args...)
	os.Exit(1)
}

// mustPEM turns a (pem, error) pair from a ToPEM call into a bare []byte,
// exiting on error; every CLI call site immediately writes or exits anyway.
func mustPEM(data []byte, err error) []byte {
	if err != nil {
		fatalf("%v", err)
	}
	return data
}

func writePEMFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}

func readFile(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}
	return data
}
