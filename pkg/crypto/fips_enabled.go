//go:build fips
// +build fips

// Package crypto implements the cryptographic primitives behind pqx.
//
// This file is compiled when the "fips" build tag is specified.
package crypto

// FIPSMode reports whether the binary was built in FIPS mode. When true,
// power-on and conditional self-tests that fail panic instead of returning
// an error.
func FIPSMode() bool { return true }
