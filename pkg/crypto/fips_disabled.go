//go:build !fips
// +build !fips

// Package crypto implements the cryptographic primitives behind pqx.
//
// This file is compiled when the "fips" build tag is NOT specified.
package crypto

// FIPSMode reports whether the binary was built in FIPS mode. When false,
// self-test failures return an error instead of panicking.
func FIPSMode() bool { return false }
