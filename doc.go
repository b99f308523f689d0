// Package pqx provides a post-quantum and hybrid cryptographic toolkit for
// issuing keys, signing and verifying messages, and building X.509
// certificates and CMS EnvelopedData around NIST PQC algorithms (ML-KEM,
// ML-DSA, SLH-DSA) and their composite combinations with RSA, ECDSA, and
// Ed25519/Ed448.
//
// # Quick Start
//
// Generating a key pair and signing with ML-DSA-44:
//
//	import (
//		"github.com/pqlabs/pqx/pkg/crypto"
//		"github.com/pqlabs/pqx/pkg/keys"
//		"github.com/pqlabs/pqx/pkg/registry"
//	)
//
//	pub, priv, _ := crypto.GenerateDSAKeyPair(registry.MLDSA44)
//	privKey, _ := keys.NewPrivateKey(registry.MLDSA44, priv)
//	pubKey, _ := keys.NewPublicKey(registry.MLDSA44, pub)
//	sig, _ := privKey.Sign([]byte("Hello, World!"))
//	ok, _ := pubKey.Verify([]byte("Hello, World!"), sig)
//
// Building a CMS EnvelopedData with a KEMRI recipient:
//
//	import (
//		"github.com/pqlabs/pqx/internal/constants"
//		"github.com/pqlabs/pqx/pkg/cms"
//	)
//
//	env, _ := cms.Build(plaintext, constants.OIDAES256CBC, []cms.Recipient{
//		&cms.KEMRIRecipient{Certificate: recipientCert, WrapOID: constants.OIDAES256Wrap},
//	})
//	opened, _ := cms.Open(env, recipientPrivateKey, recipientCert)
//
// # Package Structure
//
//   - internal/constants: OID, length, and hash tables (the algorithm data)
//   - pkg/registry: tagged lookup over the constants tables (component A)
//   - pkg/crypto: primitive adapters — DSA, KEM, hash, KDF, wrap (component B)
//   - pkg/composite: composite signature and composite KEM engines (component C)
//   - pkg/keys: key object model and DER/PEM bridge (component D)
//   - pkg/certificate: X.509 certificate builder and reader (component E)
//   - pkg/cms: CMS EnvelopedData / KEMRI pipeline (component F)
//   - internal/errors: flat error-kind taxonomy shared by every component
//   - internal/log: structured logging at operation boundaries
//   - cmd/pqx: command-line front end over the library packages
//
// # Security Properties
//
//   - Composite totality: a composite signature or encapsulation verifies
//     only when both its post-quantum and classical components verify.
//   - PQ-first encoding: every composite structure (key, signature,
//     ciphertext) orders its post-quantum component first; this ordering is
//     load-bearing for interoperability.
//   - Secret zeroization: private-key byte buffers and ephemeral KEM/KDF
//     secrets are cleared once their owning object is no longer needed.
//
// # Testing
//
//	go test ./...                         # all tests
//	go test -run POST ./pkg/crypto         # known-answer self-tests
//
// # References
//
//   - NIST FIPS 203: Module-Lattice-Based Key-Encapsulation Mechanism Standard
//   - NIST FIPS 204: Module-Lattice-Based Digital Signature Standard
//   - NIST FIPS 205: Stateless Hash-Based Digital Signature Standard
//   - RFC 5652: Cryptographic Message Syntax (CMS)
//   - RFC 9629: KEM Recipient Info for CMS
//   - RFC 3394: AES Key Wrap
//
// For more information, see: https://github.com/pqlabs/pqx
package pqx
