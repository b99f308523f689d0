package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/keys"
	"github.com/pqlabs/pqx/pkg/registry"
)

func keygenCommand(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	alg := fs.String("alg", "mldsa65", "Algorithm name, or 'list' to print the supported set")
	outPriv := fs.String("out-priv", "key.pem", "Output path for the PEM private key")
	outPub := fs.String("out-pub", "key.pub.pem", "Output path for the PEM public key")
	fs.Usage = func() {
		fmt.Println(`USAGE: pqx keygen [options]

Generate a plain (non-composite) key pair for one registry algorithm and
write it as a PKCS#8/SPKI PEM pair.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *alg == "list" {
		for _, n := range listAlgNames() {
			fmt.Println(n)
		}
		return
	}

	tag, err := resolveAlg(*alg)
	if err != nil {
		fatalf("%v", err)
	}
	if tag.IsComposite() {
		fatalf("keygen does not generate composite keys directly; build the two component keys separately and use keys.FromComposite*")
	}

	pub, priv, err := generatePlainKeyPair(tag)
	if err != nil {
		fatalf("keygen: %v", err)
	}

	if err := writePEMFile(*outPriv, mustPEM(priv.ToPEM())); err != nil {
		fatalf("writing %s: %v", *outPriv, err)
	}
	if err := writePEMFile(*outPub, mustPEM(pub.ToPEM())); err != nil {
		fatalf("writing %s: %v", *outPub, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s and %s for %s\n", *outPriv, *outPub, *alg)
}

// generatePlainKeyPair dispatches key generation by registry family and
// wraps the result in the module's algorithm-tagged key types.
func generatePlainKeyPair(tag registry.Tag) (*keys.PublicKey, *keys.PrivateKey, error) {
	row, ok := registry.Lookup(tag)
	if !ok {
		return nil, nil, fmt.Errorf("unrecognized tag")
	}

	switch row.Family {
	case registry.FamilyMLKEM:
		kp, err := crypto.GenerateMLKEMKeyPair(tag)
		if err != nil {
			return nil, nil, err
		}
		pub, err := keys.NewPublicKey(tag, kp.EncapsulationKey)
		if err != nil {
			return nil, nil, err
		}
		priv, err := keys.NewPrivateKey(tag, kp.DecapsulationKey)
		if err != nil {
			return nil, nil, err
		}
		return pub, priv, nil

	case registry.FamilyMLDSA, registry.FamilySLHDSA:
		pqPub, pqPriv, err := crypto.GenerateDSAKeyPair(tag)
		if err != nil {
			return nil, nil, err
		}
		pub, err := keys.NewPublicKey(tag, pqPub)
		if err != nil {
			return nil, nil, err
		}
		priv, err := keys.NewPrivateKey(tag, pqPriv)
		if err != nil {
			return nil, nil, err
		}
		return pub, priv, nil

	case registry.FamilyECDSA:
		priv, err := crypto.GenerateECDSAKeyPair(tag)
		if err != nil {
			return nil, nil, err
		}
		pubKey, err := keys.NewPublicKey(tag, &priv.PublicKey)
		if err != nil {
			return nil, nil, err
		}
		privKey, err := keys.NewPrivateKey(tag, priv)
		if err != nil {
			return nil, nil, err
		}
		return pubKey, privKey, nil

	case registry.FamilyEdDSA:
		if tag == registry.Ed448 {
			pub, priv, err := crypto.GenerateEd448KeyPair()
			if err != nil {
				return nil, nil, err
			}
			pubKey, err := keys.NewPublicKey(tag, pub)
			if err != nil {
				return nil, nil, err
			}
			privKey, err := keys.NewPrivateKey(tag, priv)
			if err != nil {
				return nil, nil, err
			}
			return pubKey, privKey, nil
		}
		pub, priv, err := crypto.GenerateEd25519KeyPair()
		if err != nil {
			return nil, nil, err
		}
		pubKey, err := keys.NewPublicKey(tag, pub)
		if err != nil {
			return nil, nil, err
		}
		privKey, err := keys.NewPrivateKey(tag, priv)
		if err != nil {
			return nil, nil, err
		}
		return pubKey, privKey, nil

	case registry.FamilyRSAPSS, registry.FamilyRSAPKCS15:
		bits, ok := rsaKeygenBits[tag]
		if !ok {
			return nil, nil, fmt.Errorf("no default modulus size for %v", tag)
		}
		priv, err := crypto.GenerateRSAKeyPair(bits)
		if err != nil {
			return nil, nil, err
		}
		pubKey, err := keys.NewPublicKey(tag, &priv.PublicKey)
		if err != nil {
			return nil, nil, err
		}
		privKey, err := keys.NewPrivateKey(tag, priv)
		if err != nil {
			return nil, nil, err
		}
		return pubKey, privKey, nil

	default:
		return nil, nil, fmt.Errorf("keygen not supported for this family")
	}
}

var rsaKeygenBits = map[registry.Tag]int{
	registry.RSA2048PSS: 2048, registry.RSA2048PKCS15: 2048,
	registry.RSA3072PSS: 3072, registry.RSA3072PKCS15: 3072,
	registry.RSA4096PSS: 4096, registry.RSA4096PKCS15: 4096,
}
