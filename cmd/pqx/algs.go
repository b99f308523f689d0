package main

import (
	"fmt"
	"sort"

	"github.com/pqlabs/pqx/pkg/registry"
)

// algByName maps the CLI's short algorithm names to registry tags. It is a
// curated subset of the full registry: the names a keygen/cert/sign caller
// is likely to type, not every Brainpool or prehash row the registry
// carries.
var algByName = map[string]registry.Tag{
	"rsa2048-pss":    registry.RSA2048PSS,
	"rsa3072-pss":    registry.RSA3072PSS,
	"rsa4096-pss":    registry.RSA4096PSS,
	"ecdsa-p256":     registry.ECDSAP256,
	"ecdsa-p384":     registry.ECDSAP384,
	"ed25519":        registry.Ed25519,
	"ed448":          registry.Ed448,
	"mldsa44":        registry.MLDSA44,
	"mldsa65":        registry.MLDSA65,
	"mldsa87":        registry.MLDSA87,
	"slhdsa-sha2-128s": registry.SLHDSASHA2128s,
	"slhdsa-shake-128s": registry.SLHDSASHAKE128s,
	"mldsa44-ecdsap256":  registry.MLDSA44ECDSAP256,
	"mldsa65-ecdsap384":  registry.MLDSA65ECDSAP384,
	"mldsa65-ed25519":    registry.MLDSA65Ed25519,
	"mldsa87-ed448":      registry.MLDSA87Ed448,
	"mlkem512":           registry.MLKEM512,
	"mlkem768":           registry.MLKEM768,
	"mlkem1024":          registry.MLKEM1024,
	"mlkem768-x25519":    registry.MLKEM768X25519,
	"mlkem1024-x25519":   registry.MLKEM1024X25519,
	"mlkem1024-ecdhp384": registry.MLKEM1024ECDHP384,
}

func resolveAlg(name string) (registry.Tag, error) {
	tag, ok := algByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown -alg %q; run 'pqx keygen -alg list' for the supported set", name)
	}
	return tag, nil
}

func listAlgNames() []string {
	names := make([]string, 0, len(algByName))
	for n := range algByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
