package keys_test

import (
	"bytes"
	"testing"

	"github.com/pqlabs/pqx/pkg/composite"
	"github.com/pqlabs/pqx/pkg/crypto"
	"github.com/pqlabs/pqx/pkg/keys"
	"github.com/pqlabs/pqx/pkg/registry"
)

func TestPrivateKeySimpleDERRoundTrip(t *testing.T) {
	pub, priv, err := crypto.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd25519KeyPair: %v", err)
	}
	_ = pub

	k, err := keys.NewPrivateKey(registry.Ed25519, priv)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	der, err := k.ToDER()
	if err != nil {
		t.Fatalf("ToDER: %v", err)
	}
	parsed, err := keys.FromPrivateKeyDER(der)
	if err != nil {
		t.Fatalf("FromPrivateKeyDER: %v", err)
	}
	if parsed.Tag != k.Tag || !bytes.Equal(parsed.Raw, k.Raw) {
		t.Error("DER round trip did not preserve tag/raw")
	}
}

func TestPrivateKeySimplePEMRoundTrip(t *testing.T) {
	_, priv, err := crypto.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd25519KeyPair: %v", err)
	}
	k, err := keys.NewPrivateKey(registry.Ed25519, priv)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	pemBytes, err := k.ToPEM()
	if err != nil {
		t.Fatalf("ToPEM: %v", err)
	}
	parsed, err := keys.FromPrivateKeyPEM(pemBytes)
	if err != nil {
		t.Fatalf("FromPrivateKeyPEM: %v", err)
	}
	if parsed.Tag != k.Tag || !bytes.Equal(parsed.Raw, k.Raw) {
		t.Error("PEM round trip did not preserve tag/raw")
	}

	again, err := parsed.ToPEM()
	if err != nil {
		t.Fatalf("ToPEM (second): %v", err)
	}
	if !bytes.Equal(again, pemBytes) {
		t.Error("PEM encoding is not byte-exact across round trips")
	}
}

func TestPrivateKeySignVerifySimple(t *testing.T) {
	pub, priv, err := crypto.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd25519KeyPair: %v", err)
	}
	privKey, err := keys.NewPrivateKey(registry.Ed25519, priv)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	pubKey, err := keys.NewPublicKey(registry.Ed25519, pub)
	if err != nil {
		t.Fatalf("NewPublicKey: %v", err)
	}

	message := []byte("private key sign")
	sig, err := privKey.Sign(message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := pubKey.Verify(message, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("expected signature produced by PrivateKey.Sign to verify")
	}
}

func TestPrivateKeyCompositeSignVerify(t *testing.T) {
	tag := registry.MLDSA44ECDSAP256
	kp, err := composite.GenerateKeyPair(tag)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	pqPriv, err := keys.NewPrivateKey(registry.MLDSA44, kp.PQPrivate)
	if err != nil {
		t.Fatalf("NewPrivateKey(pq): %v", err)
	}
	tradPriv, err := keys.NewPrivateKey(registry.ECDSAP256, kp.TradPrivate)
	if err != nil {
		t.Fatalf("NewPrivateKey(trad): %v", err)
	}
	pqDER, err := pqPriv.ToDER()
	if err != nil {
		t.Fatalf("ToDER(pq): %v", err)
	}
	tradDER, err := tradPriv.ToDER()
	if err != nil {
		t.Fatalf("ToDER(trad): %v", err)
	}

	compositePriv, err := keys.FromCompositePrivateKey(tag, pqDER, tradDER)
	if err != nil {
		t.Fatalf("FromCompositePrivateKey: %v", err)
	}

	pqPub, err := keys.NewPublicKey(registry.MLDSA44, kp.PQPublic)
	if err != nil {
		t.Fatalf("NewPublicKey(pq): %v", err)
	}
	tradPub, err := keys.NewPublicKey(registry.ECDSAP256, kp.TradPublic)
	if err != nil {
		t.Fatalf("NewPublicKey(trad): %v", err)
	}
	pqPubDER, err := pqPub.ToDER()
	if err != nil {
		t.Fatalf("ToDER(pqPub): %v", err)
	}
	tradPubDER, err := tradPub.ToDER()
	if err != nil {
		t.Fatalf("ToDER(tradPub): %v", err)
	}
	compositePub, err := keys.FromComposite(tag, pqPubDER, tradPubDER)
	if err != nil {
		t.Fatalf("FromComposite: %v", err)
	}

	message := []byte("composite private key sign")
	sig, err := compositePriv.Sign(message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := compositePub.Verify(message, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("expected composite signature to verify")
	}

	ok, err = compositePub.Verify([]byte("tampered"), sig)
	if err != nil {
		t.Fatalf("Verify (tampered): %v", err)
	}
	if ok {
		t.Error("expected tampered message to fail verification")
	}
}

func TestPrivateKeyPlainMLKEMDecapsulate(t *testing.T) {
	kp, err := crypto.GenerateMLKEMKeyPair(registry.MLKEM512)
	if err != nil {
		t.Fatalf("GenerateMLKEMKeyPair: %v", err)
	}
	privKey, err := keys.NewPrivateKey(registry.MLKEM512, kp.DecapsulationKey)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	ciphertext, ss, err := crypto.MLKEMEncapsulate(registry.MLKEM512, kp.EncapsulationKey)
	if err != nil {
		t.Fatalf("MLKEMEncapsulate: %v", err)
	}

	got, err := privKey.Decapsulate(ciphertext)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if !bytes.Equal(got, ss) {
		t.Error("decapsulated shared secret does not match encapsulated one")
	}
}

func TestPrivateKeyCompositeKEMDecapsulate(t *testing.T) {
	tag := registry.MLKEM1024ECDHP384
	kp, err := composite.GenerateKEMKeyPair(tag)
	if err != nil {
		t.Fatalf("GenerateKEMKeyPair: %v", err)
	}

	pqRaw, tradRaw, err := kp.RawComponents()
	if err != nil {
		t.Fatalf("RawComponents: %v", err)
	}
	privKey, err := keys.FromCompositeKEMPrivateKey(tag, pqRaw, tradRaw)
	if err != nil {
		t.Fatalf("FromCompositeKEMPrivateKey: %v", err)
	}

	ct, ss, err := composite.Encapsulate(kp.PublicKey())
	if err != nil {
		t.Fatalf("composite.Encapsulate: %v", err)
	}
	ciphertext, err := composite.MarshalCiphertext(ct)
	if err != nil {
		t.Fatalf("MarshalCiphertext: %v", err)
	}

	got, err := privKey.Decapsulate(ciphertext)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if !bytes.Equal(got, ss) {
		t.Error("decapsulated shared secret does not match encapsulated one")
	}
}

func TestPrivateKeyZeroize(t *testing.T) {
	_, priv, err := crypto.GenerateEd25519KeyPair()
	if err != nil {
		t.Fatalf("GenerateEd25519KeyPair: %v", err)
	}
	k, err := keys.NewPrivateKey(registry.Ed25519, priv)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	allZero := true
	for _, b := range k.Raw {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("expected freshly generated key material to be non-zero")
	}

	k.Zeroize()
	for _, b := range k.Raw {
		if b != 0 {
			t.Fatal("expected Zeroize to clear all key material")
		}
	}
}

func TestFromPrivateKeyDERRejectsGarbage(t *testing.T) {
	if _, err := keys.FromPrivateKeyDER([]byte("not a der encoding")); err == nil {
		t.Error("expected error for garbage DER")
	}
}
