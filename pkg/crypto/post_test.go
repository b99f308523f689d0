package crypto_test

import (
	"testing"

	"github.com/pqlabs/pqx/pkg/crypto"
)

func TestRunPOSTExecutesOnce(t *testing.T) {
	result := crypto.RunPOST()
	if result == nil {
		t.Fatal("RunPOST returned nil")
	}
	if !crypto.POSTRan() {
		t.Error("POSTRan() = false after RunPOST")
	}

	result2 := crypto.RunPOST()
	if result != result2 {
		t.Error("RunPOST did not cache its result across calls")
	}
}

func TestPOSTSubResultsRecorded(t *testing.T) {
	result := crypto.RunPOST()
	if !result.AESPassed {
		t.Error("AES-CBC KAT did not pass")
	}
	if !result.MLKEMPassed {
		t.Error("ML-KEM KAT did not pass")
	}
}

func TestCheckModuleIntegrity(t *testing.T) {
	integrity := crypto.CheckModuleIntegrity()
	if integrity == nil {
		t.Fatal("CheckModuleIntegrity returned nil")
	}
	if integrity.ActualHash == "" {
		t.Error("ActualHash was not computed")
	}
}
