//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"

	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/validators"

	"github.com/stretchr/testify/require"
)

type validatable interface {
	Validate() error
}

func TestRequests_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   validatable
		shouldErr bool
	}{
		{"Valid encrypt", &EncryptRequest{PEMKey: testPEMKey, Data: "aGVsbG8="}, false},
		{"Encrypt of empty data", &EncryptRequest{PEMKey: testPEMKey}, false},
		{"Encrypt with unwrapped key body", &EncryptRequest{PEMKey: "MIIBIjANBgkq", Data: "aGVsbG8="}, false},
		{"Encrypt without key", &EncryptRequest{Data: "aGVsbG8="}, true},
		{"Encrypt with oversized key", &EncryptRequest{PEMKey: strings.Repeat("A", validators.MaxPEMKeyLength+1)}, true},
		{"Encrypt with invalid base64", &EncryptRequest{PEMKey: testPEMKey, Data: "aGVsbG8"}, true},

		{"Valid decrypt", &DecryptRequest{PEMKey: testPEMKey, EncryptedData: "Y2lwaGVy"}, false},
		{"Decrypt without ciphertext", &DecryptRequest{PEMKey: testPEMKey}, true},

		{"Valid sign", &SignRequest{PEMKey: testPEMKey, Data: "aGVsbG8="}, false},
		{"Sign without key", &SignRequest{Data: "aGVsbG8="}, true},

		{"Valid verify", &VerifyRequest{PEMKey: testPEMKey, Data: "aGVsbG8=", Signature: "c2ln"}, false},
		{"Verify without signature", &VerifyRequest{PEMKey: testPEMKey, Data: "aGVsbG8="}, true},
		{"Verify with invalid signature", &VerifyRequest{PEMKey: testPEMKey, Signature: "***"}, true},

		{"Valid public key", &PublicKeyRequest{PEMKey: testPEMKey}, false},
		{"Public key without key", &PublicKeyRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}
