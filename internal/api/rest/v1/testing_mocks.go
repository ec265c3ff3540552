//go:build unit
// +build unit

package v1

import (
	"github.com/stretchr/testify/mock"
)

// MockRSAService is a mock implementation of RSAService
type MockRSAService struct {
	mock.Mock
}

func (m *MockRSAService) Encrypt(pemKey, dataB64 string) (string, error) {
	args := m.Called(pemKey, dataB64)
	return args.String(0), args.Error(1)
}

func (m *MockRSAService) Decrypt(pemKey, encryptedB64 string) (string, error) {
	args := m.Called(pemKey, encryptedB64)
	return args.String(0), args.Error(1)
}

func (m *MockRSAService) Sign(pemKey, dataB64 string) (string, error) {
	args := m.Called(pemKey, dataB64)
	return args.String(0), args.Error(1)
}

func (m *MockRSAService) VerifySignature(pemKey, dataB64, signatureB64 string) (bool, error) {
	args := m.Called(pemKey, dataB64, signatureB64)
	return args.Bool(0), args.Error(1)
}

func (m *MockRSAService) PublicKeyPEM(pemKey string) (string, error) {
	args := m.Called(pemKey)
	return args.String(0), args.Error(1)
}
