//go:build unit
// +build unit

package app

import (
	"crypto/rsa"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyResolver is a mock implementation of KeyResolver
type MockKeyResolver struct {
	mock.Mock
}

func (m *MockKeyResolver) Resolve(pemText string) (*keys.ResolvedKey, error) {
	args := m.Called(pemText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.ResolvedKey), args.Error(1)
}

// MockRSAProcessor is a mock implementation of RSAProcessor
type MockRSAProcessor struct {
	mock.Mock
}

func (m *MockRSAProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	args := m.Called(plainText, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	args := m.Called(cipherText, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	args := m.Called(data, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) Verify(data, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	args := m.Called(data, signature, publicKey)
	return args.Bool(0), args.Error(1)
}
