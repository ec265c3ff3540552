package app

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/keys"
	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/logger"
)

// rsaService implements the RSAService interface on top of a key resolver and an RSA processor.
// It holds no mutable state, so one instance can serve concurrent callers.
type rsaService struct {
	keyResolver  keys.KeyResolver
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewRSAService creates a new rsaService instance
func NewRSAService(keyResolver keys.KeyResolver, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (cryptoalg.RSAService, error) {
	if keyResolver == nil {
		return nil, errors.New("key resolver cannot be nil")
	}
	if rsaProcessor == nil {
		return nil, errors.New("rsa processor cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaService{
		keyResolver:  keyResolver,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt encrypts dataB64 with the public key of pemKey, deriving it when pemKey is a private key.
func (s *rsaService) Encrypt(pemKey, dataB64 string) (string, error) {
	publicKey, kind, err := s.resolvePublicKey(pemKey)
	if err != nil {
		return "", err
	}

	data, err := decodeBase64("data", dataB64)
	if err != nil {
		return "", err
	}

	encrypted, err := s.rsaProcessor.Encrypt(data, publicKey)
	if err != nil {
		s.logger.Debug("encrypt failed with ", kind, " key: ", err)
		return "", err
	}

	s.logger.Debug("encrypted ", len(data), " bytes with ", kind, " key")
	return encodeBase64(encrypted), nil
}

// Decrypt decrypts encryptedB64 with the private key pemKey.
func (s *rsaService) Decrypt(pemKey, encryptedB64 string) (string, error) {
	resolved, err := s.keyResolver.Resolve(pemKey)
	if err != nil {
		return "", err
	}

	privateKey, err := resolved.PrivateKey()
	if err != nil {
		return "", err
	}

	encrypted, err := decodeBase64("encrypted data", encryptedB64)
	if err != nil {
		return "", err
	}

	decrypted, err := s.rsaProcessor.Decrypt(encrypted, privateKey)
	if err != nil {
		s.logger.Debug("decrypt failed: ", err)
		return "", err
	}

	s.logger.Debug("decrypted ", len(encrypted), " bytes to ", len(decrypted), " bytes")
	return encodeBase64(decrypted), nil
}

// Sign signs the bytes of dataB64 with the private key pemKey.
// The bytes are signed as given without hashing; callers must pass a digest.
func (s *rsaService) Sign(pemKey, dataB64 string) (string, error) {
	resolved, err := s.keyResolver.Resolve(pemKey)
	if err != nil {
		return "", err
	}

	privateKey, err := resolved.PrivateKey()
	if err != nil {
		return "", err
	}

	data, err := decodeBase64("data", dataB64)
	if err != nil {
		return "", err
	}

	signature, err := s.rsaProcessor.Sign(data, privateKey)
	if err != nil {
		s.logger.Debug("sign failed: ", err)
		return "", err
	}

	s.logger.Debug("signed ", len(data), " bytes")
	return encodeBase64(signature), nil
}

// VerifySignature checks signatureB64 against dataB64 with the public key of pemKey.
// A signature that does not match yields false and no error; malformed keys or payloads yield an error.
func (s *rsaService) VerifySignature(pemKey, dataB64, signatureB64 string) (bool, error) {
	publicKey, kind, err := s.resolvePublicKey(pemKey)
	if err != nil {
		return false, err
	}

	data, err := decodeBase64("data", dataB64)
	if err != nil {
		return false, err
	}

	signature, err := decodeBase64("signature", signatureB64)
	if err != nil {
		return false, err
	}

	valid, err := s.rsaProcessor.Verify(data, signature, publicKey)
	if err != nil {
		return false, err
	}

	s.logger.Debug("signature verification with ", kind, " key: valid=", valid)
	return valid, nil
}

// PublicKeyPEM returns the public key of pemKey as a PKIX "PUBLIC KEY" PEM block.
func (s *rsaService) PublicKeyPEM(pemKey string) (string, error) {
	publicKey, _, err := s.resolvePublicKey(pemKey)
	if err != nil {
		return "", err
	}

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal public key: %w", cryptoalg.ErrCryptoBackend, err)
	}

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), nil
}

func (s *rsaService) resolvePublicKey(pemKey string) (*rsa.PublicKey, keys.Kind, error) {
	resolved, err := s.keyResolver.Resolve(pemKey)
	if err != nil {
		return nil, keys.KindUnknown, err
	}

	publicKey, err := resolved.PublicKey()
	if err != nil {
		return nil, resolved.Kind, err
	}

	return publicKey, resolved.Kind, nil
}

// decodeBase64 accepts only canonical padded standard Base64.
// Strict mode still skips CR and LF, so line breaks are rejected up front.
func decodeBase64(field, value string) ([]byte, error) {
	if strings.ContainsAny(value, "\r\n") {
		return nil, fmt.Errorf("%w: %s is not valid Base64: line breaks are not allowed", cryptoalg.ErrInvalidEncoding, field)
	}

	decoded, err := base64.StdEncoding.Strict().DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid Base64: %w", cryptoalg.ErrInvalidEncoding, field, err)
	}
	return decoded, nil
}

func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
