package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/logger"
)

// pkcs1v15Overhead is the minimum padding PKCS#1 v1.5 adds to a block.
const pkcs1v15Overhead = 11

// rawSignatureHash selects PKCS#1 v1.5 signing without a DigestInfo prefix.
const rawSignatureHash = crypto.Hash(0)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// checkPrivateKey rejects keys the crypto/rsa private operations cannot use.
// Keys resolved without a public exponent end up here when a private operation is requested.
func checkPrivateKey(privateKey *rsa.PrivateKey) error {
	if privateKey == nil || privateKey.N == nil {
		return fmt.Errorf("%w: private key cannot be nil", cryptoalg.ErrCryptoBackend)
	}
	if privateKey.E < 2 {
		return fmt.Errorf("%w: private key has no usable public exponent", cryptoalg.ErrCryptoBackend)
	}
	return nil
}

// Encrypt encrypts a single block with RSA/ECB/PKCS#1 v1.5 padding.
// NOTE: RSA can only encrypt small amounts of data (<= key size - 11 bytes); larger input is rejected, not chunked.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil || publicKey.N == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", cryptoalg.ErrCryptoBackend)
	}

	maxSize := publicKey.Size() - pkcs1v15Overhead
	if len(plainText) > maxSize {
		return nil, fmt.Errorf("%w: data of %d bytes exceeds the %d byte limit of a %d-bit key",
			cryptoalg.ErrCryptoBackend, len(plainText), maxSize, publicKey.N.BitLen())
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plainText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encrypt data: %w", cryptoalg.ErrCryptoBackend, err)
	}

	r.logger.Debug("RSA encryption succeeded")
	return encrypted, nil
}

// Decrypt decrypts a single RSA/ECB/PKCS#1 v1.5 block.
// An invalid padding structure, which is also what a wrong key or corrupted ciphertext produce, yields ErrPadding.
func (r *rsaProcessor) Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if err := checkPrivateKey(privateKey); err != nil {
		return nil, err
	}

	if len(cipherText) > privateKey.Size() {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes is longer than the %d byte key modulus",
			cryptoalg.ErrCryptoBackend, len(cipherText), privateKey.Size())
	}

	decrypted, err := rsa.DecryptPKCS1v15(nil, privateKey, cipherText)
	if err != nil {
		if errors.Is(err, rsa.ErrDecryption) {
			return nil, fmt.Errorf("%w: failed to decrypt data: %w", cryptoalg.ErrPadding, err)
		}
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", cryptoalg.ErrCryptoBackend, err)
	}

	r.logger.Debug("RSA decryption succeeded")
	return decrypted, nil
}

// Sign creates a raw PKCS#1 v1.5 signature over data.
// No digest is computed, so data must already be a hash and fit into key size - 11 bytes.
func (r *rsaProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if err := checkPrivateKey(privateKey); err != nil {
		return nil, err
	}

	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, rawSignatureHash, data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign data: %w", cryptoalg.ErrCryptoBackend, err)
	}

	r.logger.Debug("RSA signing succeeded")
	return signature, nil
}

// Verify verifies a raw PKCS#1 v1.5 signature over data.
// Returns false with a nil error when the signature does not match.
func (r *rsaProcessor) Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil || publicKey.N == nil {
		return false, fmt.Errorf("%w: public key cannot be nil", cryptoalg.ErrCryptoBackend)
	}

	err := rsa.VerifyPKCS1v15(publicKey, rawSignatureHash, data, signature)
	if err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			r.logger.Debug("RSA signature mismatch")
			return false, nil
		}
		return false, fmt.Errorf("%w: failed to verify signature: %w", cryptoalg.ErrCryptoBackend, err)
	}

	r.logger.Debug("RSA signature verified successfully")
	return true, nil
}
