//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/rsa"
	"crypto/sha256"
	"testing"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRSAProcessor(t *testing.T) cryptoalg.RSAProcessor {
	t.Helper()
	processor, err := NewRSAProcessor(testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return processor
}

func TestRSAProcessor(t *testing.T) {
	processor := setupRSAProcessor(t)
	pair := testutil.GenerateRSAKeyPairPEM(t, testutil.TestKeySize2048)
	privateKey := pair.PrivateKey
	publicKey := &privateKey.PublicKey

	t.Run("EncryptDecrypt", func(t *testing.T) {
		plainText := []byte("This is a secret message")

		encrypted, err := processor.Encrypt(plainText, publicKey)
		require.NoError(t, err)
		assert.Len(t, encrypted, publicKey.Size())

		decrypted, err := processor.Decrypt(encrypted, privateKey)
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EncryptMaximumBlock", func(t *testing.T) {
		plainText := bytes.Repeat([]byte{0x42}, publicKey.Size()-11)

		encrypted, err := processor.Encrypt(plainText, publicKey)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(encrypted, privateKey)
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EncryptTooLarge", func(t *testing.T) {
		plainText := bytes.Repeat([]byte{0x42}, publicKey.Size()-10)

		_, err := processor.Encrypt(plainText, publicKey)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)
	})

	t.Run("EncryptIsRandomized", func(t *testing.T) {
		first, err := processor.Encrypt([]byte("hello"), publicKey)
		require.NoError(t, err)
		second, err := processor.Encrypt([]byte("hello"), publicKey)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		encrypted, err := processor.Encrypt([]byte("This should fail decryption"), publicKey)
		require.NoError(t, err)

		other := testutil.GenerateRSAKeyPairPEM(t, testutil.TestKeySize2048)

		_, err = processor.Decrypt(encrypted, other.PrivateKey)
		assert.ErrorIs(t, err, cryptoalg.ErrPadding)
	})

	t.Run("DecryptCorruptedCiphertext", func(t *testing.T) {
		encrypted, err := processor.Encrypt([]byte("hello"), publicKey)
		require.NoError(t, err)
		encrypted[10] ^= 0xFF

		_, err = processor.Decrypt(encrypted, privateKey)
		assert.ErrorIs(t, err, cryptoalg.ErrPadding)
	})

	t.Run("DecryptOversizedCiphertext", func(t *testing.T) {
		_, err := processor.Decrypt(make([]byte, privateKey.Size()+1), privateKey)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)
	})

	t.Run("SignAndVerify", func(t *testing.T) {
		digest := sha256.Sum256([]byte("This is a test message"))

		signature, err := processor.Sign(digest[:], privateKey)
		require.NoError(t, err)
		assert.Len(t, signature, privateKey.Size())

		valid, err := processor.Verify(digest[:], signature, publicKey)
		require.NoError(t, err)
		assert.True(t, valid)

		tampered := sha256.Sum256([]byte("This is a tampered message"))
		valid, err = processor.Verify(tampered[:], signature, publicKey)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("SignIsDeterministicAndDigestless", func(t *testing.T) {
		data := []byte("raw bytes, not a digest")

		first, err := processor.Sign(data, privateKey)
		require.NoError(t, err)
		second, err := processor.Sign(data, privateKey)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		// Interoperable with a plain digest-less PKCS#1 v1.5 verifier.
		err = rsa.VerifyPKCS1v15(publicKey, 0, data, first)
		assert.NoError(t, err)
	})

	t.Run("SignTooLarge", func(t *testing.T) {
		_, err := processor.Sign(make([]byte, privateKey.Size()), privateKey)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)
	})

	t.Run("VerifyTruncatedSignature", func(t *testing.T) {
		signature, err := processor.Sign([]byte("data"), privateKey)
		require.NoError(t, err)

		valid, err := processor.Verify([]byte("data"), signature[:len(signature)-1], publicKey)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := processor.Encrypt([]byte("x"), nil)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)

		_, err = processor.Decrypt([]byte("x"), nil)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)

		_, err = processor.Sign([]byte("x"), nil)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)

		_, err = processor.Verify([]byte("x"), []byte("y"), nil)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)
	})
}

func TestRSAProcessor_PrivateKeyWithoutExponent(t *testing.T) {
	processor := setupRSAProcessor(t)
	pair := testutil.GenerateRSAKeyPairPEM(t, testutil.TestKeySize2048)

	exponentless := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: pair.PrivateKey.N},
		D:         pair.PrivateKey.D,
		Primes:    pair.PrivateKey.Primes,
	}

	_, err := processor.Decrypt(make([]byte, exponentless.Size()), exponentless)
	assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)

	_, err = processor.Sign([]byte("data"), exponentless)
	assert.ErrorIs(t, err, cryptoalg.ErrCryptoBackend)
}

func TestNewRSAProcessor_NilLogger(t *testing.T) {
	_, err := NewRSAProcessor(nil)
	assert.Error(t, err)
}
