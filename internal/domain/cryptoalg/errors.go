package cryptoalg

import "errors"

// Error kinds reported by key resolution and the RSA operations.
// Implementations wrap them, so callers should compare with errors.Is.
var (
	// ErrKeyParse reports PEM text that is not a recognized key encoding, even after repair.
	ErrKeyParse = errors.New("key parse error")

	// ErrKeyDerivation reports a private key whose public part cannot be rebuilt.
	ErrKeyDerivation = errors.New("key derivation error")

	// ErrUnsupportedKeyType reports a key whose type does not fit the requested operation.
	ErrUnsupportedKeyType = errors.New("unsupported key type")

	// ErrPadding reports a decrypted block with an invalid PKCS#1 v1.5 padding structure.
	// It also covers a wrong key and corrupted ciphertext.
	ErrPadding = errors.New("padding error")

	// ErrInvalidEncoding reports a payload that is not valid standard Base64.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrCryptoBackend reports any other rejection by the RSA primitive, e.g. data too large for the key.
	ErrCryptoBackend = errors.New("crypto backend error")
)
