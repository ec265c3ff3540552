package cryptoalg

import "crypto/rsa"

// RSAProcessor handles single-block RSA primitives on already parsed keys.
// Every method works on exactly one RSA block; payloads larger than the modulus allows are rejected.
type RSAProcessor interface {
	// Encrypt encrypts plaintext with RSA/ECB/PKCS#1 v1.5 padding.
	// The plaintext must not exceed the key size in bytes minus 11.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts one RSA/ECB/PKCS#1 v1.5 block.
	Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Sign creates a raw PKCS#1 v1.5 signature over the exact bytes given.
	// No digest is applied: the caller must pre-hash the data.
	Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify checks a raw PKCS#1 v1.5 signature over the exact bytes given.
	// A mismatching signature yields false and a nil error.
	Verify(data, signature []byte, publicKey *rsa.PublicKey) (bool, error)
}

// RSAService exposes the RSA operations with PEM keys and Base64 payloads.
type RSAService interface {
	// Encrypt encrypts dataB64 with the public key (derived when pemKey is private) and returns Base64 ciphertext.
	Encrypt(pemKey, dataB64 string) (string, error)

	// Decrypt decrypts encryptedB64 with the private key pemKey and returns Base64 plaintext.
	Decrypt(pemKey, encryptedB64 string) (string, error)

	// Sign returns the Base64 raw RSA signature of dataB64.
	// The data is signed as given; callers are responsible for hashing it first.
	Sign(pemKey, dataB64 string) (string, error)

	// VerifySignature reports whether signatureB64 is a valid raw RSA signature of dataB64.
	VerifySignature(pemKey, dataB64, signatureB64 string) (bool, error)

	// PublicKeyPEM returns the public key of pemKey, derived when pemKey is private, as a PKIX PEM block.
	PublicKeyPEM(pemKey string) (string, error)
}
