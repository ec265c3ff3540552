package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKeySize2048 is the modulus size used by most tests.
const TestKeySize2048 = 2048

// RSAKeyPairPEM carries one generated key pair in every PEM encoding the resolver accepts.
type RSAKeyPairPEM struct {
	PrivateKey *rsa.PrivateKey

	PKCS1Private string // "RSA PRIVATE KEY"
	PKCS8Private string // "PRIVATE KEY"
	PKIXPublic   string // "PUBLIC KEY"
	PKCS1Public  string // "RSA PUBLIC KEY"
}

// GenerateRSAKeyPairPEM generates a fresh RSA key of the given size and encodes it as PEM.
func GenerateRSAKeyPairPEM(t *testing.T, bits int) *RSAKeyPairPEM {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)

	pkcs8, err := x509.MarshalPKCS8PrivateKey(privateKey)
	require.NoError(t, err)

	pkix, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	return &RSAKeyPairPEM{
		PrivateKey:   privateKey,
		PKCS1Private: encodePEM("RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(privateKey)),
		PKCS8Private: encodePEM("PRIVATE KEY", pkcs8),
		PKIXPublic:   encodePEM("PUBLIC KEY", pkix),
		PKCS1Public:  encodePEM("RSA PUBLIC KEY", x509.MarshalPKCS1PublicKey(&privateKey.PublicKey)),
	}
}

// GenerateECPublicKeyPEM returns a PKIX PEM block holding a P-256 public key.
func GenerateECPublicKeyPEM(t *testing.T) string {
	t.Helper()

	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	pkix, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	require.NoError(t, err)

	return encodePEM("PUBLIC KEY", pkix)
}

// ExponentlessKeyPEM carries a private key whose public exponent was zeroed before encoding.
type ExponentlessKeyPEM struct {
	PKCS1Private string // "RSA PRIVATE KEY"
	PKCS8Private string // "PRIVATE KEY"
}

// GenerateExponentlessPrivateKeyPEM encodes a fresh RSA private key with e = 0.
// crypto/x509 refuses to marshal or parse such a key, so the structures are built with encoding/asn1.
func GenerateExponentlessPrivateKeyPEM(t *testing.T, bits int) *ExponentlessKeyPEM {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)

	pkcs1, err := asn1.Marshal(struct {
		Version int
		N       *big.Int
		E       int
		D       *big.Int
		P       *big.Int
		Q       *big.Int
		Dp      *big.Int
		Dq      *big.Int
		Qinv    *big.Int
	}{
		N:    privateKey.N,
		E:    0,
		D:    privateKey.D,
		P:    privateKey.Primes[0],
		Q:    privateKey.Primes[1],
		Dp:   privateKey.Precomputed.Dp,
		Dq:   privateKey.Precomputed.Dq,
		Qinv: privateKey.Precomputed.Qinv,
	})
	require.NoError(t, err)

	pkcs8, err := asn1.Marshal(struct {
		Version    int
		Algo       pkix.AlgorithmIdentifier
		PrivateKey []byte
	}{
		Algo: pkix.AlgorithmIdentifier{
			Algorithm:  asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1},
			Parameters: asn1.NullRawValue,
		},
		PrivateKey: pkcs1,
	})
	require.NoError(t, err)

	return &ExponentlessKeyPEM{
		PKCS1Private: encodePEM("RSA PRIVATE KEY", pkcs1),
		PKCS8Private: encodePEM("PRIVATE KEY", pkcs8),
	}
}

func encodePEM(blockType string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}))
}
