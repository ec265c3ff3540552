package cryptography

import (
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/keys"
	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/logger"
)

// derDecoder parses one DER key encoding.
type derDecoder struct {
	name  string
	parse func(der []byte) (any, error)
}

var (
	pkcs8PrivateDecoder = derDecoder{
		name:  "PKCS#8 private key",
		parse: x509.ParsePKCS8PrivateKey,
	}
	pkcs1PrivateDecoder = derDecoder{
		name: "PKCS#1 private key",
		parse: func(der []byte) (any, error) {
			return x509.ParsePKCS1PrivateKey(der)
		},
	}
	pkixPublicDecoder = derDecoder{
		name:  "X.509 public key",
		parse: x509.ParsePKIXPublicKey,
	}
	pkcs1PublicDecoder = derDecoder{
		name: "PKCS#1 public key",
		parse: func(der []byte) (any, error) {
			return x509.ParsePKCS1PublicKey(der)
		},
	}
)

// decodersFor orders the DER decoders so the one named by the PEM label is tried first.
// Mislabelled blocks still parse through the remaining decoders.
func decodersFor(label string) []derDecoder {
	switch label {
	case "RSA PRIVATE KEY":
		return []derDecoder{pkcs1PrivateDecoder, pkcs8PrivateDecoder, pkixPublicDecoder, pkcs1PublicDecoder}
	case "PUBLIC KEY":
		return []derDecoder{pkixPublicDecoder, pkcs1PublicDecoder, pkcs8PrivateDecoder, pkcs1PrivateDecoder}
	case "RSA PUBLIC KEY":
		return []derDecoder{pkcs1PublicDecoder, pkixPublicDecoder, pkcs8PrivateDecoder, pkcs1PrivateDecoder}
	default:
		return []derDecoder{pkcs8PrivateDecoder, pkcs1PrivateDecoder, pkixPublicDecoder, pkcs1PublicDecoder}
	}
}

// ParseKey parses a single PEM block holding an RSA key in PKCS#1, PKCS#8 or X.509 encoding.
//
// Structural failures (no PEM block, or DER no decoder accepts) wrap cryptoalg.ErrKeyParse.
// An RSA private key without a public exponent is returned as is; deriving its public key fails later.
// A well-formed key of another algorithm wraps cryptoalg.ErrUnsupportedKeyType.
func ParseKey(pemText string) (*keys.ResolvedKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("%w: failed to decode PEM block containing the key", cryptoalg.ErrKeyParse)
	}

	var errs []error
	for _, decoder := range decodersFor(block.Type) {
		parsed, err := decoder.parse(block.Bytes)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", decoder.name, err))
			continue
		}
		return classifyKey(parsed)
	}

	if privateKey, ok := parseExponentlessPrivateKey(block.Bytes); ok {
		return keys.NewPrivateKey(privateKey), nil
	}

	return nil, fmt.Errorf("%w: unable to parse %q block as RSA key: %w", cryptoalg.ErrKeyParse, block.Type, errors.Join(errs...))
}

// pkcs1PrivateKeyASN1 mirrors the RSAPrivateKey structure of RFC 8017, appendix A.1.2.
type pkcs1PrivateKeyASN1 struct {
	Version int
	N       *big.Int
	E       int
	D       *big.Int
	P       *big.Int
	Q       *big.Int
	Dp      *big.Int `asn1:"optional"`
	Dq      *big.Int `asn1:"optional"`
	Qinv    *big.Int `asn1:"optional"`

	AdditionalPrimes []asn1.RawValue `asn1:"optional,omitempty"`
}

// pkcs8PrivateKeyASN1 mirrors the PrivateKeyInfo structure of RFC 5208.
type pkcs8PrivateKeyASN1 struct {
	Version    int
	Algo       pkix.AlgorithmIdentifier
	PrivateKey []byte
}

var oidRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}

// parseExponentlessPrivateKey accepts a PKCS#1 or PKCS#8 RSA private key whose public exponent is zero.
// crypto/x509 rejects such keys outright; keeping them lets public key derivation report ErrKeyDerivation.
func parseExponentlessPrivateKey(der []byte) (*rsa.PrivateKey, bool) {
	var pkcs8 pkcs8PrivateKeyASN1
	if rest, err := asn1.Unmarshal(der, &pkcs8); err == nil && len(rest) == 0 && pkcs8.Algo.Algorithm.Equal(oidRSAEncryption) {
		der = pkcs8.PrivateKey
	}

	var raw pkcs1PrivateKeyASN1
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil || len(rest) > 0 {
		return nil, false
	}
	if raw.E != 0 || raw.N == nil || raw.N.Sign() <= 0 || raw.D == nil || raw.P == nil || raw.Q == nil {
		return nil, false
	}

	return &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: raw.N},
		D:         raw.D,
		Primes:    []*big.Int{raw.P, raw.Q},
	}, true
}

func classifyKey(parsed any) (*keys.ResolvedKey, error) {
	switch key := parsed.(type) {
	case *rsa.PrivateKey:
		return keys.NewPrivateKey(key), nil
	case *rsa.PublicKey:
		return keys.NewPublicKey(key), nil
	default:
		return nil, fmt.Errorf("%w: key of type %T is not an RSA key", cryptoalg.ErrUnsupportedKeyType, parsed)
	}
}

// keyResolver implements keys.KeyResolver
type keyResolver struct {
	logger logger.Logger
}

// NewKeyResolver creates and returns a new instance of keyResolver
func NewKeyResolver(logger logger.Logger) (keys.KeyResolver, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &keyResolver{
		logger: logger,
	}, nil
}

// Resolve parses pemText and, on a structural failure, retries exactly once with RepairPEM(pemText).
// When the retry fails as well, its error is returned rather than the first one.
func (r *keyResolver) Resolve(pemText string) (*keys.ResolvedKey, error) {
	key, err := ParseKey(pemText)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, cryptoalg.ErrKeyParse) {
		return nil, err
	}

	r.logger.Debug("PEM key not parseable as given, retrying with repaired text: ", err)

	key, err = ParseKey(RepairPEM(pemText))
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Resolved ", key.Kind, " key after PEM repair")
	return key, nil
}
