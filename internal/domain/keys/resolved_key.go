package keys

import (
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"
)

// Kind tags the variant held by a ResolvedKey.
type Kind int

const (
	// KindUnknown is the zero value and never produced by a resolver.
	KindUnknown Kind = iota
	// KindPublic marks a ResolvedKey holding an RSA public key.
	KindPublic
	// KindPrivate marks a ResolvedKey holding an RSA private key.
	KindPrivate
)

// String returns the key type name used in logs and API responses.
func (k Kind) String() string {
	switch k {
	case KindPublic:
		return "public"
	case KindPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// ResolvedKey is a parsed RSA key, either public or private.
// Exactly one of the key fields is set, matching Kind.
type ResolvedKey struct {
	Kind    Kind
	public  *rsa.PublicKey
	private *rsa.PrivateKey
}

// NewPublicKey wraps an RSA public key.
func NewPublicKey(key *rsa.PublicKey) *ResolvedKey {
	return &ResolvedKey{Kind: KindPublic, public: key}
}

// NewPrivateKey wraps an RSA private key.
func NewPrivateKey(key *rsa.PrivateKey) *ResolvedKey {
	return &ResolvedKey{Kind: KindPrivate, private: key}
}

// Size returns the modulus length in bytes, or 0 when the key holds no modulus.
func (k *ResolvedKey) Size() int {
	switch k.Kind {
	case KindPublic:
		if k.public != nil && k.public.N != nil {
			return k.public.Size()
		}
	case KindPrivate:
		if k.private != nil && k.private.N != nil {
			return k.private.Size()
		}
	}
	return 0
}

// PublicKey returns the key for operations that need a public key.
// A private key yields a freshly derived public key built from its modulus and public exponent.
func (k *ResolvedKey) PublicKey() (*rsa.PublicKey, error) {
	switch k.Kind {
	case KindPublic:
		if k.public == nil {
			return nil, fmt.Errorf("%w: public key variant holds no key", cryptoalg.ErrUnsupportedKeyType)
		}
		return k.public, nil
	case KindPrivate:
		return DerivePublicKey(k.private)
	default:
		return nil, fmt.Errorf("%w: %s key cannot serve as public key", cryptoalg.ErrUnsupportedKeyType, k.Kind)
	}
}

// PrivateKey returns the key for operations that need a private key.
// No private key can be obtained from a public one.
func (k *ResolvedKey) PrivateKey() (*rsa.PrivateKey, error) {
	switch k.Kind {
	case KindPrivate:
		if k.private == nil {
			return nil, fmt.Errorf("%w: private key variant holds no key", cryptoalg.ErrUnsupportedKeyType)
		}
		return k.private, nil
	default:
		return nil, fmt.Errorf("%w: operation requires a private key, got %s key", cryptoalg.ErrUnsupportedKeyType, k.Kind)
	}
}

// DerivePublicKey builds a new public key from the modulus and public exponent of privateKey.
func DerivePublicKey(privateKey *rsa.PrivateKey) (*rsa.PublicKey, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key is nil", cryptoalg.ErrKeyDerivation)
	}
	if privateKey.N == nil || privateKey.N.Sign() <= 0 {
		return nil, fmt.Errorf("%w: private key has no modulus", cryptoalg.ErrKeyDerivation)
	}
	if privateKey.E <= 0 {
		return nil, fmt.Errorf("%w: private key has no public exponent", cryptoalg.ErrKeyDerivation)
	}

	return &rsa.PublicKey{
		N: new(big.Int).Set(privateKey.N),
		E: privateKey.E,
	}, nil
}
