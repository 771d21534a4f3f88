package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// MinKeyLength is the shortest accepted HMAC-SHA256 secret, in bytes.
const MinKeyLength = 32

var signingMethod = gojwt.SigningMethodHS256

// Service handles JWT generation and validation using HMAC-SHA256.
type Service struct {
	signingKey []byte
	now        func() time.Time
	leeway     time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used to validate temporal claims.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLeeway tolerates clock skew when checking exp/nbf/iat.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

// New creates a JWT service. The key must be at least MinKeyLength bytes.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	if len(signingKey) < MinKeyLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidSigningKey, MinKeyLength, len(signingKey))
	}

	s := &Service{
		signingKey: append([]byte(nil), signingKey...),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString is New for string secrets read from configuration.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Generate signs claims and returns the compact serialisation.
func (s *Service) Generate(claims gojwt.Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}
	token, err := gojwt.NewWithClaims(signingMethod, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return token, nil
}

// Parse verifies signature, algorithm and temporal claims of tokenString and
// decodes its payload into claims. Tokens without an exp claim are rejected.
func (s *Service) Parse(tokenString string, claims gojwt.Claims) error {
	if claims == nil {
		return ErrMissingClaims
	}

	_, err := gojwt.ParseWithClaims(tokenString, claims,
		func(*gojwt.Token) (any, error) { return s.signingKey, nil },
		gojwt.WithValidMethods([]string{signingMethod.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithLeeway(s.leeway),
	)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return errors.Join(ErrInvalidSignature, err)
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}
