// Package token issues and verifies signed session tokens: HS256 JWTs that
// expire a fixed duration (8h by default) after issue.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/blog/pkg/jwt"
)

// DefaultTTL is the lifetime of an issued token.
const DefaultTTL = 8 * time.Hour

var (
	ErrInvalidTTL   = errors.New("token ttl must be positive")
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// Claims carried by a session token.
type Claims = gojwt.RegisteredClaims

// Issuer signs session tokens with a secret fixed at construction.
type Issuer struct {
	jwt    *jwt.Service
	ttl    time.Duration
	now    func() time.Time
	issuer string
}

type Option func(*Issuer)

func WithTTL(ttl time.Duration) Option {
	return func(i *Issuer) { i.ttl = ttl }
}

// WithClock replaces time.Now for both issuing and verification.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		if now != nil {
			i.now = now
		}
	}
}

// WithIssuer sets the iss claim.
func WithIssuer(name string) Option {
	return func(i *Issuer) { i.issuer = name }
}

// NewIssuer validates the secret and returns an Issuer. A missing or short
// secret is returned as jwt.ErrMissingSigningKey or jwt.ErrInvalidSigningKey.
func NewIssuer(secret []byte, opts ...Option) (*Issuer, error) {
	i := &Issuer{
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	svc, err := jwt.New(secret, jwt.WithClock(func() time.Time { return i.now() }))
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}
	i.jwt = svc

	return i, nil
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue returns a token valid from now until now+TTL.
func (i *Issuer) Issue(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	now := i.now()
	claims := Claims{
		ID:        uuid.NewString(),
		Issuer:    i.issuer,
		IssuedAt:  gojwt.NewNumericDate(now),
		NotBefore: gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(i.ttl)),
	}

	token, err := i.jwt.Generate(claims)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and expiry of token and returns its claims.
func (i *Issuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	if err := i.jwt.Parse(token, claims); err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, errors.Join(ErrExpiredToken, err)
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}
