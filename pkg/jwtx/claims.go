package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrNoSubject   = errors.New("jwtx: token has no subject")
)

// Claims are the session token claims. The subject is the user id. Roles
// are not carried: they are read from the store on every request.
type Claims struct {
	jwt.RegisteredClaims

	// Email the user signed in with, for display only.
	Email string `json:"email,omitempty"`
}

// NewSessionClaims builds claims valid from now until now+ttl.
func NewSessionClaims(subject, email, issuer, jti string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
		Email: email,
	}
}

// ValidateAt checks exp and nbf against now, allowing leeway either side.
func (c *Claims) ValidateAt(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	if c.Subject == "" {
		return ErrNoSubject
	}
	return nil
}
