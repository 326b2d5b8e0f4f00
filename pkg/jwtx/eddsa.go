package jwtx

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues session tokens.
type Signer interface {
	Sign(Claims) (string, error)
	Validate() error
}

// Verifier checks a session token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// EdDSA signs and verifies tokens with a single Ed25519 key pair. The
// service is both issuer and only audience of its tokens, so there is no
// key set or key rotation.
type EdDSA struct {
	kid    string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// NewEdDSA loads a PKCS8 PEM Ed25519 private key. An empty kid is replaced
// by a thumbprint of the public key, so a persisted key keeps its kid.
func NewEdDSA(kid, issuer string, pemKey []byte) (*EdDSA, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for Ed25519 key")
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("jwtx: expected PRIVATE KEY, got %q", block.Type)
	}
	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}
	key, ok := priv.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("jwtx: not an Ed25519 private key")
	}

	pub := key.Public().(ed25519.PublicKey)
	if kid == "" {
		sum := sha256.Sum256(pub)
		kid = base64.RawURLEncoding.EncodeToString(sum[:12])
	}

	return &EdDSA{
		kid:    kid,
		key:    key,
		pub:    pub,
		issuer: issuer,
		leeway: 30 * time.Second,
		now:    time.Now,
	}, nil
}

// WithClock overrides the clock used for exp/nbf checks.
func (e *EdDSA) WithClock(now func() time.Time) *EdDSA {
	cp := *e
	cp.now = now
	return &cp
}

func (e *EdDSA) Sign(c Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, c)
	t.Header["kid"] = e.kid
	return t.SignedString(e.key)
}

func (e *EdDSA) Verify(raw string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		// exp/nbf are checked below against our own clock.
		jwt.WithoutClaimsValidation(),
	)

	var c Claims
	_, err := parser.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if kid, _ := t.Header["kid"].(string); kid != e.kid {
			return nil, fmt.Errorf("jwtx: unknown kid %q", kid)
		}
		return e.pub, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSig
	case err != nil:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if e.issuer != "" && c.Issuer != e.issuer {
		return Claims{}, ErrIssuer
	}
	if err := c.ValidateAt(e.now(), e.leeway); err != nil {
		return Claims{}, err
	}
	return c, nil
}

// Validate is used by the readiness probe.
func (e *EdDSA) Validate() error {
	if len(e.key) != ed25519.PrivateKeySize || len(e.pub) != ed25519.PublicKeySize {
		return errors.New("jwtx: invalid Ed25519 key")
	}
	return nil
}
