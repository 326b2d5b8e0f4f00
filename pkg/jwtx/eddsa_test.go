package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/modboard/modboard/pkg/cryptox"
	"github.com/modboard/modboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const issuer = "modboard-test"

func newEdDSA(t *testing.T) *jwtx.EdDSA {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	e, err := jwtx.NewEdDSA("k1", issuer, pemKey)
	require.NoError(t, err)
	require.NoError(t, e.Validate())
	return e
}

func TestEdDSA_SignAndVerify(t *testing.T) {
	e := newEdDSA(t)
	now := time.Now()

	tok, err := e.Sign(jwtx.NewSessionClaims("01USER", "Member1@email.com", issuer, "jti-1", time.Hour, now))
	require.NoError(t, err)

	c, err := e.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "01USER", c.Subject)
	require.Equal(t, "Member1@email.com", c.Email)
	require.Equal(t, "jti-1", c.ID)
}

func TestEdDSA_VerifyRejects(t *testing.T) {
	e := newEdDSA(t)
	now := time.Now()

	t.Run("expired", func(t *testing.T) {
		tok, err := e.Sign(jwtx.NewSessionClaims("u", "", issuer, "j", time.Minute, now))
		require.NoError(t, err)

		_, err = e.WithClock(func() time.Time { return now.Add(time.Hour) }).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		tok, err := e.Sign(jwtx.NewSessionClaims("u", "", "someone-else", "j", time.Hour, now))
		require.NoError(t, err)

		_, err = e.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok, err := e.Sign(jwtx.NewSessionClaims("", "", issuer, "j", time.Hour, now))
		require.NoError(t, err)

		_, err = e.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrNoSubject)
	})

	t.Run("other key", func(t *testing.T) {
		tok, err := newEdDSA(t).Sign(jwtx.NewSessionClaims("u", "", issuer, "j", time.Hour, now))
		require.NoError(t, err)

		_, err = e.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := e.Verify("not.a.token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("alg none", func(t *testing.T) {
		tok, err := e.Sign(jwtx.NewSessionClaims("u", "", issuer, "j", time.Hour, now))
		require.NoError(t, err)
		parts := strings.Split(tok, ".")
		// {"alg":"none","typ":"JWT"}
		forged := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." + parts[1] + "."

		_, err = e.Verify(forged)
		require.Error(t, err)
	})
}

func TestNewEdDSA_BadPEM(t *testing.T) {
	_, err := jwtx.NewEdDSA("k", issuer, []byte("nope"))
	require.Error(t, err)
}

func TestNewEdDSA_ThumbprintKidIsStable(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	a, err := jwtx.NewEdDSA("", issuer, pemKey)
	require.NoError(t, err)
	b, err := jwtx.NewEdDSA("", issuer, pemKey)
	require.NoError(t, err)

	tok, err := a.Sign(jwtx.NewSessionClaims("u1", "u1@example.com", issuer, "j1", time.Minute, time.Now()))
	require.NoError(t, err)
	_, err = b.Verify(tok)
	require.NoError(t, err)
}
