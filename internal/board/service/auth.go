package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/metrics"
	"github.com/modboard/modboard/internal/board/store"
	"github.com/modboard/modboard/pkg/cryptox"
	"github.com/modboard/modboard/pkg/idx"
	"github.com/modboard/modboard/pkg/jwtx"
	"github.com/modboard/modboard/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Session is a signed-in user and the token that proves it.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
	Role      string
}

// Profile describes the actor to a client deciding which actions to offer.
type Profile struct {
	User         domain.User
	Role         string
	Capabilities []domain.Capability
}

type AuthService struct {
	Store  store.Store
	Auth   *Authorizer
	Hasher *cryptox.Hasher
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
	Now    func() time.Time // defaults to time.Now
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		l.Warn("login for unknown user")
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("get user: %w", err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		l.Warn("login with wrong password", slog.String("user_id", u.ID))
		return Session{}, ErrInvalidCredentials
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	issued := now().UTC().Truncate(time.Second)
	claims := jwtx.NewSessionClaims(u.ID, u.Email, s.Issuer, idx.New().String(), s.TTL, issued)
	tok, err := s.Signer.Sign(claims)
	if err != nil {
		l.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, fmt.Errorf("sign token: %w", err)
	}

	role, _ := s.Auth.Table.RoleName(u.RoleID)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	l.Info("user signed in", slog.String("user_id", u.ID))
	return Session{Token: tok, ExpiresAt: issued.Add(s.TTL), User: u, Role: role}, nil
}

// Me returns the actor's current role and capabilities.
func (s *AuthService) Me(ctx context.Context, actorID string) (Profile, error) {
	u, err := s.Store.Users().GetUserByID(ctx, actorID)
	if errors.Is(err, store.ErrNotFound) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get user: %w", err)
	}
	role, _ := s.Auth.Table.RoleName(u.RoleID)
	return Profile{User: u, Role: role, Capabilities: s.Auth.Table.Capabilities(u.RoleID)}, nil
}
