package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/metrics"
	"github.com/modboard/modboard/internal/board/perm"
	"github.com/modboard/modboard/internal/board/store"
	"github.com/modboard/modboard/pkg/slogx"
)

// Authorizer answers capability questions for an actor. The actor's role is
// read from the store on every call, so a role switch is visible to the
// next request; the role to capability table itself is fixed.
type Authorizer struct {
	Store store.Store
	Table *perm.Table
}

// HasCapability reports whether the actor currently holds c. Unknown actors
// hold nothing.
func (a *Authorizer) HasCapability(ctx context.Context, actorID string, c domain.Capability) (bool, error) {
	u, err := a.Store.Users().GetUserByID(ctx, actorID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load actor: %w", err)
	}
	return a.Table.Allows(u.RoleID, c), nil
}

// Require returns the actor when they hold c and ErrForbidden otherwise.
// Callers must call it before touching the store for writes.
func (a *Authorizer) Require(ctx context.Context, actorID string, c domain.Capability) (domain.User, error) {
	l := slogx.FromContext(ctx)

	u, err := a.Store.Users().GetUserByID(ctx, actorID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// fall through to deny
	case err != nil:
		l.Error("failed to load actor", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("load actor: %w", err)
	case a.Table.Allows(u.RoleID, c):
		return u, nil
	}

	metrics.AuthorizationDeniedTotal.WithLabelValues(string(c)).Inc()
	l.Warn("authorization denied", slog.String("capability", string(c)))
	return domain.User{}, ErrForbidden
}
