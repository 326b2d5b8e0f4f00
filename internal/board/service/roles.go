package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/metrics"
	"github.com/modboard/modboard/internal/board/store"
	"github.com/modboard/modboard/pkg/slogx"
)

// RoleChange is a submitted role switch.
type RoleChange struct {
	Email string
	Role  string
}

type RolesService struct {
	Store store.Store
	Auth  *Authorizer

	// ReservedAccount is never offered for a role switch.
	ReservedAccount string
}

// ListUserRoles pairs every user with their current role, ordered by email.
func (s *RolesService) ListUserRoles(ctx context.Context, actorID string) ([]domain.UserRole, error) {
	if _, err := s.Auth.Require(ctx, actorID, domain.CapChangeUserRole); err != nil {
		return nil, err
	}

	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]domain.UserRole, len(users))
	for i, u := range users {
		name, _ := s.Auth.Table.RoleName(u.RoleID)
		out[i] = domain.UserRole{User: u, Role: name}
	}
	return out, nil
}

// AssignableUsers lists the users the actor may pick in the role form:
// everyone except the actor and the reserved account. SetRole does not
// apply this filter.
func (s *RolesService) AssignableUsers(ctx context.Context, actorID string) ([]domain.User, error) {
	if _, err := s.Auth.Require(ctx, actorID, domain.CapChangeUserRole); err != nil {
		return nil, err
	}

	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.ID == actorID || strings.EqualFold(u.Email, s.ReservedAccount) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// SetRole moves a user into the named role. Granting the new role and
// revoking the other happen in one row update, so the user is never seen
// in both roles or in neither.
func (s *RolesService) SetRole(ctx context.Context, actorID string, in RoleChange) (domain.UserRole, error) {
	l := slogx.FromContext(ctx)

	if _, err := s.Auth.Require(ctx, actorID, domain.CapChangeUserRole); err != nil {
		return domain.UserRole{}, err
	}

	fe := fieldErrors{}
	if strings.TrimSpace(in.Email) == "" {
		fe.add("email", "user is required")
	}
	roleID, known := s.Auth.Table.RoleID(in.Role)
	if !domain.IsSwitchableRole(in.Role) || !known {
		fe.add("role", "role must be Member or Customer")
	}
	if err := fe.err(in); err != nil {
		return domain.UserRole{}, err
	}

	var target domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if err := tx.Users().SetUserRole(ctx, u.ID, roleID); err != nil {
			return err
		}
		u.RoleID = roleID
		target = u
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.UserRole{}, ErrNotFound
	}
	if err != nil {
		l.Error("failed to switch role", slog.String("email", in.Email), slog.Any("error", err))
		return domain.UserRole{}, fmt.Errorf("set role: %w", err)
	}

	metrics.RoleChangesTotal.WithLabelValues(in.Role).Inc()
	l.Info("role switched",
		slog.String("user_id", target.ID),
		slog.String("role", in.Role),
	)
	return domain.UserRole{User: target, Role: in.Role}, nil
}

// IsInRole reports whether the user currently holds the named role.
func (s *RolesService) IsInRole(ctx context.Context, userID, role string) (bool, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	name, _ := s.Auth.Table.RoleName(u.RoleID)
	return name == role, nil
}

// RoleMembers lists the users holding the named role, ordered by email.
func (s *RolesService) RoleMembers(ctx context.Context, role string) ([]domain.User, error) {
	roleID, ok := s.Auth.Table.RoleID(role)
	if !ok {
		return nil, ErrNotFound
	}
	users, err := s.Store.Users().ListUsersByRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role members: %w", err)
	}
	return users, nil
}
