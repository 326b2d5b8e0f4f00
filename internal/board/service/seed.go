package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/store"
	"github.com/modboard/modboard/pkg/cryptox"
	"github.com/modboard/modboard/pkg/idx"
	"github.com/modboard/modboard/pkg/slogx"
)

type SeedService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
}

// Seed writes data in a single transaction. Each group (roles, users,
// modules and posts) is only written when its table is still empty, so
// running Seed on every start is safe.
func (s *SeedService) Seed(ctx context.Context, data domain.SeedData) error {
	l := slogx.FromContext(ctx)

	// Hash outside the transaction: argon2 is slow and the store has one connection.
	hashes := make(map[string]string, len(data.Users))
	usersEmpty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check users: %w", err)
	}
	if usersEmpty {
		for _, u := range data.Users {
			h, err := s.Hasher.Hash(u.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.Email, err)
			}
			hashes[u.Email] = h
		}
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := seedRoles(ctx, tx, data.Roles); err != nil {
			return err
		}
		if usersEmpty {
			if err := seedUsers(ctx, tx, data.Users, hashes); err != nil {
				return err
			}
			l.Info("seeded users", slog.Int("count", len(data.Users)))
		}
		return seedContent(ctx, tx, data, l)
	})
}

func seedRoles(ctx context.Context, tx store.Tx, roles []domain.RoleClaims) error {
	empty, err := tx.Roles().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check roles: %w", err)
	}
	if !empty {
		return nil
	}

	for _, rc := range roles {
		id := idx.New().String()
		if err := tx.Roles().CreateRole(ctx, domain.Role{ID: id, Name: rc.Role}); err != nil {
			return fmt.Errorf("create role %s: %w", rc.Role, err)
		}
		for _, c := range rc.Claims {
			if err := tx.Roles().AddClaim(ctx, id, c); err != nil {
				return fmt.Errorf("add claim %s to %s: %w", c, rc.Role, err)
			}
		}
	}
	return nil
}

func seedUsers(ctx context.Context, tx store.Tx, users []domain.SeedUser, hashes map[string]string) error {
	for _, su := range users {
		role, err := tx.Roles().GetRoleByName(ctx, su.Role)
		if err != nil {
			return fmt.Errorf("role %s for %s: %w", su.Role, su.Email, err)
		}
		err = tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Email:        su.Email,
			PasswordHash: hashes[su.Email],
			RoleID:       role.ID,
		})
		if err != nil {
			return fmt.Errorf("create user %s: %w", su.Email, err)
		}
	}
	return nil
}

func seedContent(ctx context.Context, tx store.Tx, data domain.SeedData, l *slog.Logger) error {
	empty, err := tx.Modules().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check modules: %w", err)
	}
	if !empty {
		return nil
	}

	for _, name := range data.Modules {
		if err := tx.Modules().CreateModule(ctx, domain.Module{ID: idx.New().String(), Name: name}); err != nil {
			return fmt.Errorf("create module %s: %w", name, err)
		}
	}
	for _, sp := range data.Posts {
		p := domain.Post{
			ID:         idx.New().String(),
			Title:      sp.Title,
			Body:       sp.Body,
			ModuleCode: sp.Module,
			Author:     sp.Author,
			PostedAt:   sp.PostedAt,
		}
		if sp.VideoID != "" {
			v := sp.VideoID
			p.VideoID = &v
		}
		if err := tx.Posts().CreatePost(ctx, p); err != nil {
			return fmt.Errorf("create post %q: %w", sp.Title, err)
		}
	}

	l.Info("seeded content",
		slog.Int("modules", len(data.Modules)),
		slog.Int("posts", len(data.Posts)),
	)
	return nil
}
