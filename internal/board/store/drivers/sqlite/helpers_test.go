package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/store/drivers/sqlite"
	"github.com/modboard/modboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func createPost(t *testing.T, st *sqlite.Store, title, module string) domain.Post {
	t.Helper()

	p := domain.Post{
		ID:         idx.New().String(),
		Title:      title,
		Body:       "body of " + title,
		ModuleCode: module,
		Author:     "Member1",
		PostedAt:   time.Date(2019, 1, 5, 22, 42, 0, 0, time.UTC),
	}
	require.NoError(t, st.Posts().CreatePost(context.Background(), p))
	p.Version = 1
	return p
}

func createRole(t *testing.T, st *sqlite.Store, name string, claims ...domain.Capability) domain.Role {
	t.Helper()

	r := domain.Role{ID: idx.New().String(), Name: name, Claims: claims}
	require.NoError(t, st.Roles().CreateRole(context.Background(), r))
	return r
}

func createUser(t *testing.T, st *sqlite.Store, email, roleID string) domain.User {
	t.Helper()

	u := domain.User{ID: idx.New().String(), Email: email, PasswordHash: "hash", RoleID: roleID}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func titles(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Title
	}
	return out
}
