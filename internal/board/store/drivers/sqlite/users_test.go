package sqlite_test

import (
	"context"
	"testing"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/store"
	"github.com/stretchr/testify/require"
)

func TestUsersAndRoles(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	member := createRole(t, st, domain.RoleMember, domain.CapAddPost, domain.CapCommentOnPost)
	customer := createRole(t, st, domain.RoleCustomer, domain.CapCommentOnPost)

	m1 := createUser(t, st, "Member1@email.com", member.ID)
	c1 := createUser(t, st, "Customer1@email.com", customer.ID)
	createUser(t, st, "Customer2@email.com", customer.ID)

	t.Run("lookup by email ignores case", func(t *testing.T) {
		got, err := st.Users().GetUserByEmail(ctx, "MEMBER1@EMAIL.COM")
		require.NoError(t, err)
		require.Equal(t, m1.ID, got.ID)

		_, err = st.Users().GetUserByEmail(ctx, "nobody@email.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{
			ID: "dup", Email: "customer1@email.com", PasswordHash: "x", RoleID: customer.ID,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("user must reference an existing role", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, domain.User{
			ID: "orphan", Email: "orphan@email.com", PasswordHash: "x", RoleID: "no-such-role",
		})
		require.Error(t, err)
	})

	t.Run("listing orders by email", func(t *testing.T) {
		users, err := st.Users().ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		require.Equal(t, "Customer1@email.com", users[0].Email)
		require.Equal(t, "Member1@email.com", users[2].Email)
	})

	t.Run("set role moves the user between roles", func(t *testing.T) {
		require.NoError(t, st.Users().SetUserRole(ctx, c1.ID, member.ID))

		members, err := st.Users().ListUsersByRole(ctx, member.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)

		customers, err := st.Users().ListUsersByRole(ctx, customer.ID)
		require.NoError(t, err)
		require.Len(t, customers, 1)
		require.Equal(t, "Customer2@email.com", customers[0].Email)
	})

	t.Run("set role on unknown user", func(t *testing.T) {
		require.ErrorIs(t, st.Users().SetUserRole(ctx, "missing", member.ID), store.ErrNotFound)
	})
}

func TestRoleClaims(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	role := createRole(t, st, domain.RoleCustomer)
	require.Empty(t, role.Claims)

	require.NoError(t, st.Roles().AddClaim(ctx, role.ID, domain.CapCommentOnPost))
	require.NoError(t, st.Roles().AddClaim(ctx, role.ID, domain.CapCommentOnPost))

	got, err := st.Roles().GetRoleByName(ctx, domain.RoleCustomer)
	require.NoError(t, err)
	require.Equal(t, []domain.Capability{domain.CapCommentOnPost}, got.Claims)

	require.ErrorIs(t, st.Roles().AddClaim(ctx, "missing", domain.CapAddPost), store.ErrNotFound)

	err = st.Roles().CreateRole(ctx, domain.Role{ID: "other", Name: domain.RoleCustomer})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestModules(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	for i, name := range []string{"CSC348", "All Modules", "AR-501", "CSC306"} {
		require.NoError(t, st.Modules().CreateModule(ctx, domain.Module{ID: string(rune('a' + i)), Name: name}))
	}

	modules, err := st.Modules().ListModules(ctx)
	require.NoError(t, err)

	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	require.Equal(t, []string{"All Modules", "AR-501", "CSC306", "CSC348"}, names)

	ok, err := st.Modules().Exists(ctx, "CSC348")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.Modules().Exists(ctx, "csc348")
	require.NoError(t, err)
	require.False(t, ok)

	err = st.Modules().CreateModule(ctx, domain.Module{ID: "z", Name: "CSC348"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}
