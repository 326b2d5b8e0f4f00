package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/perm"
	"github.com/modboard/modboard/internal/board/service"
	"github.com/modboard/modboard/internal/board/store/drivers/sqlite"
	"github.com/modboard/modboard/pkg/cryptox"
	"github.com/modboard/modboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2019, 1, 8, 14, 30, 0, 0, time.UTC)

type env struct {
	store    *sqlite.Store
	auth     *service.Authorizer
	posts    *service.PostService
	comments *service.CommentService
	modules  *service.ModuleService
	roles    *service.RolesService
	login    *service.AuthService
	signer   *jwtx.EdDSA

	member    domain.User
	customers []domain.User
}

func testSeed() domain.SeedData {
	at := func(day, hour, min int) time.Time { return time.Date(2019, 1, day, hour, min, 0, 0, time.UTC) }
	return domain.SeedData{
		Roles: domain.DefaultRoleClaims(),
		Users: []domain.SeedUser{
			{Email: "Member1@email.com", Password: "Password123!", Role: domain.RoleMember},
			{Email: "Customer1@email.com", Password: "Password123!", Role: domain.RoleCustomer},
			{Email: "Customer2@email.com", Password: "Password123!", Role: domain.RoleCustomer},
		},
		Modules: []string{"CSC306", domain.AllModules, "CSC348", "CSC375"},
		Posts: []domain.SeedPost{
			{Title: "Mobile Apps Exam", Body: "The exam is on the 10th of January", Module: "CSC306", Author: "Member1", PostedAt: at(5, 22, 42)},
			{Title: "Logic Exam", Body: "The exam is on the 21th of January", Module: "CSC375", Author: "Member1", PostedAt: at(5, 22, 58)},
			{Title: "Predicate Logic Tips", VideoID: "kYxYEW2zSlk", Module: "CSC375", Author: "Member1", PostedAt: at(6, 12, 58)},
			{Title: "REMINDER: PLEASE COMPLETE THE MODULE FEEDBACK", Module: domain.AllModules, Author: "Member1", PostedAt: at(7, 9, 23)},
		},
	}
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher := cryptox.NewHasher("test-pepper").WithParams(cryptox.Params{
		Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 32, SaltLength: 16,
	})
	seeder := &service.SeedService{Store: st, Hasher: hasher}
	require.NoError(t, seeder.Seed(ctx, testSeed()))

	roles, err := st.Roles().ListAll(ctx)
	require.NoError(t, err)
	auth := &service.Authorizer{Store: st, Table: perm.New(roles)}

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewEdDSA("test", "modboard", pemKey)
	require.NoError(t, err)

	now := func() time.Time { return fixedNow }
	e := &env{
		store:    st,
		auth:     auth,
		posts:    &service.PostService{Store: st, Auth: auth, Now: now},
		comments: &service.CommentService{Store: st, Auth: auth, Now: now},
		modules:  &service.ModuleService{Store: st},
		roles:    &service.RolesService{Store: st, Auth: auth, ReservedAccount: "Member1@email.com"},
		login: &service.AuthService{
			Store: st, Auth: auth, Hasher: hasher, Signer: signer,
			Issuer: "modboard", TTL: time.Hour, Now: now,
		},
		signer: signer,
	}

	e.member, err = st.Users().GetUserByEmail(ctx, "Member1@email.com")
	require.NoError(t, err)
	for _, email := range []string{"Customer1@email.com", "Customer2@email.com"} {
		u, err := st.Users().GetUserByEmail(ctx, email)
		require.NoError(t, err)
		e.customers = append(e.customers, u)
	}
	return e
}

func (e *env) postByTitle(t *testing.T, title string) domain.Post {
	t.Helper()
	posts, err := e.posts.ListPosts(context.Background(), domain.PostFilter{Search: title})
	require.NoError(t, err)
	for _, p := range posts {
		if p.Title == title {
			return p
		}
	}
	t.Fatalf("post %q not found", title)
	return domain.Post{}
}

func titles(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Title
	}
	return out
}

func ptr(s string) *string { return &s }

// requireSamePost compares posts field by field; times compare by instant.
func requireSamePost(t *testing.T, want, got domain.Post) {
	t.Helper()
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.Title, got.Title)
	require.Equal(t, want.Body, got.Body)
	require.Equal(t, want.VideoID, got.VideoID)
	require.Equal(t, want.ModuleCode, got.ModuleCode)
	require.Equal(t, want.Author, got.Author)
	require.Equal(t, want.Version, got.Version)
	require.True(t, want.PostedAt.Equal(got.PostedAt), "posted_at %s != %s", want.PostedAt, got.PostedAt)
}
