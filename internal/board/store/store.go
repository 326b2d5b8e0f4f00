package store

import (
	"context"
	"errors"

	"github.com/modboard/modboard/internal/board/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrConflict      = errors.New("store: version conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a transaction scoped store can hand out the same repos
// without letting callers start a transaction inside a transaction.
type Store interface {
	Users() Users
	Roles() Roles
	Posts() Posts
	Comments() Comments
	Modules() Modules

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Cascade delete,
	// role switching and seeding all go through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by sign-in identifier, case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns every user ordered by email.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersByRole returns the members of a role ordered by email.
	ListUsersByRole(ctx context.Context, roleID string) ([]domain.User, error)

	// SetUserRole replaces the user's single role and bumps updated_at.
	// Granting the new role and revoking the old one is one row update.
	SetUserRole(ctx context.Context, userID, roleID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Roles interface {
	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// GetRoleByName fetches a role by its name.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles ordered by name.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role (id is ULID).
	CreateRole(ctx context.Context, r domain.Role) error

	// AddClaim grants a capability to a role. Adding a claim the role
	// already holds is a no-op.
	AddClaim(ctx context.Context, roleID string, claim domain.Capability) error

	// IsEmpty returns true if there are no roles.
	IsEmpty(ctx context.Context) (bool, error)
}

type Posts interface {
	// GetPost returns a post by id.
	GetPost(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns posts matching f in insertion order.
	ListPosts(ctx context.Context, f domain.PostFilter) ([]domain.Post, error)

	// CreatePost inserts a new post at version 1.
	CreatePost(ctx context.Context, p domain.Post) error

	// UpdatePost overwrites every field of the post if its stored version
	// still equals p.Version, then bumps the version. Returns ErrNotFound if
	// the post is gone and ErrConflict if it was changed in the meantime.
	UpdatePost(ctx context.Context, p domain.Post) error

	// DeletePost removes a post. Comments must already be gone or be
	// removed in the same transaction.
	DeletePost(ctx context.Context, id string) error

	// Exists reports whether a post with id is stored.
	Exists(ctx context.Context, id string) (bool, error)
}

type Comments interface {
	// CreateComment appends a comment to its post.
	CreateComment(ctx context.Context, c domain.Comment) error

	// ListByPost returns a post's comments in insertion order.
	ListByPost(ctx context.Context, postID string) ([]domain.Comment, error)

	// DeleteByPost removes every comment that references postID.
	DeleteByPost(ctx context.Context, postID string) error

	// CountByPost returns the number of comments referencing postID.
	CountByPost(ctx context.Context, postID string) (int, error)
}

type Modules interface {
	// CreateModule inserts a module, names are unique.
	CreateModule(ctx context.Context, m domain.Module) error

	// ListModules returns all modules ordered by name.
	ListModules(ctx context.Context) ([]domain.Module, error)

	// Exists reports whether a module with that exact name is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// IsEmpty returns true if there are no modules.
	IsEmpty(ctx context.Context) (bool, error)
}
