package domain

// Capability is a named permission granted to a role through a claim.
type Capability string

const (
	CapAddPost        Capability = "add-post"
	CapEditPost       Capability = "edit-post"
	CapDeletePost     Capability = "delete-post"
	CapCommentOnPost  Capability = "comment-on-post"
	CapChangeUserRole Capability = "change-user-role"
)

// RoleClaims binds a role name to the capabilities it is granted.
type RoleClaims struct {
	Role   string
	Claims []Capability
}

// DefaultRoleClaims returns the static bindings seeded at bootstrap. A fresh
// slice is returned on every call so callers cannot mutate shared state.
func DefaultRoleClaims() []RoleClaims {
	return []RoleClaims{
		{
			Role: RoleMember,
			Claims: []Capability{
				CapAddPost,
				CapEditPost,
				CapDeletePost,
				CapCommentOnPost,
				CapChangeUserRole,
			},
		},
		{
			Role:   RoleCustomer,
			Claims: []Capability{CapCommentOnPost},
		},
	}
}
