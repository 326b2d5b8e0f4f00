package domain

import "time"

// The two fixed roles. Every provisioned user holds exactly one of them.
const (
	RoleMember   = "Member"
	RoleCustomer = "Customer"
)

type Role struct {
	ID        string
	Name      string
	Claims    []Capability // Parsed from space-delimited storage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRole pairs a user with the name of the role they currently hold.
type UserRole struct {
	User User
	Role string
}

// IsSwitchableRole reports whether name is one of the two roles the role
// switch moves users between.
func IsSwitchableRole(name string) bool {
	return name == RoleMember || name == RoleCustomer
}
