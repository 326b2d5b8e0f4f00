package domain

import "time"

// SeedData is the reference data written on first start.
type SeedData struct {
	Roles   []RoleClaims
	Users   []SeedUser
	Modules []string
	Posts   []SeedPost
}

type SeedUser struct {
	Email    string
	Password string
	Role     string
}

// SeedPost is stored as given: the author and timestamp are not restamped
// and VideoID is already a bare identifier.
type SeedPost struct {
	Title    string
	Body     string
	VideoID  string
	Module   string
	Author   string
	PostedAt time.Time
}
