package domain

// AllModules is the sentinel module name meaning "no module restriction".
const AllModules = "All Modules"

// Module is read-only reference data seeded at startup.
type Module struct {
	ID   string
	Name string
}

// IsUnfiltered reports whether a module filter or selection places no
// restriction on posts.
func IsUnfiltered(module string) bool {
	return module == "" || module == AllModules
}
