// Package perm holds the role to capability table that gates every mutating
// board operation. A Table is built once from the seeded roles and never
// changes afterwards; share it by pointer.
package perm

import (
	"slices"

	"github.com/modboard/modboard/internal/board/domain"
)

type grant struct {
	name string
	caps map[domain.Capability]struct{}
}

// Table maps roles (by id and by name) to their granted capabilities.
type Table struct {
	byID   map[string]grant
	idByNm map[string]string
}

// New builds a Table from roles as loaded from the identity store.
func New(roles []domain.Role) *Table {
	t := &Table{
		byID:   make(map[string]grant, len(roles)),
		idByNm: make(map[string]string, len(roles)),
	}
	for _, r := range roles {
		caps := make(map[domain.Capability]struct{}, len(r.Claims))
		for _, c := range r.Claims {
			caps[c] = struct{}{}
		}
		t.byID[r.ID] = grant{name: r.Name, caps: caps}
		t.idByNm[r.Name] = r.ID
	}
	return t
}

// Allows reports whether holders of roleID are granted c. Unknown roles are
// granted nothing.
func (t *Table) Allows(roleID string, c domain.Capability) bool {
	g, ok := t.byID[roleID]
	if !ok {
		return false
	}
	_, ok = g.caps[c]
	return ok
}

// Capabilities lists the capabilities of roleID in a stable order.
func (t *Table) Capabilities(roleID string) []domain.Capability {
	g, ok := t.byID[roleID]
	if !ok {
		return nil
	}
	out := make([]domain.Capability, 0, len(g.caps))
	for c := range g.caps {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// RoleID resolves a role name.
func (t *Table) RoleID(name string) (string, bool) {
	id, ok := t.idByNm[name]
	return id, ok
}

// RoleName resolves a role id.
func (t *Table) RoleName(id string) (string, bool) {
	g, ok := t.byID[id]
	return g.name, ok
}
