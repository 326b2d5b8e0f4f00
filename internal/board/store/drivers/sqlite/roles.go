package sqlite

import (
	"context"
	"slices"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
)

type rolesRepo struct {
	q querier
}

type roleRow struct {
	id, name, claims     string
	createdAt, updatedAt time.Time
}

func (row roleRow) role() domain.Role {
	return domain.Role{
		ID:        row.id,
		Name:      row.name,
		Claims:    splitClaims(row.claims),
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}
}

func scanRole(row interface{ Scan(...any) error }) (domain.Role, error) {
	var rr roleRow
	if err := row.Scan(&rr.id, &rr.name, &rr.claims, &rr.createdAt, &rr.updatedAt); err != nil {
		return domain.Role{}, err
	}
	return rr.role(), nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	role, err := scanRole(r.q.QueryRowContext(ctx,
		`SELECT id, name, claims, created_at, updated_at FROM roles WHERE id = ?`, id))
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	role, err := scanRole(r.q.QueryRowContext(ctx,
		`SELECT id, name, claims, created_at, updated_at FROM roles WHERE name = ?`, name))
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, claims, created_at, updated_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	now := dbTime(time.Now())
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO roles (id, name, claims, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		role.ID, role.Name, joinClaims(role.Claims), now, now,
	)
	return mapConstraint(err)
}

func (r *rolesRepo) AddClaim(ctx context.Context, roleID string, claim domain.Capability) error {
	role, err := r.GetRoleByID(ctx, roleID)
	if err != nil {
		return err
	}
	if slices.Contains(role.Claims, claim) {
		return nil
	}

	_, err = r.q.ExecContext(ctx,
		`UPDATE roles SET claims = ?, updated_at = ? WHERE id = ?`,
		joinClaims(append(role.Claims, claim)), dbTime(time.Now()), roleID,
	)
	return err
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
