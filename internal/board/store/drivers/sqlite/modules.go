package sqlite

import (
	"context"

	"github.com/modboard/modboard/internal/board/domain"
)

type modulesRepo struct {
	q querier
}

func (r *modulesRepo) CreateModule(ctx context.Context, m domain.Module) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO modules (id, name) VALUES (?, ?)`, m.ID, m.Name)
	return mapConstraint(err)
}

func (r *modulesRepo) ListModules(ctx context.Context) ([]domain.Module, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name FROM modules ORDER BY name COLLATE NOCASE, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modules := []domain.Module{}
	for rows.Next() {
		var m domain.Module
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (r *modulesRepo) Exists(ctx context.Context, name string) (bool, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM modules WHERE name = ?`, name).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *modulesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM modules`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
