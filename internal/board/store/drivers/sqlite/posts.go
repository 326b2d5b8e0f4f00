package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/store"
)

const postColumns = `id, title, body, video_id, module_code, author, posted_at, version`

type postsRepo struct {
	q querier
}

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var (
		p     domain.Post
		video sql.NullString
	)
	err := row.Scan(&p.ID, &p.Title, &p.Body, &video, &p.ModuleCode, &p.Author, &p.PostedAt, &p.Version)
	if err != nil {
		return domain.Post{}, err
	}
	p.VideoID = mapNullStringPtr(video)
	return p, nil
}

func (r *postsRepo) GetPost(ctx context.Context, id string) (domain.Post, error) {
	p, err := scanPost(r.q.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = ?`, id))
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) ListPosts(ctx context.Context, f domain.PostFilter) ([]domain.Post, error) {
	var (
		where []string
		args  []any
	)
	if !domain.IsUnfiltered(f.Module) {
		where = append(where, `module_code = ?`)
		args = append(args, f.Module)
	}
	if f.Search != "" {
		// instr is case-sensitive, LIKE is not.
		where = append(where, `instr(title, ?) > 0`)
		args = append(args, f.Search)
	}

	query := `SELECT ` + postColumns + ` FROM posts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY id`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO posts (`+postColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		p.ID, p.Title, p.Body, mapOptionalString(p.VideoID), p.ModuleCode, p.Author, dbTime(p.PostedAt),
	)
	return mapConstraint(err)
}

func (r *postsRepo) UpdatePost(ctx context.Context, p domain.Post) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE posts
		    SET title = ?, body = ?, video_id = ?, module_code = ?, author = ?, posted_at = ?,
		        version = version + 1
		  WHERE id = ? AND version = ?`,
		p.Title, p.Body, mapOptionalString(p.VideoID), p.ModuleCode, p.Author, dbTime(p.PostedAt),
		p.ID, p.Version,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Nothing matched: either the post is gone or someone else saved first.
	exists, err := r.Exists(ctx, p.ID)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}
	return store.ErrConflict
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
