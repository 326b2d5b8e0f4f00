package sqlite

import (
	"context"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/store"
)

type commentsRepo struct {
	q querier
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, content, author, posted_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PostID, c.Content, c.Author, dbTime(c.PostedAt),
	)
	if err != nil && isForeignKeyViolation(err) {
		return store.ErrNotFound
	}
	return mapConstraint(err)
}

func (r *commentsRepo) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, post_id, content, author, posted_at
		   FROM comments
		  WHERE post_id = ?
		  ORDER BY id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Content, &c.Author, &c.PostedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentsRepo) DeleteByPost(ctx context.Context, postID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM comments WHERE post_id = ?`, postID)
	return err
}

func (r *commentsRepo) CountByPost(ctx context.Context, postID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = ?`, postID).Scan(&n)
	return n, err
}
