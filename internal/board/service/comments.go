package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/metrics"
	"github.com/modboard/modboard/internal/board/store"
	"github.com/modboard/modboard/pkg/idx"
	"github.com/modboard/modboard/pkg/slogx"
)

// CommentInput is a submitted comment form.
type CommentInput struct {
	PostID  string
	Content string
}

type CommentService struct {
	Store store.Store
	Auth  *Authorizer
	Now   func() time.Time // defaults to time.Now
}

// AddComment appends a comment by the actor to a post and returns the post
// with its comments as they are after the write. The post itself is not
// modified.
func (s *CommentService) AddComment(ctx context.Context, actorID string, in CommentInput) (domain.PostDetail, error) {
	l := slogx.FromContext(ctx).With(slog.String("post_id", in.PostID))

	actor, err := s.Auth.Require(ctx, actorID, domain.CapCommentOnPost)
	if err != nil {
		return domain.PostDetail{}, err
	}

	fe := fieldErrors{}
	if strings.TrimSpace(in.Content) == "" {
		fe.add("content", "comment is required")
	}
	if err := fe.err(in); err != nil {
		return domain.PostDetail{}, err
	}

	exists, err := s.Store.Posts().Exists(ctx, in.PostID)
	if err != nil {
		return domain.PostDetail{}, fmt.Errorf("check post: %w", err)
	}
	if !exists {
		return domain.PostDetail{}, ErrNotFound
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	c := domain.Comment{
		ID:       idx.New().String(),
		PostID:   in.PostID,
		Content:  in.Content,
		Author:   actor.Handle(),
		PostedAt: now().UTC().Truncate(time.Second),
	}

	err = s.Store.Comments().CreateComment(ctx, c)
	if errors.Is(err, store.ErrNotFound) {
		// The post was deleted between the check and the insert.
		return domain.PostDetail{}, ErrNotFound
	}
	if err != nil {
		l.Error("failed to add comment", slog.Any("error", err))
		return domain.PostDetail{}, fmt.Errorf("add comment: %w", err)
	}

	metrics.CommentsAddedTotal.Inc()
	l.Info("comment added", slog.String("comment_id", c.ID))

	return loadDetail(ctx, s.Store, in.PostID)
}
