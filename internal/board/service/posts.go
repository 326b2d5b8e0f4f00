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

// PostInput is a submitted create or edit form.
type PostInput struct {
	ID        string // Edit only, must equal the id the request addressed
	Title     string
	Body      string
	Module    string  // Module carried in the form body; the module selection always wins
	VideoLink *string // Raw link as typed, sanitized before storing
	Version   int64   // Edit only, the version the form was loaded at
}

// PostEditView is a post as shown in the edit form, with the stored video
// identifier expanded back into a link.
type PostEditView struct {
	Post      domain.Post
	VideoLink string
}

type PostService struct {
	Store store.Store
	Auth  *Authorizer
	Now   func() time.Time // defaults to time.Now
}

func (s *PostService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// ListPosts returns posts matching f in insertion order. An empty result is
// not an error.
func (s *PostService) ListPosts(ctx context.Context, f domain.PostFilter) ([]domain.Post, error) {
	posts, err := s.Store.Posts().ListPosts(ctx, f)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list posts", slog.Any("error", err))
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPostDetail returns a post with its comments in the order they were added.
func (s *PostService) GetPostDetail(ctx context.Context, id string) (domain.PostDetail, error) {
	return loadDetail(ctx, s.Store, id)
}

func loadDetail(ctx context.Context, st store.Store, id string) (domain.PostDetail, error) {
	p, err := st.Posts().GetPost(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.PostDetail{}, ErrNotFound
	}
	if err != nil {
		return domain.PostDetail{}, fmt.Errorf("get post: %w", err)
	}

	comments, err := st.Comments().ListByPost(ctx, id)
	if err != nil {
		return domain.PostDetail{}, fmt.Errorf("list comments: %w", err)
	}
	return domain.PostDetail{Post: p, Comments: comments}, nil
}

// CreatePost stores a new post authored by the actor. moduleSelection is the
// explicit module picker value and replaces in.Module.
func (s *PostService) CreatePost(ctx context.Context, actorID string, in PostInput, moduleSelection string) (domain.Post, error) {
	l := slogx.FromContext(ctx)

	actor, err := s.Auth.Require(ctx, actorID, domain.CapAddPost)
	if err != nil {
		return domain.Post{}, err
	}
	if err := s.validate(ctx, in, moduleSelection, false); err != nil {
		return domain.Post{}, err
	}

	p := s.stamp(in, moduleSelection, actor)
	p.ID = idx.New().String()

	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		l.Error("failed to create post", slog.Any("error", err))
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}
	p.Version = 1

	metrics.PostMutationsTotal.WithLabelValues("create").Inc()
	l.Info("post created",
		slog.String("post_id", p.ID),
		slog.String("module", p.ModuleCode),
	)
	return p, nil
}

// EditPost overwrites the post addressed by id with in. The edit is refused
// with ErrConflict when the post changed since in.Version was read, and with
// ErrNotFound when it no longer exists or in.ID does not match id.
func (s *PostService) EditPost(ctx context.Context, actorID, id string, in PostInput, moduleSelection string) (domain.Post, error) {
	l := slogx.FromContext(ctx).With(slog.String("post_id", id))

	actor, err := s.Auth.Require(ctx, actorID, domain.CapEditPost)
	if err != nil {
		return domain.Post{}, err
	}
	if in.ID != id {
		l.Warn("edit addressed a different post than the form", slog.String("form_post_id", in.ID))
		return domain.Post{}, fmt.Errorf("%w: post id mismatch", ErrNotFound)
	}
	if err := s.validate(ctx, in, moduleSelection, true); err != nil {
		return domain.Post{}, err
	}

	p := s.stamp(in, moduleSelection, actor)
	p.ID = id
	p.Version = in.Version

	err = s.Store.Posts().UpdatePost(ctx, p)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.Post{}, ErrNotFound
	case errors.Is(err, store.ErrConflict):
		metrics.EditConflictsTotal.Inc()
		l.Warn("edit lost a concurrent update", slog.Int64("version", in.Version))
		return domain.Post{}, ErrConflict
	case err != nil:
		l.Error("failed to update post", slog.Any("error", err))
		return domain.Post{}, fmt.Errorf("update post: %w", err)
	}
	p.Version++

	metrics.PostMutationsTotal.WithLabelValues("edit").Inc()
	l.Info("post edited", slog.Int64("version", p.Version))
	return p, nil
}

// PostForEdit loads a post for the edit form.
func (s *PostService) PostForEdit(ctx context.Context, actorID, id string) (PostEditView, error) {
	if _, err := s.Auth.Require(ctx, actorID, domain.CapEditPost); err != nil {
		return PostEditView{}, err
	}
	p, err := s.getPost(ctx, id)
	if err != nil {
		return PostEditView{}, err
	}
	return PostEditView{Post: p, VideoLink: domain.ExpandVideoLink(p.VideoID)}, nil
}

// PostForDelete loads a post for the delete confirmation.
func (s *PostService) PostForDelete(ctx context.Context, actorID, id string) (domain.Post, error) {
	if _, err := s.Auth.Require(ctx, actorID, domain.CapDeletePost); err != nil {
		return domain.Post{}, err
	}
	return s.getPost(ctx, id)
}

// DeletePost removes a post and every comment on it in one transaction.
func (s *PostService) DeletePost(ctx context.Context, actorID, id string) error {
	l := slogx.FromContext(ctx).With(slog.String("post_id", id))

	if _, err := s.Auth.Require(ctx, actorID, domain.CapDeletePost); err != nil {
		return err
	}

	var removed int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Posts().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		if removed, err = tx.Comments().CountByPost(ctx, id); err != nil {
			return err
		}
		if err := tx.Comments().DeleteByPost(ctx, id); err != nil {
			return err
		}
		return tx.Posts().DeletePost(ctx, id)
	})
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case err != nil:
		l.Error("failed to delete post", slog.Any("error", err))
		return fmt.Errorf("delete post: %w", err)
	}

	metrics.PostMutationsTotal.WithLabelValues("delete").Inc()
	l.Info("post deleted", slog.Int("comments_removed", removed))
	return nil
}

func (s *PostService) getPost(ctx context.Context, id string) (domain.Post, error) {
	p, err := s.Store.Posts().GetPost(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Post{}, ErrNotFound
	}
	if err != nil {
		return domain.Post{}, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (s *PostService) validate(ctx context.Context, in PostInput, moduleSelection string, editing bool) error {
	fe := fieldErrors{}

	if strings.TrimSpace(in.Title) == "" {
		fe.add("title", "title is required")
	}
	if editing && in.Version < 1 {
		fe.add("version", "version is required")
	}
	if !domain.IsUnfiltered(moduleSelection) {
		ok, err := s.Store.Modules().Exists(ctx, moduleSelection)
		if err != nil {
			return fmt.Errorf("check module: %w", err)
		}
		if !ok {
			fe.add("module", "unknown module")
		}
	}

	submitted := in
	submitted.Module = moduleSelection
	return fe.err(submitted)
}

// stamp builds the post to store: sanitized video, fresh timestamp, the
// actor's handle and the selected module.
func (s *PostService) stamp(in PostInput, moduleSelection string, actor domain.User) domain.Post {
	p := domain.Post{
		Title:      in.Title,
		Body:       in.Body,
		ModuleCode: moduleSelection,
		Author:     actor.Handle(),
		PostedAt:   s.now().UTC().Truncate(time.Second),
	}
	if in.VideoLink != nil && *in.VideoLink != "" {
		p.VideoID = domain.SanitizeVideoLink(*in.VideoLink)
		if p.VideoID == nil {
			metrics.VideoLinksRejectedTotal.Inc()
		}
	}
	return p
}
