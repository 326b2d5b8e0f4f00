package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/service"
	"github.com/stretchr/testify/require"
)

func TestListPosts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter domain.PostFilter
		want   []string
	}{
		{"no filter keeps insertion order", domain.PostFilter{}, []string{
			"Mobile Apps Exam", "Logic Exam", "Predicate Logic Tips", "REMINDER: PLEASE COMPLETE THE MODULE FEEDBACK",
		}},
		{"all modules is unfiltered", domain.PostFilter{Module: domain.AllModules}, []string{
			"Mobile Apps Exam", "Logic Exam", "Predicate Logic Tips", "REMINDER: PLEASE COMPLETE THE MODULE FEEDBACK",
		}},
		{"module is exact", domain.PostFilter{Module: "CSC375"}, []string{"Logic Exam", "Predicate Logic Tips"}},
		{"search is a substring", domain.PostFilter{Search: "Exam"}, []string{"Mobile Apps Exam", "Logic Exam"}},
		{"search is case sensitive", domain.PostFilter{Search: "exam"}, []string{}},
		{"filters combine", domain.PostFilter{Module: "CSC375", Search: "Exam"}, []string{"Logic Exam"}},
		{"unknown module is empty", domain.PostFilter{Module: "CSC999"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.posts.ListPosts(ctx, tc.filter)
			require.NoError(t, err)
			require.Equal(t, tc.want, titles(got))
		})
	}
}

func TestListModuleNames(t *testing.T) {
	e := newEnv(t)

	names, err := e.modules.ListModuleNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{domain.AllModules, "CSC306", "CSC348", "CSC375"}, names)
}

func TestGetPostDetail(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.posts.GetPostDetail(ctx, "01J0000000000000000000000")
	require.ErrorIs(t, err, service.ErrNotFound)

	p := e.postByTitle(t, "Logic Exam")
	d, err := e.posts.GetPostDetail(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Logic Exam", d.Post.Title)
	require.Empty(t, d.Comments)
	require.True(t, d.Post.PostedAt.Equal(time.Date(2019, 1, 5, 22, 58, 0, 0, time.UTC)))
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps author time and module selection", func(t *testing.T) {
		e := newEnv(t)

		p, err := e.posts.CreatePost(ctx, e.member.ID, service.PostInput{
			Title:     "Coursework 2",
			Body:      "Deadline moved",
			Module:    "CSC306",
			VideoLink: ptr("https://www.youtube.com/watch?v=abc123"),
		}, "CSC348")
		require.NoError(t, err)
		require.Equal(t, "Member1", p.Author)
		require.Equal(t, "CSC348", p.ModuleCode)
		require.True(t, fixedNow.Equal(p.PostedAt))
		require.Equal(t, int64(1), p.Version)
		require.NotNil(t, p.VideoID)
		require.Equal(t, "abc123", *p.VideoID)

		stored, err := e.posts.GetPostDetail(ctx, p.ID)
		require.NoError(t, err)
		requireSamePost(t, p, stored.Post)
	})

	t.Run("non youtube link is dropped silently", func(t *testing.T) {
		e := newEnv(t)

		p, err := e.posts.CreatePost(ctx, e.member.ID, service.PostInput{
			Title:     "Vimeo",
			VideoLink: ptr("https://vimeo.com/123"),
		}, "")
		require.NoError(t, err)
		require.Nil(t, p.VideoID)
	})

	t.Run("customer is denied and nothing is stored", func(t *testing.T) {
		e := newEnv(t)
		before, err := e.posts.ListPosts(ctx, domain.PostFilter{})
		require.NoError(t, err)

		_, err = e.posts.CreatePost(ctx, e.customers[0].ID, service.PostInput{Title: "Sneaky"}, "")
		require.ErrorIs(t, err, service.ErrForbidden)

		after, err := e.posts.ListPosts(ctx, domain.PostFilter{})
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})

	t.Run("unknown actor is denied", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.posts.CreatePost(ctx, "nobody", service.PostInput{Title: "x"}, "")
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("empty title echoes the submitted values", func(t *testing.T) {
		e := newEnv(t)
		in := service.PostInput{Title: "   ", Body: "keep me", VideoLink: ptr("www.youtube.com/watch?v=x")}

		_, err := e.posts.CreatePost(ctx, e.member.ID, in, "CSC306")
		require.ErrorIs(t, err, service.ErrValidation)

		var ve *service.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Contains(t, ve.Fields, "title")
		submitted, ok := ve.Submitted.(service.PostInput)
		require.True(t, ok)
		require.Equal(t, "keep me", submitted.Body)
		require.Equal(t, "CSC306", submitted.Module)

		posts, err := e.posts.ListPosts(ctx, domain.PostFilter{Search: "keep"})
		require.NoError(t, err)
		require.Empty(t, posts)
	})

	t.Run("unknown module selection is rejected", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.posts.CreatePost(ctx, e.member.ID, service.PostInput{Title: "x"}, "CSC999")
		var ve *service.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Contains(t, ve.Fields, "module")
	})

	t.Run("empty and all modules selections are accepted", func(t *testing.T) {
		e := newEnv(t)

		for _, sel := range []string{"", domain.AllModules} {
			_, err := e.posts.CreatePost(ctx, e.member.ID, service.PostInput{Title: "sel " + sel}, sel)
			require.NoError(t, err)
		}
	})
}

func TestEditPost(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites and bumps version", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Predicate Logic Tips")

		edited, err := e.posts.EditPost(ctx, e.member.ID, p.ID, service.PostInput{
			ID:        p.ID,
			Title:     "Predicate Logic Tips (updated)",
			Body:      "new body",
			VideoLink: ptr("www.youtube.com/watch?v=newid"),
			Version:   p.Version,
		}, "CSC375")
		require.NoError(t, err)
		require.Equal(t, p.Version+1, edited.Version)
		require.True(t, fixedNow.Equal(edited.PostedAt))
		require.Equal(t, "newid", *edited.VideoID)

		stored, err := e.posts.GetPostDetail(ctx, p.ID)
		require.NoError(t, err)
		requireSamePost(t, edited, stored.Post)
	})

	t.Run("path and payload id mismatch is not found before validation", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Logic Exam")

		_, err := e.posts.EditPost(ctx, e.member.ID, p.ID, service.PostInput{ID: "other", Title: ""}, "")
		require.ErrorIs(t, err, service.ErrNotFound)
		require.NotErrorIs(t, err, service.ErrValidation)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Logic Exam")

		first := service.PostInput{ID: p.ID, Title: "first", Version: p.Version}
		_, err := e.posts.EditPost(ctx, e.member.ID, p.ID, first, "")
		require.NoError(t, err)

		second := service.PostInput{ID: p.ID, Title: "second", Version: p.Version}
		_, err = e.posts.EditPost(ctx, e.member.ID, p.ID, second, "")
		require.ErrorIs(t, err, service.ErrConflict)

		stored, err := e.posts.GetPostDetail(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "first", stored.Post.Title)
	})

	t.Run("deleted post is not found", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Logic Exam")
		require.NoError(t, e.posts.DeletePost(ctx, e.member.ID, p.ID))

		_, err := e.posts.EditPost(ctx, e.member.ID, p.ID, service.PostInput{ID: p.ID, Title: "x", Version: p.Version}, "")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("missing version is a validation failure", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Logic Exam")

		_, err := e.posts.EditPost(ctx, e.member.ID, p.ID, service.PostInput{ID: p.ID, Title: "x"}, "")
		var ve *service.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Contains(t, ve.Fields, "version")
	})

	t.Run("customer is denied", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Logic Exam")

		_, err := e.posts.EditPost(ctx, e.customers[0].ID, p.ID, service.PostInput{ID: p.ID, Title: "x", Version: 1}, "")
		require.ErrorIs(t, err, service.ErrForbidden)

		stored, err := e.posts.GetPostDetail(ctx, p.ID)
		require.NoError(t, err)
		requireSamePost(t, p, stored.Post)
	})
}

func TestPostForEdit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := e.postByTitle(t, "Predicate Logic Tips")

	view, err := e.posts.PostForEdit(ctx, e.member.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, "www.youtube.com/watch?v=kYxYEW2zSlk", view.VideoLink)

	plain := e.postByTitle(t, "Logic Exam")
	view, err = e.posts.PostForEdit(ctx, e.member.ID, plain.ID)
	require.NoError(t, err)
	require.Empty(t, view.VideoLink)

	_, err = e.posts.PostForEdit(ctx, e.member.ID, "missing")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = e.posts.PostForEdit(ctx, e.customers[0].ID, p.ID)
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the post and its comments", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Logic Exam")
		other := e.postByTitle(t, "Mobile Apps Exam")

		for _, c := range []string{"one", "two"} {
			_, err := e.comments.AddComment(ctx, e.customers[0].ID, service.CommentInput{PostID: p.ID, Content: c})
			require.NoError(t, err)
		}
		_, err := e.comments.AddComment(ctx, e.customers[0].ID, service.CommentInput{PostID: other.ID, Content: "stays"})
		require.NoError(t, err)

		view, err := e.posts.PostForDelete(ctx, e.member.ID, p.ID)
		require.NoError(t, err)
		require.Equal(t, p.ID, view.ID)

		require.NoError(t, e.posts.DeletePost(ctx, e.member.ID, p.ID))

		_, err = e.posts.GetPostDetail(ctx, p.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
		n, err := e.store.Comments().CountByPost(ctx, p.ID)
		require.NoError(t, err)
		require.Zero(t, n)

		d, err := e.posts.GetPostDetail(ctx, other.ID)
		require.NoError(t, err)
		require.Len(t, d.Comments, 1)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		e := newEnv(t)

		require.ErrorIs(t, e.posts.DeletePost(ctx, e.member.ID, "missing"), service.ErrNotFound)
		_, err := e.posts.PostForDelete(ctx, e.member.ID, "missing")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("customer is denied", func(t *testing.T) {
		e := newEnv(t)
		p := e.postByTitle(t, "Logic Exam")

		require.ErrorIs(t, e.posts.DeletePost(ctx, e.customers[0].ID, p.ID), service.ErrForbidden)
		_, err := e.posts.GetPostDetail(ctx, p.ID)
		require.NoError(t, err)
	})
}
