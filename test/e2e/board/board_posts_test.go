package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/modboard/modboard/pkg/boardsdk"
)

func TestSeededBoard(t *testing.T) {
	client := setupBoard(t, relaxedLimits)
	session := login(t, client, "Customer3@email.com")

	posts, err := session.ListPosts(t.Context(), "", "")
	require.NoError(t, err)
	require.Len(t, posts, 6)
	require.Equal(t, "Mobile Apps Exam", posts[0].Title)
	require.Equal(t, "Member1", posts[0].Author)

	posts, err = session.ListPosts(t.Context(), "CSC348", "")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	modules, err := session.Modules(t.Context())
	require.NoError(t, err)
	require.Len(t, modules, 20)

	tips := findPost(t, session, "Predicate Logic Tips")
	require.NotNil(t, tips.VideoID)
	require.Equal(t, "kYxYEW2zSlk", *tips.VideoID)
}

func TestMemberPostLifecycle(t *testing.T) {
	client := setupBoard(t, relaxedLimits)
	member := login(t, client, memberEmail)
	customer := login(t, client, "Customer1@email.com")

	link := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	created, err := member.CreatePost(t.Context(), boardsdk.PostRequest{
		Title:           "Coursework 2",
		Body:            "Deadline moved to Friday",
		ModuleSelection: "CSC306",
		VideoLink:       &link,
	})
	require.NoError(t, err)
	require.Equal(t, "Member1", created.Author)
	require.Equal(t, "dQw4w9WgXcQ", *created.VideoID)

	// Customers can read and comment but not manage posts.
	detail, err := customer.AddComment(t.Context(), created.ID, "Thanks!")
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, "Customer1", detail.Comments[0].Author)

	_, err = customer.PostForEdit(t.Context(), created.ID)
	require.True(t, boardsdk.IsForbidden(err))

	form, err := member.PostForEdit(t.Context(), created.ID)
	require.NoError(t, err)

	req := boardsdk.PostRequest{
		ID:              created.ID,
		Title:           form.Post.Title,
		Body:            "Deadline moved to Monday",
		ModuleSelection: form.Post.Module,
		VideoLink:       &form.VideoLink,
		Version:         form.Post.Version,
	}
	edited, err := member.EditPost(t.Context(), created.ID, req)
	require.NoError(t, err)
	require.Equal(t, "Deadline moved to Monday", edited.Body)

	// A second save of the stale form loses.
	_, err = member.EditPost(t.Context(), created.ID, req)
	require.True(t, boardsdk.IsConflict(err))

	require.NoError(t, member.DeletePost(t.Context(), created.ID))
	_, err = customer.Post(t.Context(), created.ID)
	require.True(t, boardsdk.IsNotFound(err))
}

func TestCreatePostValidation(t *testing.T) {
	client := setupBoard(t, relaxedLimits)
	member := login(t, client, memberEmail)

	_, err := member.CreatePost(t.Context(), boardsdk.PostRequest{Body: "no title", ModuleSelection: "CSC306"})
	require.True(t, boardsdk.IsValidation(err))

	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Fields, "title")
	require.Contains(t, string(apiErr.Submitted), "no title")
}
