package boardsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modboard/modboard/pkg/boardsdk"
	"github.com/stretchr/testify/require"
)

func TestLoginAndBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/login":
			var req boardsdk.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "Member1@email.com", req.Email)
			_ = json.NewEncoder(w).Encode(boardsdk.LoginResponse{AccessToken: "tok", TokenType: "Bearer", Role: "Member"})
		case "/v1/posts":
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			require.Equal(t, "CSC375", r.URL.Query().Get("module"))
			require.Equal(t, "Logic", r.URL.Query().Get("search"))
			_ = json.NewEncoder(w).Encode(boardsdk.ListPostsResponse{Posts: []boardsdk.Post{{ID: "1", Title: "Logic Exam"}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	s, err := boardsdk.NewClient(srv.URL+"/").Login(ctx, "Member1@email.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "Member", s.Login.Role)

	posts, err := s.ListPosts(ctx, "CSC375", "Logic")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "Logic Exam", posts[0].Title)
}

func TestErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/posts/gone":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not_found","error_description":"post not found"}`))
		case "/v1/posts":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":"validation_failed","message":"check the form","details":{"title":"title is required"},"submitted":{"body":"kept"}}`))
		case "/v1/posts/stale":
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"conflict","error_description":"changed"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	s := boardsdk.NewClient(srv.URL).SessionFromToken("tok")

	_, err := s.Post(ctx, "gone")
	require.True(t, boardsdk.IsNotFound(err))

	_, err = s.CreatePost(ctx, boardsdk.PostRequest{Body: "kept"})
	require.True(t, boardsdk.IsValidation(err))
	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "title is required", apiErr.Fields["title"])
	require.JSONEq(t, `{"body":"kept"}`, string(apiErr.Submitted))

	_, err = s.EditPost(ctx, "stale", boardsdk.PostRequest{})
	require.True(t, boardsdk.IsConflict(err))

	_, err = s.Modules(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, boardsdk.ErrorCodeServerError, apiErr.Code)
}
