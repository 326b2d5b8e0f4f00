package boardsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session performs requests as a signed-in user.
type Session struct {
	client *Client
	token  string

	// Login is the sign-in response, empty for SessionFromToken.
	Login LoginResponse
}

func (s *Session) Token() string { return s.token }

func (s *Session) do(ctx context.Context, method, path string, in, out any, want int) error {
	return s.client.do(ctx, s.token, method, path, in, out, want)
}

// Me returns the signed-in user's role and capabilities.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.do(ctx, http.MethodGet, "/v1/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts lists posts, optionally narrowed by module and title substring.
func (s *Session) ListPosts(ctx context.Context, module, search string) ([]Post, error) {
	q := url.Values{}
	if module != "" {
		q.Set("module", module)
	}
	if search != "" {
		q.Set("search", search)
	}
	path := "/v1/posts"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out ListPostsResponse
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

func (s *Session) Modules(ctx context.Context) ([]string, error) {
	var out ModulesResponse
	if err := s.do(ctx, http.MethodGet, "/v1/modules", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Modules, nil
}

func (s *Session) Post(ctx context.Context, id string) (*PostDetail, error) {
	var out PostDetail
	if err := s.do(ctx, http.MethodGet, "/v1/posts/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment comments on a post and returns the refreshed post.
func (s *Session) AddComment(ctx context.Context, postID, content string) (*PostDetail, error) {
	var out PostDetail
	err := s.do(ctx, http.MethodPost, "/v1/posts/"+url.PathEscape(postID)+"/comments",
		CommentRequest{Content: content}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreatePost(ctx context.Context, req PostRequest) (*Post, error) {
	var out Post
	if err := s.do(ctx, http.MethodPost, "/v1/posts", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostForEdit loads a post with its video link expanded for editing.
func (s *Session) PostForEdit(ctx context.Context, id string) (*EditPostResponse, error) {
	var out EditPostResponse
	if err := s.do(ctx, http.MethodGet, "/v1/posts/"+url.PathEscape(id)+"/edit", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditPost saves req over the post at id. req.Version must be the version
// the post was loaded at.
func (s *Session) EditPost(ctx context.Context, id string, req PostRequest) (*Post, error) {
	var out Post
	if err := s.do(ctx, http.MethodPut, "/v1/posts/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostForDelete loads the delete confirmation view.
func (s *Session) PostForDelete(ctx context.Context, id string) (*Post, error) {
	var out Post
	if err := s.do(ctx, http.MethodGet, "/v1/posts/"+url.PathEscape(id)+"/delete", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeletePost(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/posts/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) UserRoles(ctx context.Context) (*UserRolesResponse, error) {
	var out UserRolesResponse
	if err := s.do(ctx, http.MethodGet, "/v1/roles/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) SetRole(ctx context.Context, email, role string) (*UserRole, error) {
	var out UserRole
	err := s.do(ctx, http.MethodPut, "/v1/roles/users", RoleChangeRequest{Email: email, Role: role}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
