package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/service"
	"github.com/modboard/modboard/pkg/boardsdk"
	"github.com/modboard/modboard/pkg/httpx"
)

type PostsHandler struct {
	Posts    *service.PostService
	Comments *service.CommentService
	Modules  *service.ModuleService
	Auth     *service.Authorizer
	validate *validator.Validate
}

// HandleModules lists module codes for the module picker.
//
//	@Summary		List modules
//	@Description	Returns every module code, ascending by name.
//	@Tags			Posts
//	@Produce		json
//	@Success		200	{object}	boardsdk.ModulesResponse	"Module codes"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/modules [get].
func (h *PostsHandler) HandleModules(w http.ResponseWriter, r *http.Request) {
	names, err := h.Modules.ListModuleNames(r.Context())
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, boardsdk.ModulesResponse{Modules: names})
}

// HandleList lists posts, optionally narrowed by module and title search.
//
//	@Summary		List posts
//	@Description	Posts in the order they were created. module="" or "All Modules" applies no module filter. search is a case-sensitive title substring.
//	@Tags			Posts
//	@Produce		json
//	@Param			module	query		string						false	"Module code"
//	@Param			search	query		string						false	"Title substring"
//	@Success		200		{object}	boardsdk.ListPostsResponse	"Posts"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.PostFilter{Module: q.Get("module"), Search: q.Get("search")}

	posts, err := h.Posts.ListPosts(r.Context(), f)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, boardsdk.ListPostsResponse{
		Posts:  toPosts(posts),
		Module: f.Module,
		Search: f.Search,
	})
}

// HandleDetail returns a post with its comments.
//
//	@Summary		Post detail
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string					true	"Post ID"
//	@Success		200	{object}	boardsdk.PostDetail		"Post and comments in the order added"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id} [get].
func (h *PostsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	d, err := h.Posts.GetPostDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPostDetail(d))
}

// HandleAddComment appends a comment to a post.
//
//	@Summary		Add comment
//	@Description	Any signed-in user may comment. The author is the caller's handle.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Post ID"
//	@Param			request	body		boardsdk.CommentRequest				true	"Comment"
//	@Success		201		{object}	boardsdk.PostDetail					"Post with the new comment"
//	@Failure		401		{object}	boardsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		404		{object}	boardsdk.ErrorResponse				"Unknown post"
//	@Failure		422		{object}	boardsdk.ValidationErrorResponse	"Empty comment"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id}/comments [post].
func (h *PostsHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.CommentRequest
	if !decodeFor(w, r, h.validate, h.Auth, domain.CapCommentOnPost, &req) {
		return
	}

	d, err := h.Comments.AddComment(r.Context(), httpx.ActorID(r.Context()), service.CommentInput{
		PostID:  r.PathValue("id"),
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err, req)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPostDetail(d))
}

// HandleCreate creates a post.
//
//	@Summary		Create post
//	@Description	Requires the create-post capability. module_selection replaces module. A video link that is not a recognised YouTube URL is dropped.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.PostRequest				true	"Post"
//	@Success		201		{object}	boardsdk.Post						"Created post"
//	@Failure		401		{object}	boardsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		403		{object}	boardsdk.ErrorResponse				"Not permitted"
//	@Failure		422		{object}	boardsdk.ValidationErrorResponse	"Invalid fields, echoed back"
//	@Security		BearerAuth
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.PostRequest
	if !decodeFor(w, r, h.validate, h.Auth, domain.CapAddPost, &req) {
		return
	}

	p, err := h.Posts.CreatePost(r.Context(), httpx.ActorID(r.Context()), postInput(req), req.ModuleSelection)
	if err != nil {
		writeServiceError(w, r, err, req)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPost(p))
}

// HandleEditView returns a post prepared for the edit form.
//
//	@Summary		Load post for editing
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string						true	"Post ID"
//	@Success		200	{object}	boardsdk.EditPostResponse	"Post and its watch link"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403	{object}	boardsdk.ErrorResponse		"Not permitted"
//	@Failure		404	{object}	boardsdk.ErrorResponse		"Unknown post"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id}/edit [get].
func (h *PostsHandler) HandleEditView(w http.ResponseWriter, r *http.Request) {
	v, err := h.Posts.PostForEdit(r.Context(), httpx.ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, boardsdk.EditPostResponse{Post: toPost(v.Post), VideoLink: v.VideoLink})
}

// HandleEdit saves an edited post.
//
//	@Summary		Edit post
//	@Description	The body id must match the path. version must be the value loaded with the form; a stale version is rejected with 409.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Post ID"
//	@Param			request	body		boardsdk.PostRequest				true	"Post"
//	@Success		200		{object}	boardsdk.Post						"Saved post"
//	@Failure		401		{object}	boardsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		403		{object}	boardsdk.ErrorResponse				"Not permitted"
//	@Failure		404		{object}	boardsdk.ErrorResponse				"Unknown post or id mismatch"
//	@Failure		409		{object}	boardsdk.ErrorResponse				"Edited by someone else"
//	@Failure		422		{object}	boardsdk.ValidationErrorResponse	"Invalid fields, echoed back"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id} [put].
func (h *PostsHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.PostRequest
	if !decodeFor(w, r, h.validate, h.Auth, domain.CapEditPost, &req) {
		return
	}

	p, err := h.Posts.EditPost(r.Context(), httpx.ActorID(r.Context()), r.PathValue("id"), postInput(req), req.ModuleSelection)
	if err != nil {
		writeServiceError(w, r, err, req)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPost(p))
}

// HandleDeleteView returns the post shown on the delete confirmation.
//
//	@Summary		Load post for deletion
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string					true	"Post ID"
//	@Success		200	{object}	boardsdk.Post			"Post"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	boardsdk.ErrorResponse	"Not permitted"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id}/delete [get].
func (h *PostsHandler) HandleDeleteView(w http.ResponseWriter, r *http.Request) {
	p, err := h.Posts.PostForDelete(r.Context(), httpx.ActorID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPost(p))
}

// HandleDelete removes a post and its comments.
//
//	@Summary		Delete post
//	@Tags			Posts
//	@Param			id	path	string	true	"Post ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	boardsdk.ErrorResponse	"Not permitted"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"Unknown post"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Posts.DeletePost(r.Context(), httpx.ActorID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, nil)
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

func postInput(req boardsdk.PostRequest) service.PostInput {
	return service.PostInput{
		ID:        req.ID,
		Title:     req.Title,
		Body:      req.Body,
		Module:    req.Module,
		VideoLink: req.VideoLink,
		Version:   req.Version,
	}
}
