package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/modboard/modboard/internal/board/service"
	"github.com/modboard/modboard/pkg/boardsdk"
	"github.com/modboard/modboard/pkg/httpx"
)

type SessionHandler struct {
	AuthService *service.AuthService
	validate    *validator.Validate
}

// HandleLogin exchanges credentials for a session token.
//
//	@Summary		Sign in
//	@Description	Verifies email and password and returns a bearer token. Unknown emails and wrong passwords are indistinguishable.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.LoginRequest				true	"Credentials"
//	@Success		200		{object}	boardsdk.LoginResponse				"Session token"
//	@Failure		400		{object}	boardsdk.ErrorResponse				"Malformed body"
//	@Failure		401		{object}	boardsdk.ErrorResponse				"Invalid email or password"
//	@Failure		422		{object}	boardsdk.ValidationErrorResponse	"Missing fields"
//	@Failure		429		{object}	boardsdk.ErrorResponse				"Rate limit exceeded"
//	@Router			/v1/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.LoginRequest
	if !decode(w, r, h.validate, &req, false) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Never echo the password back.
		writeServiceError(w, r, err, nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.LoginResponse{
		AccessToken: sess.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.AuthService.TTL.Seconds()),
		UserID:      sess.User.ID,
		Email:       sess.User.Email,
		Role:        sess.Role,
	})
}

// HandleMe describes the signed-in user.
//
//	@Summary		Current user
//	@Description	Returns the caller's handle, current role and the capabilities that role grants. Role changes show up immediately.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	boardsdk.MeResponse		"Current user"
//	@Failure		401	{object}	boardsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	boardsdk.ErrorResponse	"User no longer exists"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.AuthService.Me(r.Context(), httpx.ActorID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	caps := make([]string, len(profile.Capabilities))
	for i, c := range profile.Capabilities {
		caps[i] = string(c)
	}
	httpx.WriteJSON(w, http.StatusOK, boardsdk.MeResponse{
		UserID:       profile.User.ID,
		Email:        profile.User.Email,
		Handle:       profile.User.Handle(),
		Role:         profile.Role,
		Capabilities: caps,
	})
}
