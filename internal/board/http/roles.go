package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/service"
	"github.com/modboard/modboard/pkg/boardsdk"
	"github.com/modboard/modboard/pkg/httpx"
)

type RolesHandler struct {
	RolesService *service.RolesService
	Auth         *service.Authorizer
	validate     *validator.Validate
}

// HandleList returns every user's role and the users offered in the role form.
//
//	@Summary		List user roles
//	@Description	Requires the change-user-role capability. assignable excludes the caller and the reserved account.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	boardsdk.UserRolesResponse	"Users and roles"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403	{object}	boardsdk.ErrorResponse		"Not permitted"
//	@Security		BearerAuth
//	@Router			/v1/roles/users [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := httpx.ActorID(ctx)

	roles, err := h.RolesService.ListUserRoles(ctx, actor)
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}
	assignable, err := h.RolesService.AssignableUsers(ctx, actor)
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	resp := boardsdk.UserRolesResponse{
		Users:      make([]boardsdk.UserRole, len(roles)),
		Assignable: make([]string, len(assignable)),
		Roles:      []string{domain.RoleMember, domain.RoleCustomer},
	}
	for i, ur := range roles {
		resp.Users[i] = toUserRole(ur)
	}
	for i, u := range assignable {
		resp.Assignable[i] = u.Email
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSetRole moves a user between Member and Customer.
//
//	@Summary		Change a user's role
//	@Description	Grants the named role and revokes the other in one step. Takes effect on the user's next request.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		boardsdk.RoleChangeRequest			true	"Role change"
//	@Success		200		{object}	boardsdk.UserRole					"Updated assignment"
//	@Failure		401		{object}	boardsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		403		{object}	boardsdk.ErrorResponse				"Not permitted"
//	@Failure		404		{object}	boardsdk.ErrorResponse				"Unknown email"
//	@Failure		422		{object}	boardsdk.ValidationErrorResponse	"Invalid role"
//	@Security		BearerAuth
//	@Router			/v1/roles/users [put].
func (h *RolesHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	var req boardsdk.RoleChangeRequest
	if !decodeFor(w, r, h.validate, h.Auth, domain.CapChangeUserRole, &req) {
		return
	}

	ur, err := h.RolesService.SetRole(r.Context(), httpx.ActorID(r.Context()), service.RoleChange{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err, req)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserRole(ur))
}
