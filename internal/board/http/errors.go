package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/modboard/modboard/internal/board/domain"
	"github.com/modboard/modboard/internal/board/service"
	"github.com/modboard/modboard/pkg/boardsdk"
	"github.com/modboard/modboard/pkg/httpx"
	"github.com/modboard/modboard/pkg/slogx"
)

const maxBodyBytes = 1 << 20

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so field errors line up with what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and checks its struct tags. It writes
// the error response itself and reports false when the handler should stop.
// A failed validation echoes dst back only when echo is set.
func decode(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any, echo bool) bool {
	return readJSON(w, r, dst) && checkTags(w, r, v, dst, echo)
}

// decodeFor is decode for routes gated on c. The capability is checked
// between parsing and the struct tags, so a caller without it gets the bare
// 403 whatever the body holds. Validation failures echo dst.
func decodeFor(
	w http.ResponseWriter,
	r *http.Request,
	v *validator.Validate,
	auth *service.Authorizer,
	c domain.Capability,
	dst any,
) bool {
	if !readJSON(w, r, dst) {
		return false
	}
	ctx := r.Context()
	if _, err := auth.Require(ctx, httpx.ActorID(ctx), c); err != nil {
		writeServiceError(w, r, err, nil)
		return false
	}
	return checkTags(w, r, v, dst, true)
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Request body must be valid JSON",
		})
		return false
	}
	return true
}

func checkTags(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any, echo bool) bool {
	err := v.Struct(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeServerError(w, r, err)
		return false
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = tagMessage(fe)
	}
	resp := boardsdk.ValidationErrorResponse{
		Code:    boardsdk.ErrorCodeValidationFailed,
		Message: "The request has invalid fields",
		Details: details,
	}
	if echo {
		resp.Submitted = dst
	}
	httpx.WriteJSON(w, http.StatusUnprocessableEntity, resp)
	return false
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "is too long"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// writeServiceError maps a service error onto a status and body. Submitted
// is echoed back on validation failures.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, submitted any) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteJSON(w, http.StatusUnprocessableEntity, boardsdk.ValidationErrorResponse{
			Code:      boardsdk.ErrorCodeValidationFailed,
			Message:   "The request has invalid fields",
			Details:   verr.Fields,
			Submitted: submitted,
		})
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeNotFound,
			ErrorDescription: "The requested item does not exist",
		})
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSON(w, http.StatusForbidden, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeForbidden,
			ErrorDescription: service.ErrForbidden.Error(),
		})
	case errors.Is(err, service.ErrConflict):
		httpx.WriteJSON(w, http.StatusConflict, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeConflict,
			ErrorDescription: service.ErrConflict.Error(),
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{
			Error:            boardsdk.ErrorCodeInvalidCredentials,
			ErrorDescription: "Invalid email or password",
		})
	default:
		writeServerError(w, r, err)
	}
}

func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", "error", err)
	httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{
		Error:            boardsdk.ErrorCodeServerError,
		ErrorDescription: "Internal server error",
	})
}
