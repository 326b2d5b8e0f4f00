package boardsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in the "error" (or "code") field of error bodies.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeConflict           = "conflict"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeRateLimited        = "rate_limited"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Fields      map[string]string // set for validation failures
	Submitted   json.RawMessage   // echoed request, validation failures only
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

func statusIs(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func IsNotFound(err error) bool        { return statusIs(err, http.StatusNotFound) }
func IsForbidden(err error) bool       { return statusIs(err, http.StatusForbidden) }
func IsConflict(err error) bool        { return statusIs(err, http.StatusConflict) }
func IsValidation(err error) bool      { return statusIs(err, http.StatusUnprocessableEntity) }
func IsUnauthenticated(err error) bool { return statusIs(err, http.StatusUnauthorized) }
func IsRateLimited(err error) bool     { return statusIs(err, http.StatusTooManyRequests) }

func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusUnprocessableEntity {
		var v struct {
			Code      string            `json:"code"`
			Message   string            `json:"message"`
			Details   map[string]string `json:"details"`
			Submitted json.RawMessage   `json:"submitted"`
		}
		if err := json.Unmarshal(body, &v); err == nil && v.Code != "" {
			return &APIError{
				StatusCode:  resp.StatusCode,
				Code:        v.Code,
				Description: v.Message,
				Fields:      v.Details,
				Submitted:   v.Submitted,
			}
		}
	}

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Code: er.Error, Description: er.ErrorDescription}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
