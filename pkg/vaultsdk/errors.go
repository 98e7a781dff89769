package vaultsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeAccessDenied       = "access_denied"
	ErrorCodeConflict           = "conflict"
	ErrorCodeServerError        = "server_error"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

func hasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// IsInvalidCredentials reports a failed login or password re-check.
func IsInvalidCredentials(err error) bool { return hasCode(err, ErrorCodeInvalidCredentials) }

// IsInvalidToken reports a missing, malformed or expired session token.
func IsInvalidToken(err error) bool { return hasCode(err, ErrorCodeInvalidToken) }

// IsAccessDenied reports a vault or entry the session may not touch.
func IsAccessDenied(err error) bool { return hasCode(err, ErrorCodeAccessDenied) }

// IsConflict reports a registration for an email already in use.
func IsConflict(err error) bool { return hasCode(err, ErrorCodeConflict) }

// IsInvalidRequest reports a rejected request body or parameter.
func IsInvalidRequest(err error) bool { return hasCode(err, ErrorCodeInvalidRequest) }

// parseErrorResponse turns an error response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
