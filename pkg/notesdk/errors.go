package notesdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/memoa/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeEmailTaken         = "email_taken"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error body every failing endpoint returns. The server uses
// it to write responses and the client returns it for non-success statuses.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// WriteError writes the error as JSON with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: e.Code, Message: e.Message})
}

// NewAPIError builds an APIError; handlers use it for endpoint specific messages.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

var (
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "Invalid credentials.",
	}

	ErrEmailTaken = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeEmailTaken,
		Message:    "Email already registered.",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "Internal server error.",
	}

	ErrMalformedBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "Request body must be a JSON object.",
	}
)

func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Message:    errResp.Message,
		}
	}

	// Not one of ours (proxy page, mux 404/405, ...)
	code := ErrorCodeServerError
	if resp.StatusCode < http.StatusInternalServerError {
		code = ErrorCodeInvalidRequest
	}
	if resp.StatusCode == http.StatusNotFound {
		code = ErrorCodeNotFound
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       code,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
