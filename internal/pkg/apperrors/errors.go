package apperrors

import "errors"

// Common errors
var (
	// Transport errors
	ErrConnectivity   = errors.New("cannot reach the server")
	ErrRequestTimeout = errors.New("request timed out")

	// Authentication errors
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Server errors
	ErrRateLimited = errors.New("too many requests")
	ErrServerError = errors.New("server error")
)

// Upload errors
var (
	ErrFileTooLarge        = errors.New("file exceeds the size limit")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Credential store errors
var (
	ErrNoStoredToken = errors.New("no stored token")
	ErrNoStoredUser  = errors.New("no stored user")
)

// APIError is a rejected request: the server responded with a non-2xx status.
// Message carries the server-supplied detail when one could be extracted.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

// Error implements error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return sentinelForStatus(e.StatusCode).Error()
}

// Unwrap maps the HTTP status onto the matching sentinel so callers can
// branch with errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	return sentinelForStatus(e.StatusCode)
}

func sentinelForStatus(status int) error {
	switch {
	case status == 400:
		return ErrBadRequest
	case status == 401:
		return ErrUnauthorized
	case status == 403:
		return ErrPermissionDenied
	case status == 404:
		return ErrResourceNotFound
	case status == 409:
		return ErrConflict
	case status == 422:
		return ErrValidationFailed
	case status == 429:
		return ErrRateLimited
	case status >= 500:
		return ErrServerError
	default:
		return ErrBadRequest
	}
}

// NewAPIError creates an APIError for a status code and server message
func NewAPIError(statusCode int, message, code string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// StatusCodeOf returns the HTTP status carried by err, or 0 when err did not
// come from a server response.
func StatusCodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
