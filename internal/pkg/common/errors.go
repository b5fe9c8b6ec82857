package common

import (
	"net/http"
)

// ErrorResponse is the API error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code and the HTTP status it maps to.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError creates a new CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError marks input validation failures.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Predefined error codes.
const (
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeUnauthorized    = "UNAUTHORIZED"      // 401
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE" // 413

	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
)

// Predefined errors. User-facing messages stay in Polish, matching the
// rest of the product surface.
var (
	ErrInvalidRequest = NewError(ErrCodeInvalidRequest, "Bledne dane JSON.", http.StatusBadRequest, nil)
	ErrUnauthorized   = NewError(ErrCodeUnauthorized, "Wymagane logowanie admina.", http.StatusUnauthorized, nil)
	ErrNotFound       = NewError(ErrCodeNotFound, "Nie znaleziono przepisu.", http.StatusNotFound, nil)
	ErrInternalError  = NewError(ErrCodeInternalError, "Blad wewnetrzny serwera.", http.StatusInternalServerError, nil)

	ErrPromptRequired   = NewError(ErrCodeInvalidRequest, "Pole prompt jest wymagane.", http.StatusBadRequest, nil)
	ErrCompletionFailed = NewError(ErrCodeServiceUnavailable, "Szef kuchni upuscil talerz (Blad AI).", http.StatusInternalServerError, nil)
)
