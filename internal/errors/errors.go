package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the email is unknown, the
	// account is inactive, or the password does not match.
	ErrInvalidCredentials = errors.New("Email o contraseña incorrectos")
	// ErrPatientNotFound is returned when a user id has no linked patient row.
	ErrPatientNotFound = errors.New("Paciente no encontrado")
)

// ErrorResponse is the envelope every failing endpoint returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPError carries an HTTP status alongside the client-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Success: false, Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected errors become
// a 500 whose message embeds the raw error text, matching what clients of
// this API already pattern-match on.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrPatientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Error: "+err.Error())
	}
}
