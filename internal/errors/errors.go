package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user lookup by username fails.
	ErrUserNotFound = errors.New("user not found")
	// ErrInsufficientPoints is returned when a spend exceeds the balance.
	ErrInsufficientPoints = errors.New("insufficient points")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateActivity is returned when an activity with the same name and date exists.
	ErrDuplicateActivity = errors.New("an activity with the same name and date already exists")
	// ErrInvalidCost is returned when a spend cost is negative.
	ErrInvalidCost = errors.New("invalid cost")
	// ErrNoFileAttached is returned when an upload request carries no photo part.
	ErrNoFileAttached = errors.New("no photo attached")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrInsufficientPoints:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_POINTS")
	case ErrDuplicateUsername:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_USERNAME")
	case ErrDuplicateActivity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_ACTIVITY")
	case ErrInvalidCost:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_COST")
	case ErrNoFileAttached:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_FILE_ATTACHED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
