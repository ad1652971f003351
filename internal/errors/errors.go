package errors

import (
	"errors"
	"net/http"
)

// Error kinds. Services wrap one of these with fmt.Errorf("%w: ...") so the
// HTTP layer can classify the failure without knowing where it came from.
var (
	// ErrInvalidRequest is returned for a null payload or a path/body id mismatch.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInternal is returned when the record store fails.
	ErrInternal = errors.New("internal server error")
	// ErrDependency is returned when the department lookup fails or times out.
	ErrDependency = errors.New("dependent service failure")
	// ErrUnavailable is returned when the server has no capacity for the request.
	ErrUnavailable = errors.New("service unavailable")
)

// Error codes carried in the response envelope.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeRouteNotFound  = "ROUTE_NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
	CodeDependency     = "DEPENDENCY_FAILURE"
	CodeUnavailable    = "SERVICE_UNAVAILABLE"
)

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

// MapErrorToHTTP maps domain errors to HTTP errors. Caller-facing kinds keep
// their descriptive message; server-side kinds get a generic one.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return NewHTTPError(http.StatusBadRequest, err.Error(), CodeInvalidRequest)
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), CodeNotFound)
	case errors.Is(err, ErrDependency):
		return NewHTTPError(http.StatusBadGateway, ErrDependency.Error(), CodeDependency)
	case errors.Is(err, ErrUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrUnavailable.Error(), CodeUnavailable)
	default:
		return NewHTTPError(http.StatusInternalServerError, ErrInternal.Error(), CodeInternal)
	}
}
