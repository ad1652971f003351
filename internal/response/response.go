package response

import (
	apperrors "staffdir/internal/errors"
)

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every response body of both services.
type Envelope struct {
	Status  string      `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success wraps data.
func Success(data interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Failure wraps an HTTP error.
func Failure(err *apperrors.HTTPError) Envelope {
	return Envelope{Status: StatusError, Code: err.Code, Message: err.Message}
}
