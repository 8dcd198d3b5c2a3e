package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kscout/credential-intake-api/store"
	"github.com/kscout/credential-intake-api/validation"
)

// ErrorKind identifies a class of API error in response bodies
type ErrorKind string

const (
	// KindValidation indicates the client sent missing or malformed input
	KindValidation ErrorKind = "ValidationError"

	// KindPayloadTooLarge indicates the request body exceeded the size limit
	KindPayloadTooLarge ErrorKind = "PayloadTooLarge"

	// KindStorageUnavailable indicates the datastore connection is not ready or failed
	KindStorageUnavailable ErrorKind = "StorageUnavailable"

	// KindStorageError indicates the datastore rejected a write
	KindStorageError ErrorKind = "StorageError"

	// KindNotFound indicates no resource matched the request
	KindNotFound ErrorKind = "NotFound"

	// KindMethodNotAllowed indicates the path exists but not for the request method
	KindMethodNotAllowed ErrorKind = "MethodNotAllowed"
)

// APIError is an error which is sent to the client
type APIError struct {
	// Kind of error
	Kind ErrorKind `json:"kind"`

	// Status is the HTTP status code the error is sent with
	Status int `json:"-"`

	// Message is a user presentable description
	Message string `json:"error"`

	// Fields lists rejected request fields, only set for validation errors
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// Error implements error
func (e APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
}

// ValidationError creates a 400 APIError
func ValidationError(message string, fields []validation.FieldError) APIError {
	return APIError{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: message,
		Fields:  fields,
	}
}

// PayloadTooLargeError creates a 413 APIError
func PayloadTooLargeError(limit int64) APIError {
	return APIError{
		Kind:    KindPayloadTooLarge,
		Status:  http.StatusRequestEntityTooLarge,
		Message: fmt.Sprintf("request body must not be larger than %d bytes", limit),
	}
}

// NotFoundError creates a 404 APIError
func NotFoundError() APIError {
	return APIError{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Message: "not found",
	}
}

// MethodNotAllowedError creates a 405 APIError
func MethodNotAllowedError(method string) APIError {
	return APIError{
		Kind:    KindMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
		Message: fmt.Sprintf("method %s not allowed", method),
	}
}

// StorageAPIError converts an error returned by the store package into an
// APIError. Connection state errors become 503, anything else 500.
func StorageAPIError(err error) APIError {
	if errors.Is(err, store.ErrNotReady) || errors.Is(err, store.ErrConnectionUnavailable) {
		return APIError{
			Kind:    KindStorageUnavailable,
			Status:  http.StatusServiceUnavailable,
			Message: "storage unavailable",
		}
	}

	return APIError{
		Kind:    KindStorageError,
		Status:  http.StatusInternalServerError,
		Message: "failed to store record",
	}
}
