package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation          Code = "VALIDATION_ERROR"
	CodeNotFound            Code = "NOT_FOUND"
	CodeStorage             Code = "STORAGE_ERROR"
	CodeGeofenceRejected    Code = "GEOFENCE_REJECTED"
	CodeLocationDenied      Code = "LOCATION_DENIED"
	CodeLocationUnavailable Code = "LOCATION_UNAVAILABLE"
	CodeLocationTimeout     Code = "LOCATION_TIMEOUT"
	CodeImport              Code = "IMPORT_ERROR"
	CodeAssistant           Code = "ASSISTANT_UNAVAILABLE"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeInternal            Code = "INTERNAL_ERROR"
)

// Error is the typed failure that propagates from repositories and services
// up to the HTTP surface. Storage and import errors wrap their cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	// DistanceMeters is set only on geofence rejections so the caller can
	// show how far away the user was.
	DistanceMeters float64 `json:"distanceMeters,omitempty"`
	Cause          error   `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// Storage marks a device storage failure (I/O error, quota exceeded).
// Callers must surface it rather than retry silently.
func Storage(cause error) *Error {
	return Wrap(CodeStorage, "device storage unavailable", cause)
}

// Geofence is a business-rule refusal, not a fault: the user is outside the
// allowed radius and the computed distance travels with the error.
func Geofence(distanceMeters, allowedMeters float64) *Error {
	return &Error{
		Code: CodeGeofenceRejected,
		Message: fmt.Sprintf("you are %.0fm away from the store (allowed: %.0fm)",
			distanceMeters, allowedMeters),
		DistanceMeters: distanceMeters,
	}
}

// CodeOf extracts the error code, defaulting to CodeInternal for untyped errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to the status the handler layer should respond with.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation, CodeImport:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeGeofenceRejected:
		return http.StatusUnprocessableEntity
	case CodeLocationDenied:
		return http.StatusForbidden
	case CodeLocationTimeout:
		return http.StatusGatewayTimeout
	case CodeLocationUnavailable, CodeAssistant:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
