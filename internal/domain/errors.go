package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the trip search flow. Wrap with %w so callers can use
// errors.Is across layers.
var (
	// ErrInvalidRequest indicates malformed input (bad date key, unknown
	// enum value, out-of-range parameter).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrValidationFailed indicates the search configuration violated one or
	// more submission rules. The wrapped FieldErrors carry the details.
	ErrValidationFailed = errors.New("validation failed")

	// ErrDispatchFailed indicates the external flight-search API rejected or
	// failed the request.
	ErrDispatchFailed = errors.New("flight search dispatch failed")

	// ErrDirectoryUnavailable indicates the remote location directory could
	// not be reached. Callers recover with the static fallback list.
	ErrDirectoryUnavailable = errors.New("location directory unavailable")

	// ErrLegBounds indicates an attempt to grow a multi-city itinerary past
	// its ceiling or shrink it below its floor.
	ErrLegBounds = errors.New("leg count out of bounds")

	// ErrStaleResponse indicates a lookup response arrived after a newer
	// keyword superseded it; the result must be discarded.
	ErrStaleResponse = errors.New("stale lookup response")
)

// WrapInvalidRequest wraps ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsValidationFailed reports whether err is or wraps ErrValidationFailed.
func IsValidationFailed(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// IsDispatchFailed reports whether err is or wraps ErrDispatchFailed.
func IsDispatchFailed(err error) bool {
	return errors.Is(err, ErrDispatchFailed)
}

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors accumulates field-level validation messages. It satisfies
// errors.Is(err, ErrValidationFailed).
type FieldErrors struct {
	Errors []FieldError `json:"errors"`
}

// Add appends a field-level message.
func (v *FieldErrors) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any message was accumulated.
func (v *FieldErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface.
func (v *FieldErrors) Error() string {
	if len(v.Errors) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is treat any FieldErrors as ErrValidationFailed.
func (v *FieldErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// ToMap converts the messages to a field-to-message map for API responses.
// Later messages for the same field win.
func (v *FieldErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// DispatchError carries the server-provided message from a failed dispatch
// so the UI can show it in the error banner.
type DispatchError struct {
	// StatusCode is the HTTP status the external API answered with, 0 for
	// transport failures.
	StatusCode int

	// Message is the server-provided message, empty when none was given.
	Message string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("flight search dispatch failed: %s", e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("flight search dispatch failed: %v", e.Err)
	}
	return ErrDispatchFailed.Error()
}

// Unwrap returns the underlying cause.
func (e *DispatchError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrDispatchFailed
}

// Is lets errors.Is treat any DispatchError as ErrDispatchFailed.
func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatchFailed
}

// NewDispatchError builds a DispatchError from a status code, optional
// server message, and cause.
func NewDispatchError(statusCode int, message string, err error) *DispatchError {
	return &DispatchError{StatusCode: statusCode, Message: message, Err: err}
}
