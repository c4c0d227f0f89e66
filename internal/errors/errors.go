// Package errors defines custom error types for better error handling and debugging.
// CatalogError carries a type classification so handlers can pick the right panel.
package errors

import (
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// CatalogError represents errors raised while fetching or presenting catalog data
type CatalogError struct {
	Type    string
	Message string
	Status  int
	Cause   error
}

func (e *CatalogError) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeNetworkFailure       = "NETWORK_FAILURE"
	ErrorTypeHTTPStatus           = "HTTP_STATUS"
	ErrorTypeNotFound             = "NOT_FOUND"
	ErrorTypeDecodeFailed         = "DECODE_FAILED"
	ErrorTypePlaybackFailed       = "PLAYBACK_FAILED"
	ErrorTypeFullscreenFailed     = "FULLSCREEN_FAILED"
	ErrorTypeDownloadUnavailable  = "DOWNLOAD_UNAVAILABLE"
	ErrorTypeInvalidID            = "INVALID_ID"
)

// NewCatalogError creates a new CatalogError
func NewCatalogError(errorType, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeConfigurationInvalid, message, cause)
}

// NewNetworkError creates an error for a request that never got a response
func NewNetworkError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeNetworkFailure, message, cause)
}

// NewStatusError creates an error for a non-2xx response. 404 is classified as NOT_FOUND.
// Message stays the visitor-facing text; the status only shows up in Error().
func NewStatusError(message string, status int) *CatalogError {
	errorType := ErrorTypeHTTPStatus
	if status == http.StatusNotFound {
		errorType = ErrorTypeNotFound
	}
	return &CatalogError{
		Type:    errorType,
		Message: message,
		Status:  status,
	}
}

// NewDecodeError creates an error for an unreadable response body
func NewDecodeError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeDecodeFailed, message, cause)
}

// NewPlaybackError creates a playback start failure
func NewPlaybackError(cause error) *CatalogError {
	return NewCatalogError(ErrorTypePlaybackFailed, "Failed to play video. Please try again.", cause)
}

// NewFullscreenError creates a fullscreen request failure
func NewFullscreenError(cause error) *CatalogError {
	return NewCatalogError(ErrorTypeFullscreenFailed, "Failed to enter fullscreen. Please try again.", cause)
}

// NewDownloadUnavailableError is returned when an item has no download link
func NewDownloadUnavailableError() *CatalogError {
	return NewCatalogError(ErrorTypeDownloadUnavailable, "No download link available", nil)
}

// NewInvalidIDError creates an invalid ID error
func NewInvalidIDError(id string) *CatalogError {
	return NewCatalogError(ErrorTypeInvalidID, fmt.Sprintf("Invalid ID format: %s", id), nil)
}

// TypeOf returns the classification of err, or "" when err is not a CatalogError.
func TypeOf(err error) string {
	var ce *CatalogError
	if pkgerrors.As(err, &ce) {
		return ce.Type
	}
	return ""
}

// IsNotFound reports whether err (or anything it wraps) is a NOT_FOUND CatalogError.
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}
