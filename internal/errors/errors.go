// Package errors provides the API error taxonomy used across the service.
package errors

import (
	"fmt"
	"net/http"
)

// APIError represents a standardized API error with an HTTP status,
// a machine-readable code and a human-readable message.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Predefined API errors
var (
	ErrBadRequest        = &APIError{HTTPStatus: http.StatusBadRequest, Code: "BAD_REQUEST", Message: "Invalid request parameters"}
	ErrInvalidJSON       = &APIError{HTTPStatus: http.StatusBadRequest, Code: "INVALID_JSON", Message: "Invalid JSON format"}
	ErrValidation        = &APIError{HTTPStatus: http.StatusBadRequest, Code: "VALIDATION_FAILED", Message: "Request validation failed"}
	ErrLanguageDetection = &APIError{HTTPStatus: http.StatusBadRequest, Code: "LANGUAGE_DETECTION_FAILED", Message: "Language detection failed"}
	ErrUnsupportedPair   = &APIError{HTTPStatus: http.StatusBadRequest, Code: "UNSUPPORTED_PAIR", Message: "Language pair is not supported"}
	ErrUnauthorized      = &APIError{HTTPStatus: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: "Invalid or missing API key"}
	ErrTranslationFailed = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "TRANSLATION_FAILED", Message: "Translation engine failed"}
	ErrInternalServer    = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error"}
	ErrDatabase          = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "DATABASE_ERROR", Message: "Database operation failed"}
)

// NewAPIError creates a new APIError based on a predefined error, with a custom message.
func NewAPIError(base *APIError, message string) *APIError {
	return &APIError{
		HTTPStatus: base.HTTPStatus,
		Code:       base.Code,
		Message:    message,
	}
}

// NewValidationError creates a validation error with a custom message.
func NewValidationError(message string) *APIError {
	return NewAPIError(ErrValidation, message)
}

// NewDetectionError creates a language detection error with a custom message.
func NewDetectionError(message string) *APIError {
	return NewAPIError(ErrLanguageDetection, message)
}

// NewUnsupportedPairError creates an unsupported-pair error naming both codes.
func NewUnsupportedPairError(from, to string) *APIError {
	return NewAPIError(ErrUnsupportedPair, fmt.Sprintf("Translation from '%s' to '%s' is not supported", from, to))
}

// NewEngineError wraps a translation engine failure.
func NewEngineError(err error) *APIError {
	return NewAPIError(ErrTranslationFailed, fmt.Sprintf("Translation failed: %v", err))
}

// ParseAPIError extracts an *APIError from err, or wraps it as an internal error.
func ParseAPIError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(ErrInternalServer, err.Error())
}
