// Package errors provides structured error types for the dcm2bmp application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the conversion pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each code names the conversion stage that produced the failure. Stages that
// degrade gracefully (windowing, overlay) still report their errors through
// the diagnostic sink tagged with these codes, they just never abort a file.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDecode, "not a DICOM file: %s", path)
//	if errors.Is(err, errors.ErrCodeDecode) {
//	    // Exclude the file from the batch
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEncode, origErr, "write %s", outPath)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, one per conversion stage plus input validation.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Decode collaborator errors
	ErrCodeDecode        Code = "DECODE_FAILED"
	ErrCodePixelsMissing Code = "PIXELS_MISSING"

	// Transform stage errors (reported, then degraded)
	ErrCodeWindowing Code = "WINDOWING_FAILED"

	// Metadata and overlay errors (reported, then degraded)
	ErrCodeMetadata Code = "METADATA_FAILED"
	ErrCodeOverlay  Code = "OVERLAY_FAILED"

	// Persistence errors
	ErrCodeEncode Code = "ENCODE_FAILED"

	// Whole-file conversion failure (single-file path)
	ErrCodeConversion Code = "CONVERSION_FAILED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
