package beautify

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

// Error codes. All of them are recoverable at the session level: none
// terminates an editing session or changes its StyleState.
const (
	// ErrCodeInvalidFileType is a non-image upload.
	ErrCodeInvalidFileType Code = "INVALID_FILE_TYPE"

	// ErrCodeDecode means the source bitmap could not be decoded during export.
	ErrCodeDecode Code = "DECODE_ERROR"

	// ErrCodeEncode is an unsupported or failed serialization.
	ErrCodeEncode Code = "ENCODE_ERROR"

	// ErrCodeSink means a download or clipboard consumer rejected the buffer.
	ErrCodeSink Code = "SINK_ERROR"
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

// newError creates an Error with the given code and formatted message.
func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// wrapError creates an Error wrapping an existing error.
func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the error code from err, or "" if it has none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix, suitable for a
// notification. Errors that are not *Error are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
