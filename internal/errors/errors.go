package errors

import (
	"fmt"
	"io/fs"
)

// ErrorCode represents a ttymood error code.
type ErrorCode string

const (
	ErrSourceUnreadable ErrorCode = "SOURCE_UNREADABLE" // history file missing or unreadable
	ErrSchemaMismatch   ErrorCode = "SCHEMA_MISMATCH"   // signature document version unsupported
	ErrNotFound         ErrorCode = "NOT_FOUND"         // no signature document present
	ErrWriteFailed      ErrorCode = "WRITE_FAILED"      // temp-file write or rename failure
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // bad parameters from caller
	ErrInternal         ErrorCode = "INTERNAL"          // unexpected internal failure
)

// MoodError represents a structured error with code, message, and details.
type MoodError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *MoodError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *MoodError) Unwrap() error {
	return e.Err
}

// NewSourceUnreadable creates an error for an unreadable history source.
// Fatal to generation, reported to the user, never retried.
func NewSourceUnreadable(path string, err error) *MoodError {
	return &MoodError{
		Code:    ErrSourceUnreadable,
		Message: fmt.Sprintf("cannot read history source: %s", path),
		Details: map[string]any{"path": path},
		Err:     err,
	}
}

// NewSchemaMismatch creates an error for an unsupported signature schema.
// Callers must fall back to neutral mode rather than crash.
func NewSchemaMismatch(got, want string) *MoodError {
	return &MoodError{
		Code:    ErrSchemaMismatch,
		Message: fmt.Sprintf("signature schema %q is not supported (want %s)", got, want),
		Details: map[string]any{"got": got, "want": want},
	}
}

// NewNotFound creates an error for a missing signature document.
// Renderers treat this as "operate in neutral mode", never as fatal.
// Wraps fs.ErrNotExist so stdlib errors.Is works too.
func NewNotFound(path string) *MoodError {
	return &MoodError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("no mood signature at %s", path),
		Details: map[string]any{"path": path},
		Err:     fs.ErrNotExist,
	}
}

// NewWriteFailed creates an error for a failed signature write.
// The previous signature file, if any, is left intact.
func NewWriteFailed(path string, err error) *MoodError {
	return &MoodError{
		Code:    ErrWriteFailed,
		Message: fmt.Sprintf("failed to write mood signature: %s", path),
		Details: map[string]any{"path": path},
		Err:     err,
	}
}

// NewInvalidRequest creates an error for invalid caller parameters.
func NewInvalidRequest(msg string) *MoodError {
	return &MoodError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *MoodError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &MoodError{
		Code:    ErrInternal,
		Message: msg,
		Err:     err,
	}
}

// Is checks if an error is a MoodError with the given code.
func Is(err error, code ErrorCode) bool {
	if mErr, ok := err.(*MoodError); ok {
		return mErr.Code == code
	}
	return false
}
