package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Environment errors
	ErrConfigDirNotFound ErrorCode = "CONFIG_DIR_NOT_FOUND"
	ErrHomeNotFound      ErrorCode = "HOME_NOT_FOUND"

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigFormat   ErrorCode = "CONFIG_FORMAT"

	// Dotfiles errors
	ErrDotfilesDirMissing ErrorCode = "DOTFILES_DIR_MISSING"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// BombadilError represents a structured error with code and details
type BombadilError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BombadilError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BombadilError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BombadilError) Is(target error) bool {
	var targetErr *BombadilError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BombadilError with the given code and message
func New(code ErrorCode, message string) *BombadilError {
	return &BombadilError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BombadilError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BombadilError {
	return &BombadilError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BombadilError
func Wrap(err error, code ErrorCode, message string) *BombadilError {
	if err == nil {
		return nil
	}
	return &BombadilError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BombadilError {
	if err == nil {
		return nil
	}
	return &BombadilError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BombadilError) WithDetail(key string, value interface{}) *BombadilError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bombadilErr *BombadilError
	if errors.As(err, &bombadilErr) {
		return bombadilErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BombadilError
func GetErrorCode(err error) ErrorCode {
	var bombadilErr *BombadilError
	if errors.As(err, &bombadilErr) {
		return bombadilErr.Code
	}
	return ErrUnknown
}
