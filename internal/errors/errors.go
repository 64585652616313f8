// Package errors provides a structured error type hierarchy for past.
//
// This package defines base error types for common error conditions, wrapped
// error types that add contextual information, and helper functions for error
// wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNoHistory - no usable history could be found or read
//   - ErrUnsupportedShell - shell has no known history format
//   - ErrInvalid - validation failed
//   - ErrIO - file I/O error
//   - ErrCanceled - user canceled operation
//
// Wrapped error types (add context):
//   - HistoryError{Op, Err, Path} - history source errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrNoHistory
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "readHistory")
//
//	// Use structured error types
//	return &errors.HistoryError{Op: "read", Err: errors.ErrIO, Path: path}
//
//	// Check error types
//	if errors.IsCanceled(err) {
//	    // handle cancellation
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNoHistory indicates no usable shell history could be found or read.
	ErrNoHistory = baseError("no history found")

	// ErrUnsupportedShell indicates the shell has no known history format.
	ErrUnsupportedShell = baseError("unsupported shell")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// HistoryError represents an error that occurred while acquiring history.
type HistoryError struct {
	// Op is the operation being performed (e.g., "read", "detect", "live").
	Op string
	// Err is the underlying error.
	Err error
	// Path is the history file path involved (optional).
	Path string
}

func (e *HistoryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("history %s %q: %s", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("history %s: %s", e.Op, e.Err)
}

func (e *HistoryError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNoHistory reports whether err is or wraps ErrNoHistory.
func IsNoHistory(err error) bool {
	return errors.Is(err, ErrNoHistory)
}

// IsUnsupportedShell reports whether err is or wraps ErrUnsupportedShell.
func IsUnsupportedShell(err error) bool {
	return errors.Is(err, ErrUnsupportedShell)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// AsHistoryError reports whether err can be typed as a *HistoryError.
func AsHistoryError(err error) (*HistoryError, bool) {
	var he *HistoryError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
