package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TokenError reports an unrecognised design token. Style lookups never fail on
// one; the error carries the fallback that was used so callers can warn.
type TokenError struct {
	Kind       string
	Value      string
	Fallback   string
	Suggestion string
}

// NewTokenError constructs a TokenError.
func NewTokenError(kind, value, fallback, suggestion string) error {
	return &TokenError{Kind: kind, Value: value, Fallback: fallback, Suggestion: suggestion}
}

func (e *TokenError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("unknown %s %q, using %q", e.Kind, e.Value, e.Fallback)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// ActionError wraps a failure raised by a control's action after it was
// released by an asynchronous confirmation.
type ActionError struct {
	Control string
	Err     error
}

// NewActionError constructs an ActionError.
func NewActionError(control string, err error) error {
	return &ActionError{Control: control, Err: err}
}

func (e *ActionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Control != "" {
		return fmt.Sprintf("action error on control %s: %v", e.Control, e.Err)
	}
	return fmt.Sprintf("action error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ActionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
