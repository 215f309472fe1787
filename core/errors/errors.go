// Package errors provides standardized error types and helpers for the
// preprocessing pipeline.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrUnsupportedLanguage indicates a (backend, language) pair with no
	// resource mapping.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrResourceUnavailable indicates a required model or resource could
	// not be obtained for an otherwise supported language.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrExternalTool indicates an external tool subprocess failed or
	// produced no usable output.
	ErrExternalTool = errors.New("external tool failure")
	// ErrUnknownBackend indicates a backend selector value with no
	// registered backend.
	ErrUnknownBackend = errors.New("unknown tokenizer backend")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// UnsupportedLanguageError reports that a tokenizer backend has no
// resource mapping for the requested language.
type UnsupportedLanguageError struct {
	Backend  string // Backend name (e.g., "punkt", "stanza")
	Language string // Requested language code
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("tokenization in %s not available for language %s", e.Backend, e.Language)
}

func (e *UnsupportedLanguageError) Unwrap() error {
	return ErrUnsupportedLanguage
}

// ResourceUnavailableError reports that a required model could not be
// obtained. Hint tells the user how to obtain it.
type ResourceUnavailableError struct {
	Backend  string // Backend name
	Language string // Language the resource was needed for
	Resource string // Resource that could not be obtained
	Hint     string // Remediation hint, if any
	Err      error  // Underlying error, if any
}

func (e *ResourceUnavailableError) Error() string {
	msg := fmt.Sprintf("%s model for language %s not available", e.Backend, e.Language)
	if e.Resource != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Resource)
	}
	if e.Hint != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Hint)
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause, so
// errors.Is matches ErrResourceUnavailable even when a cause is
// attached.
func (e *ResourceUnavailableError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrResourceUnavailable, e.Err}
	}
	return []error{ErrResourceUnavailable}
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "XML")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidInput, e.Err}
	}
	return []error{ErrInvalidInput}
}

// NewUnsupportedLanguage creates an UnsupportedLanguageError.
func NewUnsupportedLanguage(backend, language string) *UnsupportedLanguageError {
	return &UnsupportedLanguageError{
		Backend:  backend,
		Language: language,
	}
}

// NewResourceUnavailable creates a ResourceUnavailableError.
func NewResourceUnavailable(backend, language, resource, hint string) *ResourceUnavailableError {
	return &ResourceUnavailableError{
		Backend:  backend,
		Language: language,
		Resource: resource,
		Hint:     hint,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
