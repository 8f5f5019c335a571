package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation     = fmt.Errorf("validation failed")
	ErrModelNotFound  = fmt.Errorf("model not found")
	ErrTransport      = fmt.Errorf("external call failed")
	ErrInvalidPayload = fmt.Errorf("invalid payload")
	ErrInvalidToken   = fmt.Errorf("invalid verification token")
	ErrEmptyBlocklist = fmt.Errorf("no blocklist words have been found")
	ErrUnknownFunc    = fmt.Errorf("unknown function")
)

// ValidationError is returned before any external call when a required input is missing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError means the configured model does not exist for the given key.
type NotFoundError struct {
	Model string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gemini model not found. Model: %s. "+
		"Make sure your API key is valid and the model name is correct.", e.Model)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrModelNotFound
}

// TransportError wraps a failure of a mail, identity or model provider.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Kind returns a short label for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrModelNotFound):
		return "not_found"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "internal"
	}
}

// FromProvider classifies an error returned by an external provider.
// Errors already carrying a kind are returned untouched.
func FromProvider(err error, service, model string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation), errors.Is(err, ErrModelNotFound), errors.Is(err, ErrTransport):
		return err
	case strings.Contains(err.Error(), "NOT_FOUND"):
		return &NotFoundError{Model: model}
	default:
		return &TransportError{Service: service, Err: err}
	}
}
