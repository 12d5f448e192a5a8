package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryProtocol Category = "protocol"
	CategorySource   Category = "source"
	CategoryRuntime  Category = "runtime"
)

// TabsError is a structured error with a code, explanation and fix hint.
type TabsError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TabsError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TabsError) Unwrap() error {
	return e.Wrapped
}

// Is matches another *TabsError with the same code.
func (e *TabsError) Is(target error) bool {
	t, ok := target.(*TabsError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *TabsError) WithDetail(d string) *TabsError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail to the error.
func (e *TabsError) WithDetailf(format string, args ...any) *TabsError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TabsError) WithSuggestion(s string) *TabsError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *TabsError) Wrap(err error) *TabsError {
	e.Wrapped = err
	return e
}

// New creates a TabsError from a registered error code.
func New(code string) *TabsError {
	template, ok := registry[code]
	if !ok {
		return &TabsError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TabsError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates a new TabsError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TabsError {
	return &TabsError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TabsError.
func FromError(err error, code string) *TabsError {
	if err == nil {
		return nil
	}
	var te *TabsError
	if stderrors.As(err, &te) {
		return te
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err or any error it wraps carries the code.
func HasCode(err error, code string) bool {
	return stderrors.Is(err, &TabsError{Code: code})
}
