// Package errors provides a lightweight structured error type (PluginError)
// for category-based classification and batched diagnostics in the redirect
// collection engine and CLI.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCategory represents the category of a plugin error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Route-set and path errors
	CategoryRoutes ErrorCategory = "routes"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops the build
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// PluginError is a structured error with category, context, and an optional
// list of batched detail lines (one per offending entry).
type PluginError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Details  []string      `json:"details,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for PluginError
type ContextFields map[string]any

// Error implements the error interface
func (e *PluginError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s", e.Category, e.Severity, e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	for _, d := range e.Details {
		b.WriteString("\n  - ")
		b.WriteString(d)
	}
	return b.String()
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *PluginError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *PluginError) WithContext(key string, value any) *PluginError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// WithDetail appends one batched diagnostic line.
func (e *PluginError) WithDetail(format string, args ...any) *PluginError {
	e.Details = append(e.Details, fmt.Sprintf(format, args...))
	return e
}

// New creates a new PluginError
func New(category ErrorCategory, severity ErrorSeverity, message string) *PluginError {
	return &PluginError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new PluginError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *PluginError {
	return &PluginError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if pe, ok := err.(*PluginError); ok {
		return pe.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a PluginError
func GetCategory(err error) ErrorCategory {
	if pe, ok := err.(*PluginError); ok {
		return pe.Category
	}
	return CategoryInternal
}
