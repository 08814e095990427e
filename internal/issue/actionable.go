// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors that carry remediation context.
package issue

import (
	"strings"
)

type (
	// ActionableError is an error with context for user-facing messages:
	// what operation failed, what resource was involved, and suggestions for
	// fixing the problem.
	//
	// Use the ErrorContext builder for construction:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("detect workspace root").
	//		WithResource(dir).
	//		WithSuggestion("Run rustlab from the workspace root").
	//		Wrap(originalErr).
	//		BuildError()
	ActionableError struct {
		// Operation describes what was being attempted (e.g. "create module").
		Operation string
		// Resource identifies the file, path, or entity involved (optional).
		Resource string
		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string
		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext is a fluent builder for ActionableError.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewErrorContext creates a new builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WithOperation sets the attempted operation, as a verb phrase.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the resource involved.
func (c *ErrorContext) WithResource(resource string) *ErrorContext {
	c.resource = resource
	return c
}

// WithSuggestion appends a remediation hint. May be called multiple times.
func (c *ErrorContext) WithSuggestion(s string) *ErrorContext {
	c.suggestions = append(c.suggestions, s)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// BuildError materializes the ActionableError as an error value.
func (c *ErrorContext) BuildError() error {
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// Error implements the error interface with a concise one-line message:
//
//	failed to <operation>: <resource>: <cause>
func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error for terminal display. Suggestions are listed as
// bullet points below the message.
func (e *ActionableError) Format() string {
	var msg strings.Builder
	msg.WriteString(e.Error())
	for _, s := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(s)
	}
	return msg.String()
}
