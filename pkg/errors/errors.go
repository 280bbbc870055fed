package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// NewValidationErrorCollector creates a new validation error collector.
func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{errors: make([]*ValidationError, 0)}
}

// Add adds a validation error and returns the collector for chaining.
func (c *ValidationErrorCollector) Add(err *ValidationError) *ValidationErrorCollector {
	c.errors = append(c.errors, err)
	return c
}

// HasError returns true if the collector holds any error.
func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

// Errors returns the collected errors.
func (c *ValidationErrorCollector) Errors() []*ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	var msgs []string
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, ", ")
}

// NewPermissionError creates a new permission error.
func NewPermissionError(code int, field string, messages ...string) *PermissionError {
	return &PermissionError{Code: code, Field: field, Messages: messages}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode ...int) *HTTPError {
	status := http.StatusBadRequest
	if len(statusCode) > 0 && statusCode[0] != 0 {
		status = statusCode[0]
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: StatusUnauthorized,
	}
}

// NewForbiddenHTTPError returns a 403 Forbidden error.
func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{
		Code:       StatusForbidden,
		Message:    MessageForbidden,
		StatusCode: StatusForbidden,
	}
}

// NewNotFoundHTTPError returns a 404 Not Found error with the given message.
func NewNotFoundHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageNotFound
	}
	return &HTTPError{
		Code:       StatusNotFound,
		Message:    message,
		StatusCode: StatusNotFound,
	}
}

// NewConflictHTTPError returns a 409 Conflict error with the given message.
func NewConflictHTTPError(message string) *HTTPError {
	return &HTTPError{
		Code:       StatusConflict,
		Message:    message,
		StatusCode: StatusConflict,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
