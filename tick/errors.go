package tick

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports missing or invalid credentials, either at
// construction time (Fields lists every violated field) or when an operation
// is invoked on a client that holds no usable configuration (Reason).
type ConfigurationError struct {
	Reason string
	Fields []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Fields) > 0 {
		return "invalid configuration: " + strings.Join(e.Fields, "; ")
	}
	return e.Reason
}

func errNoConfiguration() *ConfigurationError {
	return &ConfigurationError{
		Reason: "no active configuration; configuration must be established before this call",
	}
}

// ValidationError reports caller input that fails a required-field or
// cross-field rule before any network call is made.
type ValidationError struct {
	Op       string
	Problems []string
}

func (e *ValidationError) Error() string {
	return e.Op + ": " + strings.Join(e.Problems, "; ")
}

// ForbiddenError maps a remote 403 to the privilege the operation requires.
type ForbiddenError struct {
	Op      string
	Message string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// ConflictError maps a remote 406 on a constrained delete to the specific
// constraint the remote enforced.
type ConflictError struct {
	Op      string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// RequestError covers every other non-success status.
type RequestError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed with status %d %s", e.Op, e.StatusCode, e.Status)
}

// ResponseValidationError reports a success response whose body does not match
// the operation's declared shape. Err holds the decode error when the body was
// structurally unreadable; Problems lists per-field diagnostics otherwise.
type ResponseValidationError struct {
	Op       string
	Problems []string
	Err      error
}

func (e *ResponseValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: response validation failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: response validation failed: %s", e.Op, strings.Join(e.Problems, "; "))
}

func (e *ResponseValidationError) Unwrap() error { return e.Err }

// IsForbidden reports whether err is a ForbiddenError.
func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// StatusCode returns the HTTP status carried by err, or 0 when err does not
// wrap a RequestError.
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}
