package errors

import (
	"errors"
	"fmt"
)

// DSError is the structured error type for DeepSearch. Category, severity,
// and retryability derive from the code; Suggestion, when set, is shown to
// the user alongside the message.
type DSError struct {
	Code       string
	Message    string
	Category   Category
	Severity   Severity
	Details    map[string]string
	Cause      error
	Retryable  bool
	Suggestion string
}

func (e *DSError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *DSError) Unwrap() error {
	return e.Cause
}

// Is matches two DSErrors by code, so errors.Is works against sentinel
// instances regardless of message.
func (e *DSError) Is(target error) bool {
	t, ok := target.(*DSError)
	return ok && e.Code == t.Code
}

// WithDetail attaches a key-value detail and returns e for chaining.
func (e *DSError) WithDetail(key, value string) *DSError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion attaches user-facing advice and returns e for chaining.
func (e *DSError) WithSuggestion(suggestion string) *DSError {
	e.Suggestion = suggestion
	return e
}

// New creates a DSError; category, severity, and the retryable flag are
// derived from the code.
func New(code string, message string, cause error) *DSError {
	return &DSError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Severity:  severityFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap lifts err into a DSError under the given code. Nil in, nil out.
func Wrap(code string, err error) *DSError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ProviderError creates a provider transport error classified by HTTP status.
// 429 and 402 classify as rate-limit, 401 as auth failure, 400 as a
// malformed request; anything else is a generic provider response error.
func ProviderError(provider string, status int, message string) *DSError {
	var code string
	switch status {
	case 429, 402:
		code = ErrCodeRateLimited
	case 401:
		code = ErrCodeAuthFailure
	case 400:
		code = ErrCodeMalformedRequest
	default:
		code = ErrCodeProviderResponse
	}
	return New(code, message, nil).WithDetail("provider", provider)
}

// NetworkError creates a transport-level error (timeout, DNS, refused).
func NetworkError(provider string, cause error) *DSError {
	return New(ErrCodeNetwork, "provider unreachable", cause).
		WithDetail("provider", provider)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *DSError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// StorageError creates a persisted-state error.
func StorageError(message string, cause error) *DSError {
	return New(ErrCodeStoreWrite, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *DSError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *DSError {
	return New(ErrCodeInternal, message, cause)
}

// IsProvider reports whether err is a provider transport error of any kind.
// The provider chain absorbs exactly these; anything else is a bug.
func IsProvider(err error) bool {
	var e *DSError
	if errors.As(err, &e) {
		return e.Category == CategoryProvider
	}
	return false
}

// IsRateLimited reports whether err is a rate-limit or quota response
// from a provider.
func IsRateLimited(err error) bool {
	var e *DSError
	return errors.As(err, &e) && e.Code == ErrCodeRateLimited
}

// IsAuthFailure reports whether err is a provider auth failure.
func IsAuthFailure(err error) bool {
	var e *DSError
	return errors.As(err, &e) && e.Code == ErrCodeAuthFailure
}

// IsRetryable reports whether a later attempt at the failed operation can
// succeed.
func IsRetryable(err error) bool {
	var e *DSError
	return errors.As(err, &e) && e.Retryable
}

// Code returns err's code, ErrCodeInternal for foreign errors, and ""
// for nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var e *DSError
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
