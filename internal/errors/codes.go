// Package errors provides structured error handling for DeepSearch.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Storage errors
//   - 3XX: Provider/network errors
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category groups errors by the subsystem that produced them.
type Category string

const (
	CategoryConfig     Category = "CONFIG"
	CategoryStorage    Category = "STORAGE"
	CategoryProvider   Category = "PROVIDER"
	CategoryValidation Category = "VALIDATION"
	CategoryInternal   Category = "INTERNAL"
)

// Severity orders errors by impact. Fatal aborts the command, Error fails
// the operation, Warning degrades it.
type Severity string

const (
	SeverityFatal   Severity = "FATAL"
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Storage errors (200-299)
	ErrCodeStoreOpen    = "ERR_201_STORE_OPEN"
	ErrCodeStoreCorrupt = "ERR_202_STORE_CORRUPT"
	ErrCodeStoreWrite   = "ERR_203_STORE_WRITE"

	// Provider errors (300-399)
	ErrCodeNetwork          = "ERR_301_NETWORK"
	ErrCodeAuthFailure      = "ERR_302_AUTH_FAILURE"
	ErrCodeRateLimited      = "ERR_303_RATE_LIMITED"
	ErrCodeMalformedRequest = "ERR_304_MALFORMED_REQUEST"
	ErrCodeProviderResponse = "ERR_305_PROVIDER_RESPONSE"

	// Validation errors (400-499)
	ErrCodeInvalidInput = "ERR_401_INVALID_INPUT"
	ErrCodeNoIntent     = "ERR_402_NO_INTENT"
	ErrCodeQueryEmpty   = "ERR_403_QUERY_EMPTY"

	// Internal errors (500-599)
	ErrCodeInternal        = "ERR_501_INTERNAL"
	ErrCodeSynthesisFailed = "ERR_502_SYNTHESIS_FAILED"
	ErrCodeQuotaExceeded   = "ERR_503_QUOTA_EXCEEDED"
)

// categoryFromCode maps a code's leading digit to its category.
// "ERR_301_NETWORK" carries its digit at index 4.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryStorage
	case '3':
		return CategoryProvider
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode derives severity from error code.
// Provider errors are warnings: the fallback chain absorbs them.
func severityFromCode(code string) Severity {
	switch categoryFromCode(code) {
	case CategoryConfig:
		return SeverityFatal
	case CategoryProvider:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// isRetryableCode reports whether an operation failing with this code
// may succeed on a later attempt (against a different provider).
// Auth and malformed-request failures are permanent for the same request.
func isRetryableCode(code string) bool {
	switch code {
	case ErrCodeNetwork, ErrCodeRateLimited, ErrCodeProviderResponse:
		return true
	default:
		return false
	}
}
