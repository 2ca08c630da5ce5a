package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategoryAndSeverity(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantCategory Category
		wantSeverity Severity
	}{
		{"config code", ErrCodeConfigInvalid, CategoryConfig, SeverityFatal},
		{"storage code", ErrCodeStoreWrite, CategoryStorage, SeverityError},
		{"provider code", ErrCodeRateLimited, CategoryProvider, SeverityWarning},
		{"validation code", ErrCodeNoIntent, CategoryValidation, SeverityError},
		{"internal code", ErrCodeInternal, CategoryInternal, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
			assert.Equal(t, tt.wantSeverity, err.Severity)
		})
	}
}

func TestDSError_ErrorFormat(t *testing.T) {
	err := New(ErrCodeNetwork, "connection refused", nil)
	assert.Equal(t, "[ERR_301_NETWORK] connection refused", err.Error())
}

func TestDSError_IsMatchesByCode(t *testing.T) {
	err := New(ErrCodeRateLimited, "too many requests", nil)
	assert.True(t, errors.Is(err, New(ErrCodeRateLimited, "other message", nil)))
	assert.False(t, errors.Is(err, New(ErrCodeAuthFailure, "other message", nil)))
}

func TestDSError_UnwrapChain(t *testing.T) {
	cause := fmt.Errorf("dial tcp: i/o timeout")
	err := Wrap(ErrCodeNetwork, cause)
	require.NotNil(t, err)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeNetwork, nil))
}

func TestProviderError_StatusClassification(t *testing.T) {
	tests := []struct {
		status   int
		wantCode string
	}{
		{429, ErrCodeRateLimited},
		{402, ErrCodeRateLimited},
		{401, ErrCodeAuthFailure},
		{400, ErrCodeMalformedRequest},
		{500, ErrCodeProviderResponse},
		{503, ErrCodeProviderResponse},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			err := ProviderError("serpapi", tt.status, "upstream error")
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, "serpapi", err.Details["provider"])
			assert.True(t, IsProvider(err))
		})
	}
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(ProviderError("serper", 429, "slow down")))
	assert.False(t, IsRateLimited(ProviderError("serper", 401, "bad key")))
	assert.False(t, IsRateLimited(errors.New("plain")))
	assert.False(t, IsRateLimited(nil))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NetworkError("serpapi", errors.New("timeout"))))
	assert.True(t, IsRetryable(New(ErrCodeRateLimited, "429", nil)))
	assert.False(t, IsRetryable(New(ErrCodeAuthFailure, "401", nil)))
	assert.False(t, IsRetryable(New(ErrCodeMalformedRequest, "400", nil)))
}

func TestIsProvider_WrappedError(t *testing.T) {
	inner := NetworkError("serpapi", errors.New("refused"))
	wrapped := fmt.Errorf("search failed: %w", inner)
	assert.True(t, IsProvider(wrapped))
}

func TestWithDetailAndSuggestion(t *testing.T) {
	err := New(ErrCodeQuotaExceeded, "daily limit reached", nil).
		WithDetail("limit", "1").
		WithSuggestion("upgrade to premium for unlimited searches")

	assert.Equal(t, "1", err.Details["limit"])
	assert.Contains(t, err.Suggestion, "premium")
}

func TestCode(t *testing.T) {
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, ErrCodeNoIntent, Code(New(ErrCodeNoIntent, "no query", nil)))
	assert.Equal(t, ErrCodeInternal, Code(errors.New("plain")))
}
