package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForCLI(t *testing.T) {
	err := New(ErrCodeQuotaExceeded, "daily free search limit of 1 reached", nil).
		WithSuggestion("Your quota resets at midnight.")

	got := FormatForCLI(err)
	assert.Contains(t, got, "Error: daily free search limit of 1 reached")
	assert.Contains(t, got, "→ Your quota resets at midnight.")
	assert.Contains(t, got, "[ERR_503_QUOTA_EXCEEDED]")
}

func TestFormatForCLI_ForeignError(t *testing.T) {
	got := FormatForCLI(errors.New("boom"))
	assert.Contains(t, got, "Error: boom")
	assert.Contains(t, got, "[ERR_501_INTERNAL]")
}

func TestFormatForCLI_Nil(t *testing.T) {
	assert.Empty(t, FormatForCLI(nil))
}

func TestFormatForUser(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NetworkError("serpapi", cause).
		WithSuggestion("Check your network connection.")

	plain := FormatForUser(err, false)
	assert.Contains(t, plain, "Error: provider unreachable")
	assert.Contains(t, plain, "Suggestion: Check your network connection.")
	assert.Contains(t, plain, "[ERR_301_NETWORK]")
	assert.NotContains(t, plain, "connection refused", "cause is debug-only")

	debug := FormatForUser(err, true)
	assert.Contains(t, debug, "Cause: dial tcp: connection refused")
	assert.Contains(t, debug, "provider: serpapi")
}

func TestFormatForUser_ForeignAndNil(t *testing.T) {
	assert.Equal(t, "boom", FormatForUser(errors.New("boom"), false))
	assert.Empty(t, FormatForUser(nil, true))
}

func TestFormatForLog(t *testing.T) {
	err := ProviderError("serper", 429, "quota exhausted")

	args := FormatForLog(err)
	require.GreaterOrEqual(t, len(args), 10)

	pairs := map[string]any{}
	for i := 0; i+1 < len(args); i += 2 {
		pairs[args[i].(string)] = args[i+1]
	}
	assert.Equal(t, "quota exhausted", pairs["error"])
	assert.Equal(t, ErrCodeRateLimited, pairs["code"])
	assert.Equal(t, "PROVIDER", pairs["category"])
	assert.Equal(t, true, pairs["retryable"])
	assert.Equal(t, "serper", pairs["provider"])
}

func TestFormatForLog_ForeignAndNil(t *testing.T) {
	assert.Equal(t, []any{"error", "boom"}, FormatForLog(errors.New("boom")))
	assert.Nil(t, FormatForLog(nil))
}
