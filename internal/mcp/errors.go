// Package mcp exposes DeepSearch over the Model Context Protocol so AI
// clients can run people searches as tools.
package mcp

import (
	"errors"
	"fmt"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
)

// Custom MCP error codes for DeepSearch.
const (
	// ErrCodeQuotaExceeded indicates the daily free search quota is spent.
	ErrCodeQuotaExceeded = -32001

	// ErrCodeProviderUnavailable indicates every search backend failed.
	ErrCodeProviderUnavailable = -32002

	// Standard JSON-RPC error codes.
	ErrCodeInvalidParams = -32602
	ErrCodeInternalError = -32603
)

// MCPError is an MCP protocol error with code and message.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// NewInvalidParamsError creates an invalid-parameters error.
func NewInvalidParamsError(message string) *MCPError {
	return &MCPError{Code: ErrCodeInvalidParams, Message: message}
}

// MapError converts internal errors to MCP protocol errors.
func MapError(err error) *MCPError {
	if err == nil {
		return nil
	}

	var dsErr *dserrors.DSError
	if errors.As(err, &dsErr) {
		switch dsErr.Code {
		case dserrors.ErrCodeQuotaExceeded:
			return &MCPError{Code: ErrCodeQuotaExceeded, Message: dsErr.Message}
		case dserrors.ErrCodeQueryEmpty, dserrors.ErrCodeInvalidInput, dserrors.ErrCodeNoIntent:
			return &MCPError{Code: ErrCodeInvalidParams, Message: dsErr.Message}
		}
		if dsErr.Category == dserrors.CategoryProvider {
			return &MCPError{Code: ErrCodeProviderUnavailable, Message: dsErr.Message}
		}
		return &MCPError{Code: ErrCodeInternalError, Message: dsErr.Message}
	}

	return &MCPError{Code: ErrCodeInternalError, Message: err.Error()}
}
