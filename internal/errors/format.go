package errors

import (
	"fmt"
	"strings"
)

// FormatForUser returns a user-friendly error message.
// If debug is true, includes additional technical details.
func FormatForUser(err error, debug bool) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*DSError)
	if !ok {
		return err.Error()
	}

	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n[%s]", e.Code))

	if debug {
		if e.Cause != nil {
			sb.WriteString(fmt.Sprintf("\nCause: %v", e.Cause))
		}
		for k, v := range e.Details {
			sb.WriteString(fmt.Sprintf("\n%s: %s", k, v))
		}
	}

	return sb.String()
}

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	e, ok := err.(*DSError)
	if !ok {
		e = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Message))

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  → %s\n", e.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("  [%s]", e.Code))

	return sb.String()
}

// FormatForLog returns structured key-value pairs for slog.
// The slice alternates keys and values, ready to pass as slog args.
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	e, ok := err.(*DSError)
	if !ok {
		return []any{"error", err.Error()}
	}

	args := []any{
		"error", e.Message,
		"code", e.Code,
		"category", string(e.Category),
		"severity", string(e.Severity),
		"retryable", e.Retryable,
	}
	if e.Cause != nil {
		args = append(args, "cause", e.Cause.Error())
	}
	for k, v := range e.Details {
		args = append(args, k, v)
	}
	return args
}
