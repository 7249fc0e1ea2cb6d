package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Prefixes written before a fatal error message.
const (
	PrefixConfig  = "Problem parsing arguments"
	PrefixRuntime = "Application error"
)

// FormatForCLI formats a fatal error as a single line for the error stream.
// Configuration errors get PrefixConfig; everything else PrefixRuntime.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	prefix := PrefixRuntime
	if IsConfig(err) {
		prefix = PrefixConfig
	}
	return fmt.Sprintf("%s: %s", prefix, err.Error())
}

// FormatVerbose formats an error with its suggestion, details and code,
// one item per line. The first line is FormatForCLI.
// Used when debug output is requested.
func FormatVerbose(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if !stderrors.As(err, &e) {
		return FormatForCLI(err) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(FormatForCLI(err))
	sb.WriteString("\n")

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", e.Suggestion))
	}

	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
	}

	sb.WriteString(fmt.Sprintf("  Code: %s\n", e.Code))

	return sb.String()
}

// FormatForLog formats an error for structured logging.
// Returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) map[string]any {
	if err == nil {
		return nil
	}

	var e *Error
	if !stderrors.As(err, &e) {
		return map[string]any{
			"error": err.Error(),
		}
	}

	result := map[string]any{
		"error_code": e.Code,
		"kind":       e.Kind.String(),
		"message":    e.Message,
		"category":   string(e.Category),
	}

	if e.Cause != nil {
		result["cause"] = e.Cause.Error()
	}

	if e.Suggestion != "" {
		result["suggestion"] = e.Suggestion
	}

	for k, v := range e.Details {
		result["detail_"+k] = v
	}

	return result
}

// LogArgs flattens FormatForLog into alternating key/value arguments
// for slog, in a stable order.
func LogArgs(err error) []any {
	fields := FormatForLog(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
