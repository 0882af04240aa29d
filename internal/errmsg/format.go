// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	OpConfigLoad  Op = "load configuration"
	OpDatasetLoad Op = "load albums"
	OpLogOpen     Op = "open debug log"
	OpRun         Op = "run the interface"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context, such as the
// data source that failed to load.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s from '%s': %v", op, context, err)
}
