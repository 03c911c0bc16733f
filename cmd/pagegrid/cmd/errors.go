package cmd

import (
	"errors"
	"fmt"
)

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Got  int
	Want int
}

// Error returns the usage line.
func (e *UsageError) Error() string {
	return usageLine
}

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// FormatError formats err for stderr. Usage errors print the bare usage
// line; everything else gets the "pagegrid: " prefix.
func FormatError(err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return usageErr.Error() + "\n"
	}
	return fmt.Sprintf("pagegrid: %s\n", err.Error())
}
