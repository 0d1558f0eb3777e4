// FILE: utility.go
package ringlog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the package-level logger contract.
var (
	// ErrNotInitialized is returned by the package-level functions before Init
	ErrNotInitialized = errors.New("ringlog: logger not initialized")
	// ErrAlreadyInitialized is returned by Init after a successful Init
	ErrAlreadyInitialized = errors.New("ringlog: logger already initialized")
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "ringlog: ") {
		format = "ringlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}
