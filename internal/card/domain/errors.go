package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/cardgen/internal/errors"
)

var (
	// ErrUnsupportedNetwork indicates the requested network is not in the rule table.
	ErrUnsupportedNetwork = errors.Wrap(errors.ErrInvalidInput, "unsupported card type")

	// ErrInvalidCount indicates the requested number of cards is not positive.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "count must be a positive integer")

	// ErrCountTooLarge indicates the requested number of cards exceeds the configured maximum.
	ErrCountTooLarge = errors.Wrap(errors.ErrInvalidInput, "count exceeds maximum")

	// ErrInvalidSelectionMode indicates an unknown network selection mode.
	ErrInvalidSelectionMode = errors.Wrap(
		errors.ErrInvalidInput,
		"invalid selection mode: must be 'fixed' or 'independent'",
	)

	// ErrInvalidDigits indicates a checksum was requested over non-digit characters.
	ErrInvalidDigits = errors.Wrap(errors.ErrInvalidInput, "value must contain only digits")

	// ErrInvalidRule indicates a network rule that cannot produce valid numbers.
	ErrInvalidRule = errors.Wrap(errors.ErrInvalidInput, "invalid network rule")

	// ErrInterruptedInput indicates the user aborted an interactive prompt.
	ErrInterruptedInput = errors.Wrap(errors.ErrCanceled, "operation cancelled by user")
)

// CountTooLargeError reports a request above the configured maximum.
type CountTooLargeError struct {
	Count int
	Max   int
}

func (e *CountTooLargeError) Error() string {
	return fmt.Sprintf("count %d exceeds maximum of %d", e.Count, e.Max)
}

// Unwrap exposes ErrCountTooLarge.
func (e *CountTooLargeError) Unwrap() error {
	return ErrCountTooLarge
}

// UnsupportedNetworkError carries the rejected name and the supported alternatives.
type UnsupportedNetworkError struct {
	Name      string
	Supported []string
}

// Error renders the message shown to users, listing the supported networks.
func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("Unsupported card type %q. Available: %s", e.Name, strings.Join(e.Supported, ", "))
}

// Unwrap exposes ErrUnsupportedNetwork so callers can match with errors.Is.
func (e *UnsupportedNetworkError) Unwrap() error {
	return ErrUnsupportedNetwork
}
