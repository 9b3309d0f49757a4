// Package domain defines the card-network rule table and the generated card model.
// Rules are immutable after construction and safe to share between goroutines.
package domain

import (
	"strings"
)

// SelectionMode controls how the network is chosen when no network is requested.
type SelectionMode string

const (
	// SelectionFixedPerCall draws a random network once and reuses it for every
	// remaining item of the same Generate call.
	SelectionFixedPerCall SelectionMode = "fixed"

	// SelectionIndependentPerItem draws a fresh random network for each item.
	SelectionIndependentPerItem SelectionMode = "independent"
)

// Validate checks if the selection mode is supported.
func (m SelectionMode) Validate() error {
	switch m {
	case SelectionFixedPerCall, SelectionIndependentPerItem:
		return nil
	default:
		return ErrInvalidSelectionMode
	}
}

// String returns the string representation of the selection mode.
func (m SelectionMode) String() string {
	return string(m)
}

// ParseSelectionMode converts a user supplied string into a SelectionMode.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseSelectionMode(value string) (SelectionMode, error) {
	mode := SelectionMode(strings.ToLower(strings.TrimSpace(value)))
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

// Built-in network names.
const (
	NetworkVisa       = "visa"
	NetworkMastercard = "mastercard"
	NetworkAmex       = "amex"
	NetworkDiscover   = "discover"
)

// MaxCardLength bounds the total number of digits a rule may allow.
const MaxCardLength = 19
