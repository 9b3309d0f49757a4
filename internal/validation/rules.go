// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardgen/internal/errors"
)

var (
	// cardNumberRegex accepts digits optionally grouped by spaces or dashes
	cardNumberRegex = regexp.MustCompile(`^[0-9][0-9 \-]*$`)

	// networkNameRegex accepts a single lowercase or uppercase word
	networkNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_\-]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// CardNumber validates that a string holds only digits grouped by spaces or dashes.
var CardNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		return cardNumberRegex.MatchString(strings.TrimSpace(s))
	},
	validation.NewError("validation_card_number", "must contain only digits, spaces or dashes"),
)

// NetworkName validates the shape of a network name.
var NetworkName = validation.NewStringRuleWithError(
	func(s string) bool {
		return networkNameRegex.MatchString(s)
	},
	validation.NewError("validation_network_name", "must be a single word such as visa"),
)
