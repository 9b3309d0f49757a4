// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"errors"

	validation "github.com/jellydator/validation"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

// GenerateCardsRequest contains the parameters for generating card numbers.
type GenerateCardsRequest struct {
	Network       string `json:"network,omitempty"`        // empty picks a random network
	Count         *int   `json:"count,omitempty"`          // defaults to 1
	SelectionMode string `json:"selection_mode,omitempty"` // "fixed" or "independent"
}

// Validate checks if the generate request is valid.
func (r *GenerateCardsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Network,
			customValidation.NoWhitespace,
			customValidation.NetworkName,
		),
		validation.Field(&r.Count,
			validation.By(validateCount),
		),
		validation.Field(&r.SelectionMode,
			validation.By(validateSelectionMode),
		),
	)
}

// ToInput converts the request into a use case input, applying defaults.
func (r *GenerateCardsRequest) ToInput() *cardDomain.GenerateInput {
	count := 1
	if r.Count != nil {
		count = *r.Count
	}

	var mode cardDomain.SelectionMode
	if r.SelectionMode != "" {
		// already checked by Validate
		mode, _ = cardDomain.ParseSelectionMode(r.SelectionMode)
	}

	return &cardDomain.GenerateInput{
		Network: r.Network,
		Count:   count,
		Mode:    mode,
	}
}

// ValidateCardRequest contains the number to check.
type ValidateCardRequest struct {
	Number string `json:"number"`
}

// Validate checks if the validate request is valid.
func (r *ValidateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number,
			validation.Required,
			customValidation.NotBlank,
			customValidation.CardNumber,
			validation.Length(1, 64),
		),
	)
}

// validateCount is explicit because threshold rules skip zero values.
func validateCount(value interface{}) error {
	count, _ := value.(*int)
	if count != nil && *count < 1 {
		return errors.New("must be no less than 1")
	}
	return nil
}

func validateSelectionMode(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if s == "" {
		return nil
	}
	if _, err := cardDomain.ParseSelectionMode(s); err != nil {
		return errors.New("must be one of: fixed, independent")
	}
	return nil
}
