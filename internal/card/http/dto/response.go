package dto

import (
	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// CardResponse represents a generated card in API responses.
type CardResponse struct {
	Network string `json:"network"`
	Number  string `json:"number"`
	Digits  string `json:"digits"`
}

// GenerateCardsResponse wraps the generated cards.
type GenerateCardsResponse struct {
	Data []CardResponse `json:"data"`
}

// MapCardsToGenerateResponse converts generated cards to an API response.
func MapCardsToGenerateResponse(cards []cardDomain.Card) GenerateCardsResponse {
	data := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		data = append(data, CardResponse{
			Network: card.Network,
			Number:  card.Number,
			Digits:  card.Digits,
		})
	}
	return GenerateCardsResponse{Data: data}
}

// ValidateCardResponse represents the result of a Luhn check.
type ValidateCardResponse struct {
	Number string `json:"number"`
	Digits string `json:"digits"`
	Valid  bool   `json:"valid"`
}

// MapValidationResultToResponse converts a validation result to an API response.
func MapValidationResultToResponse(result *cardDomain.ValidationResult) ValidateCardResponse {
	return ValidateCardResponse{
		Number: result.Number,
		Digits: result.Digits,
		Valid:  result.Valid,
	}
}

// NetworkResponse represents one network rule in API responses.
type NetworkResponse struct {
	Name     string   `json:"name"`
	Prefixes []string `json:"prefixes"`
	Lengths  []int    `json:"lengths"`
}

// ListNetworksResponse wraps the rule table.
type ListNetworksResponse struct {
	Data []NetworkResponse `json:"data"`
}

// MapNetworksToListResponse converts the rule table to an API response.
func MapNetworksToListResponse(rules []cardDomain.NetworkRule) ListNetworksResponse {
	data := make([]NetworkResponse, 0, len(rules))
	for _, rule := range rules {
		data = append(data, NetworkResponse{
			Name:     rule.Name,
			Prefixes: rule.Prefixes,
			Lengths:  rule.Lengths,
		})
	}
	return ListNetworksResponse{Data: data}
}
