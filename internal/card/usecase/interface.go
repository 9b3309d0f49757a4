// Package usecase coordinates card generation, validation and artifact storage.
package usecase

import (
	"context"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// Generator produces Luhn-valid cards from a rule table.
type Generator interface {
	Generate(network string, count int, mode cardDomain.SelectionMode) ([]cardDomain.Card, error)
	Rules() *cardDomain.Rules
}

// ArtifactStore persists a rendered batch of cards and returns the artifact name.
type ArtifactStore interface {
	Save(ctx context.Context, cards []cardDomain.Card) (string, error)
}

// CardUseCase defines the card operations exposed to the CLI and the HTTP API.
type CardUseCase interface {
	// Generate produces input.Count cards. Either every card is produced or an
	// error is returned before any is.
	Generate(ctx context.Context, input *cardDomain.GenerateInput) ([]cardDomain.Card, error)

	// Validate checks number against the Luhn rule, ignoring non-digit characters.
	Validate(ctx context.Context, number string) (*cardDomain.ValidationResult, error)

	// ListNetworks returns the supported network rules in table order.
	ListNetworks(ctx context.Context) ([]cardDomain.NetworkRule, error)

	// Save stores the plain-text artifact for cards and returns its name.
	Save(ctx context.Context, cards []cardDomain.Card) (string, error)
}
