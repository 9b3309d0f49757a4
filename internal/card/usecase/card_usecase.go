package usecase

import (
	"context"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/service"
	apperrors "github.com/allisson/cardgen/internal/errors"
)

type cardUseCase struct {
	generator   Generator
	store       ArtifactStore
	maxCount    int
	defaultMode cardDomain.SelectionMode
}

// NewCardUseCase creates a CardUseCase. A maxCount of zero or less disables the
// upper bound, as does GenerateInput.Unbounded. store may be nil, in which case
// Save reports ErrUnavailable.
func NewCardUseCase(
	generator Generator,
	store ArtifactStore,
	maxCount int,
	defaultMode cardDomain.SelectionMode,
) CardUseCase {
	return &cardUseCase{
		generator:   generator,
		store:       store,
		maxCount:    maxCount,
		defaultMode: defaultMode,
	}
}

// Generate checks the request limits and delegates to the generator.
func (c *cardUseCase) Generate(
	ctx context.Context,
	input *cardDomain.GenerateInput,
) ([]cardDomain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCanceled, err.Error())
	}

	// network, mode and positive-count checks belong to the generator
	if !input.Unbounded && c.maxCount > 0 && input.Count > c.maxCount {
		return nil, &cardDomain.CountTooLargeError{Count: input.Count, Max: c.maxCount}
	}

	mode := input.Mode
	if mode == "" {
		mode = c.defaultMode
	}

	return c.generator.Generate(input.Network, input.Count, mode)
}

// Validate never fails for well-formed contexts; invalid numbers yield Valid=false.
func (c *cardUseCase) Validate(ctx context.Context, number string) (*cardDomain.ValidationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCanceled, err.Error())
	}

	return &cardDomain.ValidationResult{
		Number: number,
		Digits: service.Digits(number),
		Valid:  service.Validate(number),
	}, nil
}

// ListNetworks returns the generator's rule table.
func (c *cardUseCase) ListNetworks(ctx context.Context) ([]cardDomain.NetworkRule, error) {
	return c.generator.Rules().All(), nil
}

// Save requires a configured store and at least one card.
func (c *cardUseCase) Save(ctx context.Context, cards []cardDomain.Card) (string, error) {
	if c.store == nil {
		return "", apperrors.Wrap(apperrors.ErrUnavailable, "artifact storage is not configured")
	}
	if len(cards) == 0 {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "no cards to save")
	}

	return c.store.Save(ctx, cards)
}
