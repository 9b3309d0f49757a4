package usecase

import (
	"context"
	"time"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/metrics"
)

const metricsDomain = "cards"

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for card generation.
func (c *cardUseCaseWithMetrics) Generate(
	ctx context.Context,
	input *cardDomain.GenerateInput,
) ([]cardDomain.Card, error) {
	start := time.Now()
	cards, err := c.next.Generate(ctx, input)
	c.record(ctx, "generate", start, err)

	perNetwork := make(map[string]int)
	for _, card := range cards {
		perNetwork[card.Network]++
	}
	for network, n := range perNetwork {
		c.metrics.RecordGenerated(ctx, network, n)
	}

	return cards, err
}

// Validate records metrics for Luhn validation. An invalid number is still a successful call.
func (c *cardUseCaseWithMetrics) Validate(
	ctx context.Context,
	number string,
) (*cardDomain.ValidationResult, error) {
	start := time.Now()
	result, err := c.next.Validate(ctx, number)
	c.record(ctx, "validate", start, err)
	return result, err
}

// ListNetworks is not instrumented.
func (c *cardUseCaseWithMetrics) ListNetworks(ctx context.Context) ([]cardDomain.NetworkRule, error) {
	return c.next.ListNetworks(ctx)
}

// Save records metrics for artifact storage.
func (c *cardUseCaseWithMetrics) Save(ctx context.Context, cards []cardDomain.Card) (string, error) {
	start := time.Now()
	name, err := c.next.Save(ctx, cards)
	c.record(ctx, "save", start, err)
	return name, err
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
