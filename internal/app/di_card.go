package app

import (
	"context"
	"fmt"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/export"
	cardHTTP "github.com/allisson/cardgen/internal/card/http"
	"github.com/allisson/cardgen/internal/card/service"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// Synthesizer returns the shared card number synthesizer over the built-in rule table.
func (c *Container) Synthesizer() *service.Synthesizer {
	c.synthesizerInit.Do(func() {
		c.synthesizer = service.NewDefaultSynthesizer(cardDomain.DefaultRules())
	})
	return c.synthesizer
}

// ArtifactStore returns the store for saved card listings, opened on OUTPUT_DIR.
func (c *Container) ArtifactStore() (*export.Store, error) {
	var err error
	c.artifactStoreInit.Do(func() {
		c.artifactStore, err = c.initArtifactStore()
		if err != nil {
			c.initErrors["artifactStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["artifactStore"]; exists {
		return nil, storedErr
	}
	return c.artifactStore, nil
}

// CardUseCase returns the card use case, decorated with metrics when enabled.
func (c *Container) CardUseCase() (cardUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.initErrors["cardUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the card HTTP handler.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.initErrors["cardHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardHandler"]; exists {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

func (c *Container) initArtifactStore() (*export.Store, error) {
	store, err := export.OpenStore(context.Background(), c.config.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact store: %w", err)
	}
	return store, nil
}

// initCardUseCase creates the card use case with all its dependencies.
// The artifact store is opened lazily by the use case's first Save.
func (c *Container) initCardUseCase() (cardUseCase.CardUseCase, error) {
	defaultMode, err := cardDomain.ParseSelectionMode(c.config.DefaultSelectionMode)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_SELECTION_MODE %q: %w", c.config.DefaultSelectionMode, err)
	}

	baseUseCase := cardUseCase.NewCardUseCase(
		c.Synthesizer(),
		&lazyArtifactStore{container: c},
		c.config.MaxGenerateCount,
		defaultMode,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
		}
		return cardUseCase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initCardHandler() (*cardHTTP.CardHandler, error) {
	useCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}
	return cardHTTP.NewCardHandler(useCase, c.Logger()), nil
}

// lazyArtifactStore defers opening OUTPUT_DIR until something is actually saved.
type lazyArtifactStore struct {
	container *Container
}

func (s *lazyArtifactStore) Save(ctx context.Context, cards []cardDomain.Card) (string, error) {
	store, err := s.container.ArtifactStore()
	if err != nil {
		return "", err
	}
	return store.Save(ctx, cards)
}
