package commands

import (
	"context"
	"fmt"
	"log/slog"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/export"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	Network string
	Count   int
	Mode    string
	Save    bool
	Format  string
}

type generatedCard struct {
	Network string `json:"network"`
	Number  string `json:"number"`
	Digits  string `json:"digits"`
}

type generateOutput struct {
	Cards   []generatedCard `json:"cards"`
	SavedTo string          `json:"saved_to,omitempty"`
}

// RunGenerate generates cards without prompting and prints them in text or
// JSON format, optionally saving the artifact.
func RunGenerate(
	ctx context.Context,
	cardUseCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	opts GenerateOptions,
	io IOTuple,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	var mode cardDomain.SelectionMode
	if opts.Mode != "" {
		parsed, err := cardDomain.ParseSelectionMode(opts.Mode)
		if err != nil {
			return err
		}
		mode = parsed
	}

	cards, err := cardUseCase.Generate(ctx, &cardDomain.GenerateInput{
		Network: opts.Network,
		Count:   opts.Count,
		Mode:    mode,
	})
	if err != nil {
		return fmt.Errorf("failed to generate cards: %w", err)
	}

	var savedTo string
	if opts.Save {
		savedTo, err = cardUseCase.Save(ctx, cards)
		if err != nil {
			return fmt.Errorf("failed to save cards: %w", err)
		}
	}

	logger.Info("cards generated",
		slog.Int("count", len(cards)),
		slog.String("network", opts.Network),
		slog.String("saved_to", savedTo),
	)

	if opts.Format == "json" {
		output := generateOutput{
			Cards:   make([]generatedCard, 0, len(cards)),
			SavedTo: savedTo,
		}
		for _, card := range cards {
			output.Cards = append(output.Cards, generatedCard{
				Network: card.Network,
				Number:  card.Number,
				Digits:  card.Digits,
			})
		}
		return writeJSON(io.Writer, output)
	}

	if err := export.WriteResults(io.Writer, cards); err != nil {
		return err
	}
	if savedTo != "" {
		_, _ = fmt.Fprintf(io.Writer, "Results saved to %s\n", savedTo)
	}
	return nil
}
