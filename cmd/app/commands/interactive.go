package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/export"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
	apperrors "github.com/allisson/cardgen/internal/errors"
)

// RunInteractive runs the prompt-driven session: choose a network, choose a
// count, print the results and optionally save them.
//
// Invalid input prints "Error: ..." and ends the session normally. An
// interrupt prints the cancellation notice. Anything else is reported and
// returned so the process exits non-zero.
func RunInteractive(
	ctx context.Context,
	cardUseCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	mode cardDomain.SelectionMode,
	io IOTuple,
) error {
	err := runInteractiveSession(ctx, cardUseCase, logger, mode, io)
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, apperrors.ErrCanceled):
		_, _ = fmt.Fprintln(io.Writer, "\nOperation cancelled by user.")
		return nil
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		_, _ = fmt.Fprintf(io.Writer, "Error: %s\n", userMessage(err))
		return nil
	default:
		_, _ = fmt.Fprintf(io.Writer, "An unexpected error occurred: %v\n", err)
		return err
	}
}

func runInteractiveSession(
	ctx context.Context,
	cardUseCase cardUseCase.CardUseCase,
	logger *slog.Logger,
	mode cardDomain.SelectionMode,
	io IOTuple,
) error {
	networks, err := cardUseCase.ListNetworks(ctx)
	if err != nil {
		return err
	}
	rules, err := cardDomain.NewRules(networks...)
	if err != nil {
		return err
	}

	printBanner(io, rules)
	prompt := newPrompter(io)

	network, err := prompt.ask(ctx, "\nEnter card type (blank for random): ")
	if err != nil {
		return err
	}
	if network != "" {
		if _, err := rules.Resolve(network); err != nil {
			return err
		}
	}

	countInput, err := prompt.ask(ctx, "How many cards to generate? (default 1): ")
	if err != nil {
		return err
	}

	cards, err := cardUseCase.Generate(ctx, &cardDomain.GenerateInput{
		Network:   network,
		Count:     parseCount(countInput),
		Mode:      mode,
		Unbounded: true,
	})
	if err != nil {
		return err
	}
	logger.Debug("cards generated", slog.Int("count", len(cards)))

	if err := export.WriteResults(io.Writer, cards); err != nil {
		return err
	}

	answer, err := prompt.ask(ctx, "\nSave to file? (y/N): ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		return nil
	}

	key, err := cardUseCase.Save(ctx, cards)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(io.Writer, "Results saved to %s\n", key)

	return nil
}

func printBanner(io IOTuple, rules *cardDomain.Rules) {
	names := rules.Names()
	for i, name := range names {
		names[i] = strings.ToUpper(name)
	}

	_, _ = fmt.Fprintln(io.Writer, "Credit Card Number Generator")
	_, _ = fmt.Fprintln(io.Writer, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(io.Writer, "Available card types: %s\n", strings.Join(names, ", "))
	_, _ = fmt.Fprintln(io.Writer, "Or leave blank for random card types")
}

// parseCount accepts only plain decimal digits and falls back to 1 otherwise,
// including for zero and signed input such as "+5".
func parseCount(input string) int {
	if input == "" || strings.ContainsFunc(input, func(r rune) bool { return r < '0' || r > '9' }) {
		return 1
	}
	count, err := strconv.Atoi(input)
	if err != nil || count < 1 {
		return 1
	}
	return count
}

// userMessage drops the generic "invalid input" suffix added by error wrapping.
func userMessage(err error) string {
	var unsupported *cardDomain.UnsupportedNetworkError
	if apperrors.As(err, &unsupported) {
		return unsupported.Error()
	}
	return strings.TrimSuffix(err.Error(), ": "+apperrors.ErrInvalidInput.Error())
}
