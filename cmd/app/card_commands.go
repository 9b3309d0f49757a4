package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardgen/cmd/app/commands"
	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/app"
	"github.com/allisson/cardgen/internal/config"
)

// newContainer loads configuration, applying a non-empty outputDir override.
func newContainer(outputDir string) *app.Container {
	cfg := config.Load()
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	return app.NewContainer(cfg)
}

func runInteractive(ctx context.Context, selection, outputDir string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	container := newContainer(outputDir)
	defer func() { _ = container.Shutdown(context.Background()) }()

	cardUseCase, err := container.CardUseCase()
	if err != nil {
		return err
	}

	var mode cardDomain.SelectionMode
	if selection != "" {
		mode, err = cardDomain.ParseSelectionMode(selection)
		if err != nil {
			return err
		}
	}

	return commands.RunInteractive(ctx, cardUseCase, container.Logger(), mode, commands.DefaultIO())
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Directory or bucket URL for saved files (overrides OUTPUT_DIR)",
	}
}

func selectionFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "selection",
		Aliases: []string{"s"},
		Usage:   "Random network selection: 'fixed' (one network per run) or 'independent' (per card)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "interactive",
			Usage: "Prompt for a card type and count, then print and optionally save the numbers",
			Flags: []cli.Flag{
				selectionFlag(),
				outputFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runInteractive(ctx, cmd.String("selection"), cmd.String("output"))
			},
		},
		{
			Name:  "generate",
			Usage: "Generate card numbers without prompting",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "network",
					Aliases: []string{"n"},
					Usage:   "Card network (visa, mastercard, amex, discover); empty for random",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of cards to generate",
				},
				selectionFlag(),
				&cli.BoolFlag{
					Name:  "save",
					Usage: "Save the numbers to a timestamped file",
				},
				outputFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newContainer(cmd.String("output"))
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					cardUseCase,
					container.Logger(),
					commands.GenerateOptions{
						Network: cmd.String("network"),
						Count:   int(cmd.Int("count")),
						Mode:    cmd.String("selection"),
						Save:    cmd.Bool("save"),
						Format:  cmd.String("format"),
					},
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:      "validate",
			Usage:     "Check numbers against the Luhn checksum",
			ArgsUsage: "<number> [number...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "Exit with a non-zero status when any number is invalid",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newContainer("")
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					cardUseCase,
					cmd.Args().Slice(),
					cmd.String("format"),
					cmd.Bool("strict"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "networks",
			Usage: "List the supported card networks",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newContainer("")
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunListNetworks(ctx, cardUseCase, cmd.String("format"), commands.DefaultIO())
			},
		},
	}
}
