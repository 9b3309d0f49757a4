package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
)

type networkOutput struct {
	Name     string   `json:"name"`
	Prefixes []string `json:"prefixes"`
	Lengths  []int    `json:"lengths"`
}

// RunListNetworks prints the supported network rules in table order.
func RunListNetworks(ctx context.Context, cardUseCase cardUseCase.CardUseCase, format string, io IOTuple) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	rules, err := cardUseCase.ListNetworks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}

	if format == "json" {
		output := make([]networkOutput, 0, len(rules))
		for _, rule := range rules {
			output = append(output, networkOutput{
				Name:     rule.Name,
				Prefixes: rule.Prefixes,
				Lengths:  rule.Lengths,
			})
		}
		return writeJSON(io.Writer, output)
	}

	tw := tabwriter.NewWriter(io.Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tPREFIXES\tLENGTHS")
	for _, rule := range rules {
		lengths := make([]string, len(rule.Lengths))
		for i, l := range rule.Lengths {
			lengths[i] = strconv.Itoa(l)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n",
			rule.Name,
			strings.Join(rule.Prefixes, ", "),
			strings.Join(lengths, ", "),
		)
	}
	return tw.Flush()
}
