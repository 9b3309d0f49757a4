// Package export renders generated cards for humans and stores the plain-text artifact.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

const (
	resultsTitle  = "Generated Credit Card Numbers"
	disclaimerOne = "Note: These numbers are generated for testing and educational purposes only."
	disclaimerTwo = "They are not real credit card numbers and cannot be used for actual transactions."

	// artifactTimeLayout renders as YYYYMMDD_HHMMSS.
	artifactTimeLayout = "20060102_150405"
)

// FileName returns the artifact name for a save performed at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("credit_cards_%s.txt", t.Format(artifactTimeLayout))
}

// WriteResults prints the terminal results block.
func WriteResults(w io.Writer, cards []cardDomain.Card) error {
	var b strings.Builder

	b.WriteString("\n" + resultsTitle + ":\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	writeLines(&b, cards)
	writeDisclaimer(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteArtifact writes the content of the saved text file.
func WriteArtifact(w io.Writer, cards []cardDomain.Card) error {
	var b strings.Builder

	b.WriteString(resultsTitle + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	writeLines(&b, cards)
	writeDisclaimer(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLines(b *strings.Builder, cards []cardDomain.Card) {
	for i, card := range cards {
		fmt.Fprintf(b, "%d. %s: %s\n", i+1, card.Network, card.Number)
	}
}

func writeDisclaimer(b *strings.Builder) {
	b.WriteString("\n" + disclaimerOne + "\n")
	b.WriteString(disclaimerTwo + "\n")
}
