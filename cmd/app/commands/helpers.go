// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat accepts the two supported output formats.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

// prompter reads answers line by line and gives up when ctx is done.
type prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func newPrompter(io IOTuple) *prompter {
	return &prompter{
		reader: bufio.NewReader(io.Reader),
		writer: io.Writer,
	}
}

type lineResult struct {
	line string
	err  error
}

// ask prints question and returns the trimmed answer. Interrupts and EOF on
// an empty line surface as ErrInterruptedInput.
func (p *prompter) ask(ctx context.Context, question string) (string, error) {
	_, _ = fmt.Fprint(p.writer, question)

	result := make(chan lineResult, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		result <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", cardDomain.ErrInterruptedInput
	case r := <-result:
		if r.err != nil {
			if r.err == io.EOF && r.line != "" {
				return strings.TrimSpace(r.line), nil
			}
			if r.err == io.EOF {
				return "", cardDomain.ErrInterruptedInput
			}
			return "", fmt.Errorf("failed to read input: %w", r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}
