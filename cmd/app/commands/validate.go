package commands

import (
	"context"
	"fmt"

	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
	apperrors "github.com/allisson/cardgen/internal/errors"
)

type validateOutput struct {
	Number string `json:"number"`
	Digits string `json:"digits"`
	Valid  bool   `json:"valid"`
}

// RunValidate checks each number against the Luhn checksum. With strict set,
// any invalid number makes the command fail.
func RunValidate(
	ctx context.Context,
	cardUseCase cardUseCase.CardUseCase,
	numbers []string,
	format string,
	strict bool,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(numbers) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "at least one number is required")
	}

	results := make([]validateOutput, 0, len(numbers))
	invalid := 0
	for _, number := range numbers {
		result, err := cardUseCase.Validate(ctx, number)
		if err != nil {
			return fmt.Errorf("failed to validate %q: %w", number, err)
		}
		if !result.Valid {
			invalid++
		}
		results = append(results, validateOutput{
			Number: result.Number,
			Digits: result.Digits,
			Valid:  result.Valid,
		})
	}

	if format == "json" {
		if err := writeJSON(io.Writer, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			status := "VALID"
			if !r.Valid {
				status = "INVALID"
			}
			_, _ = fmt.Fprintf(io.Writer, "%s: %s\n", r.Number, status)
		}
	}

	if strict && invalid > 0 {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "%d of %d numbers failed the Luhn check", invalid, len(numbers))
	}
	return nil
}
