package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/usecase/mocks"
	apperrors "github.com/allisson/cardgen/internal/errors"
)

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		mockUseCase.On("Generate", ctx, &cardDomain.GenerateInput{Network: "visa", Count: 2}).
			Return(visaCards, nil).Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, discardLogger(), GenerateOptions{
			Network: "visa",
			Count:   2,
			Format:  "text",
		}, IOTuple{Writer: &out})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "\nGenerated Credit Card Numbers:\n")
		assert.Contains(t, out.String(), "2. VISA: 4012 8888 8888 1881\n")
	})

	t.Run("json-with-save", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		mockUseCase.On("Generate", ctx, &cardDomain.GenerateInput{
			Count: 2,
			Mode:  cardDomain.SelectionIndependentPerItem,
		}).Return(visaCards, nil).Once()
		mockUseCase.On("Save", ctx, visaCards).Return("credit_cards_20261019_000000.txt", nil).Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, mockUseCase, discardLogger(), GenerateOptions{
			Count:  2,
			Mode:   "Independent",
			Save:   true,
			Format: "json",
		}, IOTuple{Writer: &out})

		require.NoError(t, err)

		var result generateOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Len(t, result.Cards, 2)
		assert.Equal(t, "4111111111111111", result.Cards[0].Digits)
		assert.Equal(t, "credit_cards_20261019_000000.txt", result.SavedTo)
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)

		err := RunGenerate(ctx, mockUseCase, discardLogger(), GenerateOptions{Count: 1, Format: "xml"},
			IOTuple{Writer: &bytes.Buffer{}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("invalid-selection", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)

		err := RunGenerate(ctx, mockUseCase, discardLogger(), GenerateOptions{Count: 1, Mode: "random", Format: "text"},
			IOTuple{Writer: &bytes.Buffer{}})

		assert.ErrorIs(t, err, cardDomain.ErrInvalidSelectionMode)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := mocks.NewMockCardUseCase(t)
		mockUseCase.On("Generate", ctx, &cardDomain.GenerateInput{Count: 0}).
			Return(nil, cardDomain.ErrInvalidCount).Once()

		err := RunGenerate(ctx, mockUseCase, discardLogger(), GenerateOptions{Count: 0, Format: "text"},
			IOTuple{Writer: &bytes.Buffer{}})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
