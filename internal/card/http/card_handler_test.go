package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/http/dto"
	"github.com/allisson/cardgen/internal/card/usecase/mocks"
	apperrors "github.com/allisson/cardgen/internal/errors"
	"github.com/allisson/cardgen/internal/httputil"
)

func setupTestCardHandler(t *testing.T) (*CardHandler, *mocks.MockCardUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockCardUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCardHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		bodyReader = strings.NewReader(b)
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestCardHandler_GenerateHandler(t *testing.T) {
	t.Run("Success_DefaultCount", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		cards := []cardDomain.Card{
			{Network: "VISA", Number: "4111 1111 1111 1111", Digits: "4111111111111111"},
		}

		mockUseCase.On("Generate", mock.Anything, &cardDomain.GenerateInput{
			Network: "visa",
			Count:   1,
		}).Return(cards, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/generate", `{"network":"visa"}`)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.GenerateCardsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "VISA", response.Data[0].Network)
		assert.Equal(t, "4111111111111111", response.Data[0].Digits)
	})

	t.Run("Success_RandomIndependent", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		mockUseCase.On("Generate", mock.Anything, &cardDomain.GenerateInput{
			Count: 2,
			Mode:  cardDomain.SelectionIndependentPerItem,
		}).Return([]cardDomain.Card{
			{Network: "AMEX", Number: "3400 0000 0000 009", Digits: "340000000000009"},
			{Network: "VISA", Number: "4111 1111 1111 1111", Digits: "4111111111111111"},
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/generate",
			`{"count":2,"selection_mode":"independent"}`)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		handler, _ := setupTestCardHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/cards/generate", `{"count":`)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_ZeroCount", func(t *testing.T) {
		handler, _ := setupTestCardHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/cards/generate", `{"count":0}`)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response.Error)
	})

	t.Run("Error_UnsupportedNetwork", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		unsupported := &cardDomain.UnsupportedNetworkError{
			Name:      "unknownnet",
			Supported: []string{"visa", "mastercard", "amex", "discover"},
		}
		mockUseCase.On("Generate", mock.Anything, mock.Anything).Return(nil, unsupported).Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/generate", `{"network":"unknownnet"}`)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_input", response.Error)
		assert.Contains(t, response.Message, "visa, mastercard, amex, discover")
	})

	t.Run("Error_Internal", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		mockUseCase.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/generate", `{}`)

		handler.GenerateHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCardHandler_ValidateHandler(t *testing.T) {
	t.Run("Success_Valid", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		mockUseCase.On("Validate", mock.Anything, "4111 1111 1111 1111").Return(&cardDomain.ValidationResult{
			Number: "4111 1111 1111 1111",
			Digits: "4111111111111111",
			Valid:  true,
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate",
			dto.ValidateCardRequest{Number: "4111 1111 1111 1111"})

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ValidateCardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "4111111111111111", response.Digits)
	})

	t.Run("Success_Invalid", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		mockUseCase.On("Validate", mock.Anything, "4111111111111112").Return(&cardDomain.ValidationResult{
			Number: "4111111111111112",
			Digits: "4111111111111112",
			Valid:  false,
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate",
			dto.ValidateCardRequest{Number: "4111111111111112"})

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"number":"4111111111111112","digits":"4111111111111112","valid":false}`,
			w.Body.String(),
		)
	})

	t.Run("Error_MissingNumber", func(t *testing.T) {
		handler, _ := setupTestCardHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate", `{}`)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_Canceled", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		mockUseCase.On("Validate", mock.Anything, "4111").
			Return(nil, apperrors.Wrap(apperrors.ErrCanceled, "context canceled")).Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate", `{"number":"4111"}`)

		handler.ValidateHandler(c)

		assert.Equal(t, 499, w.Code)
	})
}

func TestCardHandler_ListNetworksHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		mockUseCase.On("ListNetworks", mock.Anything).Return(cardDomain.DefaultRules().All(), nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/networks", nil)

		handler.ListNetworksHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListNetworksResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		names := make([]string, 0, len(response.Data))
		for _, n := range response.Data {
			names = append(names, n.Name)
		}
		assert.Equal(t, []string{"visa", "mastercard", "amex", "discover"}, names)
	})

	t.Run("Error", func(t *testing.T) {
		handler, mockUseCase := setupTestCardHandler(t)

		mockUseCase.On("ListNetworks", mock.Anything).Return(nil, errors.New("boom")).Once()

		c, w := createTestContext(http.MethodGet, "/v1/networks", nil)

		handler.ListNetworksHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
