// Package http provides HTTP handlers for card generation and validation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardgen/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
	"github.com/allisson/cardgen/internal/httputil"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

// CardHandler handles HTTP requests for card operations.
type CardHandler struct {
	cardUseCase cardUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase cardUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// GenerateHandler produces Luhn-valid card numbers.
// POST /v1/cards/generate
// Returns 201 Created with the generated cards.
func (h *CardHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateCardsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	cards, err := h.cardUseCase.Generate(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCardsToGenerateResponse(cards))
}

// ValidateHandler checks a number against the Luhn checksum.
// POST /v1/cards/validate
// Returns 200 OK for both valid and invalid numbers.
func (h *CardHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.cardUseCase.Validate(c.Request.Context(), req.Number)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationResultToResponse(result))
}

// ListNetworksHandler returns the supported network rules in table order.
// GET /v1/networks
func (h *CardHandler) ListNetworksHandler(c *gin.Context) {
	rules, err := h.cardUseCase.ListNetworks(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapNetworksToListResponse(rules))
}
