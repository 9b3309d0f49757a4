package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordGenerated(ctx context.Context, network string, n int) {
	m.Called(ctx, network, n)
}

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "cards", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "cards", operation, mock.AnythingOfType("time.Duration"), status).
		Once()
}

func TestNewCardUseCaseWithMetrics(t *testing.T) {
	decorator := NewCardUseCaseWithMetrics(mocks.NewMockCardUseCase(t), &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &cardUseCaseWithMetrics{}, decorator)
}

func TestCardUseCaseWithMetrics_Generate(t *testing.T) {
	input := &cardDomain.GenerateInput{Network: "visa", Count: 1}

	tests := []struct {
		name           string
		cards          []cardDomain.Card
		err            error
		expectedStatus string
	}{
		{
			name:           "Success_RecordsSuccessMetrics",
			cards:          []cardDomain.Card{{Network: "VISA"}, {Network: "VISA"}},
			expectedStatus: "success",
		},
		{
			name:           "Error_RecordsErrorMetrics",
			err:            cardDomain.ErrUnsupportedNetwork,
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := mocks.NewMockCardUseCase(t)
			mockMetrics := &mockBusinessMetrics{}
			mockUseCase.On("Generate", mock.Anything, input).Return(tt.cards, tt.err).Once()
			expectMetrics(mockMetrics, "generate", tt.expectedStatus)
			if len(tt.cards) > 0 {
				mockMetrics.On("RecordGenerated", mock.Anything, "VISA", len(tt.cards)).Once()
			}

			decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
			cards, err := decorator.Generate(context.Background(), input)

			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.cards, cards)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestCardUseCaseWithMetrics_Validate(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	result := &cardDomain.ValidationResult{Number: "18", Digits: "18", Valid: true}
	mockUseCase.On("Validate", mock.Anything, "18").Return(result, nil).Once()
	expectMetrics(mockMetrics, "validate", "success")

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	got, err := decorator.Validate(context.Background(), "18")

	assert.NoError(t, err)
	assert.Equal(t, result, got)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_Save(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	cards := []cardDomain.Card{{Network: "VISA"}}
	mockUseCase.On("Save", mock.Anything, cards).Return("", errors.New("save failed")).Once()
	expectMetrics(mockMetrics, "save", "error")

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	_, err := decorator.Save(context.Background(), cards)

	assert.EqualError(t, err, "save failed")
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_ListNetworksNotInstrumented(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	rules := cardDomain.DefaultRules().All()
	mockUseCase.On("ListNetworks", mock.Anything).Return(rules, nil).Once()

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	got, err := decorator.ListNetworks(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, rules, got)
	mockMetrics.AssertNotCalled(t, "RecordOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
