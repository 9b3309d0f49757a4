// Package mocks provides testify mocks for the card use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCardUseCase is a mock implementation of usecase.CardUseCase.
type MockCardUseCase struct {
	mock.Mock
}

// NewMockCardUseCase creates a MockCardUseCase that asserts its expectations on cleanup.
func NewMockCardUseCase(t testingT) *MockCardUseCase {
	m := &MockCardUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCardUseCase) Generate(
	ctx context.Context,
	input *cardDomain.GenerateInput,
) ([]cardDomain.Card, error) {
	args := m.Called(ctx, input)
	cards, _ := args.Get(0).([]cardDomain.Card)
	return cards, args.Error(1)
}

func (m *MockCardUseCase) Validate(ctx context.Context, number string) (*cardDomain.ValidationResult, error) {
	args := m.Called(ctx, number)
	result, _ := args.Get(0).(*cardDomain.ValidationResult)
	return result, args.Error(1)
}

func (m *MockCardUseCase) ListNetworks(ctx context.Context) ([]cardDomain.NetworkRule, error) {
	args := m.Called(ctx)
	rules, _ := args.Get(0).([]cardDomain.NetworkRule)
	return rules, args.Error(1)
}

func (m *MockCardUseCase) Save(ctx context.Context, cards []cardDomain.Card) (string, error) {
	args := m.Called(ctx, cards)
	return args.String(0), args.Error(1)
}

// MockGenerator is a mock implementation of usecase.Generator.
type MockGenerator struct {
	mock.Mock
}

// NewMockGenerator creates a MockGenerator that asserts its expectations on cleanup.
func NewMockGenerator(t testingT) *MockGenerator {
	m := &MockGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGenerator) Generate(
	network string,
	count int,
	mode cardDomain.SelectionMode,
) ([]cardDomain.Card, error) {
	args := m.Called(network, count, mode)
	cards, _ := args.Get(0).([]cardDomain.Card)
	return cards, args.Error(1)
}

func (m *MockGenerator) Rules() *cardDomain.Rules {
	args := m.Called()
	rules, _ := args.Get(0).(*cardDomain.Rules)
	return rules
}

// MockArtifactStore is a mock implementation of usecase.ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

// NewMockArtifactStore creates a MockArtifactStore that asserts its expectations on cleanup.
func NewMockArtifactStore(t testingT) *MockArtifactStore {
	m := &MockArtifactStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockArtifactStore) Save(ctx context.Context, cards []cardDomain.Card) (string, error) {
	args := m.Called(ctx, cards)
	return args.String(0), args.Error(1)
}
