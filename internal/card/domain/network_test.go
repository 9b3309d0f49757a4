package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardgen/internal/errors"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, []string{"visa", "mastercard", "amex", "discover"}, rules.Names())
	assert.Equal(t, 4, rules.Len())

	visa, ok := rules.Lookup("visa")
	require.True(t, ok)
	assert.Equal(t, []string{"4"}, visa.Prefixes)
	assert.Equal(t, []int{13, 16}, visa.Lengths)

	amex := rules.At(2)
	assert.Equal(t, "amex", amex.Name)
	assert.Equal(t, []int{15}, amex.Lengths)
}

func TestRules_Lookup(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "Lowercase", input: "visa", expected: "visa", found: true},
		{name: "Uppercase", input: "MASTERCARD", expected: "mastercard", found: true},
		{name: "MixedCaseWithSpaces", input: "  AmEx ", expected: "amex", found: true},
		{name: "Unknown", input: "unknownnet", found: false},
		{name: "Empty", input: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := rules.Lookup(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, rule.Name)
			}
		})
	}
}

func TestRules_Resolve(t *testing.T) {
	rules := DefaultRules()

	t.Run("Success_KnownNetwork", func(t *testing.T) {
		rule, err := rules.Resolve("Discover")
		require.NoError(t, err)
		assert.Equal(t, "discover", rule.Name)
	})

	t.Run("Error_UnknownNetworkListsSupported", func(t *testing.T) {
		_, err := rules.Resolve("unknownnet")
		require.Error(t, err)

		assert.ErrorIs(t, err, ErrUnsupportedNetwork)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "Available: visa, mastercard, amex, discover")

		var unsupported *UnsupportedNetworkError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "unknownnet", unsupported.Name)
	})
}

func TestRules_AllReturnsCopy(t *testing.T) {
	rules := DefaultRules()

	all := rules.All()
	all[0].Name = "changed"

	assert.Equal(t, "visa", rules.At(0).Name)
}

func TestNewRules(t *testing.T) {
	tests := []struct {
		name  string
		rules []NetworkRule
	}{
		{name: "Error_Empty", rules: nil},
		{
			name:  "Error_MissingName",
			rules: []NetworkRule{{Prefixes: []string{"4"}, Lengths: []int{16}}},
		},
		{
			name:  "Error_NonDigitPrefix",
			rules: []NetworkRule{{Name: "x", Prefixes: []string{"4a"}, Lengths: []int{16}}},
		},
		{
			name:  "Error_LengthWithoutRoomForCheckDigit",
			rules: []NetworkRule{{Name: "x", Prefixes: []string{"6011"}, Lengths: []int{4}}},
		},
		{
			name:  "Error_LengthTooLong",
			rules: []NetworkRule{{Name: "x", Prefixes: []string{"6"}, Lengths: []int{20}}},
		},
		{
			name: "Error_DuplicateName",
			rules: []NetworkRule{
				{Name: "visa", Prefixes: []string{"4"}, Lengths: []int{16}},
				{Name: "VISA", Prefixes: []string{"4"}, Lengths: []int{13}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRules(tt.rules...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRule)
		})
	}

	t.Run("Success_NormalizesName", func(t *testing.T) {
		rules, err := NewRules(NetworkRule{Name: "JCB", Prefixes: []string{"35"}, Lengths: []int{16}})
		require.NoError(t, err)
		assert.Equal(t, []string{"jcb"}, rules.Names())
	})
}

func TestNetworkRule_Matchers(t *testing.T) {
	rule, ok := DefaultRules().Lookup(NetworkMastercard)
	require.True(t, ok)

	assert.True(t, rule.AllowsLength(16))
	assert.False(t, rule.AllowsLength(15))
	assert.True(t, rule.MatchesPrefix("2221000000000009"))
	assert.True(t, rule.MatchesPrefix("5500000000000004"))
	assert.False(t, rule.MatchesPrefix("4111111111111111"))
}

func TestParseSelectionMode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    SelectionMode
		expectError bool
	}{
		{name: "Fixed", input: "fixed", expected: SelectionFixedPerCall},
		{name: "IndependentUppercase", input: " INDEPENDENT ", expected: SelectionIndependentPerItem},
		{name: "Error_Unknown", input: "sometimes", expectError: true},
		{name: "Error_Empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseSelectionMode(tt.input)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidSelectionMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}
