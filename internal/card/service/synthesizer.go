package service

import (
	"math/rand/v2"
	"strings"
	"sync"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// Synthesizer assembles Luhn-valid card numbers from a network rule table.
// It is safe for concurrent use; draws from the random source are serialized.
type Synthesizer struct {
	rules *cardDomain.Rules

	mu  sync.Mutex
	rnd RandomSource
}

// NewSynthesizer creates a synthesizer over rules using rnd for every draw.
func NewSynthesizer(rules *cardDomain.Rules, rnd RandomSource) *Synthesizer {
	return &Synthesizer{
		rules: rules,
		rnd:   rnd,
	}
}

// NewDefaultSynthesizer creates a synthesizer backed by a PCG generator seeded
// from process entropy. The output is not suitable for security-sensitive use.
func NewDefaultSynthesizer(rules *cardDomain.Rules) *Synthesizer {
	//nolint:gosec // fake test numbers, predictability is acceptable
	return NewSynthesizer(rules, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Rules returns the rule table the synthesizer draws from.
func (s *Synthesizer) Rules() *cardDomain.Rules {
	return s.rules
}

// Generate produces count cards. When network is empty the network is drawn at
// random according to mode; otherwise it is looked up case-insensitively.
// All arguments are checked before the first number is produced.
func (s *Synthesizer) Generate(
	network string,
	count int,
	mode cardDomain.SelectionMode,
) ([]cardDomain.Card, error) {
	requested := strings.TrimSpace(network) != ""

	var fixed *cardDomain.NetworkRule
	if requested {
		rule, err := s.rules.Resolve(network)
		if err != nil {
			return nil, err
		}
		fixed = &rule
	} else if err := mode.Validate(); err != nil {
		return nil, err
	}

	if count < 1 {
		return nil, cardDomain.ErrInvalidCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make([]cardDomain.Card, 0, count)
	for i := 0; i < count; i++ {
		rule := fixed
		if rule == nil {
			picked := s.rules.At(s.rnd.IntN(s.rules.Len()))
			rule = &picked
			if mode == cardDomain.SelectionFixedPerCall {
				fixed = rule
			}
		}

		cards = append(cards, s.synthesize(*rule))
	}

	return cards, nil
}

// Synthesize produces a single card for rule.
func (s *Synthesizer) Synthesize(rule cardDomain.NetworkRule) cardDomain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.synthesize(rule)
}

// synthesize must be called with s.mu held.
func (s *Synthesizer) synthesize(rule cardDomain.NetworkRule) cardDomain.Card {
	prefix := rule.Prefixes[s.rnd.IntN(len(rule.Prefixes))]
	length := rule.Lengths[s.rnd.IntN(len(rule.Lengths))]

	digits := make([]int, length)
	for i := 0; i < len(prefix); i++ {
		digits[i] = int(prefix[i] - '0')
	}
	for i := len(prefix); i < length-1; i++ {
		digits[i] = s.rnd.IntN(10)
	}
	digits[length-1] = calculateLuhnCheckDigit(digits[:length-1])

	token := make([]byte, length)
	for i, d := range digits {
		//nolint:gosec // d is bounded [0,9]
		token[i] = byte('0' + d)
	}

	number := string(token)
	return cardDomain.Card{
		Network: strings.ToUpper(rule.Name),
		Number:  FormatNumber(number),
		Digits:  number,
	}
}
