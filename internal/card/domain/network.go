package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/cardgen/internal/errors"
)

// NetworkRule describes the prefixes and total lengths a simulated issuer may use.
type NetworkRule struct {
	Name     string
	Prefixes []string
	Lengths  []int
}

// Validate checks that the rule can always produce a number with a check digit.
func (r NetworkRule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.Wrap(ErrInvalidRule, "name is required")
	}
	if len(r.Prefixes) == 0 || len(r.Lengths) == 0 {
		return errors.Wrapf(ErrInvalidRule, "%s: prefixes and lengths are required", r.Name)
	}

	for _, prefix := range r.Prefixes {
		if prefix == "" || !isDigits(prefix) {
			return errors.Wrapf(ErrInvalidRule, "%s: prefix %q must be digits", r.Name, prefix)
		}
		for _, length := range r.Lengths {
			// prefix + at least the check digit
			if length <= len(prefix) || length > MaxCardLength {
				return errors.Wrapf(
					ErrInvalidRule,
					"%s: length %d cannot hold prefix %q",
					r.Name,
					length,
					prefix,
				)
			}
		}
	}

	return nil
}

// AllowsLength reports whether n is one of the rule's lengths.
func (r NetworkRule) AllowsLength(n int) bool {
	for _, length := range r.Lengths {
		if length == n {
			return true
		}
	}
	return false
}

// MatchesPrefix reports whether digits start with one of the rule's prefixes.
func (r NetworkRule) MatchesPrefix(digits string) bool {
	for _, prefix := range r.Prefixes {
		if strings.HasPrefix(digits, prefix) {
			return true
		}
	}
	return false
}

// Rules is an ordered, read-only table of network rules keyed by lowercase name.
type Rules struct {
	ordered []NetworkRule
	byName  map[string]int
}

// NewRules validates the given rules and builds a lookup table preserving their order.
func NewRules(rules ...NetworkRule) (*Rules, error) {
	if len(rules) == 0 {
		return nil, errors.Wrap(ErrInvalidRule, "at least one network rule is required")
	}

	table := &Rules{
		ordered: make([]NetworkRule, 0, len(rules)),
		byName:  make(map[string]int, len(rules)),
	}

	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}

		key := strings.ToLower(rule.Name)
		if _, exists := table.byName[key]; exists {
			return nil, errors.Wrapf(ErrInvalidRule, "duplicate network %q", rule.Name)
		}

		rule.Name = key
		rule.Prefixes = append([]string(nil), rule.Prefixes...)
		rule.Lengths = append([]int(nil), rule.Lengths...)

		table.byName[key] = len(table.ordered)
		table.ordered = append(table.ordered, rule)
	}

	return table, nil
}

// DefaultRules returns the built-in network table.
func DefaultRules() *Rules {
	rules, err := NewRules(
		NetworkRule{Name: NetworkVisa, Prefixes: []string{"4"}, Lengths: []int{13, 16}},
		NetworkRule{
			Name:     NetworkMastercard,
			Prefixes: []string{"51", "52", "53", "54", "55", "2221", "2720"},
			Lengths:  []int{16},
		},
		NetworkRule{Name: NetworkAmex, Prefixes: []string{"34", "37"}, Lengths: []int{15}},
		NetworkRule{Name: NetworkDiscover, Prefixes: []string{"6011", "65"}, Lengths: []int{16}},
	)
	if err != nil {
		panic(fmt.Sprintf("built-in network rules are invalid: %v", err))
	}
	return rules
}

// Lookup finds a rule by name, ignoring case and surrounding whitespace.
func (r *Rules) Lookup(name string) (NetworkRule, bool) {
	idx, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return NetworkRule{}, false
	}
	return r.ordered[idx], true
}

// Resolve is like Lookup but returns an UnsupportedNetworkError for unknown names.
func (r *Rules) Resolve(name string) (NetworkRule, error) {
	rule, ok := r.Lookup(name)
	if !ok {
		return NetworkRule{}, &UnsupportedNetworkError{Name: name, Supported: r.Names()}
	}
	return rule, nil
}

// Names returns the rule names in table order.
func (r *Rules) Names() []string {
	names := make([]string, len(r.ordered))
	for i, rule := range r.ordered {
		names[i] = rule.Name
	}
	return names
}

// All returns a copy of the rules in table order.
func (r *Rules) All() []NetworkRule {
	return append([]NetworkRule(nil), r.ordered...)
}

// Len returns the number of rules.
func (r *Rules) Len() int {
	return len(r.ordered)
}

// At returns the i-th rule in table order.
func (r *Rules) At(i int) NetworkRule {
	return r.ordered[i]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
