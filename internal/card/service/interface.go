// Package service provides the Luhn checksum engine and the card number synthesizer.
package service

// RandomSource is the subset of *rand.Rand (math/rand/v2) used by the synthesizer.
type RandomSource interface {
	IntN(n int) int
}
