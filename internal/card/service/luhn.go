package service

import (
	"strconv"
	"strings"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// CheckDigit calculates the Luhn check digit for the given digit string.
// The input must NOT include the check digit position. An empty input yields 0.
func CheckDigit(digits string) (int, error) {
	values := make([]int, len(digits))
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, cardDomain.ErrInvalidDigits
		}
		values[i] = int(c - '0')
	}

	return calculateLuhnCheckDigit(values), nil
}

// Validate reports whether number passes the Luhn check.
// Every non-digit character is ignored, so "4111 1111-1111 1111" is accepted.
// A number with no digits at all is invalid.
func Validate(number string) bool {
	digits := Digits(number)
	if digits == "" {
		return false
	}

	checkDigit, err := CheckDigit(digits[:len(digits)-1])
	if err != nil {
		return false
	}

	return strconv.Itoa(checkDigit) == digits[len(digits)-1:]
}

// Digits strips every non-digit character from s.
func Digits(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			builder.WriteByte(s[i])
		}
	}

	return builder.String()
}

// FormatNumber groups digits in blocks of four separated by single spaces.
// The last block may be shorter.
func FormatNumber(digits string) string {
	if len(digits) <= 4 {
		return digits
	}

	var builder strings.Builder
	builder.Grow(len(digits) + len(digits)/4)

	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			builder.WriteByte(' ')
		}
		end := min(i+4, len(digits))
		builder.WriteString(digits[i:end])
	}

	return builder.String()
}

// calculateLuhnCheckDigit calculates the Luhn check digit for the given digits.
// The digits slice should NOT include the check digit position.
func calculateLuhnCheckDigit(digits []int) int {
	sum := 0
	length := len(digits)

	// Process digits from right to left (excluding the check digit position)
	for i := 0; i < length; i++ {
		digit := digits[length-1-i]

		// Double every second digit from the right
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return (10 - (sum % 10)) % 10
}
