package domain

// Card is a single generated number.
type Card struct {
	// Network is the uppercased network name (e.g. "VISA").
	Network string
	// Number is the digits grouped in blocks of four separated by spaces.
	Number string
	// Digits is the bare digit string including the check digit.
	Digits string
}

// GenerateInput holds the parameters of a generation request.
type GenerateInput struct {
	// Network is the requested network name; empty means random.
	Network string
	// Count is the number of cards to produce.
	Count int
	// Mode selects how random networks are drawn. Empty uses the configured default.
	Mode SelectionMode
	// Unbounded skips the configured maximum count. Set by the interactive session.
	Unbounded bool
}

// ValidationResult is the outcome of checking a number against the Luhn rule.
type ValidationResult struct {
	Number string
	Digits string
	Valid  bool
}
