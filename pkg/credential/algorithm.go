package credential

// Algorithm selects the one-way hash applied to resolved passwords.
//
// The set of valid tags is closed: every consumer dispatches exhaustively
// over the known constants and rejects anything else with
// UnsupportedAlgorithmError. Adding an algorithm means adding a constant
// here and a case at each dispatch site, not a runtime fallback.
type Algorithm string

const (
	// AlgorithmBcrypt is the adaptive, salted bcrypt password hash.
	AlgorithmBcrypt Algorithm = "bcrypt"

	// DefaultAlgorithm is applied wherever the algorithm field is left empty.
	DefaultAlgorithm = AlgorithmBcrypt
)

// Valid reports whether a is one of the known algorithm tags.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmBcrypt:
		return true
	}
	return false
}

// OrDefault returns a, or DefaultAlgorithm when a is empty. An unknown
// non-empty tag is returned as-is so validation can reject it.
func (a Algorithm) OrDefault() Algorithm {
	if a == "" {
		return DefaultAlgorithm
	}
	return a
}

// ParseAlgorithm validates a raw tag, applying the default for the empty
// string.
func ParseAlgorithm(raw string) (Algorithm, error) {
	a := Algorithm(raw).OrDefault()
	if !a.Valid() {
		return "", UnsupportedAlgorithmError{Algorithm: a}
	}
	return a, nil
}
