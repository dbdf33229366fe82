package credential

import "fmt"

// UnsupportedAlgorithmError indicates an algorithm tag outside the closed
// enumeration. Operations reject it before any hashing begins.
type UnsupportedAlgorithmError struct {
	Algorithm Algorithm
}

func (e UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm %q (supported: %s)", string(e.Algorithm), AlgorithmBcrypt)
}

// MissingPasswordError indicates that hashing was attempted without a
// resolved password. Resolution always supplies a password first, so this
// is a defect condition rather than a user error.
type MissingPasswordError struct {
	Username string
}

func (e MissingPasswordError) Error() string {
	return fmt.Sprintf("no resolved password for entry %q at hashing time", e.Username)
}

// RandomSourceError indicates that the secure randomness source failed.
// It is fatal for the operation and never retried internally.
type RandomSourceError struct {
	Err error
}

func (e RandomSourceError) Error() string {
	return fmt.Sprintf("secure random source unavailable: %v", e.Err)
}

func (e RandomSourceError) Unwrap() error {
	return e.Err
}
