// Package fakes provides deterministic substitutes for the injected
// capabilities (hashing, password generation) so resolution logic can be
// tested without bcrypt cost or real randomness.
package fakes
