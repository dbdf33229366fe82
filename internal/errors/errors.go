// Package errors defines the user-facing error types surfaced by the
// credops CLI. Domain errors live in pkg/credential; the types here add the
// context a person at a terminal needs to fix their input.
package errors

import (
	"fmt"
	"strings"
)

// UserError is an operation failure with enough context to act on.
type UserError struct {
	Message    string
	Details    string
	Suggestion string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// ConfigError is a problem in the desired-state file or a flag value.
type ConfigError struct {
	Field      string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e ConfigError) Error() string {
	msg := "Configuration error"
	if e.Field != "" {
		msg += fmt.Sprintf(" in field '%s'", e.Field)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	msg += ": " + e.Message

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// StateError is a problem with a prior-state file: missing, unreadable, or
// not a snapshot this version of credops can decode.
type StateError struct {
	Path       string
	Message    string
	Suggestion string
	Err        error
}

func (e StateError) Error() string {
	msg := fmt.Sprintf("State error for '%s': %s", e.Path, e.Message)
	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}
	return msg
}

func (e StateError) Unwrap() error {
	return e.Err
}
