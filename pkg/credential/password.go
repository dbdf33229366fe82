package credential

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Password is an optional password value. It distinguishes three states:
// unset (credops generates a password), set to the empty string, and set to
// a non-empty string. The zero value is unset.
//
// The distinction matters for carry-over matching: an entry whose password
// was generated stays matched only while the caller keeps the field unset.
type Password struct {
	value string
	set   bool
}

// PasswordOf returns a Password explicitly set to s. PasswordOf("") is a
// set-but-empty password, which is not the same as the zero value.
func PasswordOf(s string) Password {
	return Password{value: s, set: true}
}

// NoPassword returns the unset Password. Equivalent to the zero value;
// provided for readability at call sites.
func NoPassword() Password {
	return Password{}
}

// IsSet reports whether the password was explicitly provided.
func (p Password) IsSet() bool {
	return p.set
}

// Value returns the password value and whether it was set.
func (p Password) Value() (string, bool) {
	return p.value, p.set
}

// Equal reports field-wise equality, including the set/unset state.
// Two unset passwords are equal; unset never equals set, even set-to-empty.
func (p Password) Equal(other Password) bool {
	return p.set == other.set && p.value == other.value
}

// String implements fmt.Stringer and never reveals the password value.
func (p Password) String() string {
	if !p.set {
		return "(unset)"
	}
	return "[REDACTED]"
}

// GoString implements fmt.GoStringer so %#v formatting stays redacted too.
func (p Password) GoString() string {
	return p.String()
}

var jsonNull = []byte("null")

// MarshalJSON encodes an unset password as JSON null and a set password as a
// JSON string. The empty string therefore survives a round trip as distinct
// from null.
func (p Password) MarshalJSON() ([]byte, error) {
	if !p.set {
		return jsonNull, nil
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Password) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*p = Password{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("password must be a string or null: %w", err)
	}
	*p = Password{value: s, set: true}
	return nil
}
