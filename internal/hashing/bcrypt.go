// Package hashing implements the credential hash engine. It turns a
// (username, password, algorithm) triple into the canonical "username:hash"
// line that makes up the credential document.
package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/systmms/credops/pkg/credential"
)

// Cost is the fixed bcrypt work factor. Hashing one entry takes tens of
// milliseconds at this cost, which is why resolution fans out per entry.
const Cost = bcrypt.DefaultCost

// Engine computes credential hash lines. It holds no state and is safe for
// concurrent use; hash calls for distinct entries are independent.
type Engine struct{}

// NewEngine returns the hash engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Hash returns the canonical "username:<hash>" line for the entry.
//
// Dispatch over the algorithm tag is exhaustive: tags outside the known set
// fail with credential.UnsupportedAlgorithmError. An empty password fails
// with credential.MissingPasswordError; resolution always supplies a
// password first, so hitting that error indicates a resolver defect.
func (e *Engine) Hash(username, password string, algorithm credential.Algorithm) (string, error) {
	if password == "" {
		return "", credential.MissingPasswordError{Username: username}
	}

	switch algorithm {
	case credential.AlgorithmBcrypt:
		digest, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt hash for %q: %w", username, err)
		}
		return fmt.Sprintf("%s:%s", username, digest), nil
	default:
		return "", credential.UnsupportedAlgorithmError{Algorithm: algorithm}
	}
}

// Verify reports whether the password matches a previously produced hash
// line for the given username and algorithm.
func (e *Engine) Verify(line, username, password string, algorithm credential.Algorithm) error {
	prefix := username + ":"
	if len(line) <= len(prefix) || line[:len(prefix)] != prefix {
		return fmt.Errorf("hash line does not belong to %q", username)
	}

	switch algorithm {
	case credential.AlgorithmBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(line[len(prefix):]), []byte(password))
	default:
		return credential.UnsupportedAlgorithmError{Algorithm: algorithm}
	}
}
