// Package random provides the cryptographically secure secret generator
// used for auto-generated passwords and resource identifiers.
package random

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/systmms/credops/pkg/credential"
)

// entropyBytes is the raw entropy drawn per generated value. 32 bytes gives
// 256 bits of input entropy before encoding.
const entropyBytes = 32

// Generator produces fresh random strings on every call. The zero value is
// ready to use and safe for concurrent use.
type Generator struct{}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{}
}

// Generate returns a fresh random string. The output is raw-URL base64
// (alphanumerics plus '-' and '_', no padding), so it is safe both inside a
// single-line username:hash document and as a resource identifier.
//
// Values are never cached or reused. A failing randomness source surfaces
// as credential.RandomSourceError and is not retried.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", credential.RandomSourceError{Err: err}
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewID mints a unique resource identifier from the same primitive as
// Generate. The prefix keeps identifiers recognizable in host logs.
func (g *Generator) NewID(prefix string) (string, error) {
	suffix, err := g.Generate()
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return suffix, nil
	}
	return prefix + "-" + suffix, nil
}
