// Package compose assembles the outputs of a resolution cycle: the
// credential document, the plaintext entry list, and the state snapshot fed
// into the next cycle.
package compose

import (
	"strings"

	"github.com/systmms/credops/pkg/credential"
)

// Document renders the credential file: one hash line per entry in input
// order, newline-joined, no trailing newline. The same ordered list always
// yields byte-identical output.
func Document(resolved []credential.HashedEntry) string {
	lines := make([]string, len(resolved))
	for i, he := range resolved {
		lines[i] = he.Hash
	}
	return strings.Join(lines, "\n")
}

// Compose builds the full Outputs for a resolved entry list. Pure function:
// no hashes are recomputed, the resolved list is copied into a fresh state
// snapshot rather than aliased.
func Compose(resolved []credential.HashedEntry, algorithm credential.Algorithm) credential.Outputs {
	plaintext := make([]credential.PlaintextEntry, len(resolved))
	snapshot := make([]credential.HashedEntry, len(resolved))
	for i, he := range resolved {
		plaintext[i] = credential.PlaintextEntry{
			Username: he.Original.Username,
			Password: he.ResolvedPassword,
		}
		snapshot[i] = he
	}

	return credential.Outputs{
		Result:           Document(resolved),
		PlaintextEntries: plaintext,
		State: credential.State{
			Algorithm:     algorithm,
			HashedEntries: snapshot,
		},
	}
}
