// Package diffeval decides whether a desired spec differs from the prior
// resolved state. It is the fast pre-check the host runs before paying for
// any resolution work.
package diffeval

import "github.com/systmms/credops/pkg/credential"

// Changed reports whether resolution is required.
//
// With no prior state (bootstrap) the answer is always true. Otherwise the
// spec changed when the effective algorithms differ or when the desired
// entry list is not deeply, order-sensitively equal to the original entries
// recorded in the prior state. Pure function: no hashing, no randomness, no
// side effects.
func Changed(prior *credential.State, desired credential.Spec) bool {
	if prior == nil {
		return true
	}

	if prior.Algorithm.OrDefault() != desired.EffectiveAlgorithm() {
		return true
	}

	return !credential.EntriesEqual(desired.Entries, prior.OriginalEntries())
}
