// Package credential defines the domain model for declarative htpasswd-style
// credential management in credops.
//
// The central types are:
//
//   - Entry: a desired username/password declaration. The password is a
//     three-state optional (Password): explicitly set, set to the empty
//     string, or left unset, in which case credops generates one.
//   - HashedEntry: an Entry paired with the password that was actually used
//     and the computed username:hash line.
//   - State: the opaque snapshot of a resolution cycle. It is round-tripped
//     back into the next diff/update call so unchanged entries keep their
//     previously computed hashes.
//   - Spec: the desired inputs for one lifecycle operation.
//   - Outputs: everything a cycle produces - the credential document, the
//     plaintext entries, and the next State.
//
// Equality in this package is always field-wise and order-sensitive.
// Reordering two otherwise identical entries is a change; an unset password
// never equals an empty one. Both the diff pre-check and carry-over matching
// during resolution rely on these semantics.
//
// The package also defines the domain error taxonomy
// (UnsupportedAlgorithmError, MissingPasswordError, RandomSourceError).
// Any of these aborts the whole create/update operation; no partial state is
// ever produced.
package credential
