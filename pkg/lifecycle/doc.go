// Package lifecycle exposes the resource-lifecycle operations of a credops
// credential resource to an orchestrating host.
//
// # Operations
//
// The Provider offers the four classic infrastructure-as-code operations:
//
//   - Create: full resolution from an empty previous state; mints the
//     resource identifier and returns the first Outputs.
//   - Diff: pure pre-check deciding whether Update is needed at all. It
//     performs no hashing and no randomness.
//   - Update: resolution against the previous Outputs' state snapshot, with
//     carry-over of unchanged entries.
//   - Delete: a no-op. The credential document is never persisted by this
//     package, so there is nothing to tear down.
//
// # Host contract
//
// The host guarantees at most one in-flight create/diff/update per resource
// instance; Provider performs no cross-invocation locking. The State inside
// Outputs is opaque to the host: it must be round-tripped unmodified into
// the next Diff/Update call. Every operation is all-or-nothing - on any
// failure no partial Outputs are returned.
//
// Persisting Outputs.Result (the credential file) and retrying failed
// operations are the host's responsibility.
package lifecycle
