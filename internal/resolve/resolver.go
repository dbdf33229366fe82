// Package resolve implements entry reconciliation: matching desired entries
// against a previous resolution so unchanged entries keep their hashes, and
// computing everything else through the injected capabilities.
package resolve

import (
	"context"
	"errors"
	"sync"

	"github.com/systmms/credops/internal/logging"
	"github.com/systmms/credops/pkg/credential"
)

// Hasher computes the canonical "username:hash" line for an entry.
// Implementations must be safe for concurrent use; resolution hashes
// distinct pending entries in parallel.
type Hasher interface {
	Hash(username, password string, algorithm credential.Algorithm) (string, error)
}

// PasswordSource supplies a fresh random password for entries that omit one.
type PasswordSource interface {
	Generate() (string, error)
}

// maxConcurrentHashes caps the hashing fan-out. Bcrypt is CPU-bound, so
// unbounded parallelism would just thrash larger entry lists.
const maxConcurrentHashes = 8

// Resolver reconciles desired entries against a prior resolution.
type Resolver struct {
	hasher    Hasher
	passwords PasswordSource
	logger    *logging.Logger
}

// New creates a resolver around the injected capabilities.
func New(hasher Hasher, passwords PasswordSource, logger *logging.Logger) *Resolver {
	return &Resolver{
		hasher:    hasher,
		passwords: passwords,
		logger:    logger,
	}
}

// Resolve returns one HashedEntry per desired entry, in desired order.
//
// An entry whose original declaration deeply equals a previous entry's
// original (same username, same three-state password) carries the previous
// resolved password and hash forward untouched. Everything else is pending:
// a password is generated when unset, then the entry is hashed. Pending
// entries are hashed concurrently and joined before returning.
//
// The call is all-or-nothing. If any entry fails, the error is returned and
// no partial result is produced. Cancellation is the host's concern; an
// already-cancelled context is the only context state observed here.
func (r *Resolver) Resolve(ctx context.Context, previous []credential.HashedEntry, entries []credential.Entry, algorithm credential.Algorithm) ([]credential.HashedEntry, error) {
	if !algorithm.Valid() {
		return nil, credential.UnsupportedAlgorithmError{Algorithm: algorithm}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved := make([]credential.HashedEntry, len(entries))
	var pending []int

	for i, entry := range entries {
		if match, ok := carryOver(previous, entry); ok {
			resolved[i] = match
			continue
		}
		pending = append(pending, i)
	}

	r.logger.Debug("resolving %d entries: %d carried over, %d pending", len(entries), len(entries)-len(pending), len(pending))

	if len(pending) == 0 {
		return resolved, nil
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(pending))
	semaphore := make(chan struct{}, maxConcurrentHashes)

	for _, idx := range pending {
		wg.Add(1)
		go func(i int, entry credential.Entry) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			hashed, err := r.resolveEntry(entry, algorithm)
			if err != nil {
				errCh <- err
				return
			}
			// Pending indices are disjoint, so writes never overlap.
			resolved[i] = hashed
		}(idx, entries[idx])
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return resolved, nil
}

// resolveEntry computes a single pending entry: obtain a password if the
// declaration left it unset, then hash.
func (r *Resolver) resolveEntry(entry credential.Entry, algorithm credential.Algorithm) (credential.HashedEntry, error) {
	password, set := entry.Password.Value()
	if !set {
		generated, err := r.passwords.Generate()
		if err != nil {
			return credential.HashedEntry{}, err
		}
		r.logger.Debug("generated password for entry %q", entry.Username)
		password = generated
	}

	hash, err := r.hasher.Hash(entry.Username, password, algorithm)
	if err != nil {
		return credential.HashedEntry{}, err
	}

	return credential.HashedEntry{
		Original:         entry,
		ResolvedPassword: password,
		Hash:             hash,
	}, nil
}

// carryOver scans the previous resolution for an entry whose original
// declaration deeply equals the desired one. Matching keys on the original
// entry, including whether the password was left unset, never on the
// resolved password.
func carryOver(previous []credential.HashedEntry, entry credential.Entry) (credential.HashedEntry, bool) {
	for _, prev := range previous {
		if prev.Original.Equal(entry) {
			return prev, true
		}
	}
	return credential.HashedEntry{}, false
}
