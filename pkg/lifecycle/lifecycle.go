package lifecycle

import (
	"context"

	"github.com/systmms/credops/internal/compose"
	"github.com/systmms/credops/internal/diffeval"
	"github.com/systmms/credops/internal/hashing"
	"github.com/systmms/credops/internal/logging"
	"github.com/systmms/credops/internal/random"
	"github.com/systmms/credops/internal/resolve"
	"github.com/systmms/credops/pkg/credential"
)

// idPrefix keeps minted resource identifiers recognizable in host logs.
const idPrefix = "htpasswd"

// IdentitySource mints opaque resource identifiers. The default
// implementation is the same secure random generator that produces
// passwords.
type IdentitySource interface {
	NewID(prefix string) (string, error)
}

// Provider implements the credential resource lifecycle.
type Provider struct {
	resolver *resolve.Resolver
	ids      IdentitySource
	logger   *logging.Logger
}

// New wires a Provider with the production capabilities: the bcrypt hash
// engine and the crypto/rand secret generator.
func New(logger *logging.Logger) *Provider {
	generator := random.New()
	return NewWith(hashing.NewEngine(), generator, generator, logger)
}

// NewWith wires a Provider from explicit capabilities. Tests substitute
// deterministic fakes here.
func NewWith(hasher resolve.Hasher, passwords resolve.PasswordSource, ids IdentitySource, logger *logging.Logger) *Provider {
	return &Provider{
		resolver: resolve.New(hasher, passwords, logger),
		ids:      ids,
		logger:   logger,
	}
}

// CreateResult is returned by Create.
type CreateResult struct {
	ID      string
	Outputs credential.Outputs
}

// DiffResult is returned by Diff.
type DiffResult struct {
	Changes bool
}

// UpdateResult is returned by Update.
type UpdateResult struct {
	Outputs credential.Outputs
}

// Create performs a full resolution with an empty previous state and mints
// the resource identifier.
func (p *Provider) Create(ctx context.Context, spec credential.Spec) (CreateResult, error) {
	outputs, err := p.run(ctx, nil, spec)
	if err != nil {
		return CreateResult{}, err
	}

	id, err := p.ids.NewID(idPrefix)
	if err != nil {
		return CreateResult{}, err
	}

	p.logger.Info("created credential resource %s with %d entries", id, len(spec.Entries))
	return CreateResult{ID: id, Outputs: outputs}, nil
}

// Diff reports whether the desired spec differs from the prior outputs'
// state. With nil prior outputs (bootstrap) it always reports a change.
// Unknown algorithm tags are rejected here, before any update work starts.
func (p *Provider) Diff(ctx context.Context, id string, prior *credential.Outputs, spec credential.Spec) (DiffResult, error) {
	if err := validAlgorithm(spec); err != nil {
		return DiffResult{}, err
	}

	var priorState *credential.State
	if prior != nil {
		priorState = &prior.State
	}

	changes := diffeval.Changed(priorState, spec)
	p.logger.Debug("diff for %s: changes=%t", id, changes)
	return DiffResult{Changes: changes}, nil
}

// Update resolves the desired spec against the prior outputs' state,
// carrying over every unchanged entry, and returns fresh outputs. The host
// calls it only after Diff reported changes.
func (p *Provider) Update(ctx context.Context, id string, prior credential.Outputs, spec credential.Spec) (UpdateResult, error) {
	outputs, err := p.run(ctx, prior.State.HashedEntries, spec)
	if err != nil {
		return UpdateResult{}, err
	}

	p.logger.Info("updated credential resource %s with %d entries", id, len(spec.Entries))
	return UpdateResult{Outputs: outputs}, nil
}

// Delete is a no-op: the resource owns no external storage. The state
// snapshot is simply discarded by the host.
func (p *Provider) Delete(ctx context.Context, id string) error {
	p.logger.Debug("delete for %s: nothing to tear down", id)
	return nil
}

// run is the shared create/update path: validate, resolve, compose.
func (p *Provider) run(ctx context.Context, previous []credential.HashedEntry, spec credential.Spec) (credential.Outputs, error) {
	if err := validAlgorithm(spec); err != nil {
		return credential.Outputs{}, err
	}

	algorithm := spec.EffectiveAlgorithm()
	resolved, err := p.resolver.Resolve(ctx, previous, spec.Entries, algorithm)
	if err != nil {
		return credential.Outputs{}, err
	}

	return compose.Compose(resolved, algorithm), nil
}

func validAlgorithm(spec credential.Spec) error {
	alg := spec.EffectiveAlgorithm()
	if !alg.Valid() {
		return credential.UnsupportedAlgorithmError{Algorithm: alg}
	}
	return nil
}
