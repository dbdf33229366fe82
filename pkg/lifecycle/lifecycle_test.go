package lifecycle_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/credops/internal/hashing"
	"github.com/systmms/credops/internal/logging"
	"github.com/systmms/credops/pkg/credential"
	"github.com/systmms/credops/pkg/lifecycle"
	"github.com/systmms/credops/tests/fakes"
)

func newFakeProvider() (*lifecycle.Provider, *fakes.FakeHasher, *fakes.FakePasswordSource) {
	hasher := fakes.NewFakeHasher()
	passwords := fakes.NewFakePasswordSource()
	provider := lifecycle.NewWith(hasher, passwords, passwords, logging.New(false, true))
	return provider, hasher, passwords
}

func TestCreateThenDiffIsIdempotent(t *testing.T) {
	t.Parallel()

	provider, _, _ := newFakeProvider()
	spec := credential.Spec{
		Entries: []credential.Entry{
			{Username: "alice", Password: credential.PasswordOf("pw")},
			{Username: "bob"},
		},
	}

	created, err := provider.Create(context.Background(), spec)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, strings.HasPrefix(created.ID, "htpasswd-"))

	diff, err := provider.Diff(context.Background(), created.ID, &created.Outputs, spec)
	require.NoError(t, err)
	assert.False(t, diff.Changes, "unchanged spec must not report changes")
}

func TestDiffBootstrap(t *testing.T) {
	t.Parallel()

	provider, _, _ := newFakeProvider()
	diff, err := provider.Diff(context.Background(), "id", nil, credential.Spec{
		Entries: []credential.Entry{{Username: "a"}},
	})
	require.NoError(t, err)
	assert.True(t, diff.Changes, "no prior outputs always means changes")
}

func TestDiffOrderSensitivity(t *testing.T) {
	t.Parallel()

	provider, _, _ := newFakeProvider()
	a := credential.Entry{Username: "alice", Password: credential.PasswordOf("a")}
	b := credential.Entry{Username: "bob", Password: credential.PasswordOf("b")}

	created, err := provider.Create(context.Background(), credential.Spec{Entries: []credential.Entry{a, b}})
	require.NoError(t, err)

	diff, err := provider.Diff(context.Background(), created.ID, &created.Outputs, credential.Spec{
		Entries: []credential.Entry{b, a},
	})
	require.NoError(t, err)
	assert.True(t, diff.Changes, "reordering entries is a change")
}

func TestUpdateRecomputesOnlyChangedEntries(t *testing.T) {
	t.Parallel()

	provider, hasher, _ := newFakeProvider()
	spec := credential.Spec{
		Entries: []credential.Entry{
			{Username: "alice", Password: credential.PasswordOf("pw-a")},
			{Username: "bob", Password: credential.PasswordOf("pw-b")},
			{Username: "carol"},
		},
	}

	created, err := provider.Create(context.Background(), spec)
	require.NoError(t, err)

	next := credential.Spec{
		Entries: []credential.Entry{
			spec.Entries[0],
			{Username: "bob", Password: credential.PasswordOf("pw-b-new")},
			spec.Entries[2],
		},
	}

	updated, err := provider.Update(context.Background(), created.ID, created.Outputs, next)
	require.NoError(t, err)

	oldState := created.Outputs.State.HashedEntries
	newState := updated.Outputs.State.HashedEntries
	require.Len(t, newState, 3)

	assert.Equal(t, oldState[0].Hash, newState[0].Hash, "alice's hash byte-identical")
	assert.Equal(t, oldState[2].Hash, newState[2].Hash, "carol's hash byte-identical")
	assert.NotEqual(t, oldState[1].Hash, newState[1].Hash, "bob's hash recomputed")

	assert.Equal(t, 1, hasher.Calls("alice"))
	assert.Equal(t, 1, hasher.Calls("carol"))
	assert.Equal(t, 2, hasher.Calls("bob"))
}

func TestCreateEmptyEntries(t *testing.T) {
	t.Parallel()

	provider, _, _ := newFakeProvider()
	created, err := provider.Create(context.Background(), credential.Spec{})
	require.NoError(t, err)

	assert.Equal(t, "", created.Outputs.Result)
	assert.Empty(t, created.Outputs.PlaintextEntries)
	assert.Empty(t, created.Outputs.State.HashedEntries)
}

func TestUnknownAlgorithmRejectedEverywhere(t *testing.T) {
	t.Parallel()

	provider, hasher, _ := newFakeProvider()
	spec := credential.Spec{
		Entries:   []credential.Entry{{Username: "a", Password: credential.PasswordOf("pw")}},
		Algorithm: credential.Algorithm("sha512"),
	}

	var unsupported credential.UnsupportedAlgorithmError

	_, err := provider.Create(context.Background(), spec)
	require.ErrorAs(t, err, &unsupported)

	_, err = provider.Diff(context.Background(), "id", nil, spec)
	require.ErrorAs(t, err, &unsupported)

	_, err = provider.Update(context.Background(), "id", credential.Outputs{}, spec)
	require.ErrorAs(t, err, &unsupported)

	assert.Zero(t, hasher.TotalCalls(), "rejection happens before any hashing")
}

func TestDeleteIsNoOp(t *testing.T) {
	t.Parallel()

	provider, _, _ := newFakeProvider()
	assert.NoError(t, provider.Delete(context.Background(), "htpasswd-x"))
}

// TestEndToEndWithBcrypt exercises the real capabilities: bcrypt hashing
// and crypto/rand generation.
func TestEndToEndWithBcrypt(t *testing.T) {
	t.Parallel()

	provider := lifecycle.New(logging.New(false, true))
	spec := credential.Spec{
		Entries: []credential.Entry{
			{Username: "user1", Password: credential.PasswordOf("mypassword")},
			{Username: "user2"},
		},
	}

	created, err := provider.Create(context.Background(), spec)
	require.NoError(t, err)

	lines := strings.Split(created.Outputs.Result, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "user1:"))
	assert.True(t, strings.HasPrefix(lines[1], "user2:"))

	// Explicit password verifies under bcrypt.
	engine := hashing.NewEngine()
	assert.NoError(t, engine.Verify(lines[0], "user1", "mypassword", credential.AlgorithmBcrypt))

	// Generated password is non-empty, safe-charset, and used for the hash.
	generated := created.Outputs.PlaintextEntries[1].Password
	require.NotEmpty(t, generated)
	assert.Regexp(t, `^[A-Za-z0-9_-]+$`, generated)
	assert.NoError(t, engine.Verify(lines[1], "user2", generated, credential.AlgorithmBcrypt))

	// Independent creates generate different passwords.
	again, err := provider.Create(context.Background(), spec)
	require.NoError(t, err)
	assert.NotEqual(t, generated, again.Outputs.PlaintextEntries[1].Password)
	assert.NotEqual(t, created.ID, again.ID)

	// Unchanged spec diffs clean against the produced state.
	diff, err := provider.Diff(context.Background(), created.ID, &created.Outputs, spec)
	require.NoError(t, err)
	assert.False(t, diff.Changes)
}
