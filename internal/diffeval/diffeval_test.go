package diffeval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/systmms/credops/pkg/credential"
)

func stateFor(alg credential.Algorithm, entries ...credential.Entry) *credential.State {
	hashed := make([]credential.HashedEntry, len(entries))
	for i, e := range entries {
		pw, _ := e.Password.Value()
		if pw == "" {
			pw = "resolved-" + e.Username
		}
		hashed[i] = credential.HashedEntry{Original: e, ResolvedPassword: pw, Hash: e.Username + ":h"}
	}
	return &credential.State{Algorithm: alg, HashedEntries: hashed}
}

func TestChangedBootstrap(t *testing.T) {
	t.Parallel()

	// No prior state always requires resolution, whatever the spec.
	assert.True(t, Changed(nil, credential.Spec{}))
	assert.True(t, Changed(nil, credential.Spec{
		Entries:   []credential.Entry{{Username: "a"}},
		Algorithm: credential.AlgorithmBcrypt,
	}))
}

func TestChangedIdempotence(t *testing.T) {
	t.Parallel()

	entries := []credential.Entry{
		{Username: "alice", Password: credential.PasswordOf("pw")},
		{Username: "bob"},
	}
	prior := stateFor(credential.AlgorithmBcrypt, entries...)

	assert.False(t, Changed(prior, credential.Spec{Entries: entries, Algorithm: credential.AlgorithmBcrypt}))
}

func TestChangedAlgorithmDefaulting(t *testing.T) {
	t.Parallel()

	entries := []credential.Entry{{Username: "alice", Password: credential.PasswordOf("pw")}}

	// Empty algorithm on either side means bcrypt; no change either way.
	prior := stateFor("", entries...)
	assert.False(t, Changed(prior, credential.Spec{Entries: entries, Algorithm: credential.AlgorithmBcrypt}))

	prior = stateFor(credential.AlgorithmBcrypt, entries...)
	assert.False(t, Changed(prior, credential.Spec{Entries: entries}))
}

func TestChangedDetectsEntryDifferences(t *testing.T) {
	t.Parallel()

	base := []credential.Entry{
		{Username: "alice", Password: credential.PasswordOf("pw")},
		{Username: "bob"},
	}
	prior := stateFor(credential.AlgorithmBcrypt, base...)

	tests := []struct {
		name    string
		desired []credential.Entry
		want    bool
	}{
		{
			name:    "identical list",
			desired: []credential.Entry{base[0], base[1]},
			want:    false,
		},
		{
			name:    "reordered entries",
			desired: []credential.Entry{base[1], base[0]},
			want:    true,
		},
		{
			name:    "password changed",
			desired: []credential.Entry{{Username: "alice", Password: credential.PasswordOf("new")}, base[1]},
			want:    true,
		},
		{
			name:    "unset became empty",
			desired: []credential.Entry{base[0], {Username: "bob", Password: credential.PasswordOf("")}},
			want:    true,
		},
		{
			name:    "entry added",
			desired: []credential.Entry{base[0], base[1], {Username: "carol"}},
			want:    true,
		},
		{
			name:    "entry removed",
			desired: []credential.Entry{base[0]},
			want:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Changed(prior, credential.Spec{Entries: tt.desired, Algorithm: credential.AlgorithmBcrypt})
			assert.Equal(t, tt.want, got)
		})
	}
}
