package hashing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/systmms/credops/pkg/credential"
)

func TestHashProducesVerifiableLine(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	line, err := engine.Hash("user1", "mypassword", credential.AlgorithmBcrypt)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(line, "user1:"), "line must start with the username")
	digest := strings.TrimPrefix(line, "user1:")

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("mypassword")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("wrong")))

	assert.NoError(t, engine.Verify(line, "user1", "mypassword", credential.AlgorithmBcrypt))
	assert.Error(t, engine.Verify(line, "user1", "wrong", credential.AlgorithmBcrypt))
	assert.Error(t, engine.Verify(line, "user2", "mypassword", credential.AlgorithmBcrypt))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	a, err := engine.Hash("user1", "same", credential.AlgorithmBcrypt)
	require.NoError(t, err)
	b, err := engine.Hash("user1", "same", credential.AlgorithmBcrypt)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "bcrypt salts every hash")
}

func TestHashMissingPassword(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	_, err := engine.Hash("user1", "", credential.AlgorithmBcrypt)

	var missing credential.MissingPasswordError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "user1", missing.Username)
}

func TestHashUnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	_, err := engine.Hash("user1", "pw", credential.Algorithm("scrypt"))

	var unsupported credential.UnsupportedAlgorithmError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, credential.Algorithm("scrypt"), unsupported.Algorithm)
}

func TestHashConcurrentCalls(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := engine.Hash("user", "password", credential.AlgorithmBcrypt)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}
