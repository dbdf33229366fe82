package fakes

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/systmms/credops/pkg/credential"
)

// FakeHasher is a deterministic Hasher that records how often each username
// was hashed. It is safe for concurrent use.
type FakeHasher struct {
	mu    sync.Mutex
	calls map[string]int

	// FailFor makes hashing fail for one username, for abort-path tests.
	FailFor string
}

// NewFakeHasher creates an empty fake hasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{calls: make(map[string]int)}
}

// Hash returns a stable fake line derived from all three inputs.
func (f *FakeHasher) Hash(username, password string, algorithm credential.Algorithm) (string, error) {
	if password == "" {
		return "", credential.MissingPasswordError{Username: username}
	}
	if !algorithm.Valid() {
		return "", credential.UnsupportedAlgorithmError{Algorithm: algorithm}
	}

	f.mu.Lock()
	f.calls[username]++
	f.mu.Unlock()

	if username == f.FailFor {
		return "", fmt.Errorf("injected hash failure for %q", username)
	}
	return fmt.Sprintf("%s:fake(%s,%s)", username, password, algorithm), nil
}

// Calls returns how many times the username was hashed.
func (f *FakeHasher) Calls(username string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[username]
}

// TotalCalls returns the total number of Hash invocations.
func (f *FakeHasher) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// FakePasswordSource hands out sequential passwords. It is safe for
// concurrent use.
type FakePasswordSource struct {
	counter atomic.Int64

	// Err, when set, is returned from every Generate call.
	Err error
}

// NewFakePasswordSource creates a source generating generated-1,
// generated-2, and so on.
func NewFakePasswordSource() *FakePasswordSource {
	return &FakePasswordSource{}
}

// Generate returns the next sequential password.
func (f *FakePasswordSource) Generate() (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return fmt.Sprintf("generated-%d", f.counter.Add(1)), nil
}

// Generated returns how many passwords have been handed out.
func (f *FakePasswordSource) Generated() int {
	return int(f.counter.Load())
}

// NewID mints a deterministic fake resource identifier.
func (f *FakePasswordSource) NewID(prefix string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	id := fmt.Sprintf("fake-id-%d", f.counter.Add(1))
	if prefix == "" {
		return id, nil
	}
	return prefix + "-" + id, nil
}
