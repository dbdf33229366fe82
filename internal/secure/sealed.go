// Package secure keeps state snapshots protected in memory. A snapshot
// carries every resolved plaintext password, so the CLI never holds its raw
// bytes in an ordinary long-lived allocation: they live in a memguard
// enclave, encrypted at rest and mlocked against swapping, and are only
// decrypted for the duration of a decode callback.
package secure

import (
	"os"
	"sync"

	"github.com/awnumar/memguard"
)

// Sealed is an encrypted in-memory copy of a sensitive file.
type Sealed struct {
	mu        sync.Mutex
	enclave   *memguard.Enclave
	destroyed bool
}

// ReadSealed reads the file at path straight into an enclave. The interim
// plaintext copy is wiped by memguard when the enclave takes ownership.
func ReadSealed(path string) (*Sealed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// NewEnclave wipes data after encrypting it.
	return &Sealed{enclave: memguard.NewEnclave(data)}, nil
}

// Seal wraps already-held sensitive bytes. The input is wiped.
func Seal(data []byte) *Sealed {
	return &Sealed{enclave: memguard.NewEnclave(data)}
}

// Open decrypts the sealed bytes, passes them to fn, and securely wipes the
// plaintext again when fn returns. The callback must not retain the slice.
func (s *Sealed) Open(fn func(data []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return fn(nil)
	}

	locked, err := s.enclave.Open()
	if err != nil {
		return err
	}
	defer locked.Destroy()

	return fn(locked.Bytes())
}

// Destroy makes the sealed buffer unusable. Idempotent. The encrypted
// enclave contents are left for garbage collection; callers wanting a full
// sweep defer memguard.Purge() at process exit.
func (s *Sealed) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return
	}
	s.enclave = nil
	s.destroyed = true
}
