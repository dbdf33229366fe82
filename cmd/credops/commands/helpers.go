package commands

import (
	"encoding/json"
	"fmt"
	"os"

	crederrors "github.com/systmms/credops/internal/errors"
	"github.com/systmms/credops/internal/logging"
	"github.com/systmms/credops/internal/secure"
	"github.com/systmms/credops/pkg/credential"
)

// Runtime carries state shared by all commands, populated by the root
// command before any subcommand runs.
type Runtime struct {
	Logger *logging.Logger
}

// StateFile is the on-disk round-trip format: the resource identifier plus
// the last outputs (including the opaque state snapshot). It contains
// resolved plaintext passwords, so it is written 0600 and read through a
// memguard enclave.
type StateFile struct {
	ID      string             `json:"id"`
	Outputs credential.Outputs `json:"outputs"`
}

// loadState decodes a state file. The raw bytes only exist in plaintext
// inside the enclave callback.
func loadState(path string) (StateFile, error) {
	sealed, err := secure.ReadSealed(path)
	if err != nil {
		if os.IsNotExist(err) {
			return StateFile{}, crederrors.StateError{
				Path:       path,
				Message:    "no state snapshot found",
				Suggestion: "Run 'credops create' first, or pass --state with the snapshot path",
				Err:        err,
			}
		}
		return StateFile{}, crederrors.StateError{Path: path, Message: "failed to read state snapshot", Err: err}
	}
	defer sealed.Destroy()

	var sf StateFile
	err = sealed.Open(func(data []byte) error {
		return json.Unmarshal(data, &sf)
	})
	if err != nil {
		return StateFile{}, crederrors.StateError{
			Path:       path,
			Message:    "state snapshot is not valid JSON",
			Suggestion: "The file may be corrupted; re-run 'credops create' to produce a fresh snapshot",
			Err:        err,
		}
	}

	return sf, nil
}

// saveState writes the snapshot with owner-only permissions.
func saveState(path string, sf StateFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state snapshot: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return crederrors.StateError{Path: path, Message: "failed to write state snapshot", Err: err}
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
