// Package config loads the credops desired-state file (credops.yaml): the
// declared entries and the hash algorithm. Documents are schema-validated
// before they are mapped onto domain types.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	crederrors "github.com/systmms/credops/internal/errors"
	"github.com/systmms/credops/pkg/credential"
)

//go:embed schema.json
var schemaJSON string

// Definition mirrors the desired-state file structure.
type Definition struct {
	Version   int           `yaml:"version" json:"version"`
	Algorithm string        `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Entries   []EntryConfig `yaml:"entries" json:"entries"`
}

// EntryConfig is one declared entry. Password stays a pointer so a document
// can distinguish an omitted password (generate one) from an empty string.
type EntryConfig struct {
	Username string  `yaml:"username" json:"username"`
	Password *string `yaml:"password,omitempty" json:"password,omitempty"`
}

// Load reads, validates, and maps a desired-state file.
func Load(path string) (credential.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return credential.Spec{}, crederrors.ConfigError{
				Field:      "path",
				Value:      path,
				Message:    "desired-state file not found",
				Suggestion: "Create a credops.yaml declaring your entries, or pass --inputs",
			}
		}
		return credential.Spec{}, crederrors.UserError{
			Message:    "Failed to read desired-state file",
			Details:    err.Error(),
			Suggestion: "Check file permissions and path",
			Err:        err,
		}
	}

	return Parse(data)
}

// Parse validates and maps a raw desired-state document.
func Parse(data []byte) (credential.Spec, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return credential.Spec{}, crederrors.ConfigError{
			Message:    "desired-state file is not valid YAML",
			Suggestion: "Check for indentation errors and missing quotes",
		}
	}

	if err := validateSchema(raw); err != nil {
		return credential.Spec{}, err
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return credential.Spec{}, crederrors.ConfigError{
			Message:    "desired-state file does not match the expected structure",
			Suggestion: "See the documented credops.yaml format",
		}
	}

	return def.Spec()
}

// Spec maps the file structure onto the domain types.
func (d Definition) Spec() (credential.Spec, error) {
	algorithm, err := credential.ParseAlgorithm(d.Algorithm)
	if err != nil {
		return credential.Spec{}, crederrors.ConfigError{
			Field:      "algorithm",
			Value:      d.Algorithm,
			Message:    err.Error(),
			Suggestion: fmt.Sprintf("Use %q or omit the field", credential.AlgorithmBcrypt),
		}
	}

	entries := make([]credential.Entry, len(d.Entries))
	for i, ec := range d.Entries {
		entry := credential.Entry{Username: ec.Username}
		if ec.Password != nil {
			entry.Password = credential.PasswordOf(*ec.Password)
		}
		entries[i] = entry
	}

	return credential.Spec{Entries: entries, Algorithm: algorithm}, nil
}

// validateSchema checks the decoded document against the embedded JSON
// Schema, surfacing every violation at once.
func validateSchema(doc interface{}) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to prepare document for validation: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(jsonData),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var messages []string
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return crederrors.ConfigError{
			Message:    "desired-state file failed schema validation:\n  - " + strings.Join(messages, "\n  - "),
			Suggestion: "Fix the listed fields; each entry needs a username and an optional password",
		}
	}

	return nil
}
