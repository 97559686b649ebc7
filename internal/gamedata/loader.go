package gamedata

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load reads and decodes a YAML file from the embedded filesystem.
// Unknown fields are rejected so typos in data files fail loudly.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}
