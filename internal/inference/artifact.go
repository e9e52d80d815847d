// Package inference loads trained scaler and regression artifacts and
// evaluates them in memory.
//
// Artifacts are exported by the training pipeline as JSON or YAML documents.
// Everything returned by this package is immutable after loading and safe for
// concurrent use.
package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrFeatureCount is returned when a vector does not match the fitted width
var ErrFeatureCount = errors.New("feature count mismatch")

// artifact is a raw artifact document and the format it is encoded in
type artifact struct {
	path    string
	format  string
	payload []byte
}

// readArtifact reads path and detects the format from the file extension
func readArtifact(path string) (*artifact, error) {
	var format string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		format = "json"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("unsupported artifact format %q (expected .json, .yaml or .yml)", ext)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("artifact %s is empty", path)
	}

	return &artifact{path: path, format: format, payload: payload}, nil
}

// kind returns the artifact's "type" discriminator
func (a *artifact) kind() (string, error) {
	var h struct {
		Type string `json:"type" yaml:"type"`
	}
	if err := a.decode(&h); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(h.Type)), nil
}

// decode unmarshals the whole document into v
func (a *artifact) decode(v any) error {
	var err error
	if a.format == "yaml" {
		err = yaml.Unmarshal(a.payload, v)
	} else {
		err = json.Unmarshal(a.payload, v)
	}
	if err != nil {
		return fmt.Errorf("failed to decode artifact %s: %w", a.path, err)
	}
	return nil
}
