package inference

import (
	"errors"
	"fmt"
)

// Scaler applies the training-time normalization to a raw feature vector
type Scaler interface {
	Transform(features []float64) ([]float64, error)
	NumFeatures() int
}

// StandardScaler is a fitted standardization: z = (x - mean) / scale
type StandardScaler struct {
	Mean         []float64 `json:"mean" yaml:"mean"`
	Scale        []float64 `json:"scale" yaml:"scale"`
	FeatureNames []string  `json:"feature_names,omitempty" yaml:"feature_names,omitempty"`
}

// LoadScaler reads a fitted scaler artifact from path
func LoadScaler(path string) (Scaler, error) {
	a, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	kind, err := a.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case "standard", "":
		s := &StandardScaler{}
		if err := a.decode(s); err != nil {
			return nil, err
		}
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("invalid scaler %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported scaler type %q", kind)
	}
}

// NumFeatures returns the width the scaler was fitted on
func (s *StandardScaler) NumFeatures() int {
	return len(s.Mean)
}

// Transform standardizes features. Only the vector length is checked.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Mean) {
		return nil, fmt.Errorf("%w: scaler expects %d features, got %d", ErrFeatureCount, len(s.Mean), len(features))
	}

	out := make([]float64, len(features))
	for i, x := range features {
		scale := s.Scale[i]
		// sklearn replaces zero variance columns with a unit scale
		if scale == 0 {
			scale = 1
		}
		out[i] = (x - s.Mean[i]) / scale
	}
	return out, nil
}

func (s *StandardScaler) validate() error {
	if len(s.Mean) == 0 {
		return errors.New("mean is empty")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("mean has %d values but scale has %d", len(s.Mean), len(s.Scale))
	}
	if len(s.FeatureNames) > 0 && len(s.FeatureNames) != len(s.Mean) {
		return fmt.Errorf("feature_names has %d entries, want %d", len(s.FeatureNames), len(s.Mean))
	}
	return nil
}
