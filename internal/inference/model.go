package inference

import (
	"fmt"
)

// Supported regression model types
const (
	TypeLinear       = "linear"
	TypeDecisionTree = "decision_tree"
	TypeRandomForest = "random_forest"
)

// Regressor maps a scaled feature vector to a scalar prediction
type Regressor interface {
	Predict(features []float64) (float64, error)
	NumFeatures() int
}

// LoadModel reads a trained regression model artifact from path.
// The concrete implementation is chosen by the document's "type" field.
func LoadModel(path string) (Regressor, error) {
	a, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	kind, err := a.kind()
	if err != nil {
		return nil, err
	}

	var model interface {
		Regressor
		validate() error
	}
	switch kind {
	case TypeLinear:
		model = &LinearRegression{}
	case TypeDecisionTree:
		model = &RegressionTree{}
	case TypeRandomForest:
		model = &RandomForest{}
	case "":
		return nil, fmt.Errorf("model artifact %s has no type", path)
	default:
		return nil, fmt.Errorf("unsupported model type %q", kind)
	}

	if err := a.decode(model); err != nil {
		return nil, err
	}
	if err := model.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s model %s: %w", kind, path, err)
	}
	return model, nil
}

func checkWidth(want int, features []float64) error {
	if len(features) != want {
		return fmt.Errorf("%w: model expects %d features, got %d", ErrFeatureCount, want, len(features))
	}
	return nil
}
