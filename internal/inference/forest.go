package inference

import (
	"errors"
	"fmt"
)

// RandomForest averages the outputs of its regression trees
type RandomForest struct {
	Trees    []ForestTree `json:"trees" yaml:"trees"`
	Features int          `json:"n_features" yaml:"n_features"`
}

// ForestTree is a member tree; it shares the forest's feature width
type ForestTree struct {
	Nodes []TreeNode `json:"nodes" yaml:"nodes"`
}

func (f *RandomForest) NumFeatures() int {
	return f.Features
}

func (f *RandomForest) Predict(features []float64) (float64, error) {
	if err := checkWidth(f.Features, features); err != nil {
		return 0, err
	}

	var sum float64
	for _, tree := range f.Trees {
		t := RegressionTree{Nodes: tree.Nodes, Features: f.Features}
		sum += t.eval(features)
	}
	return sum / float64(len(f.Trees)), nil
}

func (f *RandomForest) validate() error {
	if f.Features <= 0 {
		return errors.New("n_features must be positive")
	}
	if len(f.Trees) == 0 {
		return errors.New("forest has no trees")
	}
	for i, tree := range f.Trees {
		if err := validateNodes(tree.Nodes, f.Features); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}
