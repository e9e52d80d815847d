package inference

import (
	"errors"
	"fmt"
)

// leafChild marks a node without children
const leafChild = -1

// TreeNode is one node of a flattened regression tree. Nodes are stored in
// pre-order, so children always have a larger index than their parent.
type TreeNode struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Value     float64 `json:"value" yaml:"value"`
}

func (n TreeNode) isLeaf() bool {
	return n.Left == leafChild
}

// RegressionTree is a single CART regression tree
type RegressionTree struct {
	Nodes    []TreeNode `json:"nodes" yaml:"nodes"`
	Features int        `json:"n_features" yaml:"n_features"`
}

func (t *RegressionTree) NumFeatures() int {
	return t.Features
}

func (t *RegressionTree) Predict(features []float64) (float64, error) {
	if err := checkWidth(t.Features, features); err != nil {
		return 0, err
	}
	return t.eval(features), nil
}

// eval walks the tree; the structure was checked by validate
func (t *RegressionTree) eval(features []float64) float64 {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.isLeaf() {
			return node.Value
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

func (t *RegressionTree) validate() error {
	if t.Features <= 0 {
		return errors.New("n_features must be positive")
	}
	return validateNodes(t.Nodes, t.Features)
}

func validateNodes(nodes []TreeNode, numFeatures int) error {
	if len(nodes) == 0 {
		return errors.New("tree has no nodes")
	}
	for i, node := range nodes {
		if node.isLeaf() {
			if node.Right != leafChild {
				return fmt.Errorf("node %d: leaf has a right child", i)
			}
			continue
		}
		if node.Feature < 0 || node.Feature >= numFeatures {
			return fmt.Errorf("node %d: feature index %d out of range", i, node.Feature)
		}
		for _, child := range []int{node.Left, node.Right} {
			if child <= i || child >= len(nodes) {
				return fmt.Errorf("node %d: invalid child index %d", i, child)
			}
		}
	}
	return nil
}
