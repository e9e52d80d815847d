package inference

import "errors"

// LinearRegression is an ordinary least squares model: y = w·x + b
type LinearRegression struct {
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
}

func (m *LinearRegression) NumFeatures() int {
	return len(m.Coefficients)
}

func (m *LinearRegression) Predict(features []float64) (float64, error) {
	if err := checkWidth(len(m.Coefficients), features); err != nil {
		return 0, err
	}
	y := m.Intercept
	for i, w := range m.Coefficients {
		y += w * features[i]
	}
	return y, nil
}

func (m *LinearRegression) validate() error {
	if len(m.Coefficients) == 0 {
		return errors.New("coefficients are empty")
	}
	return nil
}
