package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"calpredict/internal/inference"

	"go.uber.org/zap"
)

// PredictionService turns feature vectors into calorie predictions using the
// scaler and model loaded at startup. It holds no mutable state.
type PredictionService struct {
	scaler inference.Scaler
	model  inference.Regressor
	logger *zap.Logger
}

// NewPredictionService creates a new prediction service
func NewPredictionService(scaler inference.Scaler, model inference.Regressor, logger *zap.Logger) *PredictionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionService{
		scaler: scaler,
		model:  model,
		logger: logger,
	}
}

// NewPredictionServiceFromFiles loads the scaler and model artifacts and
// builds a service around them
func NewPredictionServiceFromFiles(scalerPath, modelPath string, logger *zap.Logger) (*PredictionService, error) {
	scaler, err := inference.LoadScaler(scalerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scaler: %w", err)
	}
	model, err := inference.LoadModel(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	if scaler.NumFeatures() != model.NumFeatures() {
		return nil, fmt.Errorf("scaler has %d features but model expects %d", scaler.NumFeatures(), model.NumFeatures())
	}
	return NewPredictionService(scaler, model, logger), nil
}

// NumFeatures returns the feature vector width the artifacts were fitted on
func (s *PredictionService) NumFeatures() int {
	return s.scaler.NumFeatures()
}

// Predict scales features, runs the model and rounds the output to two
// decimal places. The order of features is not checked, only their count.
func (s *PredictionService) Predict(ctx context.Context, features []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	start := time.Now()

	scaled, err := s.scaler.Transform(features)
	if err != nil {
		return 0, fmt.Errorf("scaler transform failed: %w", err)
	}

	raw, err := s.model.Predict(scaled)
	if err != nil {
		return 0, fmt.Errorf("model prediction failed: %w", err)
	}

	prediction := Round2(raw)
	s.logger.Debug("prediction computed",
		zap.Float64s("features", features),
		zap.Float64("raw", raw),
		zap.Float64("prediction", prediction),
		zap.Duration("took", time.Since(start)),
	)
	return prediction, nil
}

// Round2 rounds to two decimal places, halves away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
