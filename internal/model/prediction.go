package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Form field names submitted by the prediction page
const (
	FieldAge       = "Age"
	FieldBMI       = "BMI"
	FieldDuration  = "Duration"
	FieldHeartRate = "Heart_rate"
	FieldBodyTemp  = "Body_Temp"
	FieldGender    = "Gender_male"
)

// FormFields lists the submitted fields in feature order
var FormFields = []string{
	FieldAge,
	FieldBMI,
	FieldDuration,
	FieldHeartRate,
	FieldBodyTemp,
	FieldGender,
}

// FeatureCount is the width of the vector the scaler and model were fitted on
const FeatureCount = 6

// PredictionRequest holds the typed values of one prediction form submission
type PredictionRequest struct {
	Age       int
	BMI       float64
	Duration  float64 // minutes
	HeartRate float64 // bpm
	BodyTemp  float64 // °C
	Gender    string
}

// FormValues is satisfied by *gin.Context
type FormValues interface {
	GetPostForm(key string) (string, bool)
}

// ValidationError reports a missing or non-coercible form field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// ParsePredictionForm reads and coerces the six prediction fields
func ParsePredictionForm(form FormValues) (*PredictionRequest, error) {
	req := &PredictionRequest{}

	raw, err := requireField(form, FieldAge)
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ValidationError{Field: FieldAge, Reason: "must be an integer"}
	}
	req.Age = age

	floats := []struct {
		name string
		dst  *float64
	}{
		{FieldBMI, &req.BMI},
		{FieldDuration, &req.Duration},
		{FieldHeartRate, &req.HeartRate},
		{FieldBodyTemp, &req.BodyTemp},
	}
	for _, f := range floats {
		if *f.dst, err = parseFloatField(form, f.name); err != nil {
			return nil, err
		}
	}

	if req.Gender, err = requireField(form, FieldGender); err != nil {
		return nil, err
	}

	return req, nil
}

// SexFlag encodes the submitted gender: 1 for "male" (any case), 0 otherwise
func SexFlag(gender string) float64 {
	if strings.EqualFold(strings.TrimSpace(gender), "male") {
		return 1
	}
	return 0
}

// Features assembles the feature vector in training order:
// [Age, BMI, Duration, Heart_rate, Body_Temp, sex flag]
func (r *PredictionRequest) Features() []float64 {
	return []float64{
		float64(r.Age),
		r.BMI,
		r.Duration,
		r.HeartRate,
		r.BodyTemp,
		SexFlag(r.Gender),
	}
}

func requireField(form FormValues, name string) (string, error) {
	value, ok := form.GetPostForm(name)
	if !ok {
		return "", &ValidationError{Field: name, Reason: "field required"}
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Field: name, Reason: "must not be empty"}
	}
	return value, nil
}

func parseFloatField(form FormValues, name string) (float64, error) {
	raw, err := requireField(form, name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: name, Reason: "must be a number"}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ValidationError{Field: name, Reason: "must be a finite number"}
	}
	return value, nil
}
