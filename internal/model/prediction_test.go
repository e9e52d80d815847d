package model

import (
	"errors"
	"testing"
)

type formMap map[string]string

func (f formMap) GetPostForm(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func validForm() formMap {
	return formMap{
		"Age":         "30",
		"BMI":         "22.5",
		"Duration":    "30.0",
		"Heart_rate":  "105.0",
		"Body_Temp":   "40.5",
		"Gender_male": "male",
	}
}

func TestSexFlag(t *testing.T) {
	tests := []struct {
		gender string
		want   float64
	}{
		{"male", 1},
		{"Male", 1},
		{"MALE", 1},
		{" male ", 1},
		{"female", 0},
		{"other", 0},
		{"m", 0},
		{"males", 0},
	}

	for _, tt := range tests {
		t.Run(tt.gender, func(t *testing.T) {
			if got := SexFlag(tt.gender); got != tt.want {
				t.Errorf("SexFlag(%q) = %v, want %v", tt.gender, got, tt.want)
			}
		})
	}
}

func TestParsePredictionForm_EndToEndExample(t *testing.T) {
	req, err := ParsePredictionForm(validForm())
	if err != nil {
		t.Fatalf("ParsePredictionForm() error = %v", err)
	}

	want := []float64{30, 22.5, 30.0, 105.0, 40.5, 1}
	got := req.Features()
	if len(got) != FeatureCount {
		t.Fatalf("Features() length = %d, want %d", len(got), FeatureCount)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Features()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParsePredictionForm_Female(t *testing.T) {
	form := validForm()
	form["Gender_male"] = "Female"

	req, err := ParsePredictionForm(form)
	if err != nil {
		t.Fatalf("ParsePredictionForm() error = %v", err)
	}
	if f := req.Features(); f[5] != 0 {
		t.Errorf("sex flag = %v, want 0", f[5])
	}
}

func TestParsePredictionForm_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f formMap)
		wantField string
	}{
		{name: "missing BMI", mutate: func(f formMap) { delete(f, "BMI") }, wantField: "BMI"},
		{name: "missing gender", mutate: func(f formMap) { delete(f, "Gender_male") }, wantField: "Gender_male"},
		{name: "empty gender", mutate: func(f formMap) { f["Gender_male"] = "  " }, wantField: "Gender_male"},
		{name: "fractional age", mutate: func(f formMap) { f["Age"] = "30.5" }, wantField: "Age"},
		{name: "text age", mutate: func(f formMap) { f["Age"] = "thirty" }, wantField: "Age"},
		{name: "text duration", mutate: func(f formMap) { f["Duration"] = "long" }, wantField: "Duration"},
		{name: "nan heart rate", mutate: func(f formMap) { f["Heart_rate"] = "NaN" }, wantField: "Heart_rate"},
		{name: "inf body temp", mutate: func(f formMap) { f["Body_Temp"] = "+Inf" }, wantField: "Body_Temp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(form)

			_, err := ParsePredictionForm(form)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %s, want %s", verr.Field, tt.wantField)
			}
		})
	}
}
