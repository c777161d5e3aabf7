package ml

import (
	"math"
	"strconv"
	"testing"

	"bcdiag/errorutil"
)

func fullForm() map[string]string {
	form := make(map[string]string, FeatureCount)
	for i, name := range FeatureNames {
		form[name] = strconv.FormatFloat(float64(i)+0.5, 'f', -1, 64)
	}
	return form
}

func lookupIn(form map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := form[name]
		return v, ok
	}
}

func TestFeatureSchema(t *testing.T) {
	if len(FeatureNames) != 30 {
		t.Fatalf("expected 30 features, got %d", len(FeatureNames))
	}
	if FeatureNames[0] != "radius_mean" || FeatureNames[29] != "fractal_dimension_worst" {
		t.Errorf("unexpected schema ends: %q .. %q", FeatureNames[0], FeatureNames[29])
	}
	if FeatureNames[IdxConcavePointsMean] != "concave points_mean" {
		t.Errorf("index %d should be concave points_mean, got %q", IdxConcavePointsMean, FeatureNames[IdxConcavePointsMean])
	}
	if FeatureNames[IdxConcavityMean] != "concavity_mean" || FeatureNames[IdxAreaMean] != "area_mean" {
		t.Error("key feature indices do not match the schema")
	}

	names := FeatureNameList()
	names[0] = "mutated"
	if FeatureNames[0] != "radius_mean" {
		t.Error("FeatureNameList must return a copy")
	}
}

func TestParseFeatures(t *testing.T) {
	vec, err := ParseFeatures(lookupIn(fullForm()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range vec {
		if vec[i] != float64(i)+0.5 {
			t.Fatalf("feature %d = %v, want %v", i, vec[i], float64(i)+0.5)
		}
	}
}

func TestParseFeaturesMissing(t *testing.T) {
	for _, name := range FeatureNames {
		t.Run(name, func(t *testing.T) {
			form := fullForm()
			delete(form, name)
			_, err := ParseFeatures(lookupIn(form))
			if !errorutil.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if want := "Missing feature: " + name; err.Error() != want {
				t.Errorf("error = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestParseFeaturesFirstMissingWins(t *testing.T) {
	form := fullForm()
	delete(form, "fractal_dimension_worst")
	form["texture_mean"] = ""
	form["radius_mean"] = "abc"

	_, err := ParseFeatures(lookupIn(form))
	if err == nil || err.Error() != invalidInputMessage {
		t.Fatalf("radius_mean is checked first and is invalid, got %v", err)
	}

	form["radius_mean"] = "1"
	_, err = ParseFeatures(lookupIn(form))
	if err == nil || err.Error() != "Missing feature: texture_mean" {
		t.Fatalf("expected texture_mean to be reported, got %v", err)
	}
}

func TestParseFeaturesInvalid(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "word", value: "abc", wantErr: true},
		{name: "whitespace only", value: "   ", wantErr: true},
		{name: "comma decimal", value: "1,5", wantErr: true},
		{name: "padded number", value: " 12.5 ", wantErr: false},
		{name: "exponent", value: "1e3", wantErr: false},
		{name: "negative", value: "-3.2", wantErr: false},
		{name: "overflow", value: "1e500", wantErr: false},
		{name: "negative overflow", value: "-1e500", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := fullForm()
			form["area_se"] = tt.value
			_, err := ParseFeatures(lookupIn(form))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err.Error() != invalidInputMessage {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestParseFeaturesOverflow(t *testing.T) {
	form := fullForm()
	for _, name := range FeatureNames {
		form[name] = "0"
	}
	form["radius_mean"] = "1e500"
	form["area_se"] = "-1e500"

	vec, err := ParseFeatures(lookupIn(form))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(vec[IdxRadiusMean], 1) {
		t.Errorf("radius_mean = %v, want +Inf", vec[IdxRadiusMean])
	}
	if !math.IsInf(vec[13], -1) {
		t.Errorf("area_se = %v, want -Inf", vec[13])
	}
	if got := NewHeuristic().Score(vec); got != 1 {
		t.Errorf("Score() = %d, want 1", got)
	}
}
