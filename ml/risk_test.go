package ml

import "testing"

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		confidence float64
		class      Class
		want       string
	}{
		{99, Benign, RiskVeryLow},
		{95, Benign, RiskVeryLow},
		{94.99, Benign, RiskLow},
		{85, Benign, RiskLow},
		{84.99, Benign, RiskUncertain},
		{50, Benign, RiskUncertain},
		{98, Malignant, RiskHigh},
		{95.0, Malignant, RiskHigh},
		{94.99, Malignant, RiskModerateHigh},
		{85, Malignant, RiskModerateHigh},
		{84.99, Malignant, RiskUncertain},
		{0, Malignant, RiskUncertain},
	}

	for _, tt := range tests {
		if got := RiskLevel(tt.confidence, tt.class); got != tt.want {
			t.Errorf("RiskLevel(%v, %v) = %q, want %q", tt.confidence, tt.class, got, tt.want)
		}
	}
}

func TestClassLabels(t *testing.T) {
	if Benign.Diagnosis() != "Benign (Not Cancer)" {
		t.Errorf("unexpected benign diagnosis %q", Benign.Diagnosis())
	}
	if Malignant.Diagnosis() != "Malignant (Cancer)" {
		t.Errorf("unexpected malignant diagnosis %q", Malignant.Diagnosis())
	}
	if Benign.String() != "Benign" || Malignant.String() != "Malignant" {
		t.Errorf("unexpected short names %q %q", Benign, Malignant)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     float64
	}{
		{98.00000000000001, 2, 98},
		{2.0000000000000018, 2, 2},
		{9.999999999999998, 2, 10},
		{0.96300, 4, 0.963},
		{88.0, 2, 88},
	}
	for _, tt := range tests {
		if got := Round(tt.value, tt.decimals); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.value, tt.decimals, got, tt.want)
		}
	}
}
