package riasec

import (
	"errors"
	"math"
	"testing"
)

func TestCompareFit(t *testing.T) {
	tests := []struct {
		learner string
		job     string
		want    float64
	}{
		{"IRA", "IRA", 1.0},
		// All letters shared; only position 2 aligns exactly.
		{"IRA", "ARI", 4.0 / 6.0},
		// Primary matches, rest disjoint.
		{"IRA", "ISC", 0.5},
		// Disjoint codes.
		{"IRA", "SEC", 0.0},
		// Primary and secondary match.
		{"SEC", "SEA", 5.0 / 6.0},
	}

	for _, tt := range tests {
		got, err := CompareFit(tt.learner, tt.job)
		if err != nil {
			t.Fatalf("CompareFit(%s, %s) error: %v", tt.learner, tt.job, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CompareFit(%s, %s) = %f, want %f", tt.learner, tt.job, got, tt.want)
		}
	}
}

func TestCompareFit_PositionWeighted(t *testing.T) {
	// A shared primary letter outweighs a shared amplifier letter.
	primary, _ := CompareFit("IRA", "IEC")
	tertiary, _ := CompareFit("IRA", "SEA")
	if primary <= tertiary {
		t.Errorf("primary match (%f) should outweigh tertiary match (%f)", primary, tertiary)
	}
}

func TestCompareFit_InvalidCode(t *testing.T) {
	_, err := CompareFit("XYZ", "IRA")
	var invalid *InvalidCodeError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want InvalidCodeError", err)
	}

	_, err = CompareFit("IRA", "IR")
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want InvalidCodeError", err)
	}
}

func TestCompareCodes_Breakdown(t *testing.T) {
	fit, err := CompareCodes("IRA", "IAC")
	if err != nil {
		t.Fatalf("CompareCodes error: %v", err)
	}

	if !fit.PrimaryMatch {
		t.Error("primary match = false, want true")
	}
	if fit.SecondaryMatch || fit.TertiaryMatch {
		t.Errorf("secondary/tertiary = %v/%v, want false/false",
			fit.SecondaryMatch, fit.TertiaryMatch)
	}
	// Shared: I (same position) and A (different position).
	if len(fit.SharedTypes) != 2 {
		t.Errorf("shared types = %v, want 2 entries", fit.SharedTypes)
	}
	if fit.Level == "" || fit.Recommendation == "" {
		t.Error("level or recommendation empty")
	}
}

func TestCompareCodes_IdenticalIsExcellent(t *testing.T) {
	fit, err := CompareCodes("SEC", "SEC")
	if err != nil {
		t.Fatalf("CompareCodes error: %v", err)
	}
	if fit.Score != 1.0 {
		t.Errorf("score = %f, want 1.0", fit.Score)
	}
	if fit.Level != "Excellent" {
		t.Errorf("level = %q, want Excellent", fit.Level)
	}
}
