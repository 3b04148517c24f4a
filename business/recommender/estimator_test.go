//go:build !integration

package recommender

import (
	"math"
	"testing"
)

func TestLogisticModelEstimateRange(t *testing.T) {
	model := &LogisticModel{
		Coef:      []float64{0.1, -0.2, 0.5, 0.05, 0.05, -0.3, 0.02},
		Intercept: 0.1,
	}

	inputs := [][FeatureDim]float64{
		{},
		{6.85, 5.0, 1, 1, 0, 0, 6},
		{1000, 100, 1, 5, 5, 2, 100},
		{-50, -10, 0, -1, -1, -1, -3},
	}

	for _, x := range inputs {
		p, err := model.Estimate(x)
		if err != nil {
			t.Fatalf("Estimate(%v) returned error: %v", x, err)
		}
		if p < 0 || p > 1 {
			t.Errorf("Estimate(%v) = %v, outside [0,1]", x, p)
		}
	}
}

func TestLogisticModelRejectsMalformedInput(t *testing.T) {
	model := &LogisticModel{
		Coef:      []float64{1, 1, 1, 1, 1, 1, 1},
		Intercept: 0,
	}

	var x [FeatureDim]float64
	x[3] = math.NaN()
	if _, err := model.Estimate(x); err == nil {
		t.Error("NaN feature accepted")
	}

	x[3] = math.Inf(1)
	if _, err := model.Estimate(x); err == nil {
		t.Error("Inf feature accepted")
	}
}

func TestLogisticModelRejectsWrongDimension(t *testing.T) {
	model := &LogisticModel{Coef: []float64{1, 2, 3}}

	var x [FeatureDim]float64
	if _, err := model.Estimate(x); err == nil {
		t.Error("short coefficient vector accepted")
	}
}

func TestLogisticModelMonotonic(t *testing.T) {
	// A positive coefficient must increase the probability.
	model := &LogisticModel{
		Coef:      []float64{1, 0, 0, 0, 0, 0, 0},
		Intercept: 0,
	}

	low, _ := model.Estimate([FeatureDim]float64{-2})
	mid, _ := model.Estimate([FeatureDim]float64{0})
	high, _ := model.Estimate([FeatureDim]float64{2})

	if !(low < mid && mid < high) {
		t.Errorf("expected monotonic probabilities, got %v < %v < %v", low, mid, high)
	}
	if !almostEqual(mid, 0.5) {
		t.Errorf("sigmoid(0) = %v, want 0.5", mid)
	}
}
