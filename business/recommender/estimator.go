package recommender

import (
	"fmt"
	"math"
)

// FitEstimator maps an ordered feature vector to a fit probability in [0, 1].
// Implementations wrap a pre-trained classifier artifact.
type FitEstimator interface {
	Estimate(x [FeatureDim]float64) (float64, error)
}

// LogisticModel is a pre-trained logistic regression: probability is the
// sigmoid of coef·x + intercept. The artifact store decodes it from a gob
// file produced by the offline trainer.
type LogisticModel struct {
	Coef      []float64
	Intercept float64
}

var _ FitEstimator = (*LogisticModel)(nil)

func (m *LogisticModel) Estimate(x [FeatureDim]float64) (float64, error) {
	if len(m.Coef) != FeatureDim {
		return 0, fmt.Errorf("model has %d coefficients, want %d", len(m.Coef), FeatureDim)
	}

	z := m.Intercept
	for i := 0; i < FeatureDim; i++ {
		v := x[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("malformed feature at index %d", i)
		}
		z += m.Coef[i] * v
	}

	return 1.0 / (1.0 + math.Exp(-z)), nil
}
