package recommender

import (
	"math"
	"strings"
)

// Similarity functions return a closeness value in [0, 1], higher = closer.
// Speed and price use distance decay with different bandwidths (100 vs 50):
// at catalog scales a price gap bites harder than a speed gap. Categorical
// fields are exact-match only; partial cryptographic-strength equivalence is
// out of scope here.

func speedSim(user, candidate float64) float64 {
	return clamp01(1 - math.Abs(candidate-user)/100)
}

func priceSim(user, candidate float64) float64 {
	return 1 - math.Min(math.Abs(candidate-user)/50, 1)
}

// codeSim covers both encryption and logging-policy similarity: 1 iff the
// trained codes match exactly. An UnknownCode candidate never matches because
// the user side is always resolved to a trained code.
func codeSim(userCode, candidateCode int) float64 {
	if candidateCode == UnknownCode {
		return 0
	}
	if userCode == candidateCode {
		return 1
	}
	return 0
}

// countrySim works on raw strings: exact case-insensitive match 1.0,
// substring match 0.7 (multi-locale labels like "République française,
// France"), otherwise 0.3. An empty user country means no preference and
// scores a neutral 0.5 for every candidate.
func countrySim(user, candidate string) float64 {
	u := strings.TrimSpace(user)
	if u == "" {
		return 0.5
	}
	uf := strings.ToLower(u)
	cf := strings.ToLower(strings.TrimSpace(candidate))
	switch {
	case uf == cf:
		return 1.0
	case strings.Contains(cf, uf):
		return 0.7
	default:
		return 0.3
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
