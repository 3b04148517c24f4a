package recommender

import (
	"context"

	"vpnAdvisor/domain"
)

// Config carries the scoring weights and fallback thresholds. The classifier's
// own judgement dominates; the similarity terms are a stabilizing adjustment
// so close numeric matches stay rewarded even under a shaky classifier.
type Config struct {
	WFit        float64
	WSpeedSim   float64
	WPriceSim   float64
	WEncryption float64
	WLogging    float64

	TopN              int
	FallbackN         int
	FallbackThreshold float64
	FallbackMinScore  float64
	FallbackMaxScore  float64

	// Defaults used when a user-supplied categorical value was never seen
	// at training time.
	DefaultEncryption string
	DefaultHandshake  string
	DefaultLogging    string
}

const (
	defaultWFit        = 0.6
	defaultWSpeedSim   = 15.0
	defaultWPriceSim   = 15.0
	defaultWEncryption = 5.0
	defaultWLogging    = 5.0

	defaultTopN              = 10
	defaultFallbackN         = 5
	defaultFallbackThreshold = 30.0
	defaultFallbackMinScore  = 20.0
	defaultFallbackMaxScore  = 80.0

	defaultEncryption = "AES-256"
	defaultHandshake  = "RSA-4096"
	defaultLogging    = domain.LoggingNoLogs
)

func DefaultConfig() Config {
	return Config{
		WFit:        defaultWFit,
		WSpeedSim:   defaultWSpeedSim,
		WPriceSim:   defaultWPriceSim,
		WEncryption: defaultWEncryption,
		WLogging:    defaultWLogging,

		TopN:              defaultTopN,
		FallbackN:         defaultFallbackN,
		FallbackThreshold: defaultFallbackThreshold,
		FallbackMinScore:  defaultFallbackMinScore,
		FallbackMaxScore:  defaultFallbackMaxScore,

		DefaultEncryption: defaultEncryption,
		DefaultHandshake:  defaultHandshake,
		DefaultLogging:    defaultLogging,
	}
}

// ConfigRepository reads the externally managed scoring weight vector.
type ConfigRepository interface {
	GetLatest(ctx context.Context) (domain.ScoringConfig, bool, error)
	Upsert(ctx context.Context, cfg domain.ScoringConfig) error
}
