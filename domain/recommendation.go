package domain

// SentinelName marks the single row returned when no recommendation can be
// produced at all. It has the same shape as a real result row so callers do
// not need a separate empty-state branch.
const SentinelName = "No recommendations available"

// Recommendation is one row of the ranked output.
type Recommendation struct {
	Name           string  `json:"name"`
	Score          float64 `json:"score"`
	Price          float64 `json:"price"`
	Country        string  `json:"country"`
	LoggingPolicy  string  `json:"logging_policy"`
	TrialAvailable bool    `json:"trial_available"`
	Encryption     string  `json:"encryption"`
	MaxDevices     int     `json:"max_devices"`
	// Note is set only on sentinel and fallback rows.
	Note string `json:"note,omitempty"`
}

// ScoredVPN is the ephemeral per-candidate scoring record, exposed through
// the debug endpoint for inspection. Never persisted.
type ScoredVPN struct {
	VPN           VPNService `json:"vpn"`
	Fit           float64    `json:"fit"`
	SpeedSim      float64    `json:"speed_sim"`
	PriceSim      float64    `json:"price_sim"`
	EncryptionSim float64    `json:"encryption_sim"`
	LoggingSim    float64    `json:"logging_sim"`
	CountrySim    float64    `json:"country_sim"`
	Score         float64    `json:"score"`
	Features      []float64  `json:"features,omitempty"`
}
