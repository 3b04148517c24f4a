package domain

import "time"

// ScoringConfig is the externally supplied, versioned scoring weight vector.
// The engine reads the latest version per call and falls back to compiled-in
// defaults when none is stored.
type ScoringConfig struct {
	Version int `json:"version" gorm:"column:version;primaryKey"`

	WFit        float64 `json:"w_fit" gorm:"column:w_fit"`
	WSpeedSim   float64 `json:"w_speed_sim" gorm:"column:w_speed_sim"`
	WPriceSim   float64 `json:"w_price_sim" gorm:"column:w_price_sim"`
	WEncryption float64 `json:"w_encryption" gorm:"column:w_encryption"`
	WLogging    float64 `json:"w_logging" gorm:"column:w_logging"`

	FallbackThreshold float64 `json:"fallback_threshold" gorm:"column:fallback_threshold"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (ScoringConfig) TableName() string {
	return "scoring_configs"
}
