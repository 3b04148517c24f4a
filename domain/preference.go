package domain

// UserPreference is the validated preference vector for one recommendation
// call. It is constructed once per request by the REST layer and never
// mutated afterwards.
type UserPreference struct {
	Speed               float64 `json:"speed"`
	Price               float64 `json:"price"`
	MaxDevices          int     `json:"max_devices"`
	LoggingPolicy       string  `json:"logging_policy"`
	Encryption          string  `json:"encryption"`
	HandshakeEncryption string  `json:"handshake_encryption"`
	TrialRequired       bool    `json:"trial_required"`
	// Country is free text; empty means no preference.
	Country string `json:"country"`
}
