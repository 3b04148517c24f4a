package domain

// Logging policy values produced by the upstream data-cleaning stage.
const (
	LoggingNoLogs      = "no_logs"
	LoggingPartialLogs = "partial_logs"
	LoggingFullLogs    = "full_logs"
)

// VPNService is one row of the catalog snapshot. The catalog is read-only
// during a scoring pass; rows are produced by the external ETL stage.
type VPNService struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	Name                string  `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Country             string  `gorm:"column:country;not null" json:"country"`
	Speed               float64 `gorm:"column:speed;not null" json:"speed"`
	Price               float64 `gorm:"column:price;not null" json:"price"`
	MaxDevices          int     `gorm:"column:max_devices;not null" json:"max_devices"`
	LoggingPolicy       string  `gorm:"column:logging_policy;not null" json:"logging_policy"`
	Encryption          string  `gorm:"column:encryption;not null" json:"encryption"`
	HandshakeEncryption string  `gorm:"column:handshake_encryption;not null" json:"handshake_encryption"`
	TrialAvailable      bool    `gorm:"column:trial_available;not null" json:"trial_available"`
}

func (VPNService) TableName() string {
	return "vpn_services"
}
