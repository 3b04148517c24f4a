package postgres

import (
	"context"
	"fmt"

	"vpnAdvisor/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VPNRepository struct {
	DB *gorm.DB
}

func NewVPNRepository(db *gorm.DB) *VPNRepository {
	return &VPNRepository{
		DB: db,
	}
}

func (r *VPNRepository) FindAll(ctx context.Context) ([]domain.VPNService, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var services []domain.VPNService
	err := r.DB.WithContext(ctx).Order("name asc").Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find VPN services: %w", err)
	}

	return services, nil
}

// UpsertAll imports a catalog snapshot, keyed by the unique service name.
// Used by the admin CSV import; the scoring path never writes.
func (r *VPNRepository) UpsertAll(ctx context.Context, services []domain.VPNService) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(services) == 0 {
		return nil
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"country",
				"speed",
				"price",
				"max_devices",
				"logging_policy",
				"encryption",
				"handshake_encryption",
				"trial_available",
			}),
		}).
		Create(&services).Error
	if err != nil {
		return fmt.Errorf("failed to upsert VPN services: %w", err)
	}

	return nil
}
