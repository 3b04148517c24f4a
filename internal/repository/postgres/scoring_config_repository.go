package postgres

import (
	"context"
	"errors"

	"vpnAdvisor/business/recommender"
	"vpnAdvisor/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoringConfigRepository struct {
	DB *gorm.DB
}

var _ recommender.ConfigRepository = (*ScoringConfigRepository)(nil)

func NewScoringConfigRepository(db *gorm.DB) *ScoringConfigRepository {
	return &ScoringConfigRepository{DB: db}
}

func (r *ScoringConfigRepository) GetLatest(ctx context.Context) (domain.ScoringConfig, bool, error) {
	var cfg domain.ScoringConfig

	err := r.DB.WithContext(ctx).
		Order("version desc").
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ScoringConfig{}, false, nil
	}
	if err != nil {
		return domain.ScoringConfig{}, false, err
	}

	return cfg, true, nil
}

func (r *ScoringConfigRepository) Upsert(ctx context.Context, cfg domain.ScoringConfig) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "version"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"w_fit",
				"w_speed_sim",
				"w_price_sim",
				"w_encryption",
				"w_logging",
				"fallback_threshold",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
