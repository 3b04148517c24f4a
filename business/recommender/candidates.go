package recommender

import (
	"context"
	"fmt"

	"vpnAdvisor/domain"
)

// CatalogRepository provides the candidate catalog snapshot for one scoring
// pass. Implementations: gorm/postgres, CSV file, redis-cached decorator.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.VPNService, error)
}

// loadCatalog fetches the snapshot and applies the eligibility filter before
// any scoring happens.
func (s *Service) loadCatalog(ctx context.Context, pref domain.UserPreference) ([]domain.VPNService, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if s.eligChecker == nil {
		return rows, nil
	}

	eligible := make([]domain.VPNService, 0, len(rows))
	for _, vpn := range rows {
		ok, err := s.eligChecker.IsEligible(ctx, pref, vpn)
		if err != nil || !ok {
			continue
		}
		eligible = append(eligible, vpn)
	}

	return eligible, nil
}
