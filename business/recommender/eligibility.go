package recommender

import (
	"context"

	"vpnAdvisor/domain"
)

// EligibilityChecker decides if a candidate may be recommended at all
// (regional availability, blocklists). Filtered candidates never reach
// scoring.
type EligibilityChecker interface {
	IsEligible(ctx context.Context, pref domain.UserPreference, vpn domain.VPNService) (bool, error)
}

// NoopEligibilityChecker is the default implementation that allows everything.
type NoopEligibilityChecker struct{}

func (NoopEligibilityChecker) IsEligible(ctx context.Context, pref domain.UserPreference, vpn domain.VPNService) (bool, error) {
	return true, nil
}
