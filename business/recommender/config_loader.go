package recommender

import "context"

// loadConfig reads the stored weight vector, falling back to the compiled-in
// defaults when the repo is absent, errors, or holds nothing yet. Thresholds
// and categorical defaults always come from the default config; only the
// blending weights are externally tunable.
func (s *Service) loadConfig(ctx context.Context) Config {
	cfg := s.defaultCfg

	if s.cfgRepo == nil {
		return cfg
	}

	stored, ok, err := s.cfgRepo.GetLatest(ctx)
	if err != nil || !ok {
		return cfg
	}

	cfg.WFit = stored.WFit
	cfg.WSpeedSim = stored.WSpeedSim
	cfg.WPriceSim = stored.WPriceSim
	cfg.WEncryption = stored.WEncryption
	cfg.WLogging = stored.WLogging

	if stored.FallbackThreshold > 0 {
		cfg.FallbackThreshold = stored.FallbackThreshold
	}

	return cfg
}
