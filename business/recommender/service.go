package recommender

import (
	"context"
	"fmt"
	"sort"

	"vpnAdvisor/domain"
	"vpnAdvisor/pkg/logger"
)

// ArtifactRepository hands out the pre-trained classifier and categorical
// codecs. Both are opaque artifacts produced by the offline trainer; main
// verifies they load before the server accepts any request.
type ArtifactRepository interface {
	Estimator() FitEstimator
	Codecs() *CodecSet
}

// ---- Usecase / Service ----

type Service struct {
	catalogRepo  CatalogRepository
	artifactRepo ArtifactRepository
	eligChecker  EligibilityChecker
	cfgRepo      ConfigRepository
	defaultCfg   Config
}

func NewService(
	catalogRepo CatalogRepository,
	artifactRepo ArtifactRepository,
	eligChecker EligibilityChecker,
	cfgRepo ConfigRepository,
	defaultCfg Config,
) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		artifactRepo: artifactRepo,
		eligChecker:  eligChecker,
		cfgRepo:      cfgRepo,
		defaultCfg:   defaultCfg,
	}
}

// Recommend scores the full catalog against one user preference and returns
// a deterministic top-N ranking. The call is synchronous, read-only over
// shared artifacts, and idempotent for an unchanged catalog.
func (s *Service) Recommend(
	ctx context.Context,
	pref domain.UserPreference,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	est := s.artifactRepo.Estimator()
	codecs := s.artifactRepo.Codecs()
	if est == nil || !codecs.Complete() {
		return nil, fmt.Errorf("model artifacts unavailable")
	}

	rows, err := s.loadCatalog(ctx, pref)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		RecommendRequestsTotal.WithLabelValues("sentinel").Inc()
		return sentinelResult(pref, "catalog is empty"), nil
	}

	cfg := s.loadConfig(ctx)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"candidate_count", len(rows),
		"speed", pref.Speed,
		"price", pref.Price,
		"country", pref.Country,
	)

	scored := s.scoreCatalog(ctx, pref, rows, est, codecs, cfg)

	primary := rankPrimary(scored, cfg.TopN)

	if fallbackNeeded(primary, cfg.FallbackThreshold) {
		logger.Warn("recommend_fallback", "trace_id", tid, "candidate_count", len(scored))
		RecommendRequestsTotal.WithLabelValues("fallback").Inc()
		degraded := fallbackRank(scored, cfg.FallbackN, cfg.FallbackMinScore, cfg.FallbackMaxScore)
		return toRecommendations(degraded, FallbackNote), nil
	}

	RecommendRequestsTotal.WithLabelValues("primary").Inc()
	return toRecommendations(primary, ""), nil
}

// ---- Scoring ----

// scoreCatalog computes one ScoredVPN per candidate: classifier fit blended
// with the similarity components under the configured weights.
func (s *Service) scoreCatalog(
	ctx context.Context,
	pref domain.UserPreference,
	rows []domain.VPNService,
	est FitEstimator,
	codecs *CodecSet,
	cfg Config,
) []domain.ScoredVPN {

	user := encodePreference(pref, codecs, cfg)

	scored := make([]domain.ScoredVPN, 0, len(rows))
	for _, vpn := range rows {
		cand := encodeCandidate(vpn, codecs)
		x := buildFeatureVector(user, cand)

		prob, err := est.Estimate(x)
		if err != nil {
			// One bad row must never abort the batch.
			logger.Warn("fit_estimation_failed",
				"trace_id", TraceIDFromContext(ctx),
				"vpn", vpn.Name,
				"error", err,
			)
			EstimatorFailuresTotal.Inc()
			prob = 0
		}
		fit := prob * 100

		sc := domain.ScoredVPN{
			VPN:           vpn,
			Fit:           fit,
			SpeedSim:      speedSim(pref.Speed, vpn.Speed),
			PriceSim:      priceSim(pref.Price, vpn.Price),
			EncryptionSim: codeSim(user.encryptionCode, cand.encryptionCode),
			LoggingSim:    codeSim(user.loggingCode, cand.loggingCode),
			CountrySim:    countrySim(pref.Country, vpn.Country),
		}

		composite := fit*cfg.WFit +
			sc.SpeedSim*cfg.WSpeedSim +
			sc.PriceSim*cfg.WPriceSim +
			sc.EncryptionSim*cfg.WEncryption +
			sc.LoggingSim*cfg.WLogging

		sc.Score = round2(clamp(composite, 0, 100))
		scored = append(scored, sc)
	}

	return scored
}

// rankPrimary sorts by score desc with deterministic tie-breaks (price asc,
// then name asc) and keeps the first n.
func rankPrimary(scored []domain.ScoredVPN, n int) []domain.ScoredVPN {
	ranked := make([]domain.ScoredVPN, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].VPN.Price != ranked[j].VPN.Price {
			return ranked[i].VPN.Price < ranked[j].VPN.Price
		}
		return ranked[i].VPN.Name < ranked[j].VPN.Name
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// ---- Output mapping ----

func toRecommendations(scored []domain.ScoredVPN, note string) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, len(scored))
	for _, sc := range scored {
		out = append(out, domain.Recommendation{
			Name:           sc.VPN.Name,
			Score:          sc.Score,
			Price:          sc.VPN.Price,
			Country:        sc.VPN.Country,
			LoggingPolicy:  sc.VPN.LoggingPolicy,
			TrialAvailable: sc.VPN.TrialAvailable,
			Encryption:     sc.VPN.Encryption,
			MaxDevices:     sc.VPN.MaxDevices,
			Note:           note,
		})
	}
	return out
}

// sentinelResult has the same shape as a real result row; callers never need
// a separate empty-state branch.
func sentinelResult(pref domain.UserPreference, reason string) []domain.Recommendation {
	return []domain.Recommendation{{
		Name:          domain.SentinelName,
		Score:         0,
		Country:       pref.Country,
		LoggingPolicy: pref.LoggingPolicy,
		Encryption:    pref.Encryption,
		Note:          reason,
	}}
}
