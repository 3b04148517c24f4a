package recommender

import (
	"context"
	"fmt"

	"vpnAdvisor/domain"
	"vpnAdvisor/pkg/logger"
)

// DebugRecommend runs the same primary scoring pass as Recommend but returns
// the full per-candidate breakdown (fit, every similarity component, the
// feature vector) for inspection. No fallback re-ranking is applied.
func (s *Service) DebugRecommend(
	ctx context.Context,
	pref domain.UserPreference,
	limit int,
) ([]domain.ScoredVPN, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultTopN
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
		return []domain.ScoredVPN{}, nil
	}

	cfg := s.loadConfig(ctx)

	logger.Debug("recommend_debug",
		"trace_id", TraceIDFromContext(ctx),
		"candidate_count", len(rows),
		"limit", limit,
	)

	scored := s.scoreCatalog(ctx, pref, rows, est, codecs, cfg)

	user := encodePreference(pref, codecs, cfg)
	for i := range scored {
		cand := encodeCandidate(scored[i].VPN, codecs)
		scored[i].Features = featuresToSlice(buildFeatureVector(user, cand))
	}

	return rankPrimary(scored, limit), nil
}
