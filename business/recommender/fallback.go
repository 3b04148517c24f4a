package recommender

import (
	"sort"

	"vpnAdvisor/domain"
)

// FallbackNote is attached to every row of a degraded result set.
const FallbackNote = "no strong matches found; showing closest alternatives"

// fallbackNeeded decides whether the primary result set is acceptable:
// non-empty and with a best score at or above the threshold. Fully determined
// by the scored set; no external state.
func fallbackNeeded(primary []domain.ScoredVPN, threshold float64) bool {
	if len(primary) == 0 {
		return true
	}
	best := primary[0].Score
	for _, sc := range primary[1:] {
		if sc.Score > best {
			best = sc.Score
		}
	}
	return best < threshold
}

// fallbackRank re-ranks the full scored set by (score desc, speed desc, price
// asc, name asc), keeps the first n and clamps every score into [lo, hi] so
// degraded results stay visually distinguishable from confident primary ones.
func fallbackRank(all []domain.ScoredVPN, n int, lo, hi float64) []domain.ScoredVPN {
	ranked := make([]domain.ScoredVPN, len(all))
	copy(ranked, all)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].VPN.Speed != ranked[j].VPN.Speed {
			return ranked[i].VPN.Speed > ranked[j].VPN.Speed
		}
		if ranked[i].VPN.Price != ranked[j].VPN.Price {
			return ranked[i].VPN.Price < ranked[j].VPN.Price
		}
		return ranked[i].VPN.Name < ranked[j].VPN.Name
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	ranked = ranked[:n]

	for i := range ranked {
		ranked[i].Score = round2(clamp(ranked[i].Score, lo, hi))
	}

	return ranked
}
