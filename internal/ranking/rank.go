package ranking

import (
	"sort"

	"github.com/jonathan/talent-match/internal/types"
)

// RankOptions limits a ranking.
type RankOptions struct {
	// MinPercentage drops candidates scoring below it.
	MinPercentage int
	// Limit caps the result length; zero means no cap.
	Limit int
}

// RankCandidates scores every candidate against filters and returns them best first.
// Candidates with equal percentages keep their input order.
func RankCandidates(candidates []types.Candidate, filters types.SearchFilters, opts RankOptions) []types.RankedCandidate {
	ranked := make([]types.RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		match := ScoreCandidate(c.Profile, filters)
		if match.Percentage < opts.MinPercentage {
			continue
		}
		ranked = append(ranked, types.RankedCandidate{Candidate: c, Match: match})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Match.Percentage > ranked[j].Match.Percentage
	})

	if opts.Limit > 0 && len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	return ranked
}
