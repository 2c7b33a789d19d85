package ranking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, years int, skills ...string) types.Candidate {
	return types.Candidate{
		UserID:   uuid.New(),
		FullName: name,
		Profile:  types.ExtractedProfile{Skills: skills, ExperienceYears: years, Location: "Remote"},
	}
}

func TestRankCandidates_SortedByPercentage(t *testing.T) {
	candidates := []types.Candidate{
		candidate("weak", 1, "PHP"),
		candidate("strong", 4, "Go", "PostgreSQL"),
		candidate("partial", 4, "Go"),
	}
	filters := types.SearchFilters{RequiredSkills: []string{"Go", "PostgreSQL"}, MinExperience: 3, MaxExperience: 5}

	ranked := RankCandidates(candidates, filters, RankOptions{})
	require.Len(t, ranked, 3)
	assert.Equal(t, "strong", ranked[0].FullName)
	assert.Equal(t, 100, ranked[0].Match.Percentage)
	assert.Equal(t, "partial", ranked[1].FullName)
	assert.Equal(t, 65, ranked[1].Match.Percentage)
	assert.Equal(t, "weak", ranked[2].FullName)
	assert.Equal(t, 18, ranked[2].Match.Percentage)
}

func TestRankCandidates_StableTies(t *testing.T) {
	candidates := []types.Candidate{
		candidate("first", 4, "Go"),
		candidate("second", 4, "Go"),
		candidate("third", 4, "Go"),
	}
	filters := types.SearchFilters{RequiredSkills: []string{"Go"}, MinExperience: 3, MaxExperience: 5}

	ranked := RankCandidates(candidates, filters, RankOptions{})
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].FullName)
	assert.Equal(t, "second", ranked[1].FullName)
	assert.Equal(t, "third", ranked[2].FullName)
}

func TestRankCandidates_Options(t *testing.T) {
	candidates := []types.Candidate{
		candidate("a", 4, "Go"),
		candidate("b", 4, "Rust"),
		candidate("c", 4, "Go", "Rust"),
	}
	filters := types.SearchFilters{RequiredSkills: []string{"Go", "Rust"}, MinExperience: 3, MaxExperience: 5}

	ranked := RankCandidates(candidates, filters, RankOptions{MinPercentage: 70})
	require.Len(t, ranked, 1)
	assert.Equal(t, "c", ranked[0].FullName)

	ranked = RankCandidates(candidates, filters, RankOptions{Limit: 2})
	require.Len(t, ranked, 2)
	assert.Equal(t, "c", ranked[0].FullName)
	assert.Equal(t, "a", ranked[1].FullName)
}

func TestRankCandidates_Empty(t *testing.T) {
	ranked := RankCandidates(nil, types.SearchFilters{RequiredSkills: []string{}}, RankOptions{})
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}
