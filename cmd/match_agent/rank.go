package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/parsing"
	"github.com/jonathan/talent-match/internal/ranking"
	"github.com/jonathan/talent-match/internal/types"
	embedded "github.com/jonathan/talent-match/schemas"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates from a JSON file against recruiter filters",
	RunE:  runRank,
}

var (
	rankCandidatesFile string
	rankSkills         string
	rankExperience     string
	rankLocation       string
	rankJobType        string
	rankLimit          int
	rankMinPercentage  int
	rankOutputFile     string
)

func init() {
	rankCmd.Flags().StringVar(&rankCandidatesFile, "candidates", "", "Path to candidates JSON array (required)")
	rankCmd.Flags().StringVar(&rankSkills, "skills", "", "Comma-separated required skills")
	rankCmd.Flags().StringVar(&rankExperience, "experience", "", "Experience bucket: 0-2, 3-5, 6-10 or 10+")
	rankCmd.Flags().StringVar(&rankLocation, "location", "", "Preferred location (informational)")
	rankCmd.Flags().StringVar(&rankJobType, "job-type", "", "any, remote, hybrid or onsite (informational)")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum candidates to return (default from config)")
	rankCmd.Flags().IntVar(&rankMinPercentage, "min-percentage", 0, "Drop candidates scoring below this")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = rankCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	if rankMinPercentage < 0 || rankMinPercentage > 100 {
		return fmt.Errorf("--min-percentage must be between 0 and 100")
	}

	var candidates []types.Candidate
	if err := readJSON(rankCandidatesFile, &candidates); err != nil {
		return err
	}
	for i := range candidates {
		candidates[i].Profile = candidates[i].Profile.Normalized()
	}

	filters, err := parsing.ParseSearchFilters(rankSkills, rankExperience, rankLocation, rankJobType)
	if err != nil {
		return err
	}

	limit := rankLimit
	if limit <= 0 {
		limit = currentConfig().SearchLimit
	}
	ranked := ranking.RankCandidates(candidates, filters, ranking.RankOptions{
		MinPercentage: rankMinPercentage,
		Limit:         limit,
	})
	if err := checkSchema(embedded.RankedCandidates, ranked); err != nil {
		return err
	}

	if verbose {
		printer().PrintRanking(ranked)
	}
	return writeJSON(rankOutputFile, ranked)
}
