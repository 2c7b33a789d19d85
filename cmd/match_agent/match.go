package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/parsing"
	"github.com/jonathan/talent-match/internal/ranking"
	"github.com/jonathan/talent-match/internal/types"
	embedded "github.com/jonathan/talent-match/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one extracted profile against recruiter requirements",
	Long: `Score a profile JSON (as written by extract --text-file, or a bare profile object)
against required skills and an experience range.`,
	RunE: runMatch,
}

var (
	matchProfileFile string
	matchSkills      string
	matchExperience  string
	matchMin         int
	matchMax         int
	matchOutputFile  string
)

func init() {
	matchCmd.Flags().StringVar(&matchProfileFile, "profile", "", "Path to profile JSON (required)")
	matchCmd.Flags().StringVar(&matchSkills, "skills", "", "Comma-separated required skills")
	matchCmd.Flags().StringVar(&matchExperience, "experience", "", "Experience bucket: 0-2, 3-5, 6-10 or 10+")
	matchCmd.Flags().IntVar(&matchMin, "min", 0, "Minimum years of experience")
	matchCmd.Flags().IntVar(&matchMax, "max", types.MaxExperienceYears, "Maximum years of experience")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = matchCmd.MarkFlagRequired("profile")
	matchCmd.MarkFlagsMutuallyExclusive("experience", "min")
	matchCmd.MarkFlagsMutuallyExclusive("experience", "max")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(matchProfileFile)
	if err != nil {
		return err
	}

	filters, err := parsing.ParseSearchFilters(matchSkills, matchExperience, "", "")
	if err != nil {
		return err
	}
	if matchExperience == "" {
		if matchMin < 0 || matchMax < matchMin {
			return fmt.Errorf("invalid experience range %d-%d", matchMin, matchMax)
		}
		filters.MinExperience, filters.MaxExperience = matchMin, matchMax
	}

	result := ranking.ScoreCandidate(profile, filters)
	if err := checkSchema(embedded.MatchResult, result); err != nil {
		return err
	}

	if verbose {
		printer().PrintMatch(filters, result)
	}
	return writeJSON(matchOutputFile, result)
}

// loadProfile reads either a bare ExtractedProfile or an ExtractResponse wrapper.
func loadProfile(path string) (types.ExtractedProfile, error) {
	var doc struct {
		types.ExtractedProfile
		Profile *types.ExtractedProfile `json:"profile"`
	}
	if err := readJSON(path, &doc); err != nil {
		return types.ExtractedProfile{}, err
	}
	if doc.Profile != nil {
		return *doc.Profile, nil
	}
	return doc.ExtractedProfile, nil
}
