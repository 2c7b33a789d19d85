// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", fitLine(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// fitLine truncates or pads line to exactly width runes.
func fitLine(line string, width int) string {
	n := utf8.RuneCountInString(line)
	if n > width {
		return string([]rune(line)[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-n)
}

// PrintProfile outputs a summary of an extracted profile. source names the document.
func (p *Printer) PrintProfile(source string, profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source:     %s\n", source))
	}
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", profile.Location))

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills (%d):\n", len(profile.Skills)))
		sb.WriteString(wrapList(profile.Skills, boxWidth-6))
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, e := range profile.Education {
			sb.WriteString(fmt.Sprintf("  • %s\n", e))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs a single score with the filters it was computed against.
func (p *Printer) PrintMatch(filters types.SearchFilters, result types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required skills: %s\n", strings.Join(filters.RequiredSkills, ", ")))
	sb.WriteString(fmt.Sprintf("Experience:      %d-%d years\n", filters.MinExperience, filters.MaxExperience))
	sb.WriteString(fmt.Sprintf("\nMatch: %d%% (%s)", result.Percentage, result.Label))

	p.printBox("MATCH RESULT", sb.String())
}

// PrintRanking outputs the top ranked candidates.
func (p *Printer) PrintRanking(ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		p.printBox("CANDIDATE RANKING", "No candidates matched")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := ranked[i]
		name := c.FullName
		if name == "" {
			name = c.UserID.String()
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    %d%% %s · %d yrs · %s\n",
			c.Match.Percentage, c.Match.Label, c.Profile.ExperienceYears, c.Profile.Location))
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// wrapList joins items with commas, breaking lines before width runes.
func wrapList(items []string, width int) string {
	var sb strings.Builder
	line := "  "
	for i, item := range items {
		piece := item
		if i < len(items)-1 {
			piece += ","
		}
		if utf8.RuneCountInString(line)+utf8.RuneCountInString(piece)+1 > width && strings.TrimSpace(line) != "" {
			sb.WriteString(strings.TrimRight(line, " ") + "\n")
			line = "  "
		}
		line += piece + " "
	}
	sb.WriteString(strings.TrimRight(line, " ") + "\n")
	return sb.String()
}
