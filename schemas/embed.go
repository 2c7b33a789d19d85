// Package schemas holds the JSON Schemas for the artifacts the CLI and server emit.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names.
const (
	ExtractedProfile = "extracted_profile.schema.json"
	MatchResult      = "match_result.schema.json"
	RankedCandidates = "ranked_candidates.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the content of an embedded schema file.
func Read(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %s not embedded: %w", name, err)
	}
	return string(data), nil
}

// Names lists every embedded schema file.
func Names() []string {
	return []string{ExtractedProfile, MatchResult, RankedCandidates}
}
