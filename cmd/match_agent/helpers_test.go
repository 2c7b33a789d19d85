package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/types"
)

const sampleResume = `Jane Doe
Location: Austin, TX
Experienced in React, Node.js and PostgreSQL.
Acme Corp 2015 - 2020
Bachelor of Science in Computer Science`

// captureOutput redirects stdout and stderr into buffers for the duration of the test.
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
	})
	return &out, &errOut
}

// resetFlags restores every command flag variable to its zero value.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		verbose = false
		appConfig = nil
		logger = nil

		extractTextFile, extractOutputFile, extractConcurrency = "", "", 0

		matchProfileFile, matchSkills, matchExperience, matchOutputFile = "", "", "", ""
		matchMin, matchMax = 0, types.MaxExperienceYears

		rankCandidatesFile, rankSkills, rankExperience, rankLocation, rankJobType, rankOutputFile = "", "", "", "", "", ""
		rankLimit, rankMinPercentage = 0, 0

		parseUserID, parseResumeURL, parseDatabaseURL, parseOutputFile = "", "", "", ""
		parseDryRun, parseEnqueue = false, false

		validateSchema, validateJSON = "", ""
	}
	reset()
	t.Cleanup(reset)
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
