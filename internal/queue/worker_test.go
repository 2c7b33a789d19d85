package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/pipeline"
	"github.com/jonathan/talent-match/internal/types"
)

type mockParser struct {
	err    error
	userID uuid.UUID
	url    string
	calls  int
}

func (m *mockParser) ParseResume(_ context.Context, userID uuid.UUID, resumeURL string) (*types.ParseResult, error) {
	m.calls++
	m.userID = userID
	m.url = resumeURL
	if m.err != nil {
		return nil, m.err
	}
	return &types.ParseResult{ExtractedProfile: types.ExtractedProfile{Skills: []string{"Go"}}}, nil
}

func jobBody(t *testing.T, userID uuid.UUID) []byte {
	t.Helper()
	body, err := EncodeParseJob(types.ParseResumeRequest{UserID: userID.String(), ResumeURL: "https://files.example.com/cv.pdf"})
	require.NoError(t, err)
	return body
}

func TestParseJobHandler_Success(t *testing.T) {
	parser := &mockParser{}
	userID := uuid.New()

	err := ParseJobHandler(parser, nil)(context.Background(), jobBody(t, userID))
	require.NoError(t, err)
	assert.Equal(t, 1, parser.calls)
	assert.Equal(t, userID, parser.userID)
	assert.Equal(t, "https://files.example.com/cv.pdf", parser.url)
}

func TestParseJobHandler_BadMessage(t *testing.T) {
	parser := &mockParser{}
	err := ParseJobHandler(parser, nil)(context.Background(), []byte(`garbage`))
	assert.True(t, IsPermanent(err))
	assert.Zero(t, parser.calls)
}

func TestParseJobHandler_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		permanent bool
	}{
		{"fetch failure retries", &pipeline.ParseError{Step: pipeline.StepFetch, Cause: errors.New("timeout")}, false},
		{"unreadable document drops", &pipeline.ParseError{Step: pipeline.StepExtractText, Cause: errors.New("corrupt pdf")}, true},
		{"unknown user drops", &pipeline.ParseError{Step: pipeline.StepSaveProfile, Cause: fmt.Errorf("user x: %w", db.ErrProfileNotFound)}, true},
		{"database failure retries", &pipeline.ParseError{Step: pipeline.StepSaveProfile, Cause: errors.New("connection refused")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseJobHandler(&mockParser{err: tt.err}, nil)(context.Background(), jobBody(t, uuid.New()))
			require.Error(t, err)
			assert.Equal(t, tt.permanent, IsPermanent(err))
		})
	}
}
