package queue

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/pipeline"
	"github.com/jonathan/talent-match/internal/types"
)

// ResumeParser runs one parse job.
type ResumeParser interface {
	ParseResume(ctx context.Context, userID uuid.UUID, resumeURL string) (*types.ParseResult, error)
}

// ParseJobHandler returns a Handler that decodes parse jobs and runs them through parser.
// Undecodable jobs, unreadable documents and unknown users are permanent failures;
// download and database errors are retried.
func ParseJobHandler(parser ResumeParser, logger *zap.Logger) Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(ctx context.Context, body []byte) error {
		job, err := DecodeParseJob(body)
		if err != nil {
			return err
		}

		userID, err := uuid.Parse(job.UserID)
		if err != nil {
			return Permanent(err)
		}
		result, err := parser.ParseResume(ctx, userID, job.ResumeURL)
		if err != nil {
			if isUnrecoverable(err) {
				return Permanent(err)
			}
			return err
		}

		logger.Info("parse job done",
			zap.String("user_id", job.UserID),
			zap.Int("skills", len(result.Skills)),
			zap.Int("experience_years", result.ExperienceYears))
		return nil
	}
}

func isUnrecoverable(err error) bool {
	if errors.Is(err, db.ErrProfileNotFound) {
		return true
	}
	var parseErr *pipeline.ParseError
	return errors.As(err, &parseErr) && parseErr.Step == pipeline.StepExtractText
}
