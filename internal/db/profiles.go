package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-match/internal/types"
)

// ErrProfileNotFound is returned when an update targets a user with no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// SaveProfile writes extracted attributes onto an existing profile row and marks the resume as parsed.
func (db *DB) SaveProfile(ctx context.Context, userID uuid.UUID, resumeURL string, profile types.ExtractedProfile) error {
	profile = profile.Normalized()

	tag, err := db.pool.Exec(ctx,
		`UPDATE profiles
		 SET skills = $2, experience_years = $3, location = $4, education = $5,
		     resume_url = COALESCE(NULLIF($6, ''), resume_url),
		     resume_parsed = true, updated_at = NOW()
		 WHERE id = $1`,
		userID, profile.Skills, profile.ExperienceYears, profile.Location, profile.Education, resumeURL,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to save profile %s: %w", userID, ErrProfileNotFound)
	}
	return nil
}

// GetProfile retrieves a candidate by user ID. Returns nil, nil when no row exists.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, COALESCE(full_name, ''), COALESCE(skills, '{}'), COALESCE(experience_years, 0),
		        COALESCE(location, ''), COALESCE(education, '{}')
		 FROM profiles WHERE id = $1`,
		userID,
	)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}
	return c, nil
}

// ListCandidates returns visible candidates whose resumes have been parsed, newest first.
func (db *DB) ListCandidates(ctx context.Context, limit int) ([]types.Candidate, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(full_name, ''), COALESCE(skills, '{}'), COALESCE(experience_years, 0),
		        COALESCE(location, ''), COALESCE(education, '{}')
		 FROM profiles
		 WHERE user_type = 'candidate' AND is_hidden = false AND resume_parsed = true
		 ORDER BY updated_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

func scanCandidate(row pgx.Row) (*types.Candidate, error) {
	var c types.Candidate
	err := row.Scan(
		&c.UserID,
		&c.FullName,
		&c.Profile.Skills,
		&c.Profile.ExperienceYears,
		&c.Profile.Location,
		&c.Profile.Education,
	)
	if err != nil {
		return nil, err
	}
	c.Profile = c.Profile.Normalized()
	return &c, nil
}
