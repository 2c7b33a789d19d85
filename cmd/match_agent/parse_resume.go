package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/pipeline"
	"github.com/jonathan/talent-match/internal/queue"
	"github.com/jonathan/talent-match/internal/types"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Download a stored resume, extract its attributes and save them to the user's profile",
	RunE:  runParseResume,
}

var (
	parseUserID      string
	parseResumeURL   string
	parseDatabaseURL string
	parseDryRun      bool
	parseEnqueue     bool
	parseOutputFile  string
)

func init() {
	parseResumeCmd.Flags().StringVar(&parseUserID, "user-id", "", "Profile UUID to update (required)")
	parseResumeCmd.Flags().StringVar(&parseResumeURL, "url", "", "Resume document URL (required)")
	parseResumeCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	parseResumeCmd.Flags().BoolVar(&parseDryRun, "dry-run", false, "Extract without saving to the database")
	parseResumeCmd.Flags().BoolVar(&parseEnqueue, "enqueue", false, "Queue the job for a worker instead of parsing now (needs AMQP_URL)")
	parseResumeCmd.MarkFlagsMutuallyExclusive("dry-run", "enqueue")
	parseResumeCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = parseResumeCmd.MarkFlagRequired("user-id")
	_ = parseResumeCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(parseUserID)
	if err != nil {
		return fmt.Errorf("invalid user-id: %w", err)
	}
	if parseResumeURL == "" {
		return fmt.Errorf("--url is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := currentConfig()
	log := currentLogger()

	if parseEnqueue {
		return enqueueParseJob(ctx, types.ParseResumeRequest{UserID: userID.String(), ResumeURL: parseResumeURL})
	}

	var store pipeline.ProfileStore
	if !parseDryRun {
		databaseURL := parseDatabaseURL
		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL required unless --dry-run is set")
		}

		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		store = database
	}

	parser, cleanup := newResumeParser(ctx, store,
		pipeline.WithProgress(func(e pipeline.ProgressEvent) {
			log.Info(e.Message, zap.String("step", string(e.Step)))
		}),
	)
	defer cleanup()

	result, err := parser.ParseResume(ctx, userID, parseResumeURL)
	if err != nil {
		return err
	}

	if verbose {
		printer().PrintProfile(parseResumeURL, &result.ExtractedProfile)
	}
	return writeJSON(parseOutputFile, types.ParseResumeResponse{Success: true, Data: result})
}

func enqueueParseJob(ctx context.Context, job types.ParseResumeRequest) error {
	cfg := currentConfig()
	if cfg.AMQPURL == "" {
		return fmt.Errorf("AMQP_URL required for --enqueue")
	}

	broker, err := queue.Dial(cfg.AMQPURL, cfg.ParseQueue, 0, currentLogger())
	if err != nil {
		return err
	}
	defer func() { _ = broker.Close() }()

	if err := broker.PublishParseJob(ctx, job); err != nil {
		return err
	}
	currentLogger().Info("parse job queued", zap.String("user_id", job.UserID), zap.String("queue", cfg.ParseQueue))
	return writeJSON(parseOutputFile, map[string]any{"success": true, "queued": true})
}
