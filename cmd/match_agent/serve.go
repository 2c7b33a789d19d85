package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/queue"
	"github.com/jonathan/talent-match/internal/server"
	"github.com/jonathan/talent-match/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing extraction, matching, resume parsing and candidate search.
Parsing and search need DATABASE_URL; without it those routes answer 503.
AMQP_URL enables asynchronous parsing and REDIS_URL the profile cache.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := currentConfig()
	log := currentLogger()

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	var store server.CandidateStore
	var parser server.ResumeParser
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		defer database.Close()

		resumeParser, cleanup := newResumeParser(ctx, database)
		defer cleanup()

		store = database
		parser = resumeParser
	} else {
		log.Warn("DATABASE_URL not set; resume parsing and candidate search are disabled")
	}

	var jobs server.JobQueue
	if cfg.AMQPURL != "" {
		broker, err := queue.Dial(cfg.AMQPURL, cfg.ParseQueue, 0, log)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		defer func() { _ = broker.Close() }()
		jobs = broker
	}

	srv := server.New(server.Config{
		Port:        port,
		SearchLimit: cfg.SearchLimit,
		Logger:      log,
		RateLimit:   ratelimit.LoadConfig(),
		Jobs:        jobs,
	}, store, parser)

	return srv.Start(ctx)
}
