package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/queue"
)

var workerPrefetch int

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume queued resume parse jobs from RabbitMQ",
	Long: `Run the parse pipeline for jobs published by parse-resume --enqueue or
POST /v1/resumes/parse/async. Needs DATABASE_URL and AMQP_URL; REDIS_URL enables the
profile cache.`,
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().IntVar(&workerPrefetch, "prefetch", queue.DefaultPrefetch, "Unacknowledged jobs held at once")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := currentConfig()
	log := currentLogger()

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL required")
	}
	if cfg.AMQPURL == "" {
		return fmt.Errorf("AMQP_URL required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	parser, cleanup := newResumeParser(ctx, database)
	defer cleanup()

	broker, err := queue.Dial(cfg.AMQPURL, cfg.ParseQueue, workerPrefetch, log)
	if err != nil {
		return err
	}
	defer func() { _ = broker.Close() }()

	err = broker.Consume(ctx, queue.ParseJobHandler(parser, log))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
