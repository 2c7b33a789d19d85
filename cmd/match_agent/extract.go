package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/extraction"
	"github.com/jonathan/talent-match/internal/pipeline"
	"github.com/jonathan/talent-match/internal/types"
	embedded "github.com/jonathan/talent-match/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract profile attributes from resume documents",
	Long: `Extract skills, experience years, location and education from resumes.
Documents may be PDF, DOCX, HTML or plain text. Use --text-file to read raw text
instead ("-" reads stdin).`,
	RunE: runExtract,
}

var (
	extractTextFile    string
	extractOutputFile  string
	extractConcurrency int
)

func init() {
	extractCmd.Flags().StringVar(&extractTextFile, "text-file", "", "Path to a raw text resume, or - for stdin")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", pipeline.DefaultConcurrency, "Documents processed in parallel")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractTextFile == "" && len(args) == 0 {
		return fmt.Errorf("provide at least one file or --text-file")
	}
	if extractTextFile != "" && len(args) > 0 {
		return fmt.Errorf("cannot combine --text-file with document arguments")
	}

	if extractTextFile != "" {
		return extractRawText(cmd.InOrStdin())
	}
	return extractDocuments(cmd.Context(), args)
}

func extractRawText(in io.Reader) error {
	var data []byte
	var err error
	if extractTextFile == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(extractTextFile)
	}
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}

	text := string(data)
	resp := types.ExtractResponse{
		Profile:    extraction.Extract(text),
		TextLength: utf8.RuneCountInString(text),
	}
	if err := checkSchema(embedded.ExtractedProfile, resp.Profile); err != nil {
		return err
	}

	if verbose {
		printer().PrintProfile(extractTextFile, &resp.Profile)
	}
	return writeJSON(extractOutputFile, resp)
}

func extractDocuments(ctx context.Context, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := currentLogger()

	results, err := pipeline.ExtractFiles(ctx, paths, pipeline.BatchOptions{
		Concurrency: extractConcurrency,
		MaxBytes:    currentConfig().MaxResumeBytes,
	})
	if err != nil {
		return fmt.Errorf("extraction aborted: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Warn("document skipped", zap.String("path", r.Path), zap.Error(r.Err))
			continue
		}
		if err := checkSchema(embedded.ExtractedProfile, r.Profile); err != nil {
			return err
		}
		log.Debug("document extracted",
			zap.String("path", r.Path),
			zap.String("format", string(r.Metadata.Format)),
			zap.Int("text_length", r.TextLength),
			zap.Int("skills", len(r.Profile.Skills)))
		if verbose {
			printer().PrintProfile(r.Path, r.Profile)
		}
	}

	if err := writeJSON(extractOutputFile, results); err != nil {
		return err
	}
	if failed == len(results) {
		return fmt.Errorf("no documents could be extracted")
	}
	return nil
}
