package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/veritaslabs/veritas/internal/worker"
)

var (
	batchFile        string
	batchConcurrency int
	batchTimeout     time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify multiple texts from a file concurrently",
	Long: `Batch reads one text per line from a file (blank lines and
#-comments are skipped) and verifies them concurrently. Results are
printed as a JSON array in input order.

Example:
  veritas batch --file texts.txt
  veritas batch --file texts.txt --concurrency 8`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchFile, "file", "", "file with one text per line (required)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of texts verified in parallel")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	_ = batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	verifier, err := buildVerifier(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	processor := worker.NewBatchProcessor(verifier, batchConcurrency)

	results, err := processor.ProcessFile(ctx, batchFile)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Verified %d texts\n\n", len(results))
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
