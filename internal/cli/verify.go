package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	verifyFile    string
	verifyTimeout time.Duration
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [text]",
	Short: "Verify a single block of text and print the result",
	Long: `Verify runs the full pipeline for one text: claim extraction,
per-claim evidence retrieval, per-claim judgment, and trust-score
aggregation. The result is printed as JSON on stdout.

Text is taken from the argument, from --file, or from stdin.

Example:
  veritas verify "Python was created by Guido van Rossum in 1991."
  veritas verify --file article.txt
  echo "The sky is blue." | veritas verify`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyFile, "file", "", "read text from file")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 5*time.Minute, "overall verification timeout")
}

func runVerify(cmd *cobra.Command, args []string) error {
	text, err := readInputText(args)
	if err != nil {
		return err
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	result := verifier.Verify(ctx, text)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Verified %d claims\n", len(result.Claims))
		fmt.Fprintf(os.Stderr, "✓ Overall trust score: %d/100\n", result.OverallTrustScore)
		fmt.Fprintln(os.Stderr)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

// readInputText resolves the input text from argument, file, or stdin.
func readInputText(args []string) (string, error) {
	if verifyFile != "" {
		data, err := os.ReadFile(verifyFile)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	}

	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input text (pass an argument, --file, or pipe to stdin)")
	}

	return text, nil
}
