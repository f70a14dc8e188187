package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veritaslabs/veritas/internal/llm"
	"github.com/veritaslabs/veritas/internal/search"
	"github.com/veritaslabs/veritas/internal/verify"
)

const doctorTestText = "Python was created by Guido van Rossum in 1991."

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run end-to-end diagnostics against the configured capabilities",
	Long: `Doctor checks the configured LLM and search capabilities with a
small live smoke test: key presence, provider reachability, claim
extraction, evidence retrieval, and claim judgment.

Example:
  veritas doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("--- Veritas diagnostics ---")
	fmt.Println()

	// 1. Configuration
	fmt.Printf("LLM provider: %s\n", cfg.LLM.Provider)
	switch cfg.LLM.Provider {
	case "openai", "anthropic", "claude":
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("✗ LLM API key is missing (set OPENAI_API_KEY / ANTHROPIC_API_KEY or llm.api_key)")
		}
		fmt.Println("✓ LLM API key detected")
	default:
		fmt.Println("✓ No API key needed for local provider")
	}

	if cfg.Search.APIKey == "" {
		return fmt.Errorf("✗ TAVILY_API_KEY is missing")
	}
	fmt.Println("✓ Search API key detected")
	fmt.Println()

	logger := zap.NewNop()
	if verbose {
		logger, err = newLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// 2. Provider reachability
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("✗ LLM provider init failed: %w", err)
	}
	if !provider.IsAvailable(ctx) {
		return fmt.Errorf("✗ LLM provider %q is not reachable", provider.Name())
	}
	fmt.Printf("✓ LLM provider %q is reachable\n", provider.Name())

	// 3. Claim extraction
	fmt.Printf("\n--- Testing extraction ---\nInput: %q\n", doctorTestText)
	extractor := verify.NewExtractor(provider, logger)
	claims := extractor.Extract(ctx, doctorTestText)
	if len(claims) == 0 {
		return fmt.Errorf("✗ extraction returned no claims (check model and provider logs)")
	}
	fmt.Printf("✓ Extracted %d claims: %v\n", len(claims), claims)

	// 4. Evidence retrieval
	fmt.Printf("\n--- Testing search ---\nQuery: %q\n", claims[0])
	tavily, err := search.NewTavilyClient(cfg.Search)
	if err != nil {
		return fmt.Errorf("✗ search client init failed: %w", err)
	}
	evidence, err := tavily.Retrieve(ctx, claims[0])
	if err != nil {
		return fmt.Errorf("✗ search failed: %w", err)
	}
	if evidence == nil {
		fmt.Println("⚠ Search returned no results (check your API limit or query)")
	} else {
		fmt.Printf("✓ Found: %s\n", evidence.URL)
	}

	// 5. Judgment
	fmt.Println("\n--- Testing judgment ---")
	judge := verify.NewJudge(provider, logger)
	verdict := judge.Judge(ctx, claims[0], evidence)
	fmt.Printf("✓ Verdict: %s (confidence %d)\n", verdict.Status, verdict.ConfidenceScore)
	if verdict.Reasoning != "" {
		fmt.Printf("  Reasoning: %s\n", verdict.Reasoning)
	}

	fmt.Println("\n--- Diagnostics complete ---")
	return nil
}
