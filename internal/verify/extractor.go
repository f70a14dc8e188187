package verify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/veritaslabs/veritas/internal/llm"
)

const extractPrompt = `Analyze the text and extract every atomic factual claim.
Ignore opinions.
Return a JSON object with a key "claims" containing a list of strings.
Example: {"claims": ["The sky is blue", "Water is wet"]}

TEXT: %q`

// Extractor wraps the reasoning capability to decompose free text into an
// ordered list of atomic factual claims.
type Extractor struct {
	provider llm.Provider
	logger   *zap.Logger
}

// NewExtractor creates a new claim extractor
func NewExtractor(provider llm.Provider, logger *zap.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		logger:   logger,
	}
}

// Extract returns the claims found in text, in the capability's order.
// Capability failures never propagate: a pipeline with zero claims is a
// well-defined degenerate case, so any failure degrades to an empty list
// and is logged as a diagnostic event.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	resp, err := e.provider.CompleteJSON(ctx, llm.CompletionRequest{
		Prompt:      fmt.Sprintf(extractPrompt, text),
		Temperature: 0.2,
	})
	if err != nil {
		e.logger.Warn("claim extraction failed",
			zap.String("provider", e.provider.Name()),
			zap.Error(err))
		return nil
	}

	var out struct {
		Claims []string `json:"claims"`
	}
	if err := json.Unmarshal([]byte(resp.Content), &out); err != nil {
		e.logger.Warn("claim extraction returned malformed JSON",
			zap.String("provider", e.provider.Name()),
			zap.Error(err))
		return nil
	}

	return out.Claims
}
