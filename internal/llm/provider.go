package llm

import (
	"context"

	"github.com/veritaslabs/veritas/internal/model"
)

// Provider defines the interface for the natural-language reasoning
// capability. Its internal reasoning is opaque and non-deterministic; the
// pipeline only relies on the request/response contract below.
//
// Implementations must be safe for concurrent use: one provider instance is
// shared by every claim pipeline running in parallel.
type Provider interface {
	// Name returns the provider name
	Name() string

	// CompleteJSON sends a prompt and returns the model's response, which
	// is expected (but not guaranteed) to be a single JSON object. Callers
	// own parsing and validation of the content.
	CompleteJSON(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one completion call.
type CompletionRequest struct {
	// System is the system instruction (optional).
	System string

	// Prompt is the user prompt.
	Prompt string

	// Model overrides the configured model (provider-specific).
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float32
}

// CompletionResponse contains the capability's output.
type CompletionResponse struct {
	// Content is the raw response text.
	Content string

	// Model is the model that generated the response.
	Model string

	// TokensUsed tracks token consumption.
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "ollama",
		Timeout:   60,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}
