package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a new LLM provider based on configuration. Unlike
// evidence retrieval, the reasoning capability is mandatory: both claim
// extraction and claim judgment depend on it.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama", "":
		return NewOllamaProvider(config)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}
