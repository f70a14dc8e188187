package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/veritaslabs/veritas/internal/cache"
	"github.com/veritaslabs/veritas/internal/llm"
	"github.com/veritaslabs/veritas/internal/model"
	"github.com/veritaslabs/veritas/internal/search"
	"github.com/veritaslabs/veritas/internal/verify"
)

// buildVerifier wires the capability clients into a ready verifier. Clients
// are constructed once here and shared read-only by every concurrent claim
// pipeline; there is no package-level client state.
func buildVerifier(cfg *model.Config, logger *zap.Logger) (*verify.Verifier, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	logger.Info("LLM provider initialized", zap.String("provider", provider.Name()))

	tavily, err := search.NewTavilyClient(cfg.Search)
	if err != nil {
		return nil, fmt.Errorf("initialize search client: %w", err)
	}

	store := cache.NewMemoryCache(cfg.Search.CacheTTL, 2*cfg.Search.CacheTTL)
	retriever := search.NewCachedRetriever(tavily, store, cfg.Search.CacheTTL)

	extractor := verify.NewExtractor(provider, logger)
	judge := verify.NewJudge(provider, logger)

	return verify.NewVerifier(extractor, retriever, judge, cfg.Verify, logger), nil
}
