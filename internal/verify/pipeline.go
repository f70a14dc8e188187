package verify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/veritaslabs/veritas/internal/model"
	"github.com/veritaslabs/veritas/internal/score"
	"github.com/veritaslabs/veritas/internal/search"
)

// Verifier orchestrates the full verification pipeline: extract claims,
// fan one claim pipeline out per claim, fan verdicts back in, aggregate
// the trust score.
type Verifier struct {
	extractor *Extractor
	retriever search.Retriever
	judge     *Judge
	scorer    *score.Scorer
	logger    *zap.Logger

	maxConcurrent int
	claimTimeout  time.Duration
}

// NewVerifier creates a new verifier
func NewVerifier(extractor *Extractor, retriever search.Retriever, judge *Judge, cfg model.VerifyConfig, logger *zap.Logger) *Verifier {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}

	claimTimeout := cfg.ClaimTimeout
	if claimTimeout <= 0 {
		claimTimeout = 30 * time.Second
	}

	return &Verifier{
		extractor:     extractor,
		retriever:     retriever,
		judge:         judge,
		scorer:        score.NewScorer(),
		logger:        logger,
		maxConcurrent: maxConcurrent,
		claimTimeout:  claimTimeout,
	}
}

// Verify runs the complete pipeline for one block of text. The response is
// always well-formed: capability failures surface per-claim (or as the
// zero-claim degenerate result), never as an error from this method.
func (v *Verifier) Verify(ctx context.Context, text string) *model.VerificationResult {
	// Whitespace-only input short-circuits before any capability call.
	if strings.TrimSpace(text) == "" {
		return model.EmptyResult()
	}

	claims := v.extractor.Extract(ctx, text)
	if len(claims) == 0 {
		return model.EmptyResult()
	}

	// One independent pipeline per claim. Verdicts land at their claim's
	// index so the output order matches extraction order regardless of
	// completion order.
	verdicts := make([]model.Verdict, len(claims))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, v.maxConcurrent)

	for i, claim := range claims {
		wg.Add(1)
		go func(idx int, claim string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				verdicts[idx] = errorVerdict(claim, fmt.Sprintf("verification cancelled: %v", ctx.Err()))
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			verdicts[idx] = v.verifyClaim(ctx, claim)
		}(i, claim)
	}

	wg.Wait()

	return &model.VerificationResult{
		Claims:            verdicts,
		OverallTrustScore: v.scorer.Aggregate(verdicts),
	}
}

// verifyClaim drives the two-stage pipeline for exactly one claim:
// retrieve evidence, then judge the claim with whatever resulted. Each
// stage runs exactly once; there is no retry loop. A failure here never
// crosses to a sibling claim.
func (v *Verifier) verifyClaim(ctx context.Context, claim string) model.Verdict {
	claimCtx, cancel := context.WithTimeout(ctx, v.claimTimeout)
	defer cancel()

	evidence, err := v.retriever.Retrieve(claimCtx, claim)
	if err != nil {
		// Retrieval failure degrades to the absent-evidence state.
		v.logger.Warn("evidence retrieval failed",
			zap.String("claim", claim),
			zap.Error(err))
		evidence = nil
	}

	// A claim whose budget ran out is reported as failed rather than
	// silently inconclusive.
	if err := claimCtx.Err(); err != nil {
		return errorVerdict(claim, fmt.Sprintf("claim verification timed out: %v", err))
	}

	return v.judge.Judge(claimCtx, claim, evidence)
}
