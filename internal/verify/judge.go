package verify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/veritaslabs/veritas/internal/llm"
	"github.com/veritaslabs/veritas/internal/model"
)

// noEvidenceReasoning is the exact reasoning attached to the deterministic
// absent-evidence shortcut.
const noEvidenceReasoning = "No external evidence found."

// evidenceSnippetLimit caps the snippet length surfaced as evidence_source.
const evidenceSnippetLimit = 200

const judgePrompt = `ROLE:
You are a senior fact-checker for an academic journal. Your specialty is
detecting AI hallucinations and fake citations - plausible-sounding but
non-existent references.

TASK:
Analyze the CLAIM against the provided EVIDENCE.
1. FACTUAL VERITY: Is the claim supported by the evidence?
2. CITATION INTEGRITY: If the evidence mentions a source (authors, year,
   title, or URL), verify if it appears legitimate or fabricated based on
   the snippet.
3. COMMON SENSE CHECK: Flag biological or physical impossibilities even if
   the snippet seems to suggest them.

CONTEXT:
CLAIM: %q
EVIDENCE SNIPPET: %q

OUTPUT FORMAT (strict JSON):
{
  "status": "verified" | "contradicted" | "inconclusive",
  "confidence_score": <int 0-100>,
  "reasoning": "<1-2 sentence breakdown of your verification logic>",
  "citation_status": "valid" | "fake_suspicion" | "no_citation"
}`

// rawJudgment is the judgment capability's structured output. Every field
// is optional: the capability's format is not contractually guaranteed and
// missing fields are substituted with lenient defaults.
type rawJudgment struct {
	Status          string `json:"status"`
	ConfidenceScore *int   `json:"confidence_score"`
	Reasoning       string `json:"reasoning"`
	CitationStatus  string `json:"citation_status"`
}

// Judge wraps the reasoning capability to turn a (claim, evidence) pair
// into a structured verdict.
type Judge struct {
	provider llm.Provider
	logger   *zap.Logger
}

// NewJudge creates a new claim judge
func NewJudge(provider llm.Provider, logger *zap.Logger) *Judge {
	return &Judge{
		provider: provider,
		logger:   logger,
	}
}

// Judge produces the verdict for one claim. With absent evidence it applies
// a deterministic local rule and never invokes the capability. Capability
// failures are visible to the caller as an error-status verdict: unlike
// extraction and retrieval failures they represent a specific claim's
// verification outcome.
func (j *Judge) Judge(ctx context.Context, claim string, evidence *model.Evidence) model.Verdict {
	if evidence == nil {
		return model.Verdict{
			OriginalText:    claim,
			Status:          model.StatusInconclusive,
			ConfidenceScore: 0,
			Reasoning:       noEvidenceReasoning,
		}
	}

	resp, err := j.provider.CompleteJSON(ctx, llm.CompletionRequest{
		Prompt:      fmt.Sprintf(judgePrompt, claim, evidence.Content),
		Temperature: 0.2,
	})
	if err != nil {
		j.logger.Warn("claim judgment failed",
			zap.String("provider", j.provider.Name()),
			zap.Error(err))
		return errorVerdict(claim, fmt.Sprintf("judgment capability failed: %v", err))
	}

	var raw rawJudgment
	if err := json.Unmarshal([]byte(resp.Content), &raw); err != nil {
		j.logger.Warn("claim judgment returned malformed JSON",
			zap.String("provider", j.provider.Name()),
			zap.Error(err))
		return errorVerdict(claim, fmt.Sprintf("malformed judgment response: %v", err))
	}

	confidence := 0
	if raw.ConfidenceScore != nil {
		confidence = clampScore(*raw.ConfidenceScore)
	}

	return model.Verdict{
		OriginalText:    claim,
		Status:          model.NormalizeStatus(raw.Status),
		ConfidenceScore: confidence,
		Reasoning:       raw.Reasoning,
		EvidenceSource:  truncateSnippet(evidence.Content),
		SourceURL:       evidence.URL,
		CitationStatus:  raw.CitationStatus,
	}
}

func errorVerdict(claim, reason string) model.Verdict {
	return model.Verdict{
		OriginalText:    claim,
		Status:          model.StatusError,
		ConfidenceScore: 0,
		Reasoning:       reason,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// truncateSnippet trims the evidence snippet for display. Counted in runes
// so multi-byte text is never split mid-character.
func truncateSnippet(content string) string {
	runes := []rune(content)
	if len(runes) <= evidenceSnippetLimit {
		return content
	}
	return string(runes[:evidenceSnippetLimit]) + "..."
}
