package verify

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/veritaslabs/veritas/internal/llm"
	"github.com/veritaslabs/veritas/internal/model"
)

func TestJudge_AbsentEvidence_DeterministicShortcut(t *testing.T) {
	provider := &fakeProvider{complete: func(req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		t.Fatal("capability must not be called when evidence is absent")
		return nil, nil
	}}
	judge := NewJudge(provider, zap.NewNop())

	verdict := judge.Judge(context.Background(), "The sky is blue", nil)

	assert.Equal(t, model.Verdict{
		OriginalText:    "The sky is blue",
		Status:          model.StatusInconclusive,
		ConfidenceScore: 0,
		Reasoning:       "No external evidence found.",
	}, verdict)
	assert.Equal(t, int64(0), provider.calls.Load())
}

func TestJudge_PresentEvidence(t *testing.T) {
	provider := &fakeProvider{complete: func(req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return &llm.CompletionResponse{Content: `{
			"status": "verified",
			"confidence_score": 92,
			"reasoning": "Directly supported by the snippet.",
			"citation_status": "valid"
		}`}, nil
	}}
	judge := NewJudge(provider, zap.NewNop())

	evidence := &model.Evidence{Content: "The sky appears blue due to Rayleigh scattering.", URL: "https://example.com/sky"}
	verdict := judge.Judge(context.Background(), "The sky is blue", evidence)

	assert.Equal(t, model.StatusVerified, verdict.Status)
	assert.Equal(t, 92, verdict.ConfidenceScore)
	assert.Equal(t, "Directly supported by the snippet.", verdict.Reasoning)
	assert.Equal(t, evidence.Content, verdict.EvidenceSource)
	assert.Equal(t, "https://example.com/sky", verdict.SourceURL)
	assert.Equal(t, "valid", verdict.CitationStatus)
}

func TestJudge_LeniencyDefaults(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		wantStatus     model.Status
		wantConfidence int
	}{
		{
			name:           "unrecognized status",
			response:       `{"status": "probably_true", "confidence_score": 60, "reasoning": "x"}`,
			wantStatus:     model.StatusInconclusive,
			wantConfidence: 60,
		},
		{
			name:           "missing status",
			response:       `{"confidence_score": 60, "reasoning": "x"}`,
			wantStatus:     model.StatusInconclusive,
			wantConfidence: 60,
		},
		{
			name:           "missing confidence",
			response:       `{"status": "verified", "reasoning": "x"}`,
			wantStatus:     model.StatusVerified,
			wantConfidence: 0,
		},
		{
			name:           "confidence above range",
			response:       `{"status": "verified", "confidence_score": 250, "reasoning": "x"}`,
			wantStatus:     model.StatusVerified,
			wantConfidence: 100,
		},
		{
			name:           "negative confidence",
			response:       `{"status": "contradicted", "confidence_score": -5, "reasoning": "x"}`,
			wantStatus:     model.StatusContradicted,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{complete: func(req llm.CompletionRequest) (*llm.CompletionResponse, error) {
				return &llm.CompletionResponse{Content: tt.response}, nil
			}}
			judge := NewJudge(provider, zap.NewNop())

			verdict := judge.Judge(context.Background(), "claim", &model.Evidence{Content: "snippet", URL: "https://example.com"})

			assert.Equal(t, tt.wantStatus, verdict.Status)
			assert.Equal(t, tt.wantConfidence, verdict.ConfidenceScore)
		})
	}
}

func TestJudge_CapabilityFailure_VisibleErrorVerdict(t *testing.T) {
	provider := &fakeProvider{complete: func(req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return nil, fmt.Errorf("connection refused")
	}}
	judge := NewJudge(provider, zap.NewNop())

	verdict := judge.Judge(context.Background(), "claim", &model.Evidence{Content: "snippet", URL: "https://example.com"})

	assert.Equal(t, model.StatusError, verdict.Status)
	assert.Equal(t, 0, verdict.ConfidenceScore)
	assert.Contains(t, verdict.Reasoning, "connection refused")
}

func TestJudge_MalformedResponse_VisibleErrorVerdict(t *testing.T) {
	provider := &fakeProvider{complete: func(req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return &llm.CompletionResponse{Content: "not json at all"}, nil
	}}
	judge := NewJudge(provider, zap.NewNop())

	verdict := judge.Judge(context.Background(), "claim", &model.Evidence{Content: "snippet", URL: "https://example.com"})

	assert.Equal(t, model.StatusError, verdict.Status)
	assert.Equal(t, 0, verdict.ConfidenceScore)
	assert.Contains(t, verdict.Reasoning, "malformed")
}

func TestJudge_SnippetTruncation(t *testing.T) {
	provider := &fakeProvider{complete: func(req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return &llm.CompletionResponse{Content: `{"status": "verified", "confidence_score": 80, "reasoning": "x"}`}, nil
	}}
	judge := NewJudge(provider, zap.NewNop())

	long := strings.Repeat("a", 500)
	verdict := judge.Judge(context.Background(), "claim", &model.Evidence{Content: long, URL: "https://example.com"})

	assert.Len(t, verdict.EvidenceSource, 203)
	assert.True(t, strings.HasSuffix(verdict.EvidenceSource, "..."))
	// The source URL is never truncated or modified
	assert.Equal(t, "https://example.com", verdict.SourceURL)
}

func TestTruncateSnippet(t *testing.T) {
	assert.Equal(t, "short", truncateSnippet("short"))

	exact := strings.Repeat("b", 200)
	assert.Equal(t, exact, truncateSnippet(exact))

	multibyte := strings.Repeat("é", 300)
	truncated := truncateSnippet(multibyte)
	assert.Equal(t, strings.Repeat("é", 200)+"...", truncated)
}
