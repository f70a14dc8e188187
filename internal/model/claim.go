package model

// Status classifies the outcome of judging a single claim
type Status string

const (
	StatusVerified     Status = "verified"     // Evidence supports the claim
	StatusContradicted Status = "contradicted" // Evidence contradicts the claim
	StatusInconclusive Status = "inconclusive" // Evidence missing or insufficient
	StatusError        Status = "error"        // Judgment capability failed for this claim
)

// NormalizeStatus maps a raw status string from the judgment capability to a
// valid Status. The capability's output format is not contractually
// guaranteed, so anything outside the three judgment values degrades to
// inconclusive rather than failing the claim.
func NormalizeStatus(raw string) Status {
	switch Status(raw) {
	case StatusVerified, StatusContradicted, StatusInconclusive:
		return Status(raw)
	default:
		return StatusInconclusive
	}
}

// Verdict is the judgment produced for one claim. It is immutable once
// constructed; ownership passes from the claim pipeline to the orchestrator
// exactly once.
type Verdict struct {
	OriginalText    string `json:"original_text"`
	Status          Status `json:"status"`
	ConfidenceScore int    `json:"confidence_score"` // 0-100
	Reasoning       string `json:"reasoning"`
	EvidenceSource  string `json:"evidence_source,omitempty"` // Snippet, truncated for display
	SourceURL       string `json:"source_url,omitempty"`
	CitationStatus  string `json:"citation_status,omitempty"` // Advisory only, never scored
}

// VerificationResult is the response root: one verdict per extracted claim,
// in extraction order, plus the aggregate trust score.
type VerificationResult struct {
	Claims            []Verdict `json:"claims"`
	OverallTrustScore int       `json:"overall_trust_score"` // 0-100
}

// EmptyResult is the degenerate response for inputs that yield no claims.
func EmptyResult() *VerificationResult {
	return &VerificationResult{
		Claims:            []Verdict{},
		OverallTrustScore: 0,
	}
}
