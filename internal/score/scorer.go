package score

import "github.com/veritaslabs/veritas/internal/model"

// neutralContribution is what inconclusive and error verdicts are worth:
// neither supported nor refuted.
const neutralContribution = 50

// Scorer aggregates per-claim verdicts into a single trust score. The
// algorithm is deterministic and transparent: every verdict contributes a
// fixed number of points and the score is their truncating average.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Contribution returns the points a single verdict adds to the aggregate:
// a verified claim contributes its confidence, a contradicted claim
// contributes nothing, and everything else is neutral.
func (s *Scorer) Contribution(v model.Verdict) int {
	switch v.Status {
	case model.StatusVerified:
		return v.ConfidenceScore
	case model.StatusContradicted:
		return 0
	default:
		return neutralContribution
	}
}

// Aggregate computes the overall trust score for a verdict sequence:
// floor(sum(contributions) / count). Zero verdicts score zero.
func (s *Scorer) Aggregate(verdicts []model.Verdict) int {
	if len(verdicts) == 0 {
		return 0
	}

	sum := 0
	for _, v := range verdicts {
		sum += s.Contribution(v)
	}

	// Integer division truncates toward zero; contributions are never
	// negative so this is a plain floor.
	return sum / len(verdicts)
}
