package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veritaslabs/veritas/internal/model"
)

func TestContribution(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name    string
		verdict model.Verdict
		want    int
	}{
		{"verified contributes its confidence", model.Verdict{Status: model.StatusVerified, ConfidenceScore: 90}, 90},
		{"verified with zero confidence", model.Verdict{Status: model.StatusVerified, ConfidenceScore: 0}, 0},
		{"contradicted contributes nothing", model.Verdict{Status: model.StatusContradicted, ConfidenceScore: 95}, 0},
		{"inconclusive is neutral", model.Verdict{Status: model.StatusInconclusive, ConfidenceScore: 30}, 50},
		{"error is neutral", model.Verdict{Status: model.StatusError, ConfidenceScore: 0}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Contribution(tt.verdict))
		})
	}
}

func TestAggregate(t *testing.T) {
	scorer := NewScorer()

	t.Run("zero verdicts score zero", func(t *testing.T) {
		assert.Equal(t, 0, scorer.Aggregate(nil))
		assert.Equal(t, 0, scorer.Aggregate([]model.Verdict{}))
	})

	t.Run("single verified claim scores its confidence", func(t *testing.T) {
		verdicts := []model.Verdict{
			{Status: model.StatusVerified, ConfidenceScore: 87},
		}
		assert.Equal(t, 87, scorer.Aggregate(verdicts))
	})

	t.Run("mixed statuses truncate toward zero", func(t *testing.T) {
		// [90, 0, 50] -> floor(140/3) = 46
		verdicts := []model.Verdict{
			{Status: model.StatusVerified, ConfidenceScore: 90},
			{Status: model.StatusContradicted, ConfidenceScore: 80},
			{Status: model.StatusInconclusive, ConfidenceScore: 0},
		}
		assert.Equal(t, 46, scorer.Aggregate(verdicts))
	})

	t.Run("all contradicted scores zero", func(t *testing.T) {
		verdicts := []model.Verdict{
			{Status: model.StatusContradicted, ConfidenceScore: 99},
			{Status: model.StatusContradicted, ConfidenceScore: 99},
		}
		assert.Equal(t, 0, scorer.Aggregate(verdicts))
	})

	t.Run("errors count as neutral", func(t *testing.T) {
		// [100, 50] -> 75
		verdicts := []model.Verdict{
			{Status: model.StatusVerified, ConfidenceScore: 100},
			{Status: model.StatusError},
		}
		assert.Equal(t, 75, scorer.Aggregate(verdicts))
	})
}
