// internal/agents/consensus.go
package agents

import (
	"suggestion-mesh/internal/scoring"
)

// Summarizer folds a batch of agent responses into a consensus statement
// and a consensus score.
type Summarizer interface {
	Summarize(responses []AgentResponse) (string, float64)
}

// MeanConfidence returns the arithmetic mean of the batch's confidence
// scores rounded to four decimals, or 0.0 for an empty batch.
func MeanConfidence(responses []AgentResponse) float64 {
	if len(responses) == 0 {
		return 0.0
	}

	var total float64
	for _, response := range responses {
		total += response.Confidence
	}
	return scoring.Round4(total / float64(len(responses)))
}

// StaticSummarizer is the default consensus strategy: a fixed narrative
// statement scored by the mean confidence. An empty batch yields an empty
// statement and a zero score.
type StaticSummarizer struct{}

// Summarize implements Summarizer.
func (StaticSummarizer) Summarize(responses []AgentResponse) (string, float64) {
	if len(responses) == 0 {
		return "", 0.0
	}
	return "Agents agree to combine analytical, creative, and practical approaches",
		MeanConfidence(responses)
}
