// internal/ranking/ranker.go
package ranking

import (
	"sort"

	"suggestion-mesh/internal/scoring"
)

// Ranker scores the corpus against a query and returns the qualifying
// candidates in rank order.
type Ranker struct {
	corpus   []Candidate
	strategy scoring.Strategy
}

// NewRanker builds a ranker over the given corpus and scoring strategy.
func NewRanker(corpus []Candidate, strategy scoring.Strategy) *Ranker {
	return &Ranker{corpus: corpus, strategy: strategy}
}

// Corpus returns the candidate table.
func (r *Ranker) Corpus() []Candidate {
	return r.corpus
}

// Rank scores every candidate, keeps those at or above the threshold, sorts
// descending and truncates to maxResults. The threshold compares against the
// raw score; the stored score is rounded to four decimals. Equal scores keep
// corpus order.
func (r *Ranker) Rank(query string, maxResults int, threshold float64) []RelatedItem {
	scored := make([]RelatedItem, 0, len(r.corpus))
	for _, candidate := range r.corpus {
		score := r.strategy.Score(query, candidate.Text)
		if score < threshold {
			continue
		}
		scored = append(scored, RelatedItem{
			Text:     candidate.Text,
			Score:    scoring.Round4(score),
			Category: candidate.Category,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if maxResults < len(scored) {
		scored = scored[:maxResults]
	}
	return scored
}

// Similarity scores a single pair of texts, rounded to four decimals.
func (r *Ranker) Similarity(text1, text2 string) float64 {
	return scoring.Round4(r.strategy.Score(text1, text2))
}
