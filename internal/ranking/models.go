// internal/ranking/models.go
package ranking

import (
	"time"
)

// RelatedRequest is the /related request body. MaxResults and Threshold are
// pointers so an explicit zero and an omitted field stay distinguishable.
type RelatedRequest struct {
	Query      string   `json:"query"`
	MaxResults *int     `json:"max_results,omitempty"`
	Threshold  *float64 `json:"threshold,omitempty"`
}

// RelatedItem is one ranked candidate.
type RelatedItem struct {
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

// RelatedResponse is the /related response body.
type RelatedResponse struct {
	RelatedItems []RelatedItem `json:"related_items"`
	Query        string        `json:"query"`
	Timestamp    string        `json:"timestamp"`
}

// SimilarityResponse is the /similarity response body.
type SimilarityResponse struct {
	Text1           string  `json:"text1"`
	Text2           string  `json:"text2"`
	SimilarityScore float64 `json:"similarity_score"`
	Timestamp       string  `json:"timestamp"`
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
