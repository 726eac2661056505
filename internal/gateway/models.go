// internal/gateway/models.go
package gateway

import (
	"time"
)

// SuggestionRequest is the request body shared by /suggest and
// /suggest/enhanced. Context and MaxResults are pointers so an explicit
// zero value and an omitted field stay distinguishable.
type SuggestionRequest struct {
	Query      string  `json:"query"`
	Context    *string `json:"context,omitempty"`
	MaxResults *int    `json:"max_results,omitempty"`
}

// SuggestionItem is one candidate with its provenance tag.
type SuggestionItem struct {
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

// SuggestionResponse is the /suggest response body.
type SuggestionResponse struct {
	Suggestions []SuggestionItem `json:"suggestions"`
	Query       string           `json:"query"`
	Timestamp   string           `json:"timestamp"`
}

// EnhancedSuggestionResponse is the /suggest/enhanced response body.
// SourcesUsed lists the distinct provenance tags present in the final
// truncated list.
type EnhancedSuggestionResponse struct {
	Suggestions []SuggestionItem `json:"suggestions"`
	Query       string           `json:"query"`
	SourcesUsed []string         `json:"sources_used"`
	Timestamp   string           `json:"timestamp"`
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
