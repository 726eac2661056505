// internal/gateway/generator.go
package gateway

import (
	"fmt"
)

// LocalSource tags locally generated suggestions.
const LocalSource = "suggestion"

var localTemplates = []string{
	"Consider %s with additional context",
	"Alternative approach to %s",
	"Best practices for %s",
	"Related topics to %s",
	"Advanced techniques for %s",
}

// Generate renders the deterministic local candidate list for a query,
// truncated to maxResults. Scores step down from 0.9 in 0.1 increments so
// template order doubles as rank order.
func Generate(query string, maxResults int) []SuggestionItem {
	templates := localTemplates
	if maxResults >= 0 && maxResults < len(templates) {
		templates = templates[:maxResults]
	}

	items := make([]SuggestionItem, 0, len(templates))
	for idx, tmpl := range templates {
		items = append(items, SuggestionItem{
			Text:   fmt.Sprintf(tmpl, query),
			Score:  0.9 - float64(idx)*0.1,
			Source: LocalSource,
		})
	}
	return items
}
