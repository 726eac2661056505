// internal/gateway/aggregator.go
package gateway

import (
	"context"
	"fmt"
	"sort"

	"suggestion-mesh/internal/common/errors"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/common/metrics"
)

// Aggregator merges local candidates with the two remote enrichment
// sources. Remote failures degrade the result, they never fail it.
type Aggregator struct {
	config     *Config
	related    *RelatedClient
	multiagent *MultiagentClient
	logger     logger.Logger
}

// NewAggregator wires the dependency clients into the aggregation flow.
func NewAggregator(cfg *Config, related *RelatedClient, multiagent *MultiagentClient, log logger.Logger) *Aggregator {
	return &Aggregator{
		config:     cfg,
		related:    related,
		multiagent: multiagent,
		logger:     log,
	}
}

type contribution struct {
	dependency string
	items      []SuggestionItem
	err        error
}

// Aggregate computes the enhanced suggestion list: local candidates plus
// whatever the two dependencies contribute within their own timeouts. Each
// dependency call runs isolated with its own context so one failure never
// cancels the sibling. Returns the merged, sorted, truncated list and the
// distinct source tags present in it.
func (a *Aggregator) Aggregate(ctx context.Context, query string, maxResults int) ([]SuggestionItem, []string) {
	merged := Generate(query, maxResults)

	results := make(chan contribution, 2)

	go func() {
		callCtx, cancel := context.WithTimeout(ctx, a.config.DependencyTimeout)
		defer cancel()
		items, err := a.related.Related(callCtx, query, a.config.RelatedMaxResults)
		results <- contribution{dependency: "related", items: items, err: err}
	}()

	go func() {
		callCtx, cancel := context.WithTimeout(ctx, a.config.DependencyTimeout)
		defer cancel()
		items, err := a.multiagent.Suggest(callCtx, query, a.config.AgentCount)
		results <- contribution{dependency: "multiagent", items: items, err: err}
	}()

	// Merge order is fixed (local, related, agents) regardless of which
	// dependency answers first, so equal scores rank reproducibly.
	var relatedItems, agentItems []SuggestionItem
	for i := 0; i < 2; i++ {
		out := <-results
		if out.err != nil {
			stdErr := errors.NewDependencyUnavailableError(out.dependency, out.err)
			metrics.DependencyFailures.WithLabelValues("suggestion", out.dependency).Inc()
			a.logger.Warn(fmt.Sprintf("Could not fetch %s suggestions", out.dependency), map[string]interface{}{
				"dependency": out.dependency,
				"errorCode":  string(stdErr.Code),
				"error":      stdErr.Details,
			})
			continue
		}
		if out.dependency == "related" {
			relatedItems = out.items
		} else {
			agentItems = out.items
		}
	}

	merged = append(merged, relatedItems...)
	merged = append(merged, agentItems...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if maxResults >= 0 && maxResults < len(merged) {
		merged = merged[:maxResults]
	}

	return merged, distinctSources(merged)
}

func distinctSources(items []SuggestionItem) []string {
	seen := make(map[string]bool, len(items))
	sources := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item.Source] {
			continue
		}
		seen[item.Source] = true
		sources = append(sources, item.Source)
	}
	return sources
}
