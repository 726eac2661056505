// internal/gateway/clients.go
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"

	httpclient "suggestion-mesh/internal/common/http"
)

// RelatedClient calls the ranking service.
type RelatedClient struct {
	baseURL string
	client  *httpclient.Client
}

// NewRelatedClient builds a client for the ranking service at baseURL.
func NewRelatedClient(baseURL string, client *httpclient.Client) *RelatedClient {
	return &RelatedClient{baseURL: baseURL, client: client}
}

type relatedWireItem struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type relatedWireResponse struct {
	RelatedItems []relatedWireItem `json:"related_items"`
}

// Related fetches ranked candidates for the query, tagged with the
// "related" source.
func (c *RelatedClient) Related(ctx context.Context, query string, maxResults int) ([]SuggestionItem, error) {
	payload := map[string]interface{}{
		"query":       query,
		"max_results": maxResults,
	}

	var wire relatedWireResponse
	if err := c.client.PostJSON(ctx, c.baseURL+"/related", payload, &wire); err != nil {
		return nil, err
	}

	items := make([]SuggestionItem, 0, len(wire.RelatedItems))
	for _, item := range wire.RelatedItems {
		items = append(items, SuggestionItem{
			Text:   item.Text,
			Score:  item.Score,
			Source: "related",
		})
	}
	return items, nil
}

// Health probes the ranking service health endpoint.
func (c *RelatedClient) Health(ctx context.Context) string {
	return probeHealth(ctx, c.client, c.baseURL)
}

// MultiagentClient calls the orchestrator service.
type MultiagentClient struct {
	baseURL string
	client  *httpclient.Client
}

// NewMultiagentClient builds a client for the orchestrator service at
// baseURL.
func NewMultiagentClient(baseURL string, client *httpclient.Client) *MultiagentClient {
	return &MultiagentClient{baseURL: baseURL, client: client}
}

type agentWireItem struct {
	AgentID    string  `json:"agent_id"`
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

type agentWireResponse struct {
	AgentResponses []agentWireItem `json:"agent_responses"`
}

// Suggest fetches worker suggestions for the query, tagged with the
// per-agent "agent-<id>" source and scored by confidence.
func (c *MultiagentClient) Suggest(ctx context.Context, query string, agentCount int) ([]SuggestionItem, error) {
	payload := map[string]interface{}{
		"query":       query,
		"agent_count": agentCount,
	}

	var wire agentWireResponse
	if err := c.client.PostJSON(ctx, c.baseURL+"/agents/suggest", payload, &wire); err != nil {
		return nil, err
	}

	items := make([]SuggestionItem, 0, len(wire.AgentResponses))
	for _, item := range wire.AgentResponses {
		items = append(items, SuggestionItem{
			Text:   item.Suggestion,
			Score:  item.Confidence,
			Source: "agent-" + item.AgentID,
		})
	}
	return items, nil
}

// Health probes the orchestrator service health endpoint.
func (c *MultiagentClient) Health(ctx context.Context) string {
	return probeHealth(ctx, c.client, c.baseURL)
}

// probeHealth distinguishes a reachable-but-failing dependency from an
// unreachable one.
func probeHealth(ctx context.Context, client *httpclient.Client, baseURL string) string {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return fmt.Sprintf("unreachable: %v", err)
	}

	resp, err := client.DoWithContext(ctx, req)
	if err != nil {
		return fmt.Sprintf("unreachable: %v", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK {
		return "healthy"
	}
	return "unhealthy"
}
