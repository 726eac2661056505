// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"suggestion-mesh/internal/agents"
	"suggestion-mesh/internal/common/database"
	httpclient "suggestion-mesh/internal/common/http"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/gateway"
	"suggestion-mesh/internal/ranking"
	"suggestion-mesh/internal/scoring"
	"suggestion-mesh/internal/server"
)

// ==========================
// Mesh Setup
// ==========================

// mesh runs all three services in-process behind real HTTP listeners, wired
// together the same way the binaries wire them. The gateway talks to the
// other two over actual TCP connections.
type mesh struct {
	gatewayURL    string
	relatedURL    string
	multiagentURL string
	store         *database.RedisClient
}

func startMesh(tb testing.TB) *mesh {
	tb.Helper()
	log := logger.NewZapAdapter(zaptest.NewLogger(tb))

	// --- Multiagent service ---
	agentsCfg := &agents.Config{
		LatencyMin:     time.Millisecond,
		LatencyMax:     5 * time.Millisecond,
		ConfidenceMin:  0.7,
		ConfidenceMax:  0.95,
		DefaultCount:   3,
		DefaultTimeout: 30 * time.Second,
	}
	dispatcher := agents.NewDispatcher(agentsCfg, agents.DefaultProfiles(), nil, log)
	agentHandler := agents.NewHandler(agentsCfg, dispatcher, agents.StaticSummarizer{}, log)
	multiagentSrv := httptest.NewServer(serveWith(agentHandler.Routes(), "multiagent", log))
	tb.Cleanup(multiagentSrv.Close)

	// --- Related service ---
	rankingCfg := &ranking.Config{
		DefaultMaxResults: 5,
		DefaultThreshold:  0.5,
		NoiseBound:        0.1,
		Bias:              0.3,
	}
	ranker := ranking.NewRanker(ranking.DefaultCorpus(), scoring.NewLexical(rankingCfg.NoiseBound, rankingCfg.Bias))
	rankingHandler := ranking.NewHandler(rankingCfg, ranker, log)
	relatedSrv := httptest.NewServer(serveWith(rankingHandler.Routes(), "related", log))
	tb.Cleanup(relatedSrv.Close)

	// --- Suggestion gateway ---
	mr := miniredis.RunT(tb)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	tb.Cleanup(func() { redisClient.Close() })

	gatewayCfg := &gateway.Config{
		DefaultMaxResults: 5,
		RelatedMaxResults: 3,
		AgentCount:        2,
		RelatedURL:        relatedSrv.URL,
		MultiagentURL:     multiagentSrv.URL,
		DependencyTimeout: 5 * time.Second,
		HealthTimeout:     2 * time.Second,
		CacheEnabled:      true,
		CacheTTL:          30 * time.Second,
	}
	depClient := httpclient.NewClient(gatewayCfg.DependencyTimeout)
	related := gateway.NewRelatedClient(gatewayCfg.RelatedURL, depClient)
	multiagent := gateway.NewMultiagentClient(gatewayCfg.MultiagentURL, depClient)
	aggregator := gateway.NewAggregator(gatewayCfg, related, multiagent, log)
	cache := gateway.NewResponseCache(redisClient, gatewayCfg.CacheTTL, log)
	gatewayHandler := gateway.NewHandler(gatewayCfg, aggregator, related, multiagent, cache, log)
	gatewaySrv := httptest.NewServer(serveWith(gatewayHandler.Routes(), "suggestion", log))
	tb.Cleanup(gatewaySrv.Close)

	return &mesh{
		gatewayURL:    gatewaySrv.URL,
		relatedURL:    relatedSrv.URL,
		multiagentURL: multiagentSrv.URL,
		store:         redisClient,
	}
}

// serveWith wraps a service mux in the same middleware chain the binaries use.
func serveWith(mux *http.ServeMux, serviceName string, log logger.Logger) http.Handler {
	return server.Chain(mux,
		server.RequestID(),
		server.Recovery(log),
		server.AccessLog(serviceName, log, nil),
	)
}

func getJSON(t *testing.T, rawURL string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func postJSON(t *testing.T, rawURL string, payload interface{}) (int, string) {
	t.Helper()
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	}
	resp, err := http.Post(rawURL, "application/json", reader)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

type suggestionPayload struct {
	Suggestions []struct {
		Text   string  `json:"text"`
		Score  float64 `json:"score"`
		Source string  `json:"source"`
	} `json:"suggestions"`
	Query       string   `json:"query"`
	SourcesUsed []string `json:"sources_used"`
	Timestamp   string   `json:"timestamp"`
}

type errorPayload struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// ==========================
// Full Mesh Flow
// ==========================

func TestFullMeshE2E(t *testing.T) {
	m := startMesh(t)

	t.Log("🚀 Starting full mesh test with all three services in-process...")

	assertServiceIdentities(t, m)
	assertHealthEndpoints(t, m)

	t.Run("local-suggestions", func(t *testing.T) { testLocalSuggestions(t, m) })
	t.Run("suggest-validation", func(t *testing.T) { testSuggestValidation(t, m) })
	t.Run("enhanced-suggestions", func(t *testing.T) { testEnhancedSuggestions(t, m) })
	t.Run("enhanced-cache-replay", func(t *testing.T) { testEnhancedCacheReplay(t, m) })
	t.Run("related-content", func(t *testing.T) { testRelatedContent(t, m) })
	t.Run("text-similarity", func(t *testing.T) { testTextSimilarity(t, m) })
	t.Run("content-stats", func(t *testing.T) { testContentStats(t, m) })
	t.Run("agent-collaboration", func(t *testing.T) { testAgentCollaboration(t, m) })
	t.Run("agent-task", func(t *testing.T) { testAgentTask(t, m) })
	t.Run("agent-profiles", func(t *testing.T) { testAgentProfiles(t, m) })
	t.Run("agent-vote", func(t *testing.T) { testAgentVote(t, m) })

	t.Log("✅ ALL TESTS PASSED, full mesh flow verified")
}

func assertServiceIdentities(t *testing.T, m *mesh) {
	t.Log("🔍 Checking service identities...")

	cases := []struct {
		url     string
		service string
	}{
		{m.gatewayURL, "suggestion"},
		{m.relatedURL, "related"},
		{m.multiagentURL, "multiagent"},
	}
	for _, tc := range cases {
		var root map[string]interface{}
		status := getJSON(t, tc.url+"/", &root)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, tc.service, root["service"])
		assert.Equal(t, "running", root["status"])
		assert.Equal(t, "1.0.0", root["version"])
		assert.NotEmpty(t, root["timestamp"])
	}

	t.Log("✅ All three services identify themselves")
}

func assertHealthEndpoints(t *testing.T, m *mesh) {
	t.Log("🔍 Checking health endpoints...")

	var agentHealth map[string]interface{}
	require.Equal(t, http.StatusOK, getJSON(t, m.multiagentURL+"/health", &agentHealth))
	assert.Equal(t, "healthy", agentHealth["status"])
	assert.Equal(t, float64(5), agentHealth["active_agents"])

	var relatedHealth map[string]interface{}
	require.Equal(t, http.StatusOK, getJSON(t, m.relatedURL+"/health", &relatedHealth))
	assert.Equal(t, "healthy", relatedHealth["status"])
	assert.Equal(t, true, relatedHealth["model_loaded"])
	assert.Equal(t, float64(15), relatedHealth["content_items"])

	var gatewayHealth struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, m.gatewayURL+"/health", &gatewayHealth))
	assert.Equal(t, "healthy", gatewayHealth.Status)
	assert.Equal(t, "healthy", gatewayHealth.Dependencies["related"])
	assert.Equal(t, "healthy", gatewayHealth.Dependencies["multiagent"])

	t.Log("✅ All health endpoints report healthy")
}

func testLocalSuggestions(t *testing.T, m *mesh) {
	status, body := postJSON(t, m.gatewayURL+"/suggest", map[string]interface{}{
		"query":       "deployment pipeline",
		"max_results": 3,
	})
	require.Equal(t, http.StatusOK, status)

	var resp suggestionPayload
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "deployment pipeline", resp.Query)
	require.Len(t, resp.Suggestions, 3)
	for i, s := range resp.Suggestions {
		assert.Contains(t, s.Text, "deployment pipeline")
		assert.Equal(t, "suggestion", s.Source)
		assert.InDelta(t, 0.9-float64(i)*0.1, s.Score, 1e-9)
	}
	assert.NotEmpty(t, resp.Timestamp)
}

func testSuggestValidation(t *testing.T, m *mesh) {
	status, body := postJSON(t, m.gatewayURL+"/suggest", map[string]interface{}{
		"query": "   ",
	})
	require.Equal(t, http.StatusBadRequest, status)

	var errBody errorPayload
	require.NoError(t, json.Unmarshal([]byte(body), &errBody))
	assert.Equal(t, "INVALID_ARGUMENT", errBody.Code)
	assert.Equal(t, "Query cannot be empty", errBody.Detail)

	status, _ = postJSON(t, m.gatewayURL+"/suggest", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func testEnhancedSuggestions(t *testing.T, m *mesh) {
	// "kubernetes orchestration" overlaps exactly one corpus entry strongly
	// enough to clear the 0.5 threshold at any noise level, so the merge is
	// 5 local + 1 related + 2 agents every time.
	status, body := postJSON(t, m.gatewayURL+"/suggest/enhanced", map[string]interface{}{
		"query":       "kubernetes orchestration",
		"max_results": 10,
	})
	require.Equal(t, http.StatusOK, status)

	var resp suggestionPayload
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Suggestions, 8)
	assert.ElementsMatch(t,
		[]string{"suggestion", "related", "agent-analyzer", "agent-creative"},
		resp.SourcesUsed)

	bySource := make(map[string]int)
	for _, s := range resp.Suggestions {
		bySource[s.Source]++
		assert.NotEmpty(t, s.Text)
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
	assert.Equal(t, 5, bySource["suggestion"])
	assert.Equal(t, 1, bySource["related"])
	assert.Equal(t, 1, bySource["agent-analyzer"])
	assert.Equal(t, 1, bySource["agent-creative"])

	for i := 1; i < len(resp.Suggestions); i++ {
		assert.GreaterOrEqual(t, resp.Suggestions[i-1].Score, resp.Suggestions[i].Score)
	}
}

func testEnhancedCacheReplay(t *testing.T, m *mesh) {
	payload := map[string]interface{}{
		"query":       "edge caching strategies",
		"max_results": 4,
	}

	status, first := postJSON(t, m.gatewayURL+"/suggest/enhanced", payload)
	require.Equal(t, http.StatusOK, status)

	status, second := postJSON(t, m.gatewayURL+"/suggest/enhanced", payload)
	require.Equal(t, http.StatusOK, status)

	// Byte-for-byte replay, timestamp included, proves the second answer
	// came from Redis rather than a recomputation.
	assert.JSONEq(t, first, second)

	rdb := m.store.GetClient()
	stored, err := rdb.Exists(context.Background(), "suggest:enhanced:edge caching strategies:4").Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored)
}

func testRelatedContent(t *testing.T, m *mesh) {
	status, body := postJSON(t, m.relatedURL+"/related", map[string]interface{}{
		"query":       "kubernetes orchestration",
		"max_results": 5,
		"threshold":   0.5,
	})
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		RelatedItems []struct {
			Text     string  `json:"text"`
			Score    float64 `json:"score"`
			Category string  `json:"category"`
		} `json:"related_items"`
		Query string `json:"query"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.RelatedItems, 1)
	assert.Equal(t, "Kubernetes orchestration patterns", resp.RelatedItems[0].Text)
	assert.Equal(t, "DevOps", resp.RelatedItems[0].Category)
	assert.GreaterOrEqual(t, resp.RelatedItems[0].Score, 0.5)

	status, body = postJSON(t, m.relatedURL+"/related", map[string]interface{}{
		"query": "completely unrelated gibberish",
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Empty(t, resp.RelatedItems)
}

func testTextSimilarity(t *testing.T, m *mesh) {
	params := url.Values{
		"text1": {"machine learning models"},
		"text2": {"machine learning models"},
	}
	status, body := postJSON(t, m.relatedURL+"/similarity?"+params.Encode(), nil)
	require.Equal(t, http.StatusOK, status)

	var sim struct {
		Text1           string  `json:"text1"`
		Text2           string  `json:"text2"`
		SimilarityScore float64 `json:"similarity_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &sim))
	assert.Equal(t, "machine learning models", sim.Text1)
	assert.Equal(t, 1.0, sim.SimilarityScore)

	status, body = postJSON(t, m.relatedURL+"/similarity?text1=only+one", nil)
	require.Equal(t, http.StatusBadRequest, status)

	var errBody errorPayload
	require.NoError(t, json.Unmarshal([]byte(body), &errBody))
	assert.Equal(t, "INVALID_ARGUMENT", errBody.Code)
}

func testContentStats(t *testing.T, m *mesh) {
	var stats struct {
		TotalItems int            `json:"total_items"`
		Categories map[string]int `json:"categories"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, m.relatedURL+"/content/stats", &stats))

	assert.Equal(t, 15, stats.TotalItems)
	assert.Equal(t, 3, stats.Categories["DevOps"])
	assert.Len(t, stats.Categories, 11)
}

func testAgentCollaboration(t *testing.T, m *mesh) {
	status, body := postJSON(t, m.multiagentURL+"/agents/suggest", map[string]interface{}{
		"query":       "improve test coverage",
		"agent_count": 5,
		"timeout":     10,
	})
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		AgentResponses []struct {
			AgentID    string  `json:"agent_id"`
			Suggestion string  `json:"suggestion"`
			Confidence float64 `json:"confidence"`
			Reasoning  string  `json:"reasoning"`
		} `json:"agent_responses"`
		Consensus      string  `json:"consensus"`
		ConsensusScore float64 `json:"consensus_score"`
		Query          string  `json:"query"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.AgentResponses, 5)
	wantOrder := []string{"analyzer", "creative", "pragmatic", "optimizer", "security"}
	for i, ar := range resp.AgentResponses {
		assert.Equal(t, wantOrder[i], ar.AgentID)
		assert.Contains(t, ar.Suggestion, "improve test coverage")
		assert.GreaterOrEqual(t, ar.Confidence, 0.7)
		assert.LessOrEqual(t, ar.Confidence, 0.95)
		assert.NotEmpty(t, ar.Reasoning)
	}
	assert.Equal(t, "Agents agree to combine analytical, creative, and practical approaches", resp.Consensus)
	assert.GreaterOrEqual(t, resp.ConsensusScore, 0.7)
	assert.LessOrEqual(t, resp.ConsensusScore, 0.95)

	status, body = postJSON(t, m.multiagentURL+"/agents/suggest", map[string]interface{}{
		"query":       "too many",
		"agent_count": 6,
	})
	require.Equal(t, http.StatusBadRequest, status)

	var errBody errorPayload
	require.NoError(t, json.Unmarshal([]byte(body), &errBody))
	assert.Equal(t, "INVALID_ARGUMENT", errBody.Code)
	assert.Equal(t, "Agent count must be between 1 and 5", errBody.Detail)
}

func testAgentTask(t *testing.T, m *mesh) {
	status, body := postJSON(t, m.multiagentURL+"/agents/task", map[string]interface{}{
		"task_type": "analysis",
		"payload":   map[string]interface{}{"data": "sample"},
	})
	require.Equal(t, http.StatusOK, status)

	var task struct {
		TaskID     string `json:"task_id"`
		TaskType   string `json:"task_type"`
		AgentCount int    `json:"agent_count"`
		Status     string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &task))
	assert.True(t, strings.HasPrefix(task.TaskID, "task-"))
	assert.Equal(t, "analysis", task.TaskType)
	assert.Equal(t, 3, task.AgentCount)
	assert.Equal(t, "queued", task.Status)

	status, _ = postJSON(t, m.multiagentURL+"/agents/task", map[string]interface{}{
		"task_type": "analysis",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func testAgentProfiles(t *testing.T, m *mesh) {
	var profiles struct {
		Agents []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"agents"`
		TotalAgents int `json:"total_agents"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, m.multiagentURL+"/agents/profiles", &profiles))
	assert.Equal(t, 5, profiles.TotalAgents)
	require.Len(t, profiles.Agents, 5)

	var single struct {
		Agent struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			Specialty string `json:"specialty"`
		} `json:"agent"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, m.multiagentURL+"/agents/analyzer", &single))
	assert.Equal(t, "analyzer", single.Agent.ID)
	assert.Equal(t, "Analytical Agent", single.Agent.Name)

	var errBody errorPayload
	require.Equal(t, http.StatusNotFound, getJSON(t, m.multiagentURL+"/agents/ghost", &errBody))
	assert.Equal(t, "AGENT_NOT_FOUND", errBody.Code)
}

func testAgentVote(t *testing.T, m *mesh) {
	solutions := []string{"option-a", "option-b", "option-c"}
	status, body := postJSON(t, m.multiagentURL+"/agents/vote?voter_count=5", solutions)
	require.Equal(t, http.StatusOK, status)

	var vote struct {
		Solutions []string `json:"solutions"`
		Votes     map[string]struct {
			Votes      int     `json:"votes"`
			Confidence float64 `json:"confidence"`
		} `json:"votes"`
		Winner struct {
			Solution string `json:"solution"`
			Votes    int    `json:"votes"`
		} `json:"winner"`
		VoterCount int `json:"voter_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &vote))

	assert.Equal(t, solutions, vote.Solutions)
	assert.Equal(t, 5, vote.VoterCount)
	require.Len(t, vote.Votes, 3)

	maxVotes := -1
	for _, solution := range solutions {
		tally, ok := vote.Votes[solution]
		require.True(t, ok)
		assert.GreaterOrEqual(t, tally.Votes, 0)
		assert.LessOrEqual(t, tally.Votes, 5)
		assert.GreaterOrEqual(t, tally.Confidence, 0.6)
		assert.LessOrEqual(t, tally.Confidence, 0.95)
		if tally.Votes > maxVotes {
			maxVotes = tally.Votes
		}
	}
	assert.Contains(t, solutions, vote.Winner.Solution)
	assert.Equal(t, maxVotes, vote.Winner.Votes)

	status, body = postJSON(t, m.multiagentURL+"/agents/vote", map[string]interface{}{"not": "an array"})
	require.Equal(t, http.StatusBadRequest, status)

	var errBody errorPayload
	require.NoError(t, json.Unmarshal([]byte(body), &errBody))
	assert.Equal(t, "Request body must be a JSON array of solutions", errBody.Detail)
}

// ==========================
// Degraded Mode
// ==========================

func TestGatewaySurvivesDependencyLoss(t *testing.T) {
	log := logger.NewZapAdapter(zaptest.NewLogger(t))

	deadRelated := httptest.NewServer(http.NotFoundHandler())
	deadMultiagent := httptest.NewServer(http.NotFoundHandler())
	deadRelated.Close()
	deadMultiagent.Close()

	cfg := &gateway.Config{
		DefaultMaxResults: 5,
		RelatedMaxResults: 3,
		AgentCount:        2,
		RelatedURL:        deadRelated.URL,
		MultiagentURL:     deadMultiagent.URL,
		DependencyTimeout: 500 * time.Millisecond,
		HealthTimeout:     500 * time.Millisecond,
	}
	depClient := httpclient.NewClient(cfg.DependencyTimeout)
	related := gateway.NewRelatedClient(cfg.RelatedURL, depClient)
	multiagent := gateway.NewMultiagentClient(cfg.MultiagentURL, depClient)
	aggregator := gateway.NewAggregator(cfg, related, multiagent, log)
	handler := gateway.NewHandler(cfg, aggregator, related, multiagent, nil, log)

	gatewaySrv := httptest.NewServer(serveWith(handler.Routes(), "suggestion", log))
	defer gatewaySrv.Close()

	t.Log("🔌 Both upstreams are down, gateway must keep answering")

	status, body := postJSON(t, gatewaySrv.URL+"/suggest/enhanced", map[string]interface{}{
		"query": "resilience testing",
	})
	require.Equal(t, http.StatusOK, status)

	var resp suggestionPayload
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, []string{"suggestion"}, resp.SourcesUsed)
	require.Len(t, resp.Suggestions, 5)
	for _, s := range resp.Suggestions {
		assert.Equal(t, "suggestion", s.Source)
	}

	var health struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, gatewaySrv.URL+"/health", &health))
	assert.Equal(t, "healthy", health.Status)
	assert.True(t, strings.HasPrefix(health.Dependencies["related"], "unreachable: "))
	assert.True(t, strings.HasPrefix(health.Dependencies["multiagent"], "unreachable: "))

	t.Log("✅ Gateway degraded to local suggestions without failing")
}

// ==========================
// Benchmark Tests
// ==========================

func BenchmarkGatewaySuggest(b *testing.B) {
	m := startMesh(b)
	payload := []byte(`{"query": "deployment pipeline", "max_results": 5}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp, err := http.Post(m.gatewayURL+"/suggest", "application/json", bytes.NewReader(payload))
		if err != nil {
			b.Fatal(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

func BenchmarkGatewayEnhancedCached(b *testing.B) {
	m := startMesh(b)
	payload := []byte(`{"query": "kubernetes orchestration", "max_results": 10}`)

	// Prime the cache so iterations measure the replay path.
	resp, err := http.Post(m.gatewayURL+"/suggest/enhanced", "application/json", bytes.NewReader(payload))
	if err != nil {
		b.Fatal(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp, err := http.Post(m.gatewayURL+"/suggest/enhanced", "application/json", bytes.NewReader(payload))
		if err != nil {
			b.Fatal(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
