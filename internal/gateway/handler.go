// internal/gateway/handler.go
package gateway

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"suggestion-mesh/internal/common/errors"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/server"
)

var suggestSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"query"},
	"properties": map[string]interface{}{
		"query":       map[string]interface{}{"type": "string"},
		"context":     map[string]interface{}{"type": "string"},
		"max_results": map[string]interface{}{"type": "integer", "minimum": 1},
	},
}

// Handler exposes the gateway endpoints.
type Handler struct {
	config     *Config
	aggregator *Aggregator
	related    *RelatedClient
	multiagent *MultiagentClient
	cache      *ResponseCache
	logger     logger.Logger
}

// NewHandler wires the aggregation flow into an HTTP handler. cache may be
// nil, which disables the cache-aside layer.
func NewHandler(cfg *Config, aggregator *Aggregator, related *RelatedClient, multiagent *MultiagentClient, cache *ResponseCache, log logger.Logger) *Handler {
	return &Handler{
		config:     cfg,
		aggregator: aggregator,
		related:    related,
		multiagent: multiagent,
		cache:      cache,
		logger:     log,
	}
}

// Routes builds the service mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /suggest", h.handleSuggest)
	mux.HandleFunc("POST /suggest/enhanced", h.handleEnhanced)
	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":     "suggestion",
		"status":      "running",
		"version":     "1.0.0",
		"description": "AI-powered suggestion service",
		"timestamp":   isoNow(),
	})
}

// handleHealth probes both dependencies concurrently. The gateway itself
// always reports healthy: dependency loss degrades answers, it does not
// take the service down.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	dependencies := make(map[string]string, 2)
	var mu sync.Mutex
	var wg sync.WaitGroup

	probe := func(name string, check func(ctx context.Context) string) {
		defer wg.Done()
		probeCtx, cancel := context.WithTimeout(r.Context(), h.config.HealthTimeout)
		defer cancel()
		status := check(probeCtx)
		mu.Lock()
		dependencies[name] = status
		mu.Unlock()
	}

	wg.Add(2)
	go probe("related", h.related.Health)
	go probe("multiagent", h.multiagent.Health)
	wg.Wait()

	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":      "suggestion",
		"status":       "healthy",
		"timestamp":    isoNow(),
		"dependencies": dependencies,
	})
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	req, maxResults, err := h.decodeSuggestionRequest(r)
	if err != nil {
		server.WriteError(w, h.logger, err)
		return
	}

	h.logger.Info("Received suggestion request", map[string]interface{}{
		"query":      req.Query,
		"hasContext": req.Context != nil,
	})

	items := Generate(req.Query, maxResults)

	h.logger.Info("Generated suggestions", map[string]interface{}{
		"count": len(items),
	})

	server.WriteJSON(w, http.StatusOK, SuggestionResponse{
		Suggestions: items,
		Query:       req.Query,
		Timestamp:   isoNow(),
	})
}

func (h *Handler) handleEnhanced(w http.ResponseWriter, r *http.Request) {
	req, maxResults, err := h.decodeSuggestionRequest(r)
	if err != nil {
		server.WriteError(w, h.logger, err)
		return
	}

	h.logger.Info("Received enhanced suggestion request", map[string]interface{}{
		"query":      req.Query,
		"hasContext": req.Context != nil,
	})

	if h.cache != nil {
		if cached, ok := h.cache.Get(r.Context(), req.Query, maxResults); ok {
			h.logger.Info("Enhanced suggestions served from cache", map[string]interface{}{
				"query": req.Query,
			})
			server.WriteJSON(w, http.StatusOK, cached)
			return
		}
	}

	items, sources := h.aggregator.Aggregate(r.Context(), req.Query, maxResults)

	response := &EnhancedSuggestionResponse{
		Suggestions: items,
		Query:       req.Query,
		SourcesUsed: sources,
		Timestamp:   isoNow(),
	}

	if h.cache != nil {
		h.cache.Set(r.Context(), req.Query, maxResults, response)
	}

	h.logger.Info("Enhanced suggestions aggregated", map[string]interface{}{
		"count":   len(items),
		"sources": sources,
	})

	server.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) decodeSuggestionRequest(r *http.Request) (SuggestionRequest, int, error) {
	var req SuggestionRequest
	if err := server.DecodeAndValidate(r, suggestSchema, &req); err != nil {
		return req, 0, err
	}

	if strings.TrimSpace(req.Query) == "" {
		return req, 0, errors.NewEmptyQueryError()
	}

	maxResults := h.config.DefaultMaxResults
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}
	return req, maxResults, nil
}
