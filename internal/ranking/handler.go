// internal/ranking/handler.go
package ranking

import (
	"net/http"
	"strings"

	"suggestion-mesh/internal/common/errors"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/server"
)

var relatedSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"query"},
	"properties": map[string]interface{}{
		"query":       map[string]interface{}{"type": "string"},
		"max_results": map[string]interface{}{"type": "integer", "minimum": 1},
		"threshold":   map[string]interface{}{"type": "number", "minimum": 0, "maximum": 1},
	},
}

// Handler exposes the ranking endpoints.
type Handler struct {
	config *Config
	ranker *Ranker
	logger logger.Logger
}

// NewHandler wires the ranker into an HTTP handler.
func NewHandler(cfg *Config, ranker *Ranker, log logger.Logger) *Handler {
	return &Handler{
		config: cfg,
		ranker: ranker,
		logger: log,
	}
}

// Routes builds the service mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /related", h.handleRelated)
	mux.HandleFunc("POST /similarity", h.handleSimilarity)
	mux.HandleFunc("GET /content/stats", h.handleStats)
	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":     "related",
		"status":      "running",
		"version":     "1.0.0",
		"description": "Semantic similarity and related content service",
		"timestamp":   isoNow(),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":       "related",
		"status":        "healthy",
		"model_loaded":  true,
		"content_items": len(h.ranker.Corpus()),
		"timestamp":     isoNow(),
	})
}

func (h *Handler) handleRelated(w http.ResponseWriter, r *http.Request) {
	var req RelatedRequest
	if err := server.DecodeAndValidate(r, relatedSchema, &req); err != nil {
		server.WriteError(w, h.logger, err)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		server.WriteError(w, h.logger, errors.NewEmptyQueryError())
		return
	}

	maxResults := h.config.DefaultMaxResults
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}
	threshold := h.config.DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	h.logger.Info("Finding related content", map[string]interface{}{
		"query":      req.Query,
		"maxResults": maxResults,
		"threshold":  threshold,
	})

	items := h.ranker.Rank(req.Query, maxResults, threshold)

	h.logger.Info("Related content ranked", map[string]interface{}{
		"query": req.Query,
		"count": len(items),
	})

	server.WriteJSON(w, http.StatusOK, RelatedResponse{
		RelatedItems: items,
		Query:        req.Query,
		Timestamp:    isoNow(),
	})
}

func (h *Handler) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	text1, ok1 := params["text1"]
	text2, ok2 := params["text2"]
	if !ok1 || !ok2 {
		server.WriteError(w, h.logger, errors.NewInvalidArgumentError(
			"text1 and text2 query parameters are required", ""))
		return
	}

	score := h.ranker.Similarity(text1[0], text2[0])

	server.WriteJSON(w, http.StatusOK, SimilarityResponse{
		Text1:           text1[0],
		Text2:           text2[0],
		SimilarityScore: score,
		Timestamp:       isoNow(),
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	corpus := h.ranker.Corpus()
	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"total_items": len(corpus),
		"categories":  CategoryCounts(corpus),
		"timestamp":   isoNow(),
	})
}
