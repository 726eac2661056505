// internal/agents/handler.go
package agents

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"suggestion-mesh/internal/common/errors"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/scoring"
	"suggestion-mesh/internal/server"
)

var suggestSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"query"},
	"properties": map[string]interface{}{
		"query":       map[string]interface{}{"type": "string"},
		"agent_count": map[string]interface{}{"type": "integer"},
		"timeout":     map[string]interface{}{"type": "integer"},
	},
}

var taskSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"task_type", "payload"},
	"properties": map[string]interface{}{
		"task_type":   map[string]interface{}{"type": "string"},
		"payload":     map[string]interface{}{"type": "object"},
		"agent_count": map[string]interface{}{"type": "integer"},
	},
}

// Handler exposes the multi-agent orchestration endpoints.
type Handler struct {
	config     *Config
	dispatcher *Dispatcher
	summarizer Summarizer
	logger     logger.Logger

	randInt     func(n int) int
	randUniform func(min, max float64) float64
}

// NewHandler wires the dispatcher and consensus strategy into an HTTP
// handler.
func NewHandler(cfg *Config, dispatcher *Dispatcher, summarizer Summarizer, log logger.Logger) *Handler {
	return &Handler{
		config:     cfg,
		dispatcher: dispatcher,
		summarizer: summarizer,
		logger:     log,
		randInt:    rand.Intn,
		randUniform: func(min, max float64) float64 {
			return min + rand.Float64()*(max-min)
		},
	}
}

// Routes builds the service mux. The literal /agents/profiles pattern takes
// precedence over the /agents/{agent_id} wildcard.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /agents/suggest", h.handleSuggest)
	mux.HandleFunc("POST /agents/task", h.handleTask)
	mux.HandleFunc("GET /agents/profiles", h.handleProfiles)
	mux.HandleFunc("GET /agents/{agent_id}", h.handleAgentByID)
	mux.HandleFunc("POST /agents/vote", h.handleVote)
	return mux
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":          "multiagent",
		"status":           "running",
		"version":          "1.0.0",
		"description":      "Multi-agent collaborative AI system",
		"available_agents": len(h.dispatcher.Profiles()),
		"timestamp":        isoNow(),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	profiles := h.dispatcher.Profiles()
	ids := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.ID)
	}

	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":        "multiagent",
		"status":         "healthy",
		"active_agents":  len(profiles),
		"agent_profiles": ids,
		"timestamp":      isoNow(),
	})
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := server.DecodeAndValidate(r, suggestSchema, &req); err != nil {
		server.WriteError(w, h.logger, err)
		return
	}

	agentCount := h.config.DefaultCount
	if req.AgentCount != nil {
		agentCount = *req.AgentCount
	}
	timeout := h.config.DefaultTimeout
	if req.Timeout != nil {
		timeout = time.Duration(*req.Timeout) * time.Second
	}

	h.logger.Info("Multi-agent request", map[string]interface{}{
		"query":      req.Query,
		"agentCount": agentCount,
	})

	responses, err := h.dispatcher.Dispatch(r.Context(), req.Query, agentCount, timeout)
	if err != nil {
		server.WriteError(w, h.logger, err)
		return
	}

	consensus, score := h.summarizer.Summarize(responses)

	server.WriteJSON(w, http.StatusOK, SuggestResponse{
		AgentResponses: responses,
		Consensus:      consensus,
		ConsensusScore: score,
		Query:          req.Query,
		Timestamp:      isoNow(),
	})
}

func (h *Handler) handleTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := server.DecodeAndValidate(r, taskSchema, &req); err != nil {
		server.WriteError(w, h.logger, err)
		return
	}

	agentCount := h.config.DefaultCount
	if req.AgentCount != nil {
		agentCount = *req.AgentCount
	}

	taskID := "task-" + time.Now().UTC().Format("20060102150405")

	h.logger.Info("Creating agent task", map[string]interface{}{
		"taskType": req.TaskType,
		"taskId":   taskID,
	})

	server.WriteJSON(w, http.StatusOK, TaskResponse{
		TaskID:     taskID,
		TaskType:   req.TaskType,
		AgentCount: agentCount,
		Status:     "queued",
		Message:    "Task created successfully",
		Timestamp:  isoNow(),
	})
}

func (h *Handler) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := h.dispatcher.Profiles()
	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"agents":       profiles,
		"total_agents": len(profiles),
		"timestamp":    isoNow(),
	})
}

func (h *Handler) handleAgentByID(w http.ResponseWriter, r *http.Request) {
	agentID := r.PathValue("agent_id")

	profile, ok := FindProfile(h.dispatcher.Profiles(), agentID)
	if !ok {
		server.WriteError(w, h.logger, errors.NewAgentNotFoundError(agentID))
		return
	}

	server.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"agent":     profile,
		"timestamp": isoNow(),
	})
}

func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		server.WriteError(w, h.logger, errors.NewInternalError(err))
		return
	}

	var solutions []string
	if err := json.Unmarshal(body, &solutions); err != nil {
		server.WriteError(w, h.logger, errors.NewInvalidArgumentError(
			"Request body must be a JSON array of solutions", err.Error()))
		return
	}
	if len(solutions) == 0 {
		server.WriteError(w, h.logger, errors.NewInvalidArgumentError(
			"Solutions list must not be empty", ""))
		return
	}

	voterCount := 3
	if raw := r.URL.Query().Get("voter_count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			server.WriteError(w, h.logger, errors.NewInvalidArgumentError(
				"voter_count must be an integer", raw))
			return
		}
		voterCount = parsed
	}
	if voterCount < 0 {
		server.WriteError(w, h.logger, errors.NewInvalidArgumentError(
			"voter_count must not be negative", strconv.Itoa(voterCount)))
		return
	}
	if voterCount > len(h.dispatcher.Profiles()) {
		voterCount = len(h.dispatcher.Profiles())
	}

	votes := make(map[string]VoteTally, len(solutions))
	for _, solution := range solutions {
		votes[solution] = VoteTally{
			Votes:      h.randInt(voterCount + 1),
			Confidence: scoring.Round4(h.randUniform(0.6, 0.95)),
		}
	}

	// First-seen tie-break: later solutions must strictly beat the leader.
	winner := VoteWinner{Solution: solutions[0], Votes: -1}
	for _, solution := range solutions {
		tally := votes[solution]
		if tally.Votes > winner.Votes {
			winner = VoteWinner{
				Solution:   solution,
				Votes:      tally.Votes,
				Confidence: tally.Confidence,
			}
		}
	}

	server.WriteJSON(w, http.StatusOK, VoteResponse{
		Solutions:  solutions,
		Votes:      votes,
		Winner:     winner,
		VoterCount: voterCount,
		Timestamp:  isoNow(),
	})
}
