// internal/agents/models.go
package agents

import "time"

// Profile describes one agent in the static pool.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Approach  string `json:"approach"`
}

// SuggestRequest is the dispatch request body. Count and timeout are
// pointers so an explicit zero is distinguishable from an omitted field.
type SuggestRequest struct {
	Query      string `json:"query"`
	AgentCount *int   `json:"agent_count,omitempty"`
	Timeout    *int   `json:"timeout,omitempty"` // seconds
}

// AgentResponse is one worker's contribution to a dispatch.
type AgentResponse struct {
	AgentID    string  `json:"agent_id"`
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// SuggestResponse is the full dispatch result.
type SuggestResponse struct {
	AgentResponses []AgentResponse `json:"agent_responses"`
	Consensus      string          `json:"consensus"`
	ConsensusScore float64         `json:"consensus_score"`
	Query          string          `json:"query"`
	Timestamp      string          `json:"timestamp"`
}

// TaskRequest asks for background processing of an arbitrary payload.
type TaskRequest struct {
	TaskType   string                 `json:"task_type"`
	Payload    map[string]interface{} `json:"payload"`
	AgentCount *int                   `json:"agent_count,omitempty"`
}

// TaskResponse acknowledges a queued task.
type TaskResponse struct {
	TaskID     string `json:"task_id"`
	TaskType   string `json:"task_type"`
	AgentCount int    `json:"agent_count"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// VoteTally is the vote outcome for a single solution.
type VoteTally struct {
	Votes      int     `json:"votes"`
	Confidence float64 `json:"confidence"`
}

// VoteWinner is the winning solution with its tally.
type VoteWinner struct {
	Solution   string  `json:"solution"`
	Votes      int     `json:"votes"`
	Confidence float64 `json:"confidence"`
}

// VoteResponse is the result of agents voting on proposed solutions.
type VoteResponse struct {
	Solutions  []string             `json:"solutions"`
	Votes      map[string]VoteTally `json:"votes"`
	Winner     VoteWinner           `json:"winner"`
	VoterCount int                  `json:"voter_count"`
	Timestamp  string               `json:"timestamp"`
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
