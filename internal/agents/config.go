// internal/agents/config.go
package agents

import (
	"time"

	"suggestion-mesh/internal/common/config"
)

// Config holds the agent pool settings.
type Config struct {
	LatencyMin         time.Duration
	LatencyMax         time.Duration
	ConfidenceMin      float64
	ConfidenceMax      float64
	DefaultCount       int
	DefaultTimeout     time.Duration
	MaxConcurrentUnits int
}

// NewConfigFromApp maps application config to the agent pool config.
func NewConfigFromApp(cfg *config.Config) *Config {
	return &Config{
		LatencyMin:         config.GetDuration(cfg.Agents.LatencyMin),
		LatencyMax:         config.GetDuration(cfg.Agents.LatencyMax),
		ConfidenceMin:      cfg.Agents.ConfidenceMin,
		ConfidenceMax:      cfg.Agents.ConfidenceMax,
		DefaultCount:       cfg.Agents.DefaultCount,
		DefaultTimeout:     config.GetSeconds(cfg.Agents.DefaultTimeout),
		MaxConcurrentUnits: cfg.Agents.MaxConcurrentUnits,
	}
}
