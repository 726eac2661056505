// internal/gateway/config.go
package gateway

import (
	"time"

	"suggestion-mesh/internal/common/config"
)

// Config carries the gateway tunables and dependency endpoints.
type Config struct {
	DefaultMaxResults int
	RelatedMaxResults int
	AgentCount        int

	RelatedURL        string
	MultiagentURL     string
	DependencyTimeout time.Duration
	HealthTimeout     time.Duration

	CacheEnabled bool
	CacheTTL     time.Duration
}

// NewConfigFromApp maps the application config onto the package config.
func NewConfigFromApp(cfg *config.Config) *Config {
	return &Config{
		DefaultMaxResults: cfg.Suggestion.DefaultMaxResults,
		RelatedMaxResults: cfg.Suggestion.RelatedMaxResults,
		AgentCount:        cfg.Suggestion.AgentCount,
		RelatedURL:        cfg.Dependencies.RelatedURL,
		MultiagentURL:     cfg.Dependencies.MultiagentURL,
		DependencyTimeout: config.GetDuration(cfg.Dependencies.Timeout),
		HealthTimeout:     config.GetDuration(cfg.Dependencies.HealthTimeout),
		CacheEnabled:      cfg.Suggestion.CacheEnabled,
		CacheTTL:          config.GetDuration(cfg.Suggestion.CacheTTL),
	}
}
