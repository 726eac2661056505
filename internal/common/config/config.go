// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct, shared by all three
// service binaries.
type Config struct {
	App          AppConfig        `mapstructure:"app"`
	Services     ServicesConfig   `mapstructure:"services"`
	Dependencies DependencyConfig `mapstructure:"dependencies"`
	Agents       AgentsConfig     `mapstructure:"agents"`
	Ranking      RankingConfig    `mapstructure:"ranking"`
	Suggestion   SuggestionConfig `mapstructure:"suggestion"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServicesConfig holds the listen addresses of the three services.
type ServicesConfig struct {
	Suggestion ServiceConfig `mapstructure:"suggestion"`
	Related    ServiceConfig `mapstructure:"related"`
	Multiagent ServiceConfig `mapstructure:"multiagent"`
}

type ServiceConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the host:port listen address.
func (s ServiceConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DependencyConfig holds the gateway's view of its two optional upstreams.
// Timeouts are client-side budgets, independent of the upstreams' own limits.
type DependencyConfig struct {
	RelatedURL    string `mapstructure:"related_url"`
	MultiagentURL string `mapstructure:"multiagent_url"`
	Timeout       int    `mapstructure:"timeout"`        // milliseconds, per enrichment call
	HealthTimeout int    `mapstructure:"health_timeout"` // milliseconds, per health probe
}

// AgentsConfig holds the worker pool settings.
type AgentsConfig struct {
	LatencyMin         int     `mapstructure:"latency_min"` // milliseconds
	LatencyMax         int     `mapstructure:"latency_max"` // milliseconds
	ConfidenceMin      float64 `mapstructure:"confidence_min"`
	ConfidenceMax      float64 `mapstructure:"confidence_max"`
	DefaultCount       int     `mapstructure:"default_count"`
	DefaultTimeout     int     `mapstructure:"default_timeout"` // seconds, matches the request field
	MaxConcurrentUnits int     `mapstructure:"max_concurrent_units"`
}

// RankingConfig holds the similarity scoring settings.
type RankingConfig struct {
	DefaultMaxResults int     `mapstructure:"default_max_results"`
	DefaultThreshold  float64 `mapstructure:"default_threshold"`
	NoiseBound        float64 `mapstructure:"noise_bound"`
	Bias              float64 `mapstructure:"bias"`
}

// SuggestionConfig holds the gateway settings.
type SuggestionConfig struct {
	DefaultMaxResults int  `mapstructure:"default_max_results"`
	RelatedMaxResults int  `mapstructure:"related_max_results"` // size of the ranking enrichment request
	AgentCount        int  `mapstructure:"agent_count"`         // workers requested per enrichment dispatch
	CacheEnabled      bool `mapstructure:"cache_enabled"`
	CacheTTL          int  `mapstructure:"cache_ttl"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
