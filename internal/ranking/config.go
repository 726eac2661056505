// internal/ranking/config.go
package ranking

import (
	"suggestion-mesh/internal/common/config"
)

// Config carries the ranking service tunables.
type Config struct {
	DefaultMaxResults int
	DefaultThreshold  float64
	NoiseBound        float64
	Bias              float64
}

// NewConfigFromApp maps the application config onto the package config.
func NewConfigFromApp(cfg *config.Config) *Config {
	return &Config{
		DefaultMaxResults: cfg.Ranking.DefaultMaxResults,
		DefaultThreshold:  cfg.Ranking.DefaultThreshold,
		NoiseBound:        cfg.Ranking.NoiseBound,
		Bias:              cfg.Ranking.Bias,
	}
}
