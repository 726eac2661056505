// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like SUGGESTION_CACHE_ENABLED
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	// 1️⃣ LOAD BASE CONFIG
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// 2️⃣ LOAD ENV CONFIG
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	// 3️⃣ EXPAND ENV PLACEHOLDERS
	expandEnvVars(viper.GetViper())

	// 4️⃣ Unmarshal final config
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	// 5️⃣ DIRECT OVERRIDE IF STILL EMPTY
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env in multiple locations so the services and tests
// work when started from nested directories.
func loadEnvFile() {
	possiblePaths := []string{
		".env",          // Current directory
		"../.env",       // Parent directory
		"../../.env",    // Two levels up (for tests in test/e2e/)
		"../../../.env", // Three levels up
	}

	// Also try to find project root by looking for go.mod
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				fmt.Printf("✅ Loaded .env from: %s\n", path)
				return
			}
		}
	}

	fmt.Printf("⚠️  .env file not found in any location, using system environment variables\n")
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		// Only process string values
		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	// Gateway upstreams (compose/k8s inject these without a config file)
	if val := os.Getenv("RELATED_SERVICE_URL"); val != "" {
		cfg.Dependencies.RelatedURL = val
	}
	if val := os.Getenv("MULTIAGENT_SERVICE_URL"); val != "" {
		cfg.Dependencies.MultiagentURL = val
	}

	// Redis overrides
	if cfg.Database.Redis.Address == "" {
		if val := os.Getenv("REDIS_ADDRESS"); val != "" {
			cfg.Database.Redis.Address = val
		}
	}
	if cfg.Database.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Database.Redis.Password = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile() // Load env file first

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	// App defaults
	if cfg.App.Name == "" {
		cfg.App.Name = "suggestion-mesh"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	// Service listen defaults
	if cfg.Services.Suggestion.Host == "" {
		cfg.Services.Suggestion.Host = "0.0.0.0"
	}
	if cfg.Services.Suggestion.Port == 0 {
		cfg.Services.Suggestion.Port = 8000
	}
	if cfg.Services.Related.Host == "" {
		cfg.Services.Related.Host = "0.0.0.0"
	}
	if cfg.Services.Related.Port == 0 {
		cfg.Services.Related.Port = 8001
	}
	if cfg.Services.Multiagent.Host == "" {
		cfg.Services.Multiagent.Host = "0.0.0.0"
	}
	if cfg.Services.Multiagent.Port == 0 {
		cfg.Services.Multiagent.Port = 8002
	}

	// Gateway upstream defaults
	if cfg.Dependencies.RelatedURL == "" {
		cfg.Dependencies.RelatedURL = "http://localhost:8001"
	}
	if cfg.Dependencies.MultiagentURL == "" {
		cfg.Dependencies.MultiagentURL = "http://localhost:8002"
	}
	if cfg.Dependencies.Timeout == 0 {
		cfg.Dependencies.Timeout = 10000
	}
	if cfg.Dependencies.HealthTimeout == 0 {
		cfg.Dependencies.HealthTimeout = 5000
	}

	// Worker pool defaults
	if cfg.Agents.LatencyMin == 0 {
		cfg.Agents.LatencyMin = 500
	}
	if cfg.Agents.LatencyMax == 0 {
		cfg.Agents.LatencyMax = 2000
	}
	if cfg.Agents.ConfidenceMin == 0 {
		cfg.Agents.ConfidenceMin = 0.7
	}
	if cfg.Agents.ConfidenceMax == 0 {
		cfg.Agents.ConfidenceMax = 0.95
	}
	if cfg.Agents.DefaultCount == 0 {
		cfg.Agents.DefaultCount = 3
	}
	if cfg.Agents.DefaultTimeout == 0 {
		cfg.Agents.DefaultTimeout = 30
	}

	// Scoring defaults
	if cfg.Ranking.DefaultMaxResults == 0 {
		cfg.Ranking.DefaultMaxResults = 5
	}
	if cfg.Ranking.DefaultThreshold == 0 {
		cfg.Ranking.DefaultThreshold = 0.5
	}
	if cfg.Ranking.NoiseBound == 0 {
		cfg.Ranking.NoiseBound = 0.1
	}
	if cfg.Ranking.Bias == 0 {
		cfg.Ranking.Bias = 0.3
	}

	// Gateway defaults
	if cfg.Suggestion.DefaultMaxResults == 0 {
		cfg.Suggestion.DefaultMaxResults = 5
	}
	if cfg.Suggestion.RelatedMaxResults == 0 {
		cfg.Suggestion.RelatedMaxResults = 3
	}
	if cfg.Suggestion.AgentCount == 0 {
		cfg.Suggestion.AgentCount = 2
	}
	if cfg.Suggestion.CacheTTL == 0 {
		cfg.Suggestion.CacheTTL = 30000
	}

	// Redis defaults
	if cfg.Database.Redis.Address == "" {
		cfg.Database.Redis.Address = "localhost:6379"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	services := map[string]ServiceConfig{
		"suggestion": cfg.Services.Suggestion,
		"related":    cfg.Services.Related,
		"multiagent": cfg.Services.Multiagent,
	}
	for name, svc := range services {
		if svc.Port <= 0 || svc.Port > 65535 {
			return fmt.Errorf("services.%s.port must be between 1 and 65535", name)
		}
	}

	if cfg.Dependencies.RelatedURL == "" {
		return fmt.Errorf("dependencies.related_url is required")
	}
	if cfg.Dependencies.MultiagentURL == "" {
		return fmt.Errorf("dependencies.multiagent_url is required")
	}

	if cfg.Agents.LatencyMax < cfg.Agents.LatencyMin {
		return fmt.Errorf("agents.latency_max must not be below agents.latency_min")
	}
	if cfg.Agents.ConfidenceMin < 0 || cfg.Agents.ConfidenceMax > 1 ||
		cfg.Agents.ConfidenceMax < cfg.Agents.ConfidenceMin {
		return fmt.Errorf("agents confidence bounds must satisfy 0 <= min <= max <= 1")
	}
	if cfg.Agents.MaxConcurrentUnits < 0 {
		return fmt.Errorf("agents.max_concurrent_units must not be negative")
	}

	if cfg.Ranking.DefaultThreshold < 0 || cfg.Ranking.DefaultThreshold > 1 {
		return fmt.Errorf("ranking.default_threshold must be between 0.0 and 1.0")
	}

	if cfg.Suggestion.CacheEnabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when suggestion cache is enabled")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetSeconds converts seconds from config to time.Duration
func GetSeconds(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
