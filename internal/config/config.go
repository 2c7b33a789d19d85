// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultPort                = 8080
	DefaultMaxResumeBytes      = 10 << 20
	DefaultFetchTimeoutSeconds = 30
	DefaultSearchLimit         = 50
	MaxSearchLimit             = 500
	DefaultCacheTTLSeconds     = 24 * 60 * 60
	DefaultParseQueue          = "resume_parse"
)

// Config holds settings loaded from a JSON file and the environment.
// All fields are optional; missing values use defaults.
type Config struct {
	DatabaseURL         string `json:"database_url,omitempty"`          // PostgreSQL connection URL
	Port                int    `json:"port,omitempty"`                  // HTTP listen port
	MaxResumeBytes      int64  `json:"max_resume_bytes,omitempty"`      // Upload and download size limit
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds,omitempty"` // Resume download timeout
	SearchLimit         int    `json:"search_limit,omitempty"`          // Default candidate search size
	SchemaDir           string `json:"schema_dir,omitempty"`            // Directory holding JSON schemas
	RedisURL            string `json:"redis_url,omitempty"`             // Profile cache; empty disables caching
	CacheTTLSeconds     int    `json:"cache_ttl_seconds,omitempty"`
	AMQPURL             string `json:"amqp_url,omitempty"`              // RabbitMQ broker for queued parse jobs
	ParseQueue          string `json:"parse_queue,omitempty"`
	LogJSON             bool   `json:"log_json,omitempty"`
	LogDebug            bool   `json:"log_debug,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Malformed numbers are errors.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SchemaDir:   os.Getenv("SCHEMA_DIR"),
		RedisURL:    os.Getenv("REDIS_URL"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		ParseQueue:  os.Getenv("PARSE_QUEUE"),
	}

	var err error
	if cfg.Port, err = envInt("PORT"); err != nil {
		return nil, err
	}
	if cfg.FetchTimeoutSeconds, err = envInt("FETCH_TIMEOUT_SECONDS"); err != nil {
		return nil, err
	}
	if cfg.SearchLimit, err = envInt("SEARCH_LIMIT"); err != nil {
		return nil, err
	}
	if cfg.CacheTTLSeconds, err = envInt("CACHE_TTL_SECONDS"); err != nil {
		return nil, err
	}
	maxBytes, err := envInt("MAX_RESUME_BYTES")
	if err != nil {
		return nil, err
	}
	cfg.MaxResumeBytes = int64(maxBytes)

	if cfg.LogJSON, err = envBool("LOG_JSON"); err != nil {
		return nil, err
	}
	if cfg.LogDebug, err = envBool("LOG_DEBUG"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the config file at path (if non-empty), fills gaps from the environment,
// then from built-in defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	envCfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(*envCfg)
	merged = merged.MergeWithDefaults(Defaults())
	merged.LogJSON = cfg.LogJSON || envCfg.LogJSON
	merged.LogDebug = cfg.LogDebug || envCfg.LogDebug

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                DefaultPort,
		MaxResumeBytes:      DefaultMaxResumeBytes,
		FetchTimeoutSeconds: DefaultFetchTimeoutSeconds,
		SearchLimit:         DefaultSearchLimit,
		CacheTTLSeconds:     DefaultCacheTTLSeconds,
		ParseQueue:          DefaultParseQueue,
	}
}

// Validate checks that the configuration has valid values.
// Note: DatabaseURL is not required here; commands that persist check for it.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxResumeBytes < 0 {
		return fmt.Errorf("config error: 'max_resume_bytes' must be non-negative")
	}
	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'fetch_timeout_seconds' must be non-negative")
	}
	if c.SearchLimit < 0 || c.SearchLimit > MaxSearchLimit {
		return fmt.Errorf("config error: 'search_limit' must be between 0 and %d", MaxSearchLimit)
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("config error: 'cache_ttl_seconds' must be non-negative")
	}

	if c.SchemaDir != "" {
		if info, err := os.Stat(c.SchemaDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: schema directory not found: %s", c.SchemaDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SchemaDir == "" {
		result.SchemaDir = defaults.SchemaDir
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.AMQPURL == "" {
		result.AMQPURL = defaults.AMQPURL
	}
	if result.ParseQueue == "" {
		result.ParseQueue = defaults.ParseQueue
	}
	if result.CacheTTLSeconds == 0 {
		result.CacheTTLSeconds = defaults.CacheTTLSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxResumeBytes == 0 {
		result.MaxResumeBytes = defaults.MaxResumeBytes
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}
	if result.SearchLimit == 0 {
		result.SearchLimit = defaults.SearchLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// FetchTimeout returns the download timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func envInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config error: %s must be a boolean: %w", key, err)
	}
	return b, nil
}
