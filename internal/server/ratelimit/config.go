package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits one route. Paths ending in "/" match by prefix.
type Rule struct {
	Path   string
	Method string
	Limit  int           // Requests per window; zero means unlimited
	Window time.Duration
	Burst  int // Bucket capacity; defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	IdleTTL       time.Duration // Buckets untouched this long are evicted
	Allowlist     map[string]bool
	Rules         []Rule
}

// DefaultRules protects the routes that do remote or bulk work.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/health", Method: "GET", Limit: 0},
		{Path: "/v1/resumes/parse", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/v1/resumes/parse/async", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/v1/candidates/search", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

// LoadConfig reads RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:       envBool("RATE_LIMIT_ENABLED", true),
		DefaultLimit:  envInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow: envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		IdleTTL:       envDuration("RATE_LIMIT_IDLE_TTL", time.Hour),
		Allowlist:     parseIPList(os.Getenv("RATE_LIMIT_ALLOWLIST")),
		Rules:         DefaultRules(),
	}

	if parseLimit := envInt("RATE_LIMIT_PARSE_LIMIT", 0); parseLimit > 0 {
		for i := range cfg.Rules {
			if strings.HasPrefix(cfg.Rules[i].Path, "/v1/resumes/parse") {
				cfg.Rules[i].Limit = parseLimit
			}
		}
	}
	return cfg
}

// Match returns the rule for a request, or nil when the default applies.
func Match(path, method string, rules []Rule) *Rule {
	for i := range rules {
		if rules[i].Method == method && rules[i].Path == path {
			return &rules[i]
		}
	}
	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}
	return nil
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
