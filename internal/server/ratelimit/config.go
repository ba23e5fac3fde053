package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the throttle for one endpoint. A Path ending in "/"
// matches by prefix. Burst defaults to Limit when zero.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig reads limiter settings from RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseClientList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseClientList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint tiers. Endpoints not
// listed here fall back to the global default; the health check is
// unlimited.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Interview scheduling may call out to a language model for
		// question generation, so it gets the strictest tier.
		{Path: "/interviews", Method: "POST", Limit: 60, Window: time.Hour, Burst: 5},

		// Mutating action endpoints.
		{Path: "/workflow/actions", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/collaboration/actions", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/candidates/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},

		// Report synthesis scans the whole store.
		{Path: "/reports/", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/insights", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/sla/breaches", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// parseClientList parses a comma-separated list of client IPs into a set.
func parseClientList(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
