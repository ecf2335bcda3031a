package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// CacheConfig defines settings for the response cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled.  Methods lists the HTTP methods to cache (e.g. GET, HEAD).  TTL
// defines the lifetime of cache entries.  KeyStrategy determines which parts
// of the request contribute to the cache key.  Prefix and MaxBodyBytes
// control namespacing and the maximum size of cached responses.
//
// Only immutable resources (single events) are routed through the cache;
// reservation listings change on every mutation and are always served live.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.  All methods are upper-cased.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
		TTL:          parseDur(getenv("CACHE_TTL", "5m")),
		KeyStrategy:  getenv("CACHE_KEY_STRATEGY", "route_params"),
		Prefix:       getenv("CACHE_PREFIX", "tickets:cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

// WithBootID returns a copy of c whose Prefix is scoped to one process
// run.  Event IDs restart at 1 with the in-memory catalog, so entries
// written by an earlier run must never be read back.
func (c CacheConfig) WithBootID(id string) CacheConfig {
	if id != "" {
		c.Prefix += ":" + id
	}
	return c
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
