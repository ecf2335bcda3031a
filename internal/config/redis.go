package config

// Redis backs the response cache for event lookups and the rate limiter on
// reservation mutations.  Neither is required for correctness: reservation
// state lives in memory, so when Redis is disabled or unreachable the server
// runs without both middlewares.

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the optional Redis server.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TLS      bool
}

// LoadRedisConfig reads:
//   REDIS_ENABLED – "false" turns Redis off entirely (default true)
//   REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//   REDIS_ADDR – host:port shorthand, used when host/port are not both set
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
//   REDIS_TLS – enable TLS when "true" or "1"
func LoadRedisConfig() RedisConfig {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	if host, port := getenv("REDIS_HOST", ""), getenv("REDIS_PORT", ""); host != "" && port != "" {
		addr = host + ":" + port
	}
	tlsEnv := getenv("REDIS_TLS", "")
	return RedisConfig{
		Enabled:  envBool("REDIS_ENABLED", true),
		Addr:     addr,
		Password: getenv("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
		TLS:      strings.EqualFold(tlsEnv, "true") || tlsEnv == "1",
	}
}

// NewRedisClient connects to Redis and pings it with a short timeout.  It
// returns an error when Redis is disabled or the ping fails; callers should
// then continue without caching and rate limiting.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("redis disabled")
	}
	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConf,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
