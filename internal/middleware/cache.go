package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-ticketing/internal/config"
)

// captureWriter forwards the response to the client while keeping a copy
// of up to limit bytes of the body.  truncated reports whether any bytes
// were dropped from the copy.
type captureWriter struct {
	http.ResponseWriter
	status    int
	buf       bytes.Buffer
	limit     int64
	truncated bool
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	switch remain := cw.limit - int64(cw.buf.Len()); {
	case cw.limit <= 0:
		cw.buf.Write(b)
	case remain >= int64(len(b)):
		cw.buf.Write(b)
	case remain > 0:
		cw.buf.Write(b[:remain])
		cw.truncated = true
	default:
		cw.truncated = true
	}
	return cw.ResponseWriter.Write(b)
}

// cacheKey builds a stable key for the request according to the
// configured strategy.  The variable part is hashed so keys stay short.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	var parts []string
	switch strings.ToLower(cfg.KeyStrategy) {
	case "route":
		parts = []string{"route", c.Path()}
	case "route_query":
		parts = []string{"route", c.Path(), "q", r.URL.RawQuery}
	case "method_route_query":
		parts = []string{"method", r.Method, "route", c.Path(), "q", r.URL.RawQuery}
	default: // "route_params"
		parts = []string{"route", c.Path()}
		names, values := c.ParamNames(), c.ParamValues()
		for i := range names {
			if i < len(values) {
				parts = append(parts, names[i], values[i])
			}
		}
		parts = append(parts, "q", r.URL.RawQuery)
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// encodePayload packs [4 bytes status][4 bytes headerLen][headerJSON][body].
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// NewRedisCache caches successful responses in Redis, headers included, so
// a hit is byte-for-byte identical to the original response.  It must only
// wrap routes whose responses never change; cached entries are not
// invalidated.  Without a Redis client the middleware passes through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}
			key := cacheKey(cfg, c)

			if bs, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				if status, hdr, body, ok := decodePayload(bs); ok {
					for k, vals := range hdr {
						if strings.EqualFold(k, echo.HeaderContentLength) {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					_, _ = c.Response().Write(body)
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status != http.StatusOK || cw.truncated {
				return nil
			}
			hdr := c.Response().Header().Clone()
			hdr.Del("X-Cache")
			if payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes()); err == nil {
				if err := rdb.SetEx(context.Background(), key, payload, ttl).Err(); err != nil {
					c.Logger().Warnf("[cache] store %s: %v", key, err)
				}
			}
			return nil
		}
	}
}
