package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the fixed-window limiter.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// KeyPrefix separates counters in Redis (default "rl:ip:").
	KeyPrefix string
}

type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// in-memory fallback when Redis is unavailable
var (
	rateLimitStore = sync.Map{}
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on the first hit of each window.
// KEYS[1] = counter key, ARGV[1] = TTL seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit enforces a per-client-IP fixed window. Redis keeps counters
// shared across instances; without Redis each instance counts locally.
// Limiter errors fail open: a broken counter must not take the API down.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		if rdb := redis.Client(); rdb != nil {
			result, err := rdb.Eval(c.Request.Context(), rateLimitLuaScript,
				[]string{key}, int(cfg.Window.Seconds())).Int()
			if err != nil {
				logger.Log.Warn("rate limit redis eval failed, falling back to memory", "error", err)
				count = incrMemory(key, cfg.Window)
			} else {
				count = result
			}
		} else {
			count = incrMemory(key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Writer.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			response.Error(c, http.StatusTooManyRequests, "Too many requests", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func incrMemory(key string, window time.Duration) int {
	now := time.Now()
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
