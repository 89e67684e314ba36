package middleware

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket is one client's token bucket
type bucket struct {
	mu       sync.Mutex
	tokens   int
	capacity int
	refillAt time.Time
	interval time.Duration
}

// RateLimiter hands out token buckets per client IP
type RateLimiter struct {
	mu       sync.RWMutex
	buckets  map[string]*bucket
	capacity int
	interval time.Duration
}

// NewRateLimiter allows capacity requests per interval for each IP
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	limiter := &RateLimiter{
		buckets:  make(map[string]*bucket),
		capacity: capacity,
		interval: interval,
	}
	go limiter.cleanup()
	return limiter
}

// cleanup drops buckets idle for 10 minutes
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, b := range rl.buckets {
			b.mu.Lock()
			if now.Sub(b.refillAt) > 10*time.Minute {
				delete(rl.buckets, ip)
			}
			b.mu.Unlock()
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether a request from ip may proceed and how many
// tokens remain
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	rl.mu.RLock()
	b, exists := rl.buckets[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		b = &bucket{
			tokens:   rl.capacity,
			capacity: rl.capacity,
			refillAt: time.Now().Add(rl.interval),
			interval: rl.interval,
		}
		rl.buckets[ip] = b
		rl.mu.Unlock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.refillAt) {
		b.tokens = b.capacity
		b.refillAt = now.Add(b.interval)
	}

	if b.tokens > 0 {
		b.tokens--
		return true, b.tokens
	}
	return false, 0
}

// RateLimitMiddleware throttles the named paths; everything else
// passes through. Used on the login and contact endpoints.
func RateLimitMiddleware(limiter *RateLimiter, paths ...string) gin.HandlerFunc {
	pathMap := make(map[string]bool)
	for _, path := range paths {
		pathMap[path] = true
	}

	return func(c *gin.Context) {
		if !pathMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		clientIP := ClientIP(c)
		allowed, remaining := limiter.Allow(clientIP)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.capacity))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(limiter.interval.Seconds())))
			c.AbortWithStatus(429)
			return
		}

		c.Next()
	}
}

// ClientIP resolves the caller's address, honoring X-Forwarded-For
// when behind a proxy
func ClientIP(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
