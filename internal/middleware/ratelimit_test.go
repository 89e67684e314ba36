// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/login", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	middleware := RateLimitMiddleware(limiter, "/api/auth/login")
	middleware(c)

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)
	middleware := RateLimitMiddleware(limiter, "/api/contact")

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/contact", nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"
		middleware(c)
		last = w
	}

	if last.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", last.Code)
	}
	if last.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", last.Header().Get("X-RateLimit-Limit"))
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header on 429")
	}
}

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	middleware := RateLimitMiddleware(limiter, "/api/contact")

	first := httptest.NewRecorder()
	c1, _ := gin.CreateTestContext(first)
	c1.Request = httptest.NewRequest("POST", "/api/contact", nil)
	c1.Request.RemoteAddr = "10.0.0.1:1234"
	middleware(c1)

	// A different client still has its own budget
	second := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(second)
	c2.Request = httptest.NewRequest("POST", "/api/contact", nil)
	c2.Request.RemoteAddr = "10.0.0.2:1234"
	middleware(c2)

	if second.Code == 429 {
		t.Error("Expected separate budget per client IP")
	}
}

func TestRateLimitOtherPathsUntouched(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0, time.Minute)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/projects", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	middleware := RateLimitMiddleware(limiter, "/api/contact")
	middleware(c)

	if w.Code == 429 {
		t.Error("Unlisted path should not be rate limited")
	}
}

func TestClientIPForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := ClientIP(c); got != "203.0.113.7" {
		t.Errorf("Expected forwarded IP, got %s", got)
	}
}
