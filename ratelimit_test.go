package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterAllow(t *testing.T) {
	rl := NewIPRateLimiter(3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "4th request should be blocked")
	assert.True(t, rl.Allow("5.6.7.8"), "different IP should be allowed")
}

func TestIPRateLimiterCleanup(t *testing.T) {
	rl := NewIPRateLimiter(1)
	rl.Allow("1.2.3.4")
	assert.False(t, rl.Allow("1.2.3.4"))

	assert.Equal(t, 0, rl.Cleanup(time.Hour))
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, rl.Cleanup(time.Millisecond))
	assert.True(t, rl.Allow("1.2.3.4"), "forgotten IP starts with a fresh bucket")
}

func TestIPRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewIPRateLimiter(2)

	r := gin.New()
	r.GET("/limited", rl.Middleware(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
