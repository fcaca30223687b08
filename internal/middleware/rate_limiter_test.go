package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func resetVisitors(rps, burst int) {
	mu.Lock()
	visitors = make(map[string]*visitor)
	requestsPerSecond = rps
	burstSize = burst
	mu.Unlock()
}

func TestRateLimiterWithConfig(t *testing.T) {
	resetVisitors(5, 10)

	e := echo.New()
	handler := RateLimiterWithConfig(2, 4)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/review", nil)
		req.RemoteAddr = "10.0.0.7:41000"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Burst exhausted; the limiter responds itself and returns nil.
	req := httptest.NewRequest(http.MethodPost, "/api/review", nil)
	req.RemoteAddr = "10.0.0.7:41000"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiterIndependentPerIP(t *testing.T) {
	resetVisitors(5, 10)

	e := echo.New()
	handler := RateLimiter()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, addr := range []string{"10.0.0.1:1234", "10.0.0.2:1234", "10.0.0.3:1234"} {
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, handler(c))
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, addr)
		}
	}
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For header",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "203.0.113.10"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.10",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.9",
				"X-Real-IP":       "203.0.113.10",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "falls back to remote address",
			headers:    map[string]string{},
			remoteAddr: "203.0.113.11:12345",
			expected:   "203.0.113.11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.expected, getIP(c))
		})
	}
}

func TestVisitorCleanup(t *testing.T) {
	mu.Lock()
	visitors = map[string]*visitor{
		"stale_ip": {limiter: nil, lastSeen: time.Now().Add(-5 * time.Minute)},
		"live_ip":  {limiter: nil, lastSeen: time.Now()},
	}
	mu.Unlock()

	mu.Lock()
	for ip, v := range visitors {
		if time.Since(v.lastSeen) > 3*time.Minute {
			delete(visitors, ip)
		}
	}
	mu.Unlock()

	mu.RLock()
	defer mu.RUnlock()
	_, staleExists := visitors["stale_ip"]
	_, liveExists := visitors["live_ip"]
	assert.False(t, staleExists)
	assert.True(t, liveExists)
}
