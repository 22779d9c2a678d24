package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		header         string
		value          string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", HeaderAPIKey, apiKey, "/api/v1/kits", http.StatusOK},
		{"Valid Bearer Token", HeaderAuthorization, "Bearer " + apiKey, "/api/v1/kits", http.StatusOK},
		{"Invalid API Key", HeaderAPIKey, "wrong-key", "/api/v1/kits", http.StatusUnauthorized},
		{"Key Prefix Only", HeaderAPIKey, "secret", "/api/v1/kits", http.StatusUnauthorized},
		{"Basic Auth Is Not A Key", HeaderAuthorization, "Basic " + apiKey, "/api/v1/kits", http.StatusUnauthorized},
		{"Missing API Key", "", "", "/api/v1/materials", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "", "/healthz", http.StatusOK},
		{"Public Path - Readyz", "", "", "/readyz", http.StatusOK},
		{"Public Path - Metrics", "", "", "/metrics", http.StatusOK},
		{"Public Path - Swagger", "", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector(RateLimitWindow, MaxRequestsPerWindow)
			handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector(RateLimitWindow, MaxRequestsPerWindow)
	handler := AuthMiddleware("secret-key", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/kits", nil)
		req.RemoteAddr = "10.1.1.1:5000"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector(time.Minute, 10)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	detector.now = func() time.Time { return clock }
	detector.reset()

	handler := RateLimitMiddleware(nil, detector)(okHandler())

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/materials", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, send("192.168.1.100"), "request %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.168.1.100"))
	assert.Equal(t, http.StatusOK, send("192.168.1.101"), "limits are per IP")

	clock = clock.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, send("192.168.1.100"), "a new window resets the count")
}

func TestExtractIP(t *testing.T) {
	trusted := []string{"10.0.0.1"}

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"direct connection", "203.0.113.7:4000", "", "203.0.113.7"},
		{"untrusted peer ignores forwarded", "203.0.113.7:4000", "198.51.100.1", "203.0.113.7"},
		{"trusted proxy uses rightmost", "10.0.0.1:4000", "198.51.100.9, 198.51.100.1", "198.51.100.1"},
		{"trusted proxy without header", "10.0.0.1:4000", "", "10.0.0.1"},
		{"unparsable remote addr", "garbage", "", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/kits", stringsReader(`{"tier":"very_crude"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
