package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/GearRepair_Go/internal/logger"
)

// AuthMiddleware requires the API key on every non-public path. The key is
// read from X-API-Key, or from an "Authorization: Bearer" header.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := providedAPIKey(r)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func providedAPIKey(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(r.Header.Get(HeaderAuthorization), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts requests and failed authentications per
// client IP in fixed windows.
type SuspiciousActivityDetector struct {
	mu               sync.Mutex
	window           time.Duration
	maxRequests      int
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
	now              func() time.Time
}

// NewSuspiciousActivityDetector creates a detector allowing maxRequests per
// window for each IP.
func NewSuspiciousActivityDetector(window time.Duration, maxRequests int) *SuspiciousActivityDetector {
	d := &SuspiciousActivityDetector{
		window:      window,
		maxRequests: maxRequests,
		now:         time.Now,
	}
	d.reset()
	return d
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetIfWindowPassed()
	s.failedAuthByIP[ip]++

	if s.failedAuthByIP[ip] >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", s.failedAuthByIP[ip])
	}
}

// RecordRequest records a request and reports whether it is within the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetIfWindowPassed()
	s.requestCountByIP[ip]++

	count := s.requestCountByIP[ip]
	if count <= s.maxRequests {
		return true
	}
	if count%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count, "window", s.window)
	}
	return false
}

// Caller must hold the mutex
func (s *SuspiciousActivityDetector) resetIfWindowPassed() {
	if s.now().Sub(s.windowStart) > s.window {
		s.reset()
	}
}

func (s *SuspiciousActivityDetector) reset() {
	s.requestCountByIP = make(map[string]int)
	s.failedAuthByIP = make(map[string]int)
	s.windowStart = s.now()
}

// RateLimitMiddleware rejects clients that exceed the detector's request rate
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only honored when the direct peer is a trusted proxy,
// and then its rightmost entry is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				// Kit contents change on every repair
				w.Header().Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
