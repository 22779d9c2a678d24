package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// Request limits
const (
	MaxRequestBodyBytes      = 1 << 20
	RateLimitWindow          = 5 * time.Minute
	MaxRequestsPerWindow     = 1000
	FailedAuthAlertThreshold = 5
	HighRateLogEvery         = 100
	MaxRequestIDLength       = 64
	ReadHeaderTimeout        = 5 * time.Second
	IdleTimeout              = 60 * time.Second
)

// Route prefix of the versioned API
const APIPrefix = "/api/v1"

// PublicPaths are path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"
