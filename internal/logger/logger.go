package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// InitLogger configures the default slog logger to write to stdout
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter configures the default slog logger to write to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs(cfg.BaseAttributes())
	slog.SetDefault(slog.New(handler))
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetRequestID returns the request ID from the context or an empty string
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}

// Info logs at info level on the default logger
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs at warn level on the default logger
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

// Error logs at error level on the default logger
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
