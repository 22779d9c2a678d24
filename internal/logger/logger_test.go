package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	Info("repair applied", "kit_id", "kit-1", "restored", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "repair applied" {
		t.Errorf("Expected msg='repair applied', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["restored"] != float64(42) {
		t.Errorf("Expected restored=42, got %v", logEntry["restored"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	Info("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	ctx := WithRequestID(context.Background(), "test-req-123")

	if got := GetRequestID(ctx); got != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request id, got %s", got)
	}

	FromContext(ctx).Info("scoped")
	if !strings.Contains(buf.String(), `"request_id":"test-req-123"`) {
		t.Errorf("Expected request_id attribute in %s", buf.String())
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Error("Expected unique request ids")
	}
	if len(a) != 36 {
		t.Errorf("Expected UUID string, got %q", a)
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for level, want := range cases {
		if got := (Config{Level: level}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()

	if config.Format != "json" {
		t.Errorf("Expected JSON format in prod, got %s", config.Format)
	}
	if config.Environment != "prod" {
		t.Errorf("Expected prod environment, got %s", config.Environment)
	}
	if config.AddSource {
		t.Error("Expected AddSource=false in production")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.Level != "debug" {
		t.Errorf("Expected debug level in dev, got %s", config.Level)
	}
	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}
}
