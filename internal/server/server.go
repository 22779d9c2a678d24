package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GearRepair_Go/internal/database"
	_ "github.com/osse101/GearRepair_Go/internal/docs"
	"github.com/osse101/GearRepair_Go/internal/handler"
	"github.com/osse101/GearRepair_Go/internal/logger"
	"github.com/osse101/GearRepair_Go/internal/metrics"
	"github.com/osse101/GearRepair_Go/internal/repairkit"
)

// Catalog is the material catalog as seen by the HTTP layer
type Catalog interface {
	handler.MaterialLister
	handler.CatalogSizer
}

// Config holds the HTTP server settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, repairSvc repairkit.Service, catalog Catalog) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, repairSvc, catalog),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
		dbPool: dbPool,
	}
}

// NewRouter builds the HTTP routes and middleware stack
func NewRouter(cfg Config, dbPool database.Pool, repairSvc repairkit.Service, catalog Catalog) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(RateLimitWindow, MaxRequestsPerWindow)

	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, catalog))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	kits := handler.NewRepairKitHandler(repairSvc)
	gear := handler.NewGearHandler(repairSvc)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/kits", func(r chi.Router) {
			r.Post("/", kits.HandleCreateKit)
			r.Route("/{kitID}", func(r chi.Router) {
				r.Get("/", kits.HandleGetKit)
				r.Post("/materials", kits.HandleAddMaterial)
				r.Post("/repair", kits.HandleRepair)
				r.Post("/repair/preview", kits.HandlePreviewRepair)
			})
		})

		r.Route("/gear", func(r chi.Router) {
			r.Post("/", gear.HandleRegisterGear)
			r.Route("/{gearID}", func(r chi.Router) {
				r.Get("/", gear.HandleGetGear)
				r.Post("/repair", gear.HandleDirectRepair)
			})
		})

		r.Get("/materials", handler.HandleListMaterials(catalog))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestID reuses a well-formed incoming X-Request-ID or generates one
func requestID(r *http.Request) string {
	id := r.Header.Get(HeaderRequestID)
	if id == "" || len(id) > MaxRequestIDLength {
		return logger.GenerateRequestID()
	}
	for _, c := range id {
		if !unicode.IsPrint(c) || unicode.IsSpace(c) {
			return logger.GenerateRequestID()
		}
	}
	return id
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes are not logged
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		id := requestID(r)
		w.Header().Set(HeaderRequestID, id)

		ctx := logger.WithRequestID(r.Context(), id)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully and closes the database pool
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	err := s.httpServer.Shutdown(ctx)
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	return err
}
