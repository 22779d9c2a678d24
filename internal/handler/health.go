package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/GearRepair_Go/internal/database"
	"github.com/osse101/GearRepair_Go/internal/logger"
)

// ReadinessTimeout bounds the database ping of a readiness check
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Materials int    `json:"materials,omitempty"`
}

// CatalogSizer reports how many materials are loaded
type CatalogSizer interface {
	Len() int
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz checks database connectivity and that a material catalog is loaded
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, catalog CatalogSizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: ErrMsgDatabaseUnavailable,
			})
			return
		}

		if catalog.Len() == 0 {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", ErrMsgCatalogEmpty)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: ErrMsgCatalogEmpty,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK, Materials: catalog.Len()})
	}
}
