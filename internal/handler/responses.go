package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to a status code and writes it
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."
	ErrMsgKitNotFoundError   = "Repair kit not found"
	ErrMsgGearNotFoundError  = "Gear not found"
	ErrMsgKitFullError       = "Repair kit is full"
	ErrMsgRepairDisabledErr  = "That repair type is disabled"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages. Input errors carry their own message since it names the bad
// value; anything else is reported generically.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrKitNotFound):
		return http.StatusNotFound, ErrMsgKitNotFoundError
	case errors.Is(err, domain.ErrGearNotFound):
		return http.StatusNotFound, ErrMsgGearNotFoundError
	case errors.Is(err, domain.ErrKitFull):
		return http.StatusConflict, ErrMsgKitFullError
	case errors.Is(err, domain.ErrRepairDisabled):
		return http.StatusForbidden, ErrMsgRepairDisabledErr
	case errors.Is(err, domain.ErrUnknownMaterial),
		errors.Is(err, domain.ErrUnknownKitTier),
		errors.Is(err, domain.ErrInvalidForm),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
