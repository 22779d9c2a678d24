package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GearRepair_Go/internal/logger"
)

// maxRequestBodyBytes caps the size of a decoded JSON body
const maxRequestBodyBytes = 1 << 20

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the HTTP response has already been written and
// the handler should return.
//
// Example usage:
//
//	var req AddMaterialRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add material"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetPathParam retrieves a required chi URL parameter. If it is missing the
// error response has been written and ok is false.
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s path parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back
// to defaultValue when it is absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
