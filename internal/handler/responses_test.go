package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"kit not found", fmt.Errorf("%w: k1", domain.ErrKitNotFound), http.StatusNotFound, ErrMsgKitNotFoundError},
		{"gear not found", fmt.Errorf("%w: g1", domain.ErrGearNotFound), http.StatusNotFound, ErrMsgGearNotFoundError},
		{"kit full", domain.ErrKitFull, http.StatusConflict, ErrMsgKitFullError},
		{"disabled", domain.ErrRepairDisabled, http.StatusForbidden, ErrMsgRepairDisabledErr},
		{"unknown material keeps detail", fmt.Errorf("%w: %q", domain.ErrUnknownMaterial, "mithril"), http.StatusBadRequest, `unknown material: "mithril"`},
		{"deeply wrapped input error", fmt.Errorf("outer: %w", fmt.Errorf("count out of range: %w", domain.ErrInvalidInput)), http.StatusBadRequest, "outer: count out of range: invalid input"},
		{"internal", fmt.Errorf("failed to get repair kit: %w", assert.AnError), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), ErrMsgGenericServerError))
}
