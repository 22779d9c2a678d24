package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GearRepair_Go/internal/material"
)

var loadedCatalog = stubCatalog{defs: []material.Def{{ID: "iron", Tier: 2, RepairValue: 10}}}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database Connected - Success", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(mockDB, loadedCatalog)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		assert.Contains(t, w.Body.String(), `"materials":1`)
		mockDB.AssertExpectations(t)
	})

	t.Run("Database Connection Failed", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(assert.AnError)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(mockDB, loadedCatalog)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"database connection failed"`)
		mockDB.AssertExpectations(t)
	})

	t.Run("Database Timeout", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(context.DeadlineExceeded)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(mockDB, loadedCatalog)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockDB.AssertExpectations(t)
	})

	t.Run("Empty Catalog", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(mockDB, stubCatalog{})
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgCatalogEmpty)
	})

	t.Run("Database Connection Refused", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(mockDB, loadedCatalog)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
		mockDB.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()

	HandleVersion().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
}
