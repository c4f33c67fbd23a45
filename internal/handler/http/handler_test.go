// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ed3/internal/logger"
	"github.com/MKhiriev/go-ed3/internal/service"
	"github.com/MKhiriev/go-ed3/models"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	cfg := testServerConfig()

	h := NewHandler(svc, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, cfg.MaxBodySize, h.maxBodySize)
	assert.Equal(t, cfg.RequestTimeout, h.requestTimeout)
	assert.NotNil(t, h.validator)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodPost, "/api/containers/build"},
		{http.MethodPost, "/api/containers/parse"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, nil, nil)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := serve(t, router, http.MethodGet, "/api/nonexistent", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, models.ErrCodeNotFound, decodeErrorBody(t, rec).Code)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := serve(t, router, http.MethodGet, "/api/containers/build", nil, nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	assert.Equal(t, models.ErrCodeMethodNotAllowed, decodeErrorBody(t, rec).Code)
}

func TestInit_SetsTraceID(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := serve(t, router, http.MethodGet, "/api/version", nil, map[string]string{traceIDHeader: "abc-123"})

	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}
