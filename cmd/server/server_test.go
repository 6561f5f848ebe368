package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/qit/internal/config"
	"github.com/JaimeStill/qit/pkg/middleware"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	off := false
	cfg := &config.Config{}
	cfg.Suggest.Enabled = &off
	require.NoError(t, cfg.Finalize())
	return cfg
}

func TestServerRoutes(t *testing.T) {
	var logs bytes.Buffer
	srv, err := NewServer(testConfig(t), &logs)
	require.NoError(t, err)

	handler := srv.http.http.Handler

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	srv.infra.Lifecycle.WaitForStartup()

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/queries", strings.NewReader(`{"seed":"قهوة"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "قهوة", body["seed"])
	assert.Equal(t, false, body["suggestions_failed"])

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/openapi.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/scalar", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/openapi.json")

	assert.Contains(t, logs.String(), "server initialized")
}

func TestServerInvalidSeed(t *testing.T) {
	srv, err := NewServer(testConfig(t), &bytes.Buffer{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.http.http.Handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/queries", strings.NewReader(`{"seed":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerStartShutdown(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0

	srv, err := NewServer(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	require.NoError(t, srv.Start())
	require.NoError(t, srv.Shutdown(cfg.ShutdownTimeoutDuration()))
}
