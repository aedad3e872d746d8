package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/dirkit/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Workspace.Root = t.TempDir()
	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestListServicesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/services", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	services := body["services"].([]interface{})
	require.Len(t, services, 1)
	svc := services[0].(map[string]interface{})
	assert.Equal(t, "workspace", svc["id"])
}

func TestExecuteEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "workspace.info",
		"params":  map[string]interface{}{},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestExecuteEndpointBadRequest(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/services/execute", map[string]interface{}{
		"params": map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteEndpointUnknownService(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := doJSON(t, srv, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "ghost.ping",
		"params":  map[string]interface{}{},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
