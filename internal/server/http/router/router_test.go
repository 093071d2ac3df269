package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/projectdesk/internal/config"
	"github.com/polkiloo/projectdesk/internal/domain/model"
	"github.com/polkiloo/projectdesk/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/projectdesk/internal/test"
)

func newEngine(t *testing.T, facade handlers.ProjectDeskFacade, cfg *config.Config) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if cfg == nil {
		cfg = &config.Config{}
	}
	return Setup(facade, logger, cfg)
}

func serve(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func errorBody(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	msg, _ := out["error"].(string)
	return msg
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.ProjectDeskFacadeStub{
		RetrievalFacadeStub: testhelpers.RetrievalFacadeStub{
			OrdersFn: func(context.Context) ([]model.Order, error) {
				return []model.Order{{ID: 1, Name: "Ivan", Status: model.OrderStatusNew}}, nil
			},
		},
	}
	engine := newEngine(t, facade, nil)

	resp := serve(engine, http.MethodPost, "/api/order", `{"name":"Ivan","phone":"1","email":"e","projectType":"p","description":"d"}`)
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = serve(engine, http.MethodPost, "/api/review", `{"name":"Anna","text":"Great","rating":"5"}`)
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = serve(engine, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Ivan"`)

	resp = serve(engine, http.MethodGet, "/api/reviews", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = serve(engine, http.MethodGet, "/api/reviews/published", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = serve(engine, http.MethodPut, "/api/review/5", `{"approved":true}`)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = serve(engine, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}

func TestSetupErrorsAndCORS(t *testing.T) {
	engine := newEngine(t, testhelpers.ProjectDeskFacadeStub{}, nil)

	resp := serve(engine, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Endpoint not found", errorBody(t, resp))
	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))

	resp = serve(engine, http.MethodDelete, "/api/orders", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	assert.Equal(t, "Method not allowed", errorBody(t, resp))

	resp = serve(engine, http.MethodGet, "/api/order", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)

	resp = serve(engine, http.MethodPost, "/api/order", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid JSON", errorBody(t, resp))

	resp = serve(engine, http.MethodOptions, "/api/order", "")
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE", resp.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header().Get("Access-Control-Allow-Headers"))

	resp = serve(engine, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	assert.NotEmpty(t, resp.Header().Get("X-Request-ID"))
}

func TestSetupServesStaticSite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>site</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("console.log(1)"), 0o644))
	engine := newEngine(t, testhelpers.ProjectDeskFacadeStub{}, &config.Config{StaticDir: dir})

	resp := serve(engine, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "<p>site</p>", resp.Body.String())
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header().Get("Cache-Control"))

	resp = serve(engine, http.MethodGet, "/script.js", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "public, max-age=3600", resp.Header().Get("Cache-Control"))

	resp = serve(engine, http.MethodGet, "/reviews", "")
	assert.Equal(t, "<p>site</p>", resp.Body.String())

	resp = serve(engine, http.MethodGet, "/api/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Endpoint not found", errorBody(t, resp))
}

func TestSetupExposesMetrics(t *testing.T) {
	engine := newEngine(t, testhelpers.ProjectDeskFacadeStub{}, nil)
	serve(engine, http.MethodGet, "/api/orders", "")

	resp := serve(engine, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/orders",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestSetupCompressesResponses(t *testing.T) {
	engine := newEngine(t, testhelpers.ProjectDeskFacadeStub{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "gzip", resp.Header().Get("Content-Encoding"))
	assert.False(t, bytes.Equal(resp.Body.Bytes(), []byte("[]")))
}

var _ handlers.ProjectDeskFacade = testhelpers.ProjectDeskFacadeStub{}
