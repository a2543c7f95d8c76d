package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cylaba/internal/config"
	"cylaba/internal/models"
	"cylaba/pkg/logger"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		AppPort:            ":0",
		DataDir:            t.TempDir(),
		StoreBackend:       backend,
		CORSAllowedOrigins: "*",
		LogLevel:           "info",
		LogFormat:          "json",
		OrderDateLayout:    "1/2/2006",
	}
}

func TestHealthCheck(t *testing.T) {
	app, err := NewApp(testConfig(t, "memory"), logger.Nop())
	require.NoError(t, err)
	defer app.Shutdown()

	resp, err := app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "memory", body["store"])
	assert.Equal(t, false, body["events"])
}

func TestSeedsJSONFilesOnFirstStart(t *testing.T) {
	cfg := testConfig(t, "json")
	app, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)
	defer app.Shutdown()

	for _, name := range []string{"orders.json", "products.json", "schools.json"} {
		_, err := os.Stat(filepath.Join(cfg.DataDir, name))
		assert.NoError(t, err, name)
	}

	resp, err := app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil), -1)
	require.NoError(t, err)
	var products []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	resp.Body.Close()
	assert.Equal(t, models.SeedProducts(), products)

	resp, err = app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/schools", nil), -1)
	require.NoError(t, err)
	var schools []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schools))
	resp.Body.Close()
	assert.Len(t, schools, 12)

	resp, err = app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/orders", nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "[]", string(raw))
}

func TestSeedKeepsExistingDocuments(t *testing.T) {
	cfg := testConfig(t, "json")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "schools.json"), []byte(`["Solo"]`), 0o644))

	app, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)
	defer app.Shutdown()

	resp, err := app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/schools", nil), -1)
	require.NoError(t, err)
	var schools []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schools))
	resp.Body.Close()
	assert.Equal(t, []string{"Solo"}, schools)
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	app, err := NewApp(testConfig(t, "memory"), logger.Nop())
	require.NoError(t, err)
	defer app.Shutdown()

	resp, err := app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
}

func TestMetricsEndpoint(t *testing.T) {
	app, err := NewApp(testConfig(t, "memory"), logger.Nop())
	require.NoError(t, err)
	defer app.Shutdown()

	resp, err := app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/schools", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = app.Fiber.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "cylaba_collection_writes_total")
	assert.Contains(t, string(raw), "cylaba_http_requests_total")
}

func TestStartEventLogWithoutBroker(t *testing.T) {
	app, err := NewApp(testConfig(t, "memory"), logger.Nop())
	require.NoError(t, err)
	defer app.Shutdown()

	assert.NoError(t, app.StartEventLog())
}
