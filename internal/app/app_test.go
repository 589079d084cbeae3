package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"produtos/internal/app"
	"produtos/internal/config"
	"produtos/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downRepository struct {
	*repositories.MemoryProductRepository
}

func (downRepository) Ping(context.Context) error {
	return errors.New("connection refused")
}

func healthBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestNew_MemoryDriverWithSeed(t *testing.T) {
	a, err := app.New(&config.Config{
		AppPort:      ":0",
		DBDriver:     config.DriverMemory,
		LogLevel:     "error",
		SeedProducts: true,
	})
	require.NoError(t, err)
	defer a.Close()

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/products?order=desc", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, 3)
	assert.Equal(t, "Laptop", products[0]["nome"])
}

func TestHealth(t *testing.T) {
	fiberApp := app.NewFiberApp(repositories.NewMemoryProductRepository())

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := healthBody(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "up", body["database"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	fiberApp := app.NewFiberApp(downRepository{repositories.NewMemoryProductRepository()})

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := healthBody(t, resp)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestProductsRoute_ScenarioOnMemoryStore(t *testing.T) {
	fiberApp := app.NewFiberApp(repositories.NewMemoryProductRepository())

	req := httptest.NewRequest(http.MethodPost, "/products",
		strings.NewReader(`{"nome":"Mouse","preco":29.9,"quantidadeEstoque":10}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, err = fiberApp.Test(httptest.NewRequest(http.MethodGet, "/products/1", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
