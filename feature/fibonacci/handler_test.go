package fibonacci_test

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"testing"

	"fib-service/feature/fibonacci"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	feature := fibonacci.NewFeature(zap.NewNop())
	_ = feature.Load(app)
	return app
}

func TestHandleFibonacci(t *testing.T) {
	tests := []struct {
		name string
		path string
		want fibonacci.Result
	}{
		{"Zero", "/fibonacci/0", fibonacci.Result{N: 0, Result: 0}},
		{"One", "/fibonacci/1", fibonacci.Result{N: 1, Result: 1}},
		{"Ten", "/fibonacci/10", fibonacci.Result{N: 10, Result: 55}},
		{"Twenty", "/fibonacci/20", fibonacci.Result{N: 20, Result: 6765}},
		{"Saturated", "/fibonacci/100", fibonacci.Result{N: 100, Result: math.MaxUint64}},
	}

	app := setupTestApp()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)

			var body fibonacci.Result
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestHandleFibonacci_InvalidIndex(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"NonNumeric", "/fibonacci/abc"},
		{"Negative", "/fibonacci/-5"},
		{"Float", "/fibonacci/1.5"},
		{"Overflow", "/fibonacci/18446744073709551616"},
	}

	app := setupTestApp()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleFibonacci_ServesAfterBadRequest(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/fibonacci/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/fibonacci/10", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/unknown/path", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := fibonacci.NewFeature(zap.NewNop())

	assert.Equal(t, "fibonacci", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
