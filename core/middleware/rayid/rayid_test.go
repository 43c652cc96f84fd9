package rayid_test

import (
	"net/http/httptest"
	"testing"

	"fib-service/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals(rayid.LocalsKey).(string)
		return c.SendString(rid)
	})
	return app
}

func TestNew_GeneratesRayID(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.HeaderName)
	assert.NotEmpty(t, rid)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestNew_PropagatesIncomingRayID(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "upstream-id")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))
}

func TestNew_UniquePerRequest(t *testing.T) {
	app := setupApp()

	resp1, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp2, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.NotEqual(t, resp1.Header.Get(rayid.HeaderName), resp2.Header.Get(rayid.HeaderName))
}
