package cors_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"post-receptor/core/middleware/cors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	app := fiber.New()
	app.Use(cors.New())
	app.Post("/receive", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusForbidden).SendString("denied")
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("OPTIONS", "/receive", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Authorization, Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))

		body, _ := io.ReadAll(resp.Body)
		assert.Empty(t, body)
	})

	t.Run("Headers on regular responses", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/receive", nil))
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
