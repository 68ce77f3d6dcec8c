package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminApp(token string) *fiber.App {
	app := fiber.New()
	app.Get("/admin/leads", AdminAuth(token), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func adminGet(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAdminAuth(t *testing.T) {
	app := adminApp("s3cret")

	assert.Equal(t, http.StatusUnauthorized, adminGet(t, app, ""))
	assert.Equal(t, http.StatusUnauthorized, adminGet(t, app, "wrong"))
	assert.Equal(t, http.StatusOK, adminGet(t, app, "s3cret"))
}

func TestAdminAuthDisabledWithoutToken(t *testing.T) {
	app := adminApp("")

	// No configured token means the surface is closed, not open.
	assert.Equal(t, http.StatusUnauthorized, adminGet(t, app, "anything"))
}
