package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premiumartisan_backend/pkg/ratelimit"
)

func cooldownApp(store ratelimit.Store) *fiber.App {
	app := fiber.New()
	app.Post("/intake", Cooldown(store), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestCooldownAllowsUnderLimit(t *testing.T) {
	app := cooldownApp(ratelimit.NewMemoryStore(time.Minute, 3))

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/intake", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i+1)
	}
}

func TestCooldownBlocksOverLimit(t *testing.T) {
	app := cooldownApp(ratelimit.NewMemoryStore(time.Minute, 1))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/intake", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/intake", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	retry, err := strconv.Atoi(resp.Header.Get(fiber.HeaderRetryAfter))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, retry, 1)
	assert.LessOrEqual(t, retry, 60)
}

func TestCooldownKeysOnRealIPHeader(t *testing.T) {
	app := cooldownApp(ratelimit.NewMemoryStore(time.Minute, 1))

	first := httptest.NewRequest(http.MethodPost, "/intake", nil)
	first.Header.Set("X-Real-Ip", "203.0.113.7")
	resp, err := app.Test(first, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Same edge IP is blocked, a different one is not.
	second := httptest.NewRequest(http.MethodPost, "/intake", nil)
	second.Header.Set("X-Real-Ip", "203.0.113.7")
	resp, err = app.Test(second, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	third := httptest.NewRequest(http.MethodPost, "/intake", nil)
	third.Header.Set("X-Real-Ip", "203.0.113.8")
	resp, err = app.Test(third, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

type failingStore struct{}

func (failingStore) Hit(_ context.Context, _ string) (bool, time.Duration, error) {
	return false, 0, assert.AnError
}

func TestCooldownFailsOpen(t *testing.T) {
	app := cooldownApp(failingStore{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/intake", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
