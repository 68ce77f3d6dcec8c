package middleware

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"premiumartisan_backend/pkg/ratelimit"
)

// ClientKey identifies a caller for rate limiting. Prefer the edge-supplied
// X-Real-Ip header when present.
func ClientKey(c *fiber.Ctx) string {
	if xri := c.Get("X-Real-Ip"); xri != "" {
		return xri
	}
	return c.IP()
}

// Cooldown guards the intake route with the server-authoritative submission
// window. Blocked callers get 429 with the exact retry-after the client must
// honor; a failing store fails open so leads are never lost to Redis being
// down.
func Cooldown(store ratelimit.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, retryAfter, err := store.Hit(c.Context(), ClientKey(c))
		if err != nil {
			log.Printf("cooldown check failed: %v", err)
			return c.Next()
		}
		if !allowed {
			seconds := int(retryAfter.Seconds() + 0.999)
			if seconds < 1 {
				seconds = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"ok":         false,
				"error":      "Trop de demandes. Veuillez patienter.",
				"retryAfter": seconds,
			})
		}
		return c.Next()
	}
}
