// internal/controller/address_controller.go
package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"premiumartisan_backend/pkg/geocode"
)

var geocoder *geocode.Client

func InitAddressController(client *geocode.Client) {
	geocoder = client
}

// SearchAddress handles GET /api/address/search?q=. Short queries and
// upstream failures both come back as an empty result list; the form never
// blocks on this endpoint.
func SearchAddress(c *fiber.Ctx) error {
	results := geocoder.Search(c.Context(), c.Query("q"))
	if results == nil {
		results = []geocode.Result{}
	}
	return c.JSON(fiber.Map{"results": results})
}

// ReverseAddress handles GET /api/address/reverse?lat=&lon=.
func ReverseAddress(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "lat and lon are required",
		})
	}

	result := geocoder.Reverse(c.Context(), lat, lon)
	if result == nil {
		// Degrade to a user-facing "unavailable" rather than an error; the
		// localisation step still accepts manual entry.
		return c.JSON(fiber.Map{
			"found": false,
			"error": "Localisation non disponible. Essayez la recherche manuelle.",
		})
	}
	return c.JSON(fiber.Map{"found": true, "result": result})
}
