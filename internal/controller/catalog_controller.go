// internal/controller/catalog_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"premiumartisan_backend/pkg/seo"
	"premiumartisan_backend/pkg/utils/catalog"
)

func GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": catalog.PaintOptions,
	})
}

func GetBudgets(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"budgets": catalog.BudgetOptions,
	})
}

func GetServices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"services": seo.GetServices(),
	})
}

func GetCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cities": seo.GetCities(),
	})
}
