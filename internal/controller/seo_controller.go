// internal/controller/seo_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"premiumartisan_backend/pkg/seo"
)

// GetSitemap serves the generated sitemap.xml.
func GetSitemap(c *fiber.Ctx) error {
	body, err := seo.RenderSitemap(time.Now())
	if err != nil {
		log.Printf("Could not render sitemap: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(body)
}

// GetRobots serves robots.txt.
func GetRobots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(seo.RenderRobots())
}

// GetLandingPage resolves /travaux/:slug into the landing descriptor the
// front end renders (service, city, bullets, canonical URL). Unknown slugs
// are a plain 404.
func GetLandingPage(c *fiber.Ctx) error {
	service, city, ok := seo.ParseTravauxSlug(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}
	return c.JSON(fiber.Map{
		"service":   service,
		"city":      city,
		"canonical": seo.AbsURL("/travaux/" + seo.BuildTravauxSlug(service, city)),
		"site":      seo.SiteName(),
	})
}

// GetMetierPage resolves /:metier/:ville, the second landing family. Both
// segments must name known catalog entries; anything else is a 404.
func GetMetierPage(c *fiber.Ctx) error {
	service, svcOK := seo.GetServiceByMetierSlug(c.Params("metier"))
	city, cityOK := seo.GetCityBySlug(c.Params("ville"))
	if !svcOK || !cityOK {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}
	return c.JSON(fiber.Map{
		"service":   service,
		"city":      city,
		"canonical": seo.AbsURL("/" + service.MetierSlug + "/" + city.ID),
		"site":      seo.SiteName(),
	})
}
