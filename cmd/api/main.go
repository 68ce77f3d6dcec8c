package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"premiumartisan_backend/internal/controller"
	"premiumartisan_backend/internal/form"
	"premiumartisan_backend/internal/middleware"
	"premiumartisan_backend/internal/model"
	"premiumartisan_backend/pkg/config"
	"premiumartisan_backend/pkg/cron"
	"premiumartisan_backend/pkg/database"
	"premiumartisan_backend/pkg/email"
	"premiumartisan_backend/pkg/geocode"
	"premiumartisan_backend/pkg/ratelimit"
	"premiumartisan_backend/pkg/seed"
	"premiumartisan_backend/pkg/seo"
)

func setupRoutes(app *fiber.App, cfg *config.Config, limiter ratelimit.Store) {
	api := app.Group("/api")

	// Lead intake (the conversion path)
	api.Post("/publier-projet", middleware.Cooldown(limiter), controller.CreateLead)

	// Step-form sessions
	sessions := api.Group("/form/sessions")
	sessions.Post("/", controller.CreateSession)
	sessions.Get("/:id", controller.GetSession)
	sessions.Patch("/:id/fields", controller.PatchSessionFields)
	sessions.Post("/:id/next", controller.NextStep)
	sessions.Post("/:id/prev", controller.PrevStep)
	sessions.Post("/:id/address", controller.SelectAddress)
	sessions.Post("/:id/submit", controller.SubmitSession)

	// Address lookup proxy
	address := api.Group("/address")
	address.Get("/search", controller.SearchAddress)
	address.Get("/reverse", controller.ReverseAddress)

	// Catalog routes
	api.Get("/catalog/categories", controller.GetCategories)
	api.Get("/catalog/budgets", controller.GetBudgets)
	api.Get("/locations/services", controller.GetServices)
	api.Get("/locations/cities", controller.GetCities)

	// Admin routes
	admin := api.Group("/admin", middleware.AdminAuth(cfg.Admin.Token))
	admin.Get("/leads", controller.ListLeads)
	admin.Get("/leads/stats", controller.GetLeadStats)

	// SEO surface
	app.Get("/sitemap.xml", controller.GetSitemap)
	app.Get("/robots.txt", controller.GetRobots)
	app.Get("/travaux/:slug", controller.GetLandingPage)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// Catch-all landing family; registered last so fixed routes win.
	app.Get("/:metier/:ville", controller.GetMetierPage)
}

func main() {
	cfg := config.Load()

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.AdminEmail); err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
		log.Println("Email service initialized")
	} else {
		log.Println("RESEND_API_KEY not set, lead notifications disabled")
	}

	seo.Init(cfg.Site.Name, cfg.Site.BaseURL)

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}
	database.InitDB(cfg.Database.URL)
	if err := database.MigrateDatabase(&model.Lead{}); err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if os.Getenv("SEED_DEMO") == "true" {
		seed.SeedDemoLeads(database.GetDB())
	}

	var limiter ratelimit.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		limiter = ratelimit.NewRedisStore(client, cfg.Intake.CooldownWindow, cfg.Intake.CooldownMax)
		log.Println("Cooldown store backed by Redis")
	} else {
		limiter = ratelimit.NewMemoryStore(cfg.Intake.CooldownWindow, cfg.Intake.CooldownMax)
		log.Println("Cooldown store in memory (REDIS_ADDR not set)")
	}

	geocoder := geocode.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.ReverseTimeout)
	sessionStore := form.NewStore(geocoder.Search, form.DefaultTTL)

	controller.InitLeadController()
	controller.InitAddressController(geocoder)
	controller.InitSessionController(sessionStore, limiter)

	cron.InitLeadDigestCron()
	cron.InitSessionSweepCron(sessionStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, cfg, limiter)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
