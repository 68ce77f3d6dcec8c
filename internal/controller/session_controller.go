package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"premiumartisan_backend/internal/form"
	"premiumartisan_backend/internal/middleware"
	"premiumartisan_backend/internal/model"
	"premiumartisan_backend/pkg/database"
	"premiumartisan_backend/pkg/email"
	"premiumartisan_backend/pkg/geocode"
	"premiumartisan_backend/pkg/ratelimit"
	"premiumartisan_backend/pkg/utils/catalog"
	"premiumartisan_backend/pkg/utils/category"
	"premiumartisan_backend/pkg/utils/format"
)

const (
	msgTooFast      = "Veuillez patienter un instant avant d’envoyer le formulaire."
	msgThrottled    = "Veuillez attendre quelques secondes avant un nouvel envoi."
	msgCooldownWait = "Trop de demandes. Veuillez patienter."
	msgServerError  = "Erreur serveur. Réessayez."
)

var (
	sessionStore   *form.Store
	sessionLimiter ratelimit.Store
)

func InitSessionController(store *form.Store, limiter ratelimit.Store) {
	sessionStore = store
	sessionLimiter = limiter
}

// CreateSession starts a new form session. The dwell clock starts here.
func CreateSession(c *fiber.Ctx) error {
	s := sessionStore.Create()
	return c.Status(fiber.StatusCreated).JSON(s.Snapshot())
}

// GetSession returns the current snapshot.
func GetSession(c *fiber.Ctx) error {
	s := sessionStore.Get(c.Params("id"))
	if s == nil {
		return sessionNotFound(c)
	}
	return c.JSON(s.Snapshot())
}

// PatchSessionFields merges a partial field update; every value is
// normalized on the way in.
func PatchSessionFields(c *fiber.Ctx) error {
	s := sessionStore.Get(c.Params("id"))
	if s == nil {
		return sessionNotFound(c)
	}

	var patch form.FieldPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	return c.JSON(s.Apply(patch))
}

// NextStep advances when the active step is ready; the snapshot tells the
// client whether anything moved.
func NextStep(c *fiber.Ctx) error {
	s := sessionStore.Get(c.Params("id"))
	if s == nil {
		return sessionNotFound(c)
	}
	snap, moved := s.Next()
	return c.JSON(fiber.Map{"moved": moved, "session": snap})
}

// PrevStep always succeeds.
func PrevStep(c *fiber.Ctx) error {
	s := sessionStore.Get(c.Params("id"))
	if s == nil {
		return sessionNotFound(c)
	}
	return c.JSON(fiber.Map{"moved": true, "session": s.Prev()})
}

// SelectAddress copies a chosen suggestion (or reverse lookup result) into
// the localisation fields.
func SelectAddress(c *fiber.Ctx) error {
	s := sessionStore.Get(c.Params("id"))
	if s == nil {
		return sessionNotFound(c)
	}

	var input struct {
		Label    string `json:"label"`
		Postcode string `json:"postcode"`
		City     string `json:"city"`
		Context  string `json:"context"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	return c.JSON(s.ApplyAddress(geocode.Result{
		Label:    input.Label,
		Postcode: input.Postcode,
		City:     input.City,
		Context:  input.Context,
	}))
}

// SubmitSession runs the guard chain, validates the final payload and pushes
// it through the same pipeline as the direct intake endpoint. On success the
// session is discarded.
func SubmitSession(c *fiber.Ctx) error {
	s := sessionStore.Get(c.Params("id"))
	if s == nil {
		return sessionNotFound(c)
	}

	guard := s.CheckSubmit()
	switch guard.Verdict {
	case form.VerdictSilentAccept:
		// Bot trap: report success, persist nothing, burn the session.
		sessionStore.Drop(s.ID)
		return c.JSON(fiber.Map{"ok": true})
	case form.VerdictTooFast:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok": false, "error": msgTooFast,
		})
	case form.VerdictThrottled:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok": false, "error": msgThrottled,
		})
	case form.VerdictCooldown:
		return cooldownResponse(c, s, guard.RetryAfter.Seconds())
	}
	s.MarkSubmitAttempt()

	// The server-side window is the authority; its verdict extends the
	// session cooldown so later attempts are blocked before the network hop.
	allowed, retryAfter, limitErr := sessionLimiter.Hit(c.Context(), middleware.ClientKey(c))
	if limitErr != nil {
		log.Printf("cooldown check failed: %v", limitErr)
	} else if !allowed {
		s.StartCooldown(retryAfter)
		return cooldownResponse(c, s, retryAfter.Seconds())
	}

	fields := s.FieldValues()
	if len(fields.Categories) == 0 ||
		strings.TrimSpace(fields.Name) == "" ||
		len(fields.PhoneDigits()) != 10 ||
		len(fields.Postal) != 5 ||
		!catalog.ValidBudget(fields.Budget) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok": false, "error": msgMissingRequired,
		})
	}

	categoryValue := category.Format(catalog.ExpandPaintShorthand(fields.Categories))
	if categoryValue == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok": false, "error": msgMissingCategory,
		})
	}

	lead := model.Lead{
		Category:    categoryValue,
		Name:        strings.TrimSpace(fields.Name),
		Phone:       fields.PhoneDigits(),
		Postal:      fields.Postal,
		Surface:     optional(fields.Surface),
		Location:    optional(strings.TrimSpace(fields.Location)),
		Description: optional(fields.Description),
		PhotoName:   optional(format.PhotoNames(fields.PhotoNames)),
	}

	if err := database.GetDB().Create(&lead).Error; err != nil {
		log.Printf("Could not create lead from session %s: %v", s.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok": false, "error": msgServerError,
		})
	}

	if email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendLeadNotification(&lead, catalog.BudgetLabel(fields.Budget)); err != nil {
			log.Printf("Could not send lead notification email: %v", err)
		}
	}

	sessionStore.Drop(s.ID)
	return c.JSON(fiber.Map{"ok": true, "id": lead.ID})
}

func cooldownResponse(c *fiber.Ctx, s *form.Session, retrySeconds float64) error {
	seconds := int(retrySeconds + 0.999)
	if seconds < 1 {
		seconds = 1
	}
	c.Set(fiber.HeaderRetryAfter, strconv.Itoa(seconds))
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"ok":         false,
		"error":      msgCooldownWait,
		"retryAfter": seconds,
	})
}

func sessionNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Session not found or expired",
	})
}
